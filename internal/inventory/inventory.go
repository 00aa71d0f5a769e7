package inventory

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
)

// Limits bound an inventory. Zero means no limit.
type Limits struct {
	MaxSlots int
	MaxLoad  int
}

// Inventory is an ordered, indexable collection of items owned by one
// actor. It is not safe for concurrent use.
type Inventory struct {
	items  []*item.Item
	limits Limits
}

// New returns an empty inventory.
func New(limits Limits) *Inventory {
	return &Inventory{limits: limits}
}

// AddResult reports where an added item went.
type AddResult struct {
	// Merged is the number of units absorbed by existing stacks.
	Merged int
	// Index of the new entry, or -1 when everything merged.
	Index int
}

func (inv *Inventory) Len() int { return len(inv.items) }

func (inv *Inventory) Limits() Limits { return inv.limits }

// At returns the entry at index. It satisfies item.AmmoSupply.
func (inv *Inventory) At(index int) (*item.Item, error) {
	if index < 0 || index >= len(inv.items) {
		return nil, fmt.Errorf("%w: %s (%d of %d)", domain.ErrInvalidArgument, ErrMsgIndexOutOfRange, index, len(inv.items))
	}
	return inv.items[index], nil
}

// Items returns a snapshot of the entries in order.
func (inv *Inventory) Items() []*item.Item {
	out := make([]*item.Item, len(inv.items))
	copy(out, inv.items)
	return out
}

// Load is the summed carry weight of every entry.
func (inv *Inventory) Load() int {
	total := 0
	for _, it := range inv.items {
		total += it.CarryWeight()
	}
	return total
}

// IndexOf finds an entry by instance id, or -1.
func (inv *Inventory) IndexOf(id string) int {
	for i, it := range inv.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// FindKind returns the first entry of the kind, or -1.
func (inv *Inventory) FindKind(kind string) int {
	return inv.FindFirst(func(it *item.Item) bool { return it.Kind() == kind })
}

// FindFirst returns the first entry matching pred, or -1.
func (inv *Inventory) FindFirst(pred func(*item.Item) bool) int {
	for i, it := range inv.items {
		if pred(it) {
			return i
		}
	}
	return -1
}

// Add stores it, first topping up compatible stacks in order and then
// appending what is left as a new entry. Limits are checked before anything
// moves, so a rejected add changes nothing. An item fully absorbed by merges
// ends at quantity zero and is not stored.
func (inv *Inventory) Add(it *item.Item) (AddResult, error) {
	if it == nil {
		return AddResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilItem)
	}
	if inv.IndexOf(it.ID()) >= 0 {
		return AddResult{}, fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, it.ID())
	}
	if it.Quantity() == 0 {
		return AddResult{}, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgEmptyStack)
	}
	if inv.limits.MaxLoad > 0 && inv.Load()+it.CarryWeight() > inv.limits.MaxLoad {
		return AddResult{}, fmt.Errorf("%w: %d + %d > %d", domain.ErrOverburdened, inv.Load(), it.CarryWeight(), inv.limits.MaxLoad)
	}

	if inv.mergeCapacity(it) < it.Quantity() && inv.limits.MaxSlots > 0 && len(inv.items) >= inv.limits.MaxSlots {
		return AddResult{}, fmt.Errorf("%w: %d slots", domain.ErrInventoryFull, inv.limits.MaxSlots)
	}

	res := AddResult{Index: -1}
	for _, existing := range inv.items {
		if !existing.CanMerge(it) {
			continue
		}
		mr, err := existing.Merge(it)
		if err != nil {
			return res, err
		}
		res.Merged += mr.Transferred
		if mr.Remaining == 0 {
			return res, nil
		}
	}

	inv.items = append(inv.items, it)
	res.Index = len(inv.items) - 1
	return res, nil
}

// mergeCapacity is how many units of it existing stacks could absorb.
func (inv *Inventory) mergeCapacity(it *item.Item) int {
	total := 0
	for _, existing := range inv.items {
		if !existing.CanMerge(it) || existing.Quantity() == 0 {
			continue
		}
		stack, _ := existing.Stackable()
		room := stack.Room()
		if room == item.Unbounded {
			return it.Quantity()
		}
		total += room
	}
	return total
}

// Remove detaches and returns the entry at index.
func (inv *Inventory) Remove(index int) (*item.Item, error) {
	it, err := inv.At(index)
	if err != nil {
		return nil, err
	}
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return it, nil
}

// RemoveItem detaches the entry with the item's instance id. It reports false if
// the item is not held.
func (inv *Inventory) RemoveItem(it *item.Item) bool {
	idx := inv.IndexOf(it.ID())
	if idx < 0 {
		return false
	}
	_, _ = inv.Remove(idx)
	return true
}

// Replace swaps the entry at index for it and returns the old entry. The
// load limit is checked against the swapped totals.
func (inv *Inventory) Replace(index int, it *item.Item) (*item.Item, error) {
	old, err := inv.At(index)
	if err != nil {
		return nil, err
	}
	if it == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilItem)
	}
	if other := inv.IndexOf(it.ID()); other >= 0 && other != index {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateIdentity, it.ID())
	}
	if inv.limits.MaxLoad > 0 {
		load := inv.Load() - old.CarryWeight() + it.CarryWeight()
		if load > inv.limits.MaxLoad {
			return nil, fmt.Errorf("%w: %d > %d", domain.ErrOverburdened, load, inv.limits.MaxLoad)
		}
	}
	inv.items[index] = it
	return old, nil
}

// Take removes n units from the entry at index and returns them as their
// own item. Taking a whole entry detaches it; taking part of a stack splits
// it. Items without a quantity can only be taken whole.
func (inv *Inventory) Take(index, n int) (*item.Item, error) {
	it, err := inv.At(index)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n > it.Quantity() {
		return nil, fmt.Errorf("%w: cannot take %d of %d", domain.ErrInvalidArgument, n, it.Quantity())
	}
	if n == it.Quantity() {
		return inv.Remove(index)
	}
	return it.Split(n)
}

// Compact drops every zero-quantity entry and reports how many went.
func (inv *Inventory) Compact() int {
	kept := inv.items[:0]
	for _, it := range inv.items {
		if it.Quantity() > 0 {
			kept = append(kept, it)
		}
	}
	removed := len(inv.items) - len(kept)
	for i := len(kept); i < len(inv.items); i++ {
		inv.items[i] = nil
	}
	inv.items = kept
	return removed
}
