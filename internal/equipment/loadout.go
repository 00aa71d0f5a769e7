package equipment

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
)

// Loadout is what one actor is wearing plus the stats that result. The
// aggregate always equals base plus the modifiers of every equipped item.
type Loadout struct {
	base  domain.StatBlock
	stats domain.StatBlock
	slots [domain.SlotCount]*item.Item
	mods  [domain.SlotCount]domain.StatBlock
}

// New returns an empty loadout over the given base stats.
func New(base domain.StatBlock) *Loadout {
	return &Loadout{base: base, stats: base}
}

// Base is the actor's stats without equipment.
func (l *Loadout) Base() domain.StatBlock { return l.base }

// Stats is the aggregate the game reads.
func (l *Loadout) Stats() domain.StatBlock { return l.stats }

// Bonus is the part of the aggregate contributed by equipment.
func (l *Loadout) Bonus() domain.StatBlock { return l.stats.Sub(l.base) }

// AdjustBase applies a permanent delta, such as a consumed potion.
func (l *Loadout) AdjustBase(delta domain.StatBlock) {
	l.base = l.base.Add(delta)
	l.stats = l.stats.Add(delta)
}

// Equipped returns the item in slot.
func (l *Loadout) Equipped(slot domain.Slot) (*item.Item, bool) {
	if !slot.Valid() || l.slots[slot] == nil {
		return nil, false
	}
	return l.slots[slot], true
}

// SlotOf finds where an item instance is worn.
func (l *Loadout) SlotOf(id string) (domain.Slot, bool) {
	for s, it := range l.slots {
		if it != nil && it.ID() == id {
			return domain.Slot(s), true
		}
	}
	return domain.SlotCount, false
}

// Equip puts it into slot and returns whatever was there before. The
// previous item's modifiers are reverted before the new ones apply. A
// rejected equip leaves the loadout untouched.
func (l *Loadout) Equip(slot domain.Slot, it *item.Item) (*item.Item, error) {
	if it == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNilItem)
	}
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, slot)
	}
	facet, ok := it.Equipable()
	if !ok || !facet.IsEquipableIn(slot) {
		return nil, fmt.Errorf("%w: %s in %s", domain.ErrNotEquipable, it.Kind(), slot)
	}
	if current, worn := l.SlotOf(it.ID()); worn {
		if current == slot {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s already worn in %s", domain.ErrDuplicateIdentity, it.ID(), current)
	}

	prev := l.slots[slot]
	if prev != nil {
		l.stats = l.stats.Sub(l.mods[slot])
	}
	mods := facet.Modifiers()
	l.slots[slot] = it
	l.mods[slot] = mods
	l.stats = l.stats.Add(mods)
	return prev, nil
}

// Unequip empties slot and reverts its modifiers.
func (l *Loadout) Unequip(slot domain.Slot) (*item.Item, error) {
	if !slot.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, slot)
	}
	it := l.slots[slot]
	if it == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, slot)
	}
	l.stats = l.stats.Sub(l.mods[slot])
	l.slots[slot] = nil
	l.mods[slot] = domain.StatBlock{}
	return it, nil
}

// Items lists worn items in slot order.
func (l *Loadout) Items() []*item.Item {
	var out []*item.Item
	for _, it := range l.slots {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}
