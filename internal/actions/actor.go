package actions

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/equipment"
	"github.com/R-Gerard/Roguelike-sub001/internal/inventory"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
)

// Actor is anything that carries and wears items.
type Actor struct {
	ID        string
	Position  domain.Position
	Inventory *inventory.Inventory
	Loadout   *equipment.Loadout
}

// NewActor returns an actor with an empty inventory and loadout.
func NewActor(id string, base domain.StatBlock, limits inventory.Limits) *Actor {
	return &Actor{
		ID:        id,
		Inventory: inventory.New(limits),
		Loadout:   equipment.New(base),
	}
}

// Target names an item either by inventory index or by equipment slot.
type Target struct {
	Index    int
	Slot     domain.Slot
	Equipped bool
}

// InInventory targets the inventory entry at index.
func InInventory(index int) Target { return Target{Index: index} }

// InSlot targets the item worn in slot.
func InSlot(slot domain.Slot) Target { return Target{Slot: slot, Equipped: true} }

func (t Target) String() string {
	if t.Equipped {
		return t.Slot.String()
	}
	return fmt.Sprintf("#%d", t.Index)
}

// resolve returns the targeted item.
func (a *Actor) resolve(t Target) (*item.Item, error) {
	if !t.Equipped {
		return a.Inventory.At(t.Index)
	}
	it, ok := a.Loadout.Equipped(t.Slot)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotEmpty, t.Slot)
	}
	return it, nil
}

// discard removes the targeted item from wherever it is held.
func (a *Actor) discard(t Target, it *item.Item) error {
	if t.Equipped {
		_, err := a.Loadout.Unequip(t.Slot)
		return err
	}
	if !a.Inventory.RemoveItem(it) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNoTarget)
	}
	return nil
}
