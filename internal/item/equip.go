package item

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// EquipSpec configures the equip facet.
type EquipSpec struct {
	Equipable bool
	Slots     domain.SlotSet
	Range     int // 0 is melee
	Damage    int
	Modifiers domain.StatBlock
}

// EquipFacet describes how an item is worn or wielded. It never knows who
// wears it; the equipment manager applies and reverts the modifiers.
type EquipFacet struct {
	equipable bool
	slots     domain.SlotSet
	rng       int
	damage    int
	modifiers domain.StatBlock
}

// WithEquip attaches an equip facet.
func WithEquip(spec EquipSpec) Option {
	return func(i *Item) error {
		if spec.Range < 0 || spec.Damage < 0 {
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeCombat)
		}
		i.equip = &EquipFacet{
			equipable: spec.Equipable,
			slots:     spec.Slots,
			rng:       spec.Range,
			damage:    spec.Damage,
			modifiers: spec.Modifiers,
		}
		return nil
	}
}

// IsEquipable is the global flag.
func (f *EquipFacet) IsEquipable() bool { return f.equipable }

// IsEquipableIn requires the global flag and the slot.
func (f *EquipFacet) IsEquipableIn(slot domain.Slot) bool {
	return f.equipable && f.slots.Has(slot)
}

// Slots lists the slots the item fits.
func (f *EquipFacet) Slots() []domain.Slot { return f.slots.Slots() }

func (f *EquipFacet) Range() int  { return f.rng }
func (f *EquipFacet) Damage() int { return f.damage }

// IsMelee reports a zero range.
func (f *EquipFacet) IsMelee() bool { return f.rng == 0 }

// Modifiers returns the block bestowed while equipped. It is a value copy.
func (f *EquipFacet) Modifiers() domain.StatBlock { return f.modifiers }

// IsEquipableIn is false for items without an equip facet.
func (i *Item) IsEquipableIn(slot domain.Slot) bool {
	return i.equip != nil && i.equip.IsEquipableIn(slot)
}
