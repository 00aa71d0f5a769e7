package domain

import (
	"fmt"
	"strings"
)

// Slot is an equipment attachment point on an actor.
type Slot uint8

const (
	SlotWeapon Slot = iota
	SlotOffhand
	SlotHead
	SlotBody
	SlotHands
	SlotFeet
	SlotAccessory

	SlotCount
)

var slotNames = [SlotCount]string{
	SlotWeapon:    "weapon",
	SlotOffhand:   "offhand",
	SlotHead:      "head",
	SlotBody:      "body",
	SlotHands:     "hands",
	SlotFeet:      "feet",
	SlotAccessory: "accessory",
}

func (s Slot) String() string {
	if s >= SlotCount {
		return fmt.Sprintf("slot(%d)", s)
	}
	return slotNames[s]
}

// Valid reports whether s is one of the enumerated slots.
func (s Slot) Valid() bool {
	return s < SlotCount
}

// ParseSlot resolves a slot by name.
func ParseSlot(name string) (Slot, error) {
	lower := strings.ToLower(name)
	for i, n := range slotNames {
		if n == lower {
			return Slot(i), nil
		}
	}
	return SlotCount, fmt.Errorf("%w: unknown slot %q", ErrInvalidArgument, name)
}

// SlotSet is a bitset of slots.
type SlotSet uint16

// NewSlotSet builds a set from the given slots.
func NewSlotSet(slots ...Slot) SlotSet {
	var set SlotSet
	for _, s := range slots {
		if s.Valid() {
			set |= 1 << s
		}
	}
	return set
}

// Has reports membership.
func (set SlotSet) Has(s Slot) bool {
	return s.Valid() && set&(1<<s) != 0
}

// Slots lists the members in enumeration order.
func (set SlotSet) Slots() []Slot {
	var out []Slot
	for s := Slot(0); s < SlotCount; s++ {
		if set.Has(s) {
			out = append(out, s)
		}
	}
	return out
}
