package item

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// StackSpec configures the quantity facet.
type StackSpec struct {
	Quantity   int
	Value      int
	Mergeable  bool
	MaxPerSlot int // Unbounded or > 0
}

// StackFacet is the countable part of an inventory entry.
type StackFacet struct {
	quantity   int
	value      int
	mergeable  bool
	maxPerSlot int
}

// WithStack attaches a quantity facet. A zero MaxPerSlot is read as Unbounded.
func WithStack(spec StackSpec) Option {
	return func(i *Item) error {
		if spec.MaxPerSlot == 0 {
			spec.MaxPerSlot = Unbounded
		}
		switch {
		case spec.Quantity < 0:
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeQuantity)
		case spec.Value < 0:
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeValue)
		case spec.MaxPerSlot != Unbounded && spec.MaxPerSlot < 1:
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgBadMaxPerSlot)
		case spec.MaxPerSlot != Unbounded && spec.Quantity > spec.MaxPerSlot:
			return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgQuantityOverCap)
		}
		i.stack = &StackFacet{
			quantity:   spec.Quantity,
			value:      spec.Value,
			mergeable:  spec.Mergeable,
			maxPerSlot: spec.MaxPerSlot,
		}
		return nil
	}
}

func (f *StackFacet) Quantity() int     { return f.quantity }
func (f *StackFacet) Value() int        { return f.value }
func (f *StackFacet) IsMergeable() bool { return f.mergeable }
func (f *StackFacet) MaxPerSlot() int   { return f.maxPerSlot }

// TotalValue is quantity times unit value.
func (f *StackFacet) TotalValue() int { return f.quantity * f.value }

// Bounded reports whether the slot has a cap.
func (f *StackFacet) Bounded() bool { return f.maxPerSlot != Unbounded }

// Full reports whether a bounded stack sits at its cap. Unbounded stacks are
// never full.
func (f *StackFacet) Full() bool {
	return f.Bounded() && f.quantity >= f.maxPerSlot
}

// Room is the number of units the stack can still take, or Unbounded.
func (f *StackFacet) Room() int {
	if !f.Bounded() {
		return Unbounded
	}
	return f.maxPerSlot - f.quantity
}

// Empty reports a logically deleted entry.
func (f *StackFacet) Empty() bool { return f.quantity == 0 }

// SetQuantity replaces the quantity, rejecting values below zero or above a
// bounded cap.
func (f *StackFacet) SetQuantity(q int) error {
	if q < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgNegativeQuantity)
	}
	if f.Bounded() && q > f.maxPerSlot {
		return fmt.Errorf("%w: %s (%d > %d)", domain.ErrInvalidArgument, ErrMsgQuantityOverCap, q, f.maxPerSlot)
	}
	f.quantity = q
	return nil
}

// take removes up to n units and returns how many were removed.
func (f *StackFacet) take(n int) int {
	if n > f.quantity {
		n = f.quantity
	}
	f.quantity -= n
	return n
}

// MergeResult reports a merge so the owner can drop an emptied source.
type MergeResult struct {
	Transferred int
	Quantity    int // receiver quantity after the merge
	Remaining   int // source quantity after the merge; 0 means drop it
}

// Compatible reports whether two items are the same mergeable kind,
// regardless of how full they are. It is symmetric.
func (i *Item) Compatible(other *Item) bool {
	if other == nil || other == i {
		return false
	}
	if i.stack == nil || other.stack == nil {
		return false
	}
	return i.stack.mergeable && other.stack.mergeable && i.kind == other.kind
}

// CanMerge reports whether other can be merged into i. Both stacks must be
// compatible and at least one must be below its cap, which keeps
// i.CanMerge(o) == o.CanMerge(i). A full receiver still merges, it just
// takes nothing.
func (i *Item) CanMerge(other *Item) bool {
	if !i.Compatible(other) {
		return false
	}
	return !i.stack.Full() || !other.stack.Full()
}

// Merge moves min(other quantity, room left) units from other into i.
// Incompatible stacks are rejected with ErrIncompatibleMerge and left
// untouched. Compatible stacks that cannot move anything (either side at
// zero quantity, a full receiver) are a no-op, not an error. Only quantities
// change.
func (i *Item) Merge(other *Item) (MergeResult, error) {
	if other == nil {
		return MergeResult{}, fmt.Errorf("%w: nil merge source", domain.ErrInvalidArgument)
	}
	if i.stack != nil && other.stack != nil && (i.stack.Empty() || other.stack.Empty()) {
		return MergeResult{Quantity: i.stack.quantity, Remaining: other.stack.quantity}, nil
	}
	if err := i.checkMergeable(other); err != nil {
		return MergeResult{}, err
	}

	res := MergeResult{Quantity: i.stack.quantity, Remaining: other.stack.quantity}
	if !i.CanMerge(other) {
		return res, nil
	}

	n := other.stack.quantity
	if room := i.stack.Room(); room != Unbounded && room < n {
		n = room
	}
	moved := other.stack.take(n)
	i.stack.quantity += moved

	res.Transferred = moved
	res.Quantity = i.stack.quantity
	res.Remaining = other.stack.quantity
	return res, nil
}

func (i *Item) checkMergeable(other *Item) error {
	switch {
	case other == i:
		return fmt.Errorf("%w: %s", domain.ErrIncompatibleMerge, ErrMsgMergeSelf)
	case i.stack == nil:
		return fmt.Errorf("%w: %s", domain.ErrNotStackable, i.kind)
	case other.stack == nil:
		return fmt.Errorf("%w: %s", domain.ErrNotStackable, other.kind)
	case i.kind != other.kind:
		return fmt.Errorf("%w: %s (%s, %s)", domain.ErrIncompatibleMerge, ErrMsgMergeDifferentKind, i.kind, other.kind)
	case !i.stack.mergeable || !other.stack.mergeable:
		return fmt.Errorf("%w: %s", domain.ErrIncompatibleMerge, ErrMsgMergeNotMergeable)
	}
	return nil
}
