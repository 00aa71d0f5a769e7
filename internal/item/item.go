package item

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// Item is a game object carrying a stable identity plus a fixed subset of
// facets. Facets are chosen at construction; only their state mutates.
type Item struct {
	id   string
	kind string
	name string

	size     *SizeFacet
	color    *ColorFacet
	position *PositionFacet
	dims     *DimensionFacet
	stack    *StackFacet
	equip    *EquipFacet
	use      *UseFacet
}

// Option attaches a facet during construction.
type Option func(*Item) error

// New builds an item with a freshly generated instance id.
func New(kind, name string, opts ...Option) (*Item, error) {
	return NewWithID(uuid.NewString(), kind, name, opts...)
}

// NewWithID builds an item with an explicit instance id.
func NewWithID(id, kind, name string, opts ...Option) (*Item, error) {
	if id == "" || kind == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgEmptyIdentity)
	}
	it := &Item{id: id, kind: kind, name: name}
	if it.name == "" {
		it.name = kind
	}
	for _, opt := range opts {
		if err := opt(it); err != nil {
			return nil, fmt.Errorf("item %q: %w", kind, err)
		}
	}
	return it, nil
}

// ID is the instance identity.
func (i *Item) ID() string { return i.id }

// Kind is the template identity shared by all instances of the same thing.
func (i *Item) Kind() string { return i.kind }

// Name is the display name.
func (i *Item) Name() string { return i.name }

// Has reports whether the item carries the facet.
func (i *Item) Has(f Facet) bool {
	switch f {
	case FacetSized:
		return i.size != nil
	case FacetColored:
		return i.color != nil
	case FacetPositioned:
		return i.position != nil
	case FacetDimensioned:
		return i.dims != nil
	case FacetStackable:
		return i.stack != nil
	case FacetEquipable:
		return i.equip != nil
	case FacetUseable:
		return i.use != nil
	default:
		return false
	}
}

// Facets lists the facets the item carries in declaration order.
func (i *Item) Facets() []Facet {
	var out []Facet
	for f := FacetSized; f < facetCount; f++ {
		if i.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (i *Item) Sized() (*SizeFacet, bool)            { return i.size, i.size != nil }
func (i *Item) Colored() (*ColorFacet, bool)         { return i.color, i.color != nil }
func (i *Item) Positioned() (*PositionFacet, bool)   { return i.position, i.position != nil }
func (i *Item) Dimensioned() (*DimensionFacet, bool) { return i.dims, i.dims != nil }
func (i *Item) Stackable() (*StackFacet, bool)       { return i.stack, i.stack != nil }
func (i *Item) Equipable() (*EquipFacet, bool)       { return i.equip, i.equip != nil }
func (i *Item) Useable() (*UseFacet, bool)           { return i.use, i.use != nil }

// Quantity is the stack size, or 1 for items without a quantity facet.
func (i *Item) Quantity() int {
	if i.stack == nil {
		return 1
	}
	return i.stack.quantity
}

// CarryWeight is size weight times quantity. Unsized items weigh as the
// smallest category.
func (i *Item) CarryWeight() int {
	size := domain.SizeUnset
	if i.size != nil {
		size = i.size.size
	}
	return size.Weight() * i.Quantity()
}

// Place moves a positioned item. It reports false for items without a
// position facet.
func (i *Item) Place(p domain.Position) bool {
	if i.position == nil {
		return false
	}
	i.position.MoveTo(p)
	return true
}

// Clone returns a deep copy with a new instance id.
func (i *Item) Clone() *Item {
	cp := &Item{id: uuid.NewString(), kind: i.kind, name: i.name}
	if i.size != nil {
		s := *i.size
		cp.size = &s
	}
	if i.color != nil {
		cp.color = &ColorFacet{pair: i.color.pair.Copy()}
	}
	if i.position != nil {
		p := *i.position
		cp.position = &p
	}
	if i.dims != nil {
		d := *i.dims
		cp.dims = &d
	}
	if i.stack != nil {
		s := *i.stack
		cp.stack = &s
	}
	if i.equip != nil {
		e := *i.equip
		cp.equip = &e
	}
	if i.use != nil {
		u := *i.use
		cp.use = &u
	}
	return cp
}

// Split detaches n units into a new stack. The receiver keeps the rest;
// a receiver left at zero must be dropped by its owner.
func (i *Item) Split(n int) (*Item, error) {
	if i.stack == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotStackable, i.kind)
	}
	if n <= 0 || n > i.stack.quantity {
		return nil, fmt.Errorf("%w: cannot split %d from a stack of %d", domain.ErrInvalidArgument, n, i.stack.quantity)
	}
	part := i.Clone()
	part.stack.quantity = n
	i.stack.quantity -= n
	return part, nil
}

func (i *Item) String() string {
	if i.stack != nil {
		return fmt.Sprintf("%s x%d", i.name, i.stack.quantity)
	}
	return i.name
}
