package item

import (
	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// SizeFacet holds the size category.
type SizeFacet struct {
	size domain.Size
}

func (f *SizeFacet) Size() domain.Size { return f.size }

// SetSize stores the normalized category.
func (f *SizeFacet) SetSize(s domain.Size) { f.size = s.Normalize() }

// ColorFacet holds the render colors. Readers get copies.
type ColorFacet struct {
	pair domain.ColorPair
}

// Colors returns a copy of the pair.
func (f *ColorFacet) Colors() domain.ColorPair { return f.pair.Copy() }

func (f *ColorFacet) Foreground() domain.RGB { return f.pair.Foreground }

// Background returns the background and false when transparent.
func (f *ColorFacet) Background() (domain.RGB, bool) {
	if f.pair.Background == nil {
		return domain.RGB{}, false
	}
	return *f.pair.Background, true
}

func (f *ColorFacet) SetForeground(c domain.RGB) { f.pair.Foreground = c }

func (f *ColorFacet) SetBackground(c domain.RGB) { f.pair.Background = &c }

// ClearBackground makes the item render through.
func (f *ColorFacet) ClearBackground() { f.pair.Background = nil }

// PositionFacet holds the map cell.
type PositionFacet struct {
	pos domain.Position
}

func (f *PositionFacet) Position() domain.Position { return f.pos }

func (f *PositionFacet) SetPosition(row, col int) {
	f.pos = domain.Position{Row: row, Col: col}
}

func (f *PositionFacet) MoveTo(p domain.Position) { f.pos = p }

// DimensionFacet holds an extent that can be resized.
type DimensionFacet struct {
	dims domain.Dimensions
}

func (f *DimensionFacet) Dimensions() domain.Dimensions { return f.dims }

// Resize rejects negative extents and leaves the old value on error.
func (f *DimensionFacet) Resize(rows, cols int) error {
	d, err := domain.NewDimensions(rows, cols)
	if err != nil {
		return err
	}
	f.dims = d
	return nil
}

// WithSize attaches a size facet.
func WithSize(s domain.Size) Option {
	return func(i *Item) error {
		i.size = &SizeFacet{size: s.Normalize()}
		return nil
	}
}

// WithColors attaches a color facet.
func WithColors(p domain.ColorPair) Option {
	return func(i *Item) error {
		i.color = &ColorFacet{pair: p.Copy()}
		return nil
	}
}

// WithPosition attaches a position facet.
func WithPosition(p domain.Position) Option {
	return func(i *Item) error {
		i.position = &PositionFacet{pos: p}
		return nil
	}
}

// WithDimensions attaches a dimension facet.
func WithDimensions(rows, cols int) Option {
	return func(i *Item) error {
		d, err := domain.NewDimensions(rows, cols)
		if err != nil {
			return err
		}
		i.dims = &DimensionFacet{dims: d}
		return nil
	}
}
