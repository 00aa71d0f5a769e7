package domain

import "fmt"

// Position is a (row, col) cell coordinate. Bounds are the map's concern.
type Position struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Offset returns p moved by (dr, dc).
func (p Position) Offset(dr, dc int) Position {
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Dimensions is a (rows, cols) extent. Both are non-negative.
type Dimensions struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// NewDimensions validates and builds a Dimensions value.
func NewDimensions(rows, cols int) (Dimensions, error) {
	if rows < 0 || cols < 0 {
		return Dimensions{}, fmt.Errorf("%w: dimensions %dx%d must be non-negative", ErrInvalidArgument, rows, cols)
	}
	return Dimensions{Rows: rows, Cols: cols}, nil
}

// Area is rows*cols.
func (d Dimensions) Area() int {
	return d.Rows * d.Cols
}
