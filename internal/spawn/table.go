package spawn

import (
	"fmt"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/rng"
)

// Entry is one weighted row of a table.
type Entry struct {
	Weight   int    `json:"weight"`
	Template string `json:"template"`
}

// Table is a compiled weighted table. Entries keep their declared order and
// carry cumulative weights so a roll resolves by binary search.
type Table struct {
	entries []Entry
	cumul   []int
	total   int
}

// Compile validates entries and precomputes cumulative weights.
func Compile(entries []Entry) (*Table, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyTable
	}
	t := &Table{
		entries: make([]Entry, len(entries)),
		cumul:   make([]int, len(entries)),
	}
	for i, e := range entries {
		if e.Weight <= 0 {
			return nil, fmt.Errorf("%w: %s (%q has weight %d)", domain.ErrInvalidArgument, ErrMsgNonPositiveWeight, e.Template, e.Weight)
		}
		if e.Template == "" {
			return nil, fmt.Errorf("%w: %s", domain.ErrInvalidArgument, ErrMsgEmptyTemplate)
		}
		t.total += e.Weight
		t.entries[i] = e
		t.cumul[i] = t.total
	}
	return t, nil
}

// Total is the sum of all weights.
func (t *Table) Total() int { return t.total }

func (t *Table) Len() int { return len(t.entries) }

// Entries returns a copy of the rows in declared order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Pick returns the first entry whose cumulative weight exceeds roll. roll
// must lie in [0, Total()).
func (t *Table) Pick(roll int) (Entry, error) {
	if roll < 0 || roll >= t.total {
		return Entry{}, fmt.Errorf("%w: roll %d outside [0, %d)", domain.ErrInvalidArgument, roll, t.total)
	}
	lo, hi := 0, len(t.cumul)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if t.cumul[mid] <= roll {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return t.entries[lo], nil
}

// Draw consumes exactly one value from src and returns the selected entry.
func (t *Table) Draw(src rng.Source) Entry {
	e, _ := t.Pick(src.IntN(t.total))
	return e
}
