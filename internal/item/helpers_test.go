package item

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
)

// supply is a minimal AmmoSupply backed by a slice.
type supply []*Item

func (s supply) At(index int) (*Item, error) {
	if index < 0 || index >= len(s) {
		return nil, fmt.Errorf("%w: index %d", domain.ErrInvalidArgument, index)
	}
	return s[index], nil
}

func newStack(t *testing.T, kind string, qty, maxPerSlot int) *Item {
	t.Helper()
	it, err := New(kind, "", WithStack(StackSpec{Quantity: qty, Value: 1, Mergeable: true, MaxPerSlot: maxPerSlot}))
	require.NoError(t, err)
	return it
}

func newGun(t *testing.T, current, maximum, speed int) *Item {
	t.Helper()
	it, err := New("revolver", "Revolver", WithUse(UseSpec{
		Loadable:    true,
		Current:     current,
		Maximum:     maximum,
		Ammunition:  "bullet",
		ReloadSpeed: speed,
	}))
	require.NoError(t, err)
	return it
}
