package equipment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R-Gerard/Roguelike-sub001/internal/domain"
	"github.com/R-Gerard/Roguelike-sub001/internal/item"
)

var baseStats = domain.StatBlock{}.
	With(domain.StatHealth, 20).
	With(domain.StatStrength, 5).
	With(domain.StatDefense, 1)

func newGear(t *testing.T, kind string, mods domain.StatBlock, slots ...domain.Slot) *item.Item {
	t.Helper()
	it, err := item.New(kind, "", item.WithEquip(item.EquipSpec{
		Equipable: true,
		Slots:     domain.NewSlotSet(slots...),
		Modifiers: mods,
	}))
	require.NoError(t, err)
	return it
}

func TestEquipUnequip_RestoresStats(t *testing.T) {
	l := New(baseStats)
	helm := newGear(t, "helm", domain.StatBlock{}.With(domain.StatDefense, 3), domain.SlotHead)

	prev, err := l.Equip(domain.SlotHead, helm)
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 4, l.Stats().Get(domain.StatDefense))
	assert.Equal(t, 3, l.Bonus().Get(domain.StatDefense))

	got, err := l.Unequip(domain.SlotHead)
	require.NoError(t, err)
	assert.Same(t, helm, got)
	assert.Equal(t, baseStats, l.Stats())
	assert.Empty(t, l.Items())
}

func TestEquip_ZeroBlockIsIdempotent(t *testing.T) {
	l := New(baseStats)
	ring := newGear(t, "plain_ring", domain.StatBlock{}, domain.SlotAccessory)

	for range 3 {
		_, err := l.Equip(domain.SlotAccessory, ring)
		require.NoError(t, err)
		assert.Equal(t, baseStats, l.Stats())
		_, err = l.Unequip(domain.SlotAccessory)
		require.NoError(t, err)
		assert.Equal(t, baseStats, l.Stats())
	}
}

func TestEquip_SwapRevertsPrevious(t *testing.T) {
	l := New(baseStats)
	club := newGear(t, "club", domain.StatBlock{}.With(domain.StatStrength, 2), domain.SlotWeapon)
	sword := newGear(t, "sword", domain.StatBlock{}.With(domain.StatStrength, 4).With(domain.StatSpeed, -1), domain.SlotWeapon)

	_, err := l.Equip(domain.SlotWeapon, club)
	require.NoError(t, err)
	prev, err := l.Equip(domain.SlotWeapon, sword)
	require.NoError(t, err)
	assert.Same(t, club, prev)

	assert.Equal(t, 9, l.Stats().Get(domain.StatStrength))
	assert.Equal(t, -1, l.Stats().Get(domain.StatSpeed))

	worn, ok := l.Equipped(domain.SlotWeapon)
	require.True(t, ok)
	assert.Same(t, sword, worn)
}

func TestEquip_RejectionsLeaveStateUntouched(t *testing.T) {
	club := newGear(t, "club", domain.StatBlock{}.With(domain.StatStrength, 2), domain.SlotWeapon)
	rock, err := item.New("rock", "")
	require.NoError(t, err)
	cursed, err := item.New("cursed_blade", "", item.WithEquip(item.EquipSpec{
		Equipable: false,
		Slots:     domain.NewSlotSet(domain.SlotWeapon),
		Modifiers: domain.StatBlock{}.With(domain.StatStrength, 9),
	}))
	require.NoError(t, err)

	tests := []struct {
		name    string
		slot    domain.Slot
		item    *item.Item
		wantErr error
	}{
		{"no equip facet", domain.SlotWeapon, rock, domain.ErrNotEquipable},
		{"globally not equipable", domain.SlotWeapon, cursed, domain.ErrNotEquipable},
		{"wrong slot", domain.SlotHead, club, domain.ErrNotEquipable},
		{"invalid slot", domain.SlotCount, club, domain.ErrInvalidArgument},
		{"nil item", domain.SlotWeapon, nil, domain.ErrInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(baseStats)
			_, err := l.Equip(domain.SlotWeapon, club)
			require.NoError(t, err)
			before := l.Stats()

			_, err = l.Equip(tt.slot, tt.item)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, l.Stats())
			worn, _ := l.Equipped(domain.SlotWeapon)
			assert.Same(t, club, worn)
		})
	}
}

func TestEquip_SameItemTwice(t *testing.T) {
	l := New(baseStats)
	dagger := newGear(t, "dagger", domain.StatBlock{}.With(domain.StatDexterity, 1), domain.SlotWeapon, domain.SlotOffhand)

	_, err := l.Equip(domain.SlotWeapon, dagger)
	require.NoError(t, err)

	prev, err := l.Equip(domain.SlotWeapon, dagger)
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, 1, l.Bonus().Get(domain.StatDexterity))

	_, err = l.Equip(domain.SlotOffhand, dagger)
	assert.ErrorIs(t, err, domain.ErrDuplicateIdentity)
	assert.Equal(t, 1, l.Bonus().Get(domain.StatDexterity))

	slot, ok := l.SlotOf(dagger.ID())
	require.True(t, ok)
	assert.Equal(t, domain.SlotWeapon, slot)
}

func TestUnequip_EmptySlot(t *testing.T) {
	l := New(baseStats)
	_, err := l.Unequip(domain.SlotFeet)
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)

	_, err = l.Unequip(domain.SlotCount)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAdjustBase(t *testing.T) {
	l := New(baseStats)
	helm := newGear(t, "helm", domain.StatBlock{}.With(domain.StatDefense, 3), domain.SlotHead)
	_, err := l.Equip(domain.SlotHead, helm)
	require.NoError(t, err)

	l.AdjustBase(domain.StatBlock{}.With(domain.StatHealth, 5))
	assert.Equal(t, 25, l.Base().Get(domain.StatHealth))
	assert.Equal(t, 25, l.Stats().Get(domain.StatHealth))

	_, err = l.Unequip(domain.SlotHead)
	require.NoError(t, err)
	assert.Equal(t, l.Base(), l.Stats())
}
