package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatBlock_AddSub(t *testing.T) {
	a := StatBlock{}.With(StatHealth, 10).With(StatStrength, 2)
	b := StatBlock{}.With(StatHealth, -3).With(StatSpeed, 1)

	sum := a.Add(b)
	assert.Equal(t, 7, sum.Get(StatHealth))
	assert.Equal(t, 2, sum.Get(StatStrength))
	assert.Equal(t, 1, sum.Get(StatSpeed))

	assert.Equal(t, a, sum.Sub(b), "sub must undo add")
	assert.Equal(t, a, a.Add(StatBlock{}), "zero block is the identity")
	assert.True(t, a.Add(a.Neg()).IsZero())
}

func TestStatBlock_JSON(t *testing.T) {
	t.Run("round trip of named stats", func(t *testing.T) {
		var b StatBlock
		require.NoError(t, json.Unmarshal([]byte(`{"health": 5, "Defense": -1}`), &b))
		assert.Equal(t, 5, b.Get(StatHealth))
		assert.Equal(t, -1, b.Get(StatDefense))

		data, err := json.Marshal(b)
		require.NoError(t, err)
		assert.JSONEq(t, `{"health": 5, "defense": -1}`, string(data))
	})

	t.Run("unknown stat is rejected", func(t *testing.T) {
		var b StatBlock
		err := json.Unmarshal([]byte(`{"luck": 1}`), &b)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})
}

func TestSize_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"unset becomes minimum", SizeUnset, SizeMicroscopic},
		{"negative becomes minimum", Size(-4), SizeMicroscopic},
		{"in range unchanged", SizeLarge, SizeLarge},
		{"above range clamps", Size(99), SizeGigantic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}

	assert.Equal(t, 1, SizeUnset.Weight())
	assert.Equal(t, 8, SizeSmall.Weight())
	assert.Equal(t, "MEDIUM", SizeMedium.String())
}

func TestParseSize(t *testing.T) {
	s, err := ParseSize("huge")
	require.NoError(t, err)
	assert.Equal(t, SizeHuge, s)

	s, err = ParseSize("")
	require.NoError(t, err)
	assert.Equal(t, SizeMicroscopic, s)

	_, err = ParseSize("colossal")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestColorPair(t *testing.T) {
	fg, err := ParseRGB("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, RGB{R: 0xff, G: 0x80, B: 0x00}, fg)
	assert.Equal(t, "#ff8000", fg.Hex())

	pair := ColorPair{Foreground: fg}
	assert.True(t, pair.Transparent())

	opaque := NewColorPair(fg, RGB{})
	assert.False(t, opaque.Transparent())

	cp := opaque.Copy()
	cp.Background.R = 9
	assert.Equal(t, uint8(0), opaque.Background.R, "copy must not alias the background")

	_, err = ParseRGB("red")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestDimensions(t *testing.T) {
	d, err := NewDimensions(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, d.Area())

	_, err = NewDimensions(-1, 4)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSlotSet(t *testing.T) {
	set := NewSlotSet(SlotWeapon, SlotOffhand)
	assert.True(t, set.Has(SlotWeapon))
	assert.False(t, set.Has(SlotHead))
	assert.False(t, set.Has(SlotCount))
	assert.Equal(t, []Slot{SlotWeapon, SlotOffhand}, set.Slots())

	s, err := ParseSlot("Body")
	require.NoError(t, err)
	assert.Equal(t, SlotBody, s)
}
