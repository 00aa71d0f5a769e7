package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StatID enumerates the actor statistics a StatBlock can modify.
type StatID uint8

const (
	StatHealth StatID = iota
	StatMana
	StatStrength
	StatDexterity
	StatIntelligence
	StatDefense
	StatSpeed

	StatCount
)

var statNames = [StatCount]string{
	StatHealth:       "health",
	StatMana:         "mana",
	StatStrength:     "strength",
	StatDexterity:    "dexterity",
	StatIntelligence: "intelligence",
	StatDefense:      "defense",
	StatSpeed:        "speed",
}

func (id StatID) String() string {
	if id >= StatCount {
		return fmt.Sprintf("stat(%d)", id)
	}
	return statNames[id]
}

// ParseStatID resolves a stat by name.
func ParseStatID(name string) (StatID, error) {
	lower := strings.ToLower(name)
	for i, n := range statNames {
		if n == lower {
			return StatID(i), nil
		}
	}
	return StatCount, fmt.Errorf("%w: unknown stat %q", ErrInvalidArgument, name)
}

// StatBlock is an ordered tuple of stat deltas. The zero value is the
// identity for Add.
type StatBlock [StatCount]int

// Add returns the element-wise sum.
func (b StatBlock) Add(o StatBlock) StatBlock {
	for i := range b {
		b[i] += o[i]
	}
	return b
}

// Sub returns the element-wise difference.
func (b StatBlock) Sub(o StatBlock) StatBlock {
	for i := range b {
		b[i] -= o[i]
	}
	return b
}

// Neg returns the additive inverse.
func (b StatBlock) Neg() StatBlock {
	return StatBlock{}.Sub(b)
}

// IsZero reports whether every delta is zero.
func (b StatBlock) IsZero() bool {
	return b == StatBlock{}
}

// Get returns the delta for one stat.
func (b StatBlock) Get(id StatID) int {
	if id >= StatCount {
		return 0
	}
	return b[id]
}

// With returns a copy with one stat replaced.
func (b StatBlock) With(id StatID, v int) StatBlock {
	if id < StatCount {
		b[id] = v
	}
	return b
}

// MarshalJSON encodes the non-zero deltas as a name->value object.
func (b StatBlock) MarshalJSON() ([]byte, error) {
	m := make(map[string]int)
	for i, v := range b {
		if v != 0 {
			m[statNames[i]] = v
		}
	}
	return json.Marshal(m)
}

// UnmarshalJSON decodes a name->value object. Unknown stats are rejected.
func (b *StatBlock) UnmarshalJSON(data []byte) error {
	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	var out StatBlock
	for name, v := range m {
		id, err := ParseStatID(name)
		if err != nil {
			return err
		}
		out[id] = v
	}
	*b = out
	return nil
}
