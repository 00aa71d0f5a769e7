package domain

import (
	"fmt"
	"strings"
)

// Size is the ordinal size category of an object.
// The zero value is "unset" and normalizes to SizeMicroscopic.
type Size int

const (
	SizeUnset Size = iota
	SizeMicroscopic
	SizeTiny
	SizeSmall
	SizeMedium
	SizeLarge
	SizeHuge
	SizeGigantic
)

var sizeNames = map[Size]string{
	SizeMicroscopic: "MICROSCOPIC",
	SizeTiny:        "TINY",
	SizeSmall:       "SMALL",
	SizeMedium:      "MEDIUM",
	SizeLarge:       "LARGE",
	SizeHuge:        "HUGE",
	SizeGigantic:    "GIGANTIC",
}

// Normalize clamps the size into [SizeMicroscopic, SizeGigantic].
func (s Size) Normalize() Size {
	if s < SizeMicroscopic {
		return SizeMicroscopic
	}
	if s > SizeGigantic {
		return SizeGigantic
	}
	return s
}

// Weight is the carry weight of one unit of this size.
// Each category weighs twice the previous one, starting at 1.
func (s Size) Weight() int {
	return 1 << (s.Normalize() - SizeMicroscopic)
}

func (s Size) String() string {
	return sizeNames[s.Normalize()]
}

// ParseSize converts a category name to a Size. An empty name is unset.
func ParseSize(name string) (Size, error) {
	if name == "" {
		return SizeMicroscopic, nil
	}
	upper := strings.ToUpper(name)
	for s, n := range sizeNames {
		if n == upper {
			return s, nil
		}
	}
	return SizeUnset, fmt.Errorf("%w: unknown size %q", ErrInvalidArgument, name)
}
