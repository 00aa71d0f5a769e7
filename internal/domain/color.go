package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is an opaque 24-bit color.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Hex formats the color as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a #rrggbb (or rrggbb) string.
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("%w: color %q must be #rrggbb", ErrInvalidArgument, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: color %q: %v", ErrInvalidArgument, s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ColorPair is a foreground color with an optional background.
// A nil Background is transparent: whatever is underneath shows through.
type ColorPair struct {
	Foreground RGB
	Background *RGB
}

// NewColorPair builds an opaque pair.
func NewColorPair(fg, bg RGB) ColorPair {
	return ColorPair{Foreground: fg, Background: &bg}
}

// Transparent reports whether the pair has no background.
func (p ColorPair) Transparent() bool {
	return p.Background == nil
}

// Copy returns a pair that shares no memory with p.
func (p ColorPair) Copy() ColorPair {
	if p.Background == nil {
		return ColorPair{Foreground: p.Foreground}
	}
	bg := *p.Background
	return ColorPair{Foreground: p.Foreground, Background: &bg}
}
