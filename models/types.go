package models

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Channel identifies one of the three editable color channels.
// Alpha is not a channel: every Color in the application is fully opaque.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// AllChannels lists every channel in display order (red, green, blue).
// Code that needs to touch "all three" sliders, labels or fields iterates
// over this slice instead of naming widgets one by one.
var AllChannels = []Channel{Red, Green, Blue}

// String returns the lowercase channel name used in logs and labels.
func (ch Channel) String() string {
	switch ch {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("channel(%d)", int(ch))
	}
}

// Valid reports whether ch is one of Red, Green or Blue.
func (ch Channel) Valid() bool {
	return ch >= Red && ch <= Blue
}

// Color is an immutable, fully opaque RGB color.
// Each component is a float in [0.0, 1.0].
//
// Colors are never mutated in place. Use With to derive a new Color
// with one channel replaced.
type Color struct {
	Red   float64 `json:"red"`   // Red component, 0.0 - 1.0
	Green float64 `json:"green"` // Green component, 0.0 - 1.0
	Blue  float64 `json:"blue"`  // Blue component, 0.0 - 1.0
}

// NewColor composes a Color from three channel values.
// Components outside [0, 1] are clamped to the nearest bound.
//
// Parameters:
//   - r, g, b: The channel values
//
// Returns:
//   - Color: The composed color
func NewColor(r, g, b float64) Color {
	return Color{
		Red:   clamp01(r),
		Green: clamp01(g),
		Blue:  clamp01(b),
	}
}

// FromImageColor decomposes any image/color value into a Color.
// The alpha channel is discarded after un-premultiplying the components,
// so a half-transparent red still decomposes to pure red.
func FromImageColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return NewColor(
		float64(n.R)/255.0,
		float64(n.G)/255.0,
		float64(n.B)/255.0,
	)
}

// ParseHex parses a "#rrggbb" string into a Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return NewColor(c.R, c.G, c.B), nil
}

// Component returns the value of the given channel.
// Unknown channels return 0.
func (c Color) Component(ch Channel) float64 {
	switch ch {
	case Red:
		return c.Red
	case Green:
		return c.Green
	case Blue:
		return c.Blue
	default:
		return 0
	}
}

// With returns a copy of c with one channel replaced (and clamped).
func (c Color) With(ch Channel, v float64) Color {
	switch ch {
	case Red:
		return NewColor(v, c.Green, c.Blue)
	case Green:
		return NewColor(c.Red, v, c.Blue)
	case Blue:
		return NewColor(c.Red, c.Green, v)
	default:
		return c
	}
}

// NRGBA converts the color to an 8-bit, fully opaque color.NRGBA
// suitable for canvas objects and images.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8Bit(c.Red),
		G: to8Bit(c.Green),
		B: to8Bit(c.Blue),
		A: 255,
	}
}

// Colorful returns the go-colorful representation of c.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.Red, G: c.Green, B: c.Blue}
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return c.Colorful().Clamped().Hex()
}

// String implements fmt.Stringer for log output.
func (c Color) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", c.Red, c.Green, c.Blue)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8Bit(v float64) uint8 {
	return uint8(clamp01(v)*255.0 + 0.5)
}
