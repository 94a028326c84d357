// Package pixel holds the packed Color value and the CPU-side Surface that
// games draw into each frame.
package pixel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-premultiplied RGBA value packed into one 32-bit word.
// The word layout is a<<24 | b<<16 | g<<8 | r, which is the RGBA byte order
// in little-endian memory.
type Color struct {
	word uint32
}

var (
	Black       = RGBA(0, 0, 0, 255)
	White       = RGBA(255, 255, 255, 255)
	Red         = RGBA(255, 0, 0, 255)
	Green       = RGBA(0, 255, 0, 255)
	Blue        = RGBA(0, 0, 255, 255)
	Transparent = Color{}
)

// RGBA builds a Color from four channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{word: uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)}
}

// FromWord builds a Color from its packed representation.
func FromWord(w uint32) Color {
	return Color{word: w}
}

// FromFloats scales each component by 255 and truncates. Inputs are not
// clamped: values outside [0,1] wrap, so callers clamp first.
func FromFloats(r, g, b, a float32) Color {
	return RGBA(truncate(r), truncate(g), truncate(b), truncate(a))
}

func truncate(v float32) uint8 {
	return uint8(int32(v * 255))
}

func (c Color) R() uint8     { return uint8(c.word) }
func (c Color) G() uint8     { return uint8(c.word >> 8) }
func (c Color) B() uint8     { return uint8(c.word >> 16) }
func (c Color) A() uint8     { return uint8(c.word >> 24) }
func (c Color) Word() uint32 { return c.word }

func (c Color) WithR(v uint8) Color { return Color{word: c.word&^0x000000FF | uint32(v)} }
func (c Color) WithG(v uint8) Color { return Color{word: c.word&^0x0000FF00 | uint32(v)<<8} }
func (c Color) WithB(v uint8) Color { return Color{word: c.word&^0x00FF0000 | uint32(v)<<16} }
func (c Color) WithA(v uint8) Color { return Color{word: c.word&^0xFF000000 | uint32(v)<<24} }

// RGBA implements color.Color. The returned values are alpha-premultiplied
// as that interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// Hex formats the color as #rrggbbaa.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

func (c Color) String() string { return c.Hex() }

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa, with or without the leading '#'.
// Alpha defaults to opaque.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rgb, #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Model converts arbitrary colors to Color.
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if pc, ok := c.(Color); ok {
		return pc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
})
