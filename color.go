package pix

import (
	"fmt"
	"image/color"
)

// Color is an 8-bit RGBA color. It is an immutable value type; equality
// is component-wise (==).
//
// Color implements the standard color.Color interface, so it can be used
// anywhere image/color values are expected. Components are not
// premultiplied.
type Color struct {
	R, G, B, A uint8
}

// RGBA implements color.Color. Values are premultiplied and scaled to
// the 0-65535 range, as the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts to the equivalent image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color, un-premultiplying
// if needed.
func FromColor(c color.Color) Color {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: nc.R, G: nc.G, B: nc.B, A: nc.A}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Hex parses a hex color string. Supported forms: "RGB", "RGBA",
// "RRGGBB", "RRGGBBAA", each with an optional '#' prefix. Alpha defaults
// to fully opaque when absent.
//
// Example:
//
//	red, _ := pix.Hex("#FF0000")
//	semi, _ := pix.Hex("ff000080")
func Hex(s string) (Color, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32
	a := uint32(255)

	switch len(hex) {
	case 3: // RGB
		if err := parseHex(hex[0:1], &r); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		if err := parseHex(hex[1:2], &g); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		if err := parseHex(hex[2:3], &b); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		c, err := Hex(hex[:3])
		if err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[3:4], &a); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: uint8(a * 17)}, nil
	case 6: // RRGGBB
		if err := parseHex(hex[0:2], &r); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		if err := parseHex(hex[2:4], &g); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		if err := parseHex(hex[4:6], &b); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
	case 8: // RRGGBBAA
		c, err := Hex(hex[:6])
		if err != nil {
			return Color{}, err
		}
		if err := parseHex(hex[6:8], &a); err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return Color{R: c.R, G: c.G, B: c.B, A: uint8(a)}, nil
	default:
		return Color{}, fmt.Errorf("invalid hex color %q: bad length", s)
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: 255}, nil
}

// Hex formats the color as a hex string: "#rrggbb" for opaque colors,
// "#rrggbbaa" otherwise. The output round-trips through Hex.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string { return c.Hex() }

// parseHex parses an unsigned hex string into val.
func parseHex(s string, val *uint32) error {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return fmt.Errorf("bad hex digit %q", c)
		}
	}
	return nil
}

// Common colors. Black through Cyan match the editor's default palette.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Yellow      = RGB(255, 255, 0)
	Magenta     = RGB(255, 0, 255)
	Cyan        = RGB(0, 255, 255)
	Transparent = Color{}
)
