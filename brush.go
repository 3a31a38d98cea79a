package pix

import "fmt"

// Brush represents what a tool paints with.
// This is a sealed interface - only types in this package implement it.
//
// Supported brush types:
//   - SolidBrush: a single flat color
//   - PatternBrush: a small 2-D color pattern sampled from an image
type Brush interface {
	// brushMarker is an unexported method that seals this interface.
	brushMarker()

	// ColorAt returns the color at brush-local cell coordinates.
	// Solid brushes return the same color everywhere; pattern brushes
	// sample the pattern and return Transparent outside it.
	ColorAt(x, y int) Color
}

// SolidBrush is a single-color brush.
type SolidBrush struct {
	Color Color
}

func (SolidBrush) brushMarker() {}

// ColorAt implements Brush. Returns the solid color regardless of position.
func (b SolidBrush) ColorAt(_, _ int) Color {
	return b.Color
}

// Solid creates a SolidBrush from a color.
func Solid(c Color) SolidBrush {
	return SolidBrush{Color: c}
}

// PatternBrush is a small rectangular color pattern, typically sampled
// from an external image with DecodeBrush. Fully transparent cells are
// holes: stamping leaves the underlying grid cell unchanged there.
//
// A PatternBrush belongs to the session that loaded it; it is not part
// of a Project and is never persisted.
type PatternBrush struct {
	width  int
	height int
	colors []Color // row-major, len == width*height
}

// NewPatternBrush creates a pattern from row-major colors. Returns
// ErrInvalidDimensions unless both dimensions are at least 1 and the
// color count matches width*height.
func NewPatternBrush(width, height int, colors []Color) (*PatternBrush, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d pattern", ErrInvalidDimensions, width, height)
	}
	if len(colors) != width*height {
		return nil, fmt.Errorf("%w: %dx%d pattern with %d colors", ErrInvalidDimensions, width, height, len(colors))
	}
	cs := make([]Color, len(colors))
	copy(cs, colors)
	return &PatternBrush{width: width, height: height, colors: cs}, nil
}

func (*PatternBrush) brushMarker() {}

// ColorAt implements Brush. Returns Transparent outside the pattern.
func (b *PatternBrush) ColorAt(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	return b.colors[y*b.width+x]
}

// Width returns the pattern width in cells.
func (b *PatternBrush) Width() int { return b.width }

// Height returns the pattern height in cells.
func (b *PatternBrush) Height() int { return b.height }
