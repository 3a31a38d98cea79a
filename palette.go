package pix

import "fmt"

// Palette is an ordered list of unique colors with a current selection.
// It is pure data; tools receive the active color from the host, which
// typically reads it from a palette.
type Palette struct {
	colors   []Color
	selected int
}

// NewPalette creates a palette from the given colors. Duplicates are
// silently dropped, keeping the first occurrence's position. The first
// color is selected; an empty palette selects nothing until Add is
// called.
func NewPalette(colors ...Color) *Palette {
	p := &Palette{}
	for _, c := range colors {
		p.Add(c)
	}
	return p
}

// DefaultPalette returns the editor's stock 8-color palette.
func DefaultPalette() *Palette {
	return NewPalette(Black, White, Red, Green, Blue, Yellow, Magenta, Cyan)
}

// Add appends a color and returns its index. Adding a color already in
// the palette is not an error: the existing entry's index is returned
// and the palette is unchanged.
func (p *Palette) Add(c Color) int {
	for i, existing := range p.colors {
		if existing == c {
			return i
		}
	}
	p.colors = append(p.colors, c)
	return len(p.colors) - 1
}

// Len returns the number of colors.
func (p *Palette) Len() int { return len(p.colors) }

// At returns the color at index i. Returns ErrOutOfBounds for an index
// outside [0, Len()).
func (p *Palette) At(i int) (Color, error) {
	if i < 0 || i >= len(p.colors) {
		return Color{}, fmt.Errorf("%w: palette index %d of %d", ErrOutOfBounds, i, len(p.colors))
	}
	return p.colors[i], nil
}

// Select makes the color at index i the current selection. Returns
// ErrOutOfBounds for an index outside [0, Len()).
func (p *Palette) Select(i int) error {
	if i < 0 || i >= len(p.colors) {
		return fmt.Errorf("%w: palette index %d of %d", ErrOutOfBounds, i, len(p.colors))
	}
	p.selected = i
	return nil
}

// SelectedIndex returns the index of the current selection, or -1 for an
// empty palette.
func (p *Palette) SelectedIndex() int {
	if len(p.colors) == 0 {
		return -1
	}
	return p.selected
}

// Selected returns the currently selected color. An empty palette
// selects the zero Color.
func (p *Palette) Selected() Color {
	if len(p.colors) == 0 {
		return Color{}
	}
	return p.colors[p.selected]
}

// Colors returns a copy of the palette's colors in order.
func (p *Palette) Colors() []Color {
	out := make([]Color, len(p.colors))
	copy(out, p.colors)
	return out
}
