package pix

import (
	"fmt"
	"iter"
)

// Cell is one addressable slot in a Grid, paired with its color. Tool
// applications report the cells they changed as Cell values carrying the
// new color.
type Cell struct {
	X, Y  int
	Color Color
}

// Grid is the canonical pixel buffer: width x height cells, each holding
// a color. The backing store is dense and row-major; every cell always
// has a defined color.
//
// A Grid is not safe for concurrent use. The engine assumes a single
// caller mutates a given Grid at a time.
type Grid struct {
	width      int
	height     int
	background Color
	cells      []Color // row-major, len == width*height
}

// NewGrid creates a grid with every cell set to the background color
// (white unless overridden with WithBackground). Returns
// ErrInvalidDimensions unless both dimensions are at least 1.
//
// Example:
//
//	g, _ := pix.NewGrid(20, 20)
//	g, _ = pix.NewGrid(20, 20, pix.WithBackground(pix.Transparent))
func NewGrid(width, height int, opts ...GridOption) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	o := defaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Grid{
		width:      width,
		height:     height,
		background: o.background,
		cells:      make([]Color, width*height),
	}
	g.Clear()
	return g, nil
}

// Width returns the grid width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the grid height in cells.
func (g *Grid) Height() int { return g.height }

// Background returns the grid's background sentinel color, used on
// creation, resize expansion, and erasure.
func (g *Grid) Background() Color { return g.background }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the color of the cell at (x, y). Returns ErrOutOfBounds
// for coordinates outside the grid extent; coordinates are never clamped.
func (g *Grid) Get(x, y int) (Color, error) {
	if !g.InBounds(x, y) {
		return Color{}, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[y*g.width+x], nil
}

// Set overwrites the cell at (x, y) unconditionally; the previous color
// does not blend with the new one. Returns ErrOutOfBounds for
// coordinates outside the grid extent.
func (g *Grid) Set(x, y int, c Color) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[y*g.width+x] = c
	return nil
}

// Resize changes the grid dimensions. Cells within the overlap of the
// old and new extents keep their color, new cells take the background
// color, and cells outside the new extent are dropped.
//
// The new backing store is built completely before it replaces the old
// one, so a caller never observes a partially resized grid.
func (g *Grid) Resize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width == g.width && height == g.height {
		return nil
	}

	cells := make([]Color, width*height)
	for i := range cells {
		cells[i] = g.background
	}
	overlapW := min(width, g.width)
	overlapH := min(height, g.height)
	for y := 0; y < overlapH; y++ {
		copy(cells[y*width:y*width+overlapW], g.cells[y*g.width:y*g.width+overlapW])
	}

	g.width = width
	g.height = height
	g.cells = cells
	return nil
}

// Clear resets every cell to the background color.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.background
	}
}

// Cells iterates over every cell in deterministic row-major order
// (y outer, x inner). The sequence is finite and restartable, which
// makes it the basis for reproducible serialization and export.
//
// Example:
//
//	for cell := range g.Cells() {
//	    fmt.Println(cell.X, cell.Y, cell.Color)
//	}
func (g *Grid) Cells() iter.Seq[Cell] {
	return func(yield func(Cell) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(Cell{X: x, Y: y, Color: g.cells[y*g.width+x]}) {
					return
				}
			}
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:      g.width,
		height:     g.height,
		background: g.background,
		cells:      cells,
	}
}

// Equal reports whether two grids have the same dimensions and identical
// cell colors. The background sentinel is not compared.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.width != other.width || g.height != other.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
