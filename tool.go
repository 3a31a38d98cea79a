package pix

import "fmt"

// ToolKind identifies one of the editor's tools. The set is closed:
// dispatch is by explicit tag, never by runtime type inspection.
type ToolKind uint8

const (
	// ToolBrush paints a square footprint with a flat color.
	ToolBrush ToolKind = iota
	// ToolEraser paints a square footprint with the grid's background color.
	ToolEraser
	// ToolFill flood-fills the 4-connected region matching the seed color.
	ToolFill
	// ToolStamp stamps a pattern brush onto the grid.
	ToolStamp
)

// String implements fmt.Stringer.
func (k ToolKind) String() string {
	switch k {
	case ToolBrush:
		return "brush"
	case ToolEraser:
		return "eraser"
	case ToolFill:
		return "fill"
	case ToolStamp:
		return "stamp"
	default:
		return fmt.Sprintf("ToolKind(%d)", k)
	}
}

// Tool is one editing operation, tagged by Kind and carrying only the
// parameters that kind needs. Tools are plain values; all session state
// (which tool is active, which color is selected) lives in the host.
//
// Construct tools with BrushTool, EraserTool, FillTool, and StampTool.
type Tool struct {
	Kind    ToolKind
	Color   Color         // brush and fill
	Radius  int           // brush and eraser footprint radius
	Pattern *PatternBrush // stamp
}

// BrushTool paints a square footprint of side 2*radius+1 centered on the
// target cell. Radius 0 is a single cell.
func BrushTool(c Color, radius int) Tool {
	return Tool{Kind: ToolBrush, Color: c, Radius: radius}
}

// EraserTool is a brush fixed to the grid's background color.
func EraserTool(radius int) Tool {
	return Tool{Kind: ToolEraser, Radius: radius}
}

// FillTool flood-fills with the given color.
func FillTool(c Color) Tool {
	return Tool{Kind: ToolFill, Color: c}
}

// StampTool stamps the pattern with its top-left cell at the target.
func StampTool(p *PatternBrush) Tool {
	return Tool{Kind: ToolStamp, Pattern: p}
}

// Apply runs a tool against the grid at the target cell and returns the
// cells whose color actually changed, carrying their new colors, in
// deterministic order. The host uses the returned cells to redraw; the
// engine itself renders nothing.
//
// The target coordinate must be in bounds (ErrOutOfBounds otherwise);
// footprint and pattern cells that fall outside the grid are silently
// clipped, so partial application at canvas edges is expected behavior.
func Apply(g *Grid, t Tool, x, y int) ([]Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: tool target (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width(), g.Height())
	}

	switch t.Kind {
	case ToolBrush:
		return paintSquare(g, Solid(t.Color), x, y, t.Radius)
	case ToolEraser:
		return paintSquare(g, Solid(g.Background()), x, y, t.Radius)
	case ToolFill:
		return floodFill(g, x, y, t.Color)
	case ToolStamp:
		if t.Pattern == nil {
			return nil, ErrNoPattern
		}
		return stamp(g, t.Pattern, x, y)
	default:
		return nil, fmt.Errorf("pix: unknown tool kind %d", t.Kind)
	}
}

// paintSquare sets every in-bounds cell of the square footprint to the
// brush color. Cells already holding that color are not reported.
func paintSquare(g *Grid, b Brush, x, y, radius int) ([]Cell, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: negative brush radius %d", ErrInvalidDimensions, radius)
	}

	var changed []Cell
	for cy := y - radius; cy <= y+radius; cy++ {
		for cx := x - radius; cx <= x+radius; cx++ {
			if !g.InBounds(cx, cy) {
				continue
			}
			c := b.ColorAt(cx-x+radius, cy-y+radius)
			if cur, _ := g.Get(cx, cy); cur == c {
				continue
			}
			_ = g.Set(cx, cy, c)
			changed = append(changed, Cell{X: cx, Y: cy, Color: c})
		}
	}
	return changed, nil
}

// stamp copies the pattern onto the grid, top-left anchored at (x, y).
// Fully transparent pattern cells leave the grid cell untouched.
func stamp(g *Grid, p *PatternBrush, x, y int) ([]Cell, error) {
	var changed []Cell
	for py := 0; py < p.Height(); py++ {
		for px := 0; px < p.Width(); px++ {
			c := p.ColorAt(px, py)
			if c.A == 0 {
				continue
			}
			gx, gy := x+px, y+py
			if !g.InBounds(gx, gy) {
				continue
			}
			if cur, _ := g.Get(gx, gy); cur == c {
				continue
			}
			_ = g.Set(gx, gy, c)
			changed = append(changed, Cell{X: gx, Y: gy, Color: c})
		}
	}
	return changed, nil
}

// floodFill replaces the 4-connected region of cells matching the seed
// cell's exact color with newColor. Implemented as a breadth-first
// traversal over an explicit queue with a visited set, so each cell is
// examined at most once and no recursion depth is consumed regardless
// of region size.
func floodFill(g *Grid, x, y int, newColor Color) ([]Cell, error) {
	seed, err := g.Get(x, y)
	if err != nil {
		return nil, err
	}
	// Filling a region with its own color would otherwise re-enqueue
	// forever; it is defined as a no-op.
	if seed == newColor {
		return nil, nil
	}

	w, h := g.Width(), g.Height()
	visited := make([]bool, w*h)
	queue := []int{y*w + x}
	visited[y*w+x] = true

	var changed []Cell
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		cx, cy := idx%w, idx/w

		_ = g.Set(cx, cy, newColor)
		changed = append(changed, Cell{X: cx, Y: cy, Color: newColor})

		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := cx+d[0], cy+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if visited[nidx] {
				continue
			}
			if cur, _ := g.Get(nx, ny); cur != seed {
				continue
			}
			visited[nidx] = true
			queue = append(queue, nidx)
		}
	}
	return changed, nil
}
