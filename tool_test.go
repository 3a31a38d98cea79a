package pix

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func mustGrid(t *testing.T, w, h int, opts ...GridOption) *Grid {
	t.Helper()
	g, err := NewGrid(w, h, opts...)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

func TestApply_TargetOutOfBounds(t *testing.T) {
	g := mustGrid(t, 4, 4)
	for _, tool := range []Tool{BrushTool(Red, 1), EraserTool(0), FillTool(Blue)} {
		if _, err := Apply(g, tool, 4, 0); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Apply(%v at 4,0) error = %v, want ErrOutOfBounds", tool.Kind, err)
		}
		if _, err := Apply(g, tool, 0, -1); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Apply(%v at 0,-1) error = %v, want ErrOutOfBounds", tool.Kind, err)
		}
	}
}

func TestApply_UnknownKind(t *testing.T) {
	g := mustGrid(t, 2, 2)
	if _, err := Apply(g, Tool{Kind: ToolKind(99)}, 0, 0); err == nil {
		t.Error("Apply with unknown tool kind succeeded, want error")
	}
}

func TestBrush_SingleCell(t *testing.T) {
	g := mustGrid(t, 4, 4)
	changed, err := Apply(g, BrushTool(Red, 0), 1, 1)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 1 || changed[0] != (Cell{X: 1, Y: 1, Color: Red}) {
		t.Fatalf("changed = %v, want [{1 1 red}]", changed)
	}
	if got, _ := g.Get(1, 1); got != Red {
		t.Errorf("cell (1,1) = %v, want %v", got, Red)
	}
}

func TestBrush_Footprint(t *testing.T) {
	g := mustGrid(t, 5, 5)
	changed, err := Apply(g, BrushTool(Blue, 1), 2, 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 9 {
		t.Fatalf("changed %d cells, want 9", len(changed))
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			got, _ := g.Get(x, y)
			inside := x >= 1 && x <= 3 && y >= 1 && y <= 3
			if inside && got != Blue {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, Blue)
			}
			if !inside && got != White {
				t.Errorf("cell (%d,%d) = %v, want untouched %v", x, y, got, White)
			}
		}
	}
}

func TestBrush_ClipsAtEdge(t *testing.T) {
	g := mustGrid(t, 4, 4)
	changed, err := Apply(g, BrushTool(Red, 2), 0, 0)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	// Only the 3x3 in-bounds corner of the 5x5 footprint is painted.
	if len(changed) != 9 {
		t.Errorf("changed %d cells, want 9", len(changed))
	}
	for _, c := range changed {
		if !g.InBounds(c.X, c.Y) {
			t.Errorf("changed cell (%d,%d) is out of bounds", c.X, c.Y)
		}
	}
}

func TestBrush_ReportsOnlyActualChanges(t *testing.T) {
	g := mustGrid(t, 4, 4)
	_ = g.Set(1, 1, Red)

	changed, err := Apply(g, BrushTool(Red, 1), 1, 1)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	// (1,1) was already red, so only the other 8 footprint cells count.
	if len(changed) != 8 {
		t.Errorf("changed %d cells, want 8", len(changed))
	}
}

func TestBrush_NegativeRadius(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if _, err := Apply(g, BrushTool(Red, -1), 1, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Apply error = %v, want ErrInvalidDimensions", err)
	}
}

func TestEraser_RestoresBackground(t *testing.T) {
	g := mustGrid(t, 4, 4, WithBackground(Cyan))
	_ = g.Set(2, 2, Red)
	_ = g.Set(2, 1, Blue)

	changed, err := Apply(g, EraserTool(1), 2, 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 2 {
		t.Errorf("changed %d cells, want 2", len(changed))
	}
	for _, c := range []struct{ x, y int }{{2, 2}, {2, 1}} {
		if got, _ := g.Get(c.x, c.y); got != Cyan {
			t.Errorf("cell (%d,%d) = %v after erase, want background %v", c.x, c.y, got, Cyan)
		}
	}
}

func TestFill_Region(t *testing.T) {
	// A red wall splits the grid into two white regions.
	g := mustGrid(t, 4, 4)
	for y := 0; y < 4; y++ {
		_ = g.Set(2, y, Red)
	}

	changed, err := Apply(g, FillTool(Blue), 0, 0)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 8 {
		t.Errorf("changed %d cells, want 8 (left of the wall)", len(changed))
	}
	// Left region is blue, wall untouched, right region untouched.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got, _ := g.Get(x, y)
			switch {
			case x < 2 && got != Blue:
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, got, Blue)
			case x == 2 && got != Red:
				t.Errorf("wall cell (%d,%d) = %v, want %v", x, y, got, Red)
			case x > 2 && got != White:
				t.Errorf("cell (%d,%d) = %v, want untouched %v", x, y, got, White)
			}
		}
	}
}

func TestFill_NoOpOnSameColor(t *testing.T) {
	g := mustGrid(t, 4, 4)
	changed, err := Apply(g, FillTool(White), 0, 0)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("changed %d cells filling white with white, want 0", len(changed))
	}
}

func TestFill_Idempotent(t *testing.T) {
	g := mustGrid(t, 6, 6)
	_ = g.Set(3, 3, Red)

	if _, err := Apply(g, FillTool(Blue), 0, 0); err != nil {
		t.Fatalf("first fill failed: %v", err)
	}
	once := g.Clone()

	changed, err := Apply(g, FillTool(Blue), 0, 0)
	if err != nil {
		t.Fatalf("second fill failed: %v", err)
	}
	if len(changed) != 0 {
		t.Errorf("second fill changed %d cells, want 0", len(changed))
	}
	if !g.Equal(once) {
		t.Error("grid differs after applying the same fill twice")
	}
}

func TestFill_Locality(t *testing.T) {
	// Diagonal neighbors are not connected: an isolated white cell in a
	// red field must not leak into other white cells it only touches
	// diagonally.
	g := mustGrid(t, 3, 3, WithBackground(Red))
	_ = g.Set(0, 0, White)
	_ = g.Set(1, 1, White)
	_ = g.Set(2, 2, White)

	changed, err := Apply(g, FillTool(Blue), 1, 1)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 1 {
		t.Errorf("changed %d cells, want 1 (no diagonal connectivity)", len(changed))
	}
	if got, _ := g.Get(0, 0); got != White {
		t.Errorf("cell (0,0) = %v, want untouched %v", got, White)
	}
	if got, _ := g.Get(2, 2); got != White {
		t.Errorf("cell (2,2) = %v, want untouched %v", got, White)
	}
}

func TestFill_WholeGrid(t *testing.T) {
	g := mustGrid(t, 16, 16)
	changed, err := Apply(g, FillTool(Black), 7, 7)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 256 {
		t.Errorf("changed %d cells, want 256", len(changed))
	}
}

func TestStamp_TopLeftAnchor(t *testing.T) {
	g := mustGrid(t, 5, 5)
	p, _ := NewPatternBrush(2, 2, []Color{Red, Green, Blue, Yellow})

	changed, err := Apply(g, StampTool(p), 1, 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 4 {
		t.Fatalf("changed %d cells, want 4", len(changed))
	}

	want := map[[2]int]Color{
		{1, 2}: Red, {2, 2}: Green,
		{1, 3}: Blue, {2, 3}: Yellow,
	}
	for pos, wantColor := range want {
		if got, _ := g.Get(pos[0], pos[1]); got != wantColor {
			t.Errorf("cell (%d,%d) = %v, want %v", pos[0], pos[1], got, wantColor)
		}
	}
}

func TestStamp_TransparentCellsSkip(t *testing.T) {
	g := mustGrid(t, 4, 4)
	_ = g.Set(1, 0, Magenta)
	p, _ := NewPatternBrush(2, 1, []Color{Red, Transparent})

	changed, err := Apply(g, StampTool(p), 0, 0)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 1 {
		t.Errorf("changed %d cells, want 1", len(changed))
	}
	// The transparent pattern cell must not overwrite the magenta cell.
	if got, _ := g.Get(1, 0); got != Magenta {
		t.Errorf("cell (1,0) = %v, want untouched %v", got, Magenta)
	}
}

func TestStamp_ClipsAtEdge(t *testing.T) {
	g := mustGrid(t, 3, 3)
	p, _ := NewPatternBrush(3, 3, []Color{
		Red, Red, Red,
		Red, Red, Red,
		Red, Red, Red,
	})

	changed, err := Apply(g, StampTool(p), 2, 2)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if len(changed) != 1 {
		t.Errorf("changed %d cells, want 1 (rest clipped)", len(changed))
	}
	if got, _ := g.Get(2, 2); got != Red {
		t.Errorf("cell (2,2) = %v, want %v", got, Red)
	}
}

func TestStamp_NoPattern(t *testing.T) {
	g := mustGrid(t, 3, 3)
	if _, err := Apply(g, Tool{Kind: ToolStamp}, 0, 0); !errors.Is(err, ErrNoPattern) {
		t.Errorf("Apply error = %v, want ErrNoPattern", err)
	}
}

// TestEditingScenario walks the end-to-end scenario: brush one red cell
// on a blank 4x4 canvas, flood fill the rest blue, and export.
func TestEditingScenario(t *testing.T) {
	g := mustGrid(t, 4, 4)

	changed, err := Apply(g, BrushTool(Red, 0), 1, 1)
	if err != nil {
		t.Fatalf("brush failed: %v", err)
	}
	if len(changed) != 1 {
		t.Fatalf("brush changed %d cells, want 1", len(changed))
	}

	changed, err = Apply(g, FillTool(Blue), 0, 0)
	if err != nil {
		t.Fatalf("fill failed: %v", err)
	}
	if len(changed) != 15 {
		t.Fatalf("fill changed %d cells, want 15", len(changed))
	}
	if got, _ := g.Get(1, 1); got != Red {
		t.Errorf("cell (1,1) = %v after fill, want %v", got, Red)
	}

	data, err := EncodePNG(g)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding export failed: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 4 {
		t.Fatalf("export is %dx%d, want 4x4", img.Bounds().Dx(), img.Bounds().Dy())
	}

	redCells := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			switch c := FromColor(img.At(x, y)); c {
			case Red:
				redCells++
			case Blue:
			default:
				t.Errorf("export pixel (%d,%d) = %v, want red or blue", x, y, c)
			}
		}
	}
	if redCells != 1 {
		t.Errorf("export has %d red pixels, want exactly 1", redCells)
	}
}
