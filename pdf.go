package pix

import (
	"fmt"
	"io"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF writes the grid as a single-page PDF, one filled
// cellSize x cellSize point rectangle per cell. The page is sized to
// the grid, so the artwork fills it edge to edge. Fully transparent
// cells are left unpainted (the page shows through). Returns
// ErrInvalidDimensions for cellSize < 1.
func (g *Grid) WritePDF(w io.Writer, cellSize float64) error {
	if cellSize < 1 {
		return fmt.Errorf("%w: cell size %v", ErrInvalidDimensions, cellSize)
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size: gofpdf.SizeType{
			Wd: float64(g.Width()) * cellSize,
			Ht: float64(g.Height()) * cellSize,
		},
	})
	doc.AddPage()

	for cell := range g.Cells() {
		if cell.Color.A == 0 {
			continue
		}
		doc.SetFillColor(int(cell.Color.R), int(cell.Color.G), int(cell.Color.B))
		doc.Rect(float64(cell.X)*cellSize, float64(cell.Y)*cellSize, cellSize, cellSize, "F")
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pix: encode pdf: %w", err)
	}
	Logger().Debug("grid exported to pdf", "width", g.Width(), "height", g.Height(), "cellSize", cellSize)
	return nil
}

// SavePDF writes the grid's PDF rendering to path.
func (g *Grid) SavePDF(path string, cellSize float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pix: save pdf: %w", err)
	}
	if err := g.WritePDF(f, cellSize); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pix: save pdf: %w", err)
	}
	return nil
}
