package pix

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	_ "image/gif"  // register decoder for brush import
	_ "image/jpeg" // register decoder for brush import

	_ "golang.org/x/image/bmp"  // register decoder for brush import
	_ "golang.org/x/image/tiff" // register decoder for brush import
	_ "golang.org/x/image/webp" // register decoder for brush import
)

// Image renders the grid as an NRGBA image, one pixel per cell, alpha
// preserved.
func (g *Grid) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	for cell := range g.Cells() {
		img.SetNRGBA(cell.X, cell.Y, cell.Color.NRGBA())
	}
	return img
}

// EncodePNG encodes the grid as a PNG, one pixel per cell. The output
// is deterministic: encoding the same grid twice yields identical bytes.
func EncodePNG(g *Grid) ([]byte, error) {
	return EncodePNGScaled(g, 1)
}

// EncodePNGScaled encodes the grid as a PNG with each cell rendered as a
// cellSize x cellSize block of pixels. cellSize 1 is the plain 1:1
// export; larger values reproduce the editor's zoomed export. Returns
// ErrInvalidDimensions for cellSize < 1.
func EncodePNGScaled(g *Grid, cellSize int) ([]byte, error) {
	if cellSize < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidDimensions, cellSize)
	}

	var buf bytes.Buffer
	if err := writePNG(g, &buf, cellSize); err != nil {
		return nil, err
	}
	Logger().Debug("grid exported", "width", g.Width(), "height", g.Height(), "cellSize", cellSize, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// WritePNG writes the grid's 1:1 PNG encoding to w.
func (g *Grid) WritePNG(w io.Writer) error {
	return writePNG(g, w, 1)
}

// SavePNG writes the grid's 1:1 PNG encoding to path.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pix: save png: %w", err)
	}
	if err := g.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("pix: save png: %w", err)
	}
	return nil
}

func writePNG(g *Grid, w io.Writer, cellSize int) error {
	img := g.Image()
	if cellSize > 1 {
		scaled := image.NewNRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("pix: encode png: %w", err)
	}
	return nil
}

// DecodeBrush decodes an external image into a PatternBrush for the
// stamp tool. Any format with a registered decoder is accepted: PNG,
// JPEG, GIF, BMP, TIFF, and WebP. Undecodable input reports
// ErrUnsupportedImageFormat.
//
// Sources larger than maxWidth x maxHeight are downsampled with
// nearest-neighbor sampling, preserving aspect ratio so the longer side
// fits its bound exactly (never below one cell). Smaller sources are
// used as-is; nothing is ever upsampled.
func DecodeBrush(r io.Reader, maxWidth, maxHeight int) (*PatternBrush, error) {
	if maxWidth < 1 || maxHeight < 1 {
		return nil, fmt.Errorf("%w: brush bounds %dx%d", ErrInvalidDimensions, maxWidth, maxHeight)
	}

	src, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImageFormat, err)
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("%w: empty %s image", ErrUnsupportedImageFormat, format)
	}

	if w > maxWidth || h > maxHeight {
		w, h = fitWithin(w, h, maxWidth, maxHeight)
		scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
		draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), src, b, draw.Src, nil)
		src = scaled
		b = scaled.Bounds()
	}

	colors := make([]Color, 0, w*h)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			colors = append(colors, FromColor(src.At(x, y)))
		}
	}
	Logger().Debug("brush decoded", "format", format, "width", w, "height", h)
	return NewPatternBrush(w, h, colors)
}

// LoadBrushFile reads an image file and decodes it with DecodeBrush.
func LoadBrushFile(path string, maxWidth, maxHeight int) (*PatternBrush, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pix: load brush: %w", err)
	}
	defer f.Close()
	return DecodeBrush(f, maxWidth, maxHeight)
}

// fitWithin scales (w, h) down so both fit (maxW, maxH), preserving
// aspect ratio. The longer side lands exactly on its bound; the result
// is never smaller than 1x1. Integer arithmetic keeps the rule exact.
func fitWithin(w, h, maxW, maxH int) (int, int) {
	// Compare w/h against maxW/maxH without division.
	if w*maxH >= h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}
