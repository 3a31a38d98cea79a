// Package pix implements the raster editing engine behind PixelCanvas,
// a fixed-resolution pixel-art editor.
//
// # Overview
//
// The engine is the non-visual core of the editor: a dense pixel grid, the
// tools that mutate it, and the codecs that move it across the persistence
// and export boundaries. It renders nothing and owns no UI state; a host
// (a GUI event loop, or the cmd/pixcanvas CLI) translates user input into
// tool applications and feeds the results back to its own display.
//
// # Quick Start
//
//	import "github.com/pixelcanvas/pix"
//
//	// Create a 16x16 project with the default palette.
//	p, _ := pix.NewProject(16, 16)
//
//	// Paint a single red cell, then fill the rest with blue.
//	pix.Apply(p.Grid, pix.BrushTool(pix.Red, 0), 1, 1)
//	pix.Apply(p.Grid, pix.FillTool(pix.Blue), 0, 0)
//
//	// Persist and export.
//	data, _ := p.MarshalBytes()
//	png, _ := pix.EncodePNG(p.Grid)
//	_, _ = data, png
//
// # Architecture
//
// The package is organized around a handful of value types:
//   - Grid: the canonical width x height cell buffer
//   - Color: an 8-bit RGBA value, interoperable with image/color
//   - Palette: an ordered color list with a selection
//   - Brush: what a tool paints with (solid color or image pattern)
//   - Tool: a closed set of operations (brush, eraser, fill, stamp)
//   - Project: the persisted unit (grid + palette), JSON on the wire
//
// # Coordinate System
//
// Cell coordinates follow standard raster conventions: origin (0,0) at the
// top-left, x increases right, y increases down. Grid accessors reject
// out-of-range coordinates with ErrOutOfBounds; tool footprints clip at the
// edges instead.
//
// # Concurrency
//
// The engine is synchronous and not internally locked. It assumes exclusive
// access to a Grid for the duration of each call; hosts that dispatch from
// multiple goroutines must serialize access per grid themselves.
package pix
