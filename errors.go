package pix

import "errors"

// Engine error taxonomy. Every failure the engine reports wraps one of
// these sentinels, so callers can classify with errors.Is regardless of
// the detail text.
var (
	// ErrOutOfBounds reports a cell coordinate outside the grid extent.
	// Grid accessors always return it; tools return it only when the
	// seed coordinate itself is out of range (footprints clip instead).
	ErrOutOfBounds = errors.New("pix: coordinate out of bounds")

	// ErrInvalidDimensions reports a non-positive width or height on
	// grid creation or resize, or an invalid scale factor on export.
	ErrInvalidDimensions = errors.New("pix: invalid dimensions")

	// ErrCorruptProject reports persisted project data that is missing
	// required fields or internally inconsistent.
	ErrCorruptProject = errors.New("pix: corrupt project data")

	// ErrUnsupportedImageFormat reports brush image bytes that no
	// registered decoder understands.
	ErrUnsupportedImageFormat = errors.New("pix: unsupported image format")

	// ErrNoPattern reports a stamp tool applied without a pattern.
	ErrNoPattern = errors.New("pix: stamp tool has no pattern")
)
