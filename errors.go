package svgmerge

import "errors"

// Sentinel errors for library operations.
var (
	ErrMalformedSVG = errors.New("no <svg> root element found")
	ErrWriteOutput  = errors.New("failed to write output document")

	// Layout loading errors.
	ErrLayoutNotFound = errors.New("layout file not found")
	ErrLayoutParse    = errors.New("failed to parse layout")
	ErrEmptyLayout    = errors.New("layout contains no elements")

	// Layout validation errors.
	ErrInvalidCanvasSize   = errors.New("invalid canvas dimensions")
	ErrInvalidTransparency = errors.New("invalid transparency fraction")
)
