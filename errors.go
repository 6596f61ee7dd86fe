package imagecore

import "errors"

var (
	// ErrResourceLimit is returned when a table or buffer would exceed the
	// configured memory limit. The colorspace tag is left unchanged.
	ErrResourceLimit = errors.New("imagecore: resource limit exceeded")

	// ErrPixelAccess is returned when rows could not be fetched or stored
	// during a transform.
	ErrPixelAccess = errors.New("imagecore: pixel access failed")

	// ErrCanceled is returned when a progress callback stops a transform.
	ErrCanceled = errors.New("imagecore: canceled")

	// ErrInvalidColormapIndex is returned when an Indexed pixel refers past
	// the end of its colormap.
	ErrInvalidColormapIndex = errors.New("imagecore: invalid colormap index")

	// ErrColormapSize is returned for an empty or oversized colormap.
	ErrColormapSize = errors.New("imagecore: invalid colormap size")

	// ErrFormat is returned for malformed image data.
	ErrFormat = errors.New("imagecore: invalid format")

	// ErrUnsupported is returned for valid but unsupported features.
	ErrUnsupported = errors.New("imagecore: unsupported")

	// ErrInsufficientData is returned when image data ends early.
	ErrInsufficientData = errors.New("imagecore: insufficient image data")
)
