package iconforge

import "errors"

// Sentinel errors for the rendering core.
var (
	// ErrInvalidDimensions is returned when a canvas is requested with
	// non-positive width or height. It is the only failure mode of the
	// pure rendering functions.
	ErrInvalidDimensions = errors.New("iconforge: width and height must be positive")

	// ErrMaskSize is returned when an alpha mask does not match the
	// canvas dimensions.
	ErrMaskSize = errors.New("iconforge: mask dimensions do not match canvas")
)
