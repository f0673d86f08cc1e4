package pixgrid

import "errors"

var (
	// ErrEmptyImage indicates non-positive image dimensions.
	ErrEmptyImage = errors.New("pixgrid: image must have positive width and height")
	// ErrNilImage indicates a nil *Image where one is required.
	ErrNilImage = errors.New("pixgrid: image must not be nil")
)
