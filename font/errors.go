package font

import "errors"

var (
	// ErrEmptyFontData is returned when Parse is called with no bytes.
	ErrEmptyFontData = errors.New("font: empty font data")

	// ErrNilFace is returned when a nil face is added to a collection.
	ErrNilFace = errors.New("font: nil face")

	// ErrDuplicateFace is returned when a face is already in a collection.
	ErrDuplicateFace = errors.New("font: face already in collection")
)
