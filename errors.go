package textengine

import (
	"errors"
	"fmt"
)

// ErrPositionOutOfRange is wrapped by PositionError.
var ErrPositionOutOfRange = errors.New("textengine: position out of range")

// PositionError describes a position outside the document.
//
// Mutating methods panic with a *PositionError before changing anything;
// use Validate to check a position first.
type PositionError struct {
	Pos        CPPos
	Paragraphs int
	// Len is the length of the addressed paragraph, or -1 when the
	// paragraph does not exist.
	Len int
}

func (e *PositionError) Error() string {
	if e.Len < 0 {
		return fmt.Sprintf("textengine: paragraph %d out of range [0,%d)", e.Pos.Paragraph, e.Paragraphs)
	}
	return fmt.Sprintf("textengine: codepoint %d out of range [0,%d] in paragraph %d",
		e.Pos.CP, e.Len, e.Pos.Paragraph)
}

func (e *PositionError) Unwrap() error {
	return ErrPositionOutOfRange
}
