package layout

import (
	"log/slog"

	"github.com/gogpu/textengine/bidi"
	"github.com/gogpu/textengine/font"
	"github.com/gogpu/textengine/shape"
)

// Env holds the collaborators and settings shared by the paragraphs of
// one document. Changing a field does not relayout existing paragraphs.
type Env struct {
	Fonts  *font.Collection
	Shaper shape.Shaper
	// Direction selects the paragraph embedding level.
	Direction bidi.Direction
	// WrapWidth is the line width in pixels; <= 0 disables wrapping.
	WrapWidth float32
	Logger    *slog.Logger
}

var discard = slog.New(slog.DiscardHandler)

func (e *Env) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return discard
}

func (e *Env) shaper() shape.Shaper {
	if e.Shaper != nil {
		return e.Shaper
	}
	return shape.BuiltinShaper{}
}
