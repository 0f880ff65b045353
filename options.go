package textengine

import (
	"log/slog"

	"github.com/gogpu/textengine/bidi"
	"github.com/gogpu/textengine/shape"
)

// Option configures a TextEngine during creation.
//
// Example:
//
//	e := textengine.New(fonts,
//		textengine.WithWrapWidth(400),
//		textengine.WithAlignment(textengine.AlignCenter))
type Option func(*options)

type options struct {
	wrap      float32
	align     Alignment
	shaper    shape.Shaper
	direction bidi.Direction
	logger    *slog.Logger
}

func defaultOptions() options {
	return options{
		align:     AlignAuto,
		direction: bidi.DefaultLTR,
	}
}

// WithWrapWidth sets the line width in pixels. 0 disables wrapping.
func WithWrapWidth(w float32) Option {
	return func(o *options) {
		o.wrap = max(w, 0)
	}
}

// WithAlignment sets the horizontal line alignment.
func WithAlignment(a Alignment) Option {
	return func(o *options) {
		o.align = a
	}
}

// WithShaper replaces the default HarfBuzz shaper.
func WithShaper(s shape.Shaper) Option {
	return func(o *options) {
		o.shaper = s
	}
}

// WithDirection sets how paragraph base directions are chosen.
func WithDirection(d bidi.Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithLogger sets the engine's logger. Without it the engine logs to the
// package logger that is current when New is called.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
