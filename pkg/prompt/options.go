package prompt

import (
	"io"

	"go.uber.org/zap"
)

// DefaultHeight is the picker height, in lines, used for every prompt.
const DefaultHeight = 16

// Theme captures the prefixes printed on the status stream.
type Theme struct {
	DescriptionPrefix string
	ErrorPrefix       string
}

// DefaultTheme matches the commitizen prompt look.
var DefaultTheme = Theme{
	DescriptionPrefix: "?",
	ErrorPrefix:       "☓",
}

// Option configures the prompt engine.
type Option func(*Engine)

// WithStatus sets the interaction stream for descriptions, errors and
// accepted values. It must not be the stream the final message goes to.
func WithStatus(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.statusWriter = w
		}
	}
}

// WithHeight overrides the picker height.
func WithHeight(lines int) Option {
	return func(e *Engine) {
		if lines > 0 {
			e.height = lines
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Engine) {
		e.theme = theme
	}
}

// WithLogger attaches a debug logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
