package sentence

import "log/slog"

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the random source. Nil sources are ignored.
func WithSource(src Source) Option {
	return func(g *Generator) {
		if src != nil {
			g.rnd = src
		}
	}
}

// WithLogger sets the logger used for debug records. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.log = l
		}
	}
}

// WithSkipEmpty makes draws from empty categories produce no token instead of
// failing with lexicon.ErrEmptyCategory.
func WithSkipEmpty() Option {
	return func(g *Generator) {
		g.skipEmpty = true
	}
}
