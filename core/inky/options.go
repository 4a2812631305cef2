package inky

import "log/slog"

// Option configures an Inky converter.
type Option func(*Inky)

// WithRegistry sets the component registry.
func WithRegistry(reg Registry) Option {
	return func(i *Inky) { i.registry = reg }
}

// WithColumns replaces the grid column renderer.
func WithColumns(cols ColumnRenderer) Option {
	return func(i *Inky) { i.columns = cols }
}

// WithColumnCount sets the grid width used by the default column renderer.
// It has no effect together with WithColumns.
func WithColumnCount(n int) Option {
	return func(i *Inky) {
		if n > 0 {
			i.columnCount = n
		}
	}
}

// WithMaxSteps bounds the number of components rendered per document.
func WithMaxSteps(n int) Option {
	return func(i *Inky) {
		if n > 0 {
			i.maxSteps = n
		}
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(i *Inky) {
		if l != nil {
			i.logger = l
		}
	}
}
