package inky

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/inky/core/logger"
)

// DefaultMaxSteps bounds the number of components one Transform renders.
const DefaultMaxSteps = 10000

// Inky converts whole documents, rendering every component it finds.
// It holds no per-call state and is safe for concurrent use.
type Inky struct {
	registry    Registry
	columns     ColumnRenderer
	columnCount int
	maxSteps    int
	logger      *slog.Logger
}

// New creates a converter. Without options it uses the default registry and a
// 12-column grid.
func New(opts ...Option) *Inky {
	i := &Inky{
		registry:    DefaultRegistry(),
		columnCount: DefaultColumnCount,
		maxSteps:    DefaultMaxSteps,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.columns == nil {
		i.columns = NewGridColumns(i.columnCount, i.registry)
	}
	return i
}

// Registry returns the registry components are resolved with.
func (i *Inky) Registry() Registry {
	return i.registry
}

// Transform renders every component in markup and returns the converted document.
//
// Components are rendered outermost first. The output of each one is parsed
// back into the tree, so components it leaves behind (a button's center, a
// vertical menu's items) are rendered in later steps.
func (i *Inky) Transform(ctx context.Context, markup string) (string, error) {
	start := time.Now()

	doc, err := Parse(markup)
	if err != nil {
		return "", err
	}

	steps := 0
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		el := doc.Find(i.pending)
		if el == nil {
			break
		}
		if steps >= i.maxSteps {
			i.logger.ErrorContext(ctx, "transform aborted", logger.Count("steps", steps), logger.Tag(el.Tag()))
			return "", fmt.Errorf("%w after %d steps", ErrTooManySteps, steps)
		}
		steps++

		tag := el.Tag()
		out, err := Render(el, i.registry, i.columns)
		if err != nil {
			i.logger.ErrorContext(ctx, "component render failed", logger.Tag(tag), logger.Error(err))
			return "", fmt.Errorf("render <%s>: %w", tag, err)
		}
		if err := el.replaceWith(out); err != nil {
			return "", fmt.Errorf("replace <%s>: %w", tag, err)
		}

		i.logger.DebugContext(ctx, "component rendered",
			logger.Component(i.registry.Lookup(tag).String()),
			logger.Tag(tag),
		)
	}

	result, err := doc.InnerHTML()
	if err != nil {
		return "", err
	}

	i.logger.DebugContext(ctx, "document transformed", logger.Count("components", steps), logger.Elapsed(start))
	return result, nil
}

// pending reports whether el still needs rendering. Centers that carry the
// parsed marker are done.
func (i *Inky) pending(el *Element) bool {
	switch i.registry.Lookup(el.Tag()) {
	case Unknown:
		return false
	case Center:
		return !el.HasAttr(parsedAttr)
	default:
		return true
	}
}
