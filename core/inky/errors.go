package inky

import "errors"

var (
	ErrMalformedMarkup       = errors.New("inky: malformed markup")
	ErrUnsupportedNode       = errors.New("inky: unsupported node type")
	ErrDetachedElement       = errors.New("inky: element has no parent")
	ErrInvalidRegistry       = errors.New("inky: invalid component registry")
	ErrMissingColumnRenderer = errors.New("inky: no column renderer configured")
	ErrTooManySteps          = errors.New("inky: transform did not converge")
)
