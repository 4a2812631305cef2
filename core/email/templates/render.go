package templates

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/inky/core/email"
)

// Render renders a templ component to an HTML string.
func Render(ctx context.Context, component templ.Component) (string, error) {
	var b strings.Builder
	if err := component.Render(ctx, &b); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return b.String(), nil
}

// RenderEmail renders a component written with Inky tags and converts the
// result to table markup with t.
func RenderEmail(ctx context.Context, component templ.Component, t email.Transformer) (string, error) {
	markup, err := Render(ctx, component)
	if err != nil {
		return "", err
	}
	html, err := t.Transform(ctx, markup)
	if err != nil {
		return "", fmt.Errorf("convert template: %w", err)
	}
	return html, nil
}
