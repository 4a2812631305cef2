package inky

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultColumnCount is the width of the grid in columns.
const DefaultColumnCount = 12

// ColumnRenderer renders grid column elements. kind is the class every
// rendered column carries.
type ColumnRenderer interface {
	RenderColumn(el *Element, kind string) (string, error)
}

// ColumnFunc adapts a function to ColumnRenderer.
type ColumnFunc func(el *Element, kind string) (string, error)

// RenderColumn calls f.
func (f ColumnFunc) RenderColumn(el *Element, kind string) (string, error) {
	return f(el, kind)
}

// GridColumns renders columns on a fixed-width grid.
//
// Sizes come from the small and large attributes. Without them a column is
// full width on small screens and shares the row evenly on large ones.
type GridColumns struct {
	count    int
	registry Registry
}

// NewGridColumns returns a grid of count columns. Column and row tags are
// resolved through reg. A non-positive count falls back to DefaultColumnCount.
func NewGridColumns(count int, reg Registry) *GridColumns {
	if count <= 0 {
		count = DefaultColumnCount
	}
	return &GridColumns{count: count, registry: reg}
}

// RenderColumn implements ColumnRenderer.
func (g *GridColumns) RenderColumn(el *Element, kind string) (string, error) {
	inner, err := el.InnerHTML()
	if err != nil {
		return "", err
	}

	// Top-level columns share the document root as their parent.
	siblings := 1
	if p := el.node.Parent; p != nil {
		siblings = len((&Element{node: p}).Children())
	}

	small, _ := el.Attr("small")
	if small == "" {
		small = strconv.Itoa(g.count)
	}
	large, _ := el.Attr("large")
	if large == "" {
		large, _ = el.Attr("small")
	}
	if large == "" {
		large = strconv.Itoa(g.count / siblings)
	}

	classes := el.Classes()
	classes = append(classes, "small-"+small, "large-"+large, kind)
	if !g.isColumn(el.PrevSibling(), kind) {
		classes = append(classes, "first")
	}
	if !g.isColumn(el.NextSibling(), kind) {
		classes = append(classes, "last")
	}

	expander := ""
	if large == strconv.Itoa(g.count) && el.Find(g.isRow) == nil {
		expander = `<th class="expander"></th>`
	}

	return fmt.Sprintf(
		`<th class="%s"><table><tr><th>%s</th>%s</tr></table></th>`,
		escapeAttr(strings.Join(classes, " ")), inner, expander,
	), nil
}

// isColumn reports whether el is a column, rendered or not.
func (g *GridColumns) isColumn(el *Element, kind string) bool {
	if el == nil {
		return false
	}
	if g.registry.Lookup(el.Tag()) == Columns {
		return true
	}
	return el.Tag() == "th" && el.HasClass(kind)
}

func (g *GridColumns) isRow(el *Element) bool {
	return g.registry.Lookup(el.Tag()) == Row || el.HasClass("row")
}
