package inky

import (
	"fmt"
	"strings"
)

const (
	// verticalAttr is written on menu children by a vertical menu and read by items.
	verticalAttr = "data-vertical"
	// parsedAttr marks a center element whose children are already aligned.
	parsedAttr = "data-parsed"

	inkyMarker = `<tr><td><img src="https://raw.githubusercontent.com/arvida/emoji-cheat-sheet.com/master/public/graphics/emojis/octopus.png" /></tr></td>`
)

// Render converts one element into its table-based markup.
//
// The component is resolved through reg; tags the registry does not know are
// passed through wrapped in a table cell. Columns are delegated to cols.
// Render never modifies el: rules that mark children work on a copy.
func Render(el *Element, reg Registry, cols ColumnRenderer) (string, error) {
	switch reg.Lookup(el.Tag()) {
	case Columns:
		if cols == nil {
			return "", ErrMissingColumnRenderer
		}
		return cols.RenderColumn(el, "columns")

	case Row:
		return wrapInner(el, `<table class="%s"><tbody><tr>%s</tr></tbody></table>`, classList(el, "row"))

	case Button:
		return renderButton(el)

	case Container:
		return wrapInner(el, `<table class="%s"><tbody><tr><td>%s</td></tr></tbody></table>`, classList(el, "container"))

	case BorderedTable:
		return wrapInner(el, `<table class="%s"><tbody><tr><td>%s</td></tr></tbody></table>`, classList(el, "borderedtable"))

	case Marker:
		return inkyMarker, nil

	case BlockGrid:
		up, _ := el.Attr("up")
		return wrapInner(el, `<table class="%s"><tr>%s</tr></table>`, classList(el, "block-grid", "up-"+up))

	case Menu:
		return renderMenu(el)

	case MenuItem:
		return renderMenuItem(el)

	case Center:
		return renderCenter(el)

	case Callout:
		return wrapInner(el, `<table><tr><th class="%s">%s</th></tr></table>`, classList(el, "callout"))

	default: // Unknown
		outer, err := el.OuterHTML()
		if err != nil {
			return "", err
		}
		return "<tr><td>" + outer + "</td></tr>", nil
	}
}

// classList puts the base classes first, then the element's own classes in
// source order, without deduplication.
func classList(el *Element, base ...string) string {
	classes := append(base, el.Classes()...)
	return escapeAttr(strings.Join(classes, " "))
}

func wrapInner(el *Element, layout, class string) (string, error) {
	inner, err := el.InnerHTML()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(layout, class, inner), nil
}

func renderButton(el *Element) (string, error) {
	inner, err := el.InnerHTML()
	if err != nil {
		return "", err
	}

	if href, _ := el.Attr("href"); href != "" {
		inner = fmt.Sprintf(`<a href="%s">%s</a>`, escapeAttr(href), inner)
	}
	if el.HasClass("expand") {
		inner = "<center>" + inner + "</center>"
	}

	return fmt.Sprintf(
		`<table class="%s"><tr><td><table><tr><td>%s</td></tr></table></td></tr></table>`,
		classList(el, "button"), inner,
	), nil
}

func renderMenu(el *Element) (string, error) {
	class := classList(el, "menu")
	if !el.HasClass("vertical") {
		return wrapInner(el, `<table class="%s"><tr>%s</tr></table>`, class)
	}

	// Items read the marker when they are rendered later, so the unrendered
	// children are emitted as they are.
	marked := el.Clone()
	for _, child := range marked.Children() {
		child.SetAttr(verticalAttr, "1")
	}
	raw, err := marked.InnerHTML()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`<table class="%s"><tr><th>%s</th></tr></table>`, class, raw), nil
}

func renderMenuItem(el *Element) (string, error) {
	inner, err := el.InnerHTML()
	if err != nil {
		return "", err
	}

	href, _ := el.Attr("href")
	href = escapeAttr(href)

	if v, _ := el.Attr(verticalAttr); v != "" {
		return fmt.Sprintf(`<table class="menu-item"><tr><th><a href="%s">%s</a></th></tr></table>`, href, inner), nil
	}
	return fmt.Sprintf(`<th><a href="%s">%s</a></th>`, href, inner), nil
}

func renderCenter(el *Element) (string, error) {
	centered := el.Clone()
	for _, child := range centered.Children() {
		child.SetAttr("align", "center")
		child.AddClass("text-center")
	}
	centered.SetAttr(parsedAttr, "")
	return centered.OuterHTML()
}
