package inky

import (
	"fmt"
	"strings"
)

// Component identifies one member of the closed component vocabulary.
type Component int

const (
	Unknown Component = iota
	Columns
	Row
	Button
	Container
	BorderedTable
	Marker
	BlockGrid
	Menu
	MenuItem
	Center
	Callout
)

var componentNames = [...]string{
	Unknown:       "unknown",
	Columns:       "columns",
	Row:           "row",
	Button:        "button",
	Container:     "container",
	BorderedTable: "borderedtable",
	Marker:        "inky",
	BlockGrid:     "blockGrid",
	Menu:          "menu",
	MenuItem:      "menuItem",
	Center:        "center",
	Callout:       "callout",
}

// String returns the logical component name.
func (c Component) String() string {
	if c < 0 || int(c) >= len(componentNames) {
		return componentNames[Unknown]
	}
	return componentNames[c]
}

// Components lists every known component, in declaration order.
func Components() []Component {
	return []Component{
		Columns, Row, Button, Container, BorderedTable, Marker,
		BlockGrid, Menu, MenuItem, Center, Callout,
	}
}

// Registry maps components to the tag names that represent them.
// A Registry is immutable once built and safe for concurrent use.
// The zero value maps nothing: every tag resolves to Unknown.
type Registry struct {
	tags   map[Component]string
	lookup map[string]Component
}

// DefaultRegistry returns the stock tag names.
func DefaultRegistry() Registry {
	r, _ := NewRegistry(map[Component]string{
		Columns:       "columns",
		Row:           "row",
		Button:        "button",
		Container:     "container",
		BorderedTable: "borderedtable",
		Marker:        "inky",
		BlockGrid:     "block-grid",
		Menu:          "menu",
		MenuItem:      "item",
		Center:        "center",
		Callout:       "callout",
	})
	return r
}

// NewRegistry builds a registry from tags. Every component must be mapped to
// exactly one non-empty tag and no two components may share a tag.
func NewRegistry(tags map[Component]string) (Registry, error) {
	r := Registry{
		tags:   make(map[Component]string, len(tags)),
		lookup: make(map[string]Component, len(tags)),
	}

	for _, c := range Components() {
		tag := strings.ToLower(strings.TrimSpace(tags[c]))
		if tag == "" {
			return Registry{}, fmt.Errorf("%w: no tag for %s", ErrInvalidRegistry, c)
		}
		if other, ok := r.lookup[tag]; ok {
			return Registry{}, fmt.Errorf("%w: tag %q used by both %s and %s", ErrInvalidRegistry, tag, other, c)
		}
		r.tags[c] = tag
		r.lookup[tag] = c
	}

	if len(tags) > len(r.tags) {
		return Registry{}, fmt.Errorf("%w: unknown component in mapping", ErrInvalidRegistry)
	}

	return r, nil
}

// Lookup returns the component a tag represents, or Unknown.
func (r Registry) Lookup(tag string) Component {
	if c, ok := r.lookup[strings.ToLower(tag)]; ok {
		return c
	}
	return Unknown
}

// Tag returns the tag name of a component, or an empty string.
func (r Registry) Tag(c Component) string {
	return r.tags[c]
}

// Tags returns the mapped tag names, in component order.
func (r Registry) Tags() []string {
	out := make([]string, 0, len(r.tags))
	for _, c := range Components() {
		if tag, ok := r.tags[c]; ok {
			out = append(out, tag)
		}
	}
	return out
}
