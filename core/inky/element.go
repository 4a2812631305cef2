package inky

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// voidElements never take children and are serialized without a closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Element is a node of a parsed markup tree. Tag names and attribute keys are
// lower-cased by the parser, so lookups are case-insensitive.
type Element struct {
	node *html.Node
}

// Parse builds a tree from markup and returns its root. The root has no tag;
// the top-level elements of the markup are its children.
//
// The tree mirrors the source structure: unlike an HTML5 parser it never moves
// unknown tags out of tables, which is what custom component tags need.
// Text, comments and doctypes are kept byte-for-byte.
func Parse(markup string) (*Element, error) {
	root := &html.Node{Type: html.DocumentNode}
	z := html.NewTokenizer(strings.NewReader(markup))
	stack := []*html.Node{root}

	for {
		tt := z.Next()
		top := stack[len(stack)-1]

		switch tt {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %v", ErrMalformedMarkup, err)
			}
			return &Element{node: root}, nil

		case html.TextToken, html.CommentToken, html.DoctypeToken:
			top.AppendChild(&html.Node{Type: html.RawNode, Data: string(z.Raw())})

		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			n := &html.Node{
				Type:     html.ElementNode,
				DataAtom: tok.DataAtom,
				Data:     tok.Data,
				Attr:     tok.Attr,
			}
			top.AppendChild(n)
			if tt == html.StartTagToken && !voidElements[tok.Data] {
				stack = append(stack, n)
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			// Close the nearest matching open element; drop the end tag otherwise.
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].Data == string(name) {
					stack = stack[:i]
					break
				}
			}
		}
	}
}

// Tag returns the lower-cased tag name, or an empty string for a root.
func (e *Element) Tag() string {
	if e.node.Type != html.ElementNode {
		return ""
	}
	return e.node.Data
}

// Attr returns the value of the attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	key = strings.ToLower(key)
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether the attribute is present, with or without a value.
func (e *Element) HasAttr(key string) bool {
	_, ok := e.Attr(key)
	return ok
}

// Classes returns the class list in source order. Duplicates are kept.
func (e *Element) Classes() []string {
	v, _ := e.Attr("class")
	return strings.Fields(v)
}

// HasClass reports whether name is in the class list.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.Classes(), name)
}

// Children returns the element children, skipping text and comments.
func (e *Element) Children() []*Element {
	var out []*Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, &Element{node: c})
		}
	}
	return out
}

// Parent returns the enclosing element, or nil at the top level.
func (e *Element) Parent() *Element {
	p := e.node.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil
	}
	return &Element{node: p}
}

// PrevSibling returns the closest preceding element sibling, or nil.
func (e *Element) PrevSibling() *Element {
	for s := e.node.PrevSibling; s != nil; s = s.PrevSibling {
		if s.Type == html.ElementNode {
			return &Element{node: s}
		}
	}
	return nil
}

// NextSibling returns the closest following element sibling, or nil.
func (e *Element) NextSibling() *Element {
	for s := e.node.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return &Element{node: s}
		}
	}
	return nil
}

// Find returns the first descendant, in document order, for which match
// returns true. The element itself is not considered.
func (e *Element) Find(match func(*Element) bool) *Element {
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		el := &Element{node: c}
		if match(el) {
			return el
		}
		if found := el.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// InnerHTML serializes the children of the element.
func (e *Element) InnerHTML() (string, error) {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := writeNode(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}

// OuterHTML serializes the element including its own tag.
func (e *Element) OuterHTML() (string, error) {
	var b strings.Builder
	if err := writeNode(&b, e.node); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Clone returns a detached deep copy of the element.
func (e *Element) Clone() *Element {
	return &Element{node: cloneNode(e.node)}
}

// SetAttr sets the attribute, replacing an existing value in place.
func (e *Element) SetAttr(key, val string) {
	key = strings.ToLower(key)
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// AddClass appends name to the class list unless it is already there.
func (e *Element) AddClass(name string) {
	v, ok := e.Attr("class")
	switch {
	case !ok || strings.TrimSpace(v) == "":
		e.SetAttr("class", name)
	case !e.HasClass(name):
		e.SetAttr("class", v+" "+name)
	}
}

// replaceWith swaps the element for the nodes parsed from markup.
func (e *Element) replaceWith(markup string) error {
	parent := e.node.Parent
	if parent == nil {
		return ErrDetachedElement
	}

	frag, err := Parse(markup)
	if err != nil {
		return err
	}

	for c := frag.node.FirstChild; c != nil; {
		next := c.NextSibling
		frag.node.RemoveChild(c)
		parent.InsertBefore(c, e.node)
		c = next
	}
	parent.RemoveChild(e.node)
	return nil
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      slices.Clone(n.Attr),
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		c.AppendChild(cloneNode(ch))
	}
	return c
}

func writeNode(w *strings.Builder, n *html.Node) error {
	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := writeNode(w, c); err != nil {
				return err
			}
		}
		return nil

	case html.RawNode:
		w.WriteString(n.Data)
		return nil

	case html.ElementNode:
		w.WriteByte('<')
		w.WriteString(n.Data)
		for _, a := range n.Attr {
			w.WriteByte(' ')
			if a.Namespace != "" {
				w.WriteString(a.Namespace)
				w.WriteByte(':')
			}
			w.WriteString(a.Key)
			w.WriteString(`="`)
			w.WriteString(escapeAttr(a.Val))
			w.WriteByte('"')
		}
		w.WriteByte('>')

		if voidElements[n.Data] {
			if n.FirstChild != nil {
				return fmt.Errorf("%w: void element <%s> has children", ErrMalformedMarkup, n.Data)
			}
			return nil
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if err := writeNode(w, c); err != nil {
				return err
			}
		}
		w.WriteString("</")
		w.WriteString(n.Data)
		w.WriteByte('>')
		return nil

	default:
		return fmt.Errorf("%w: node type %d", ErrUnsupportedNode, n.Type)
	}
}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `"`, "&quot;")

// escapeAttr restores the escaping the tokenizer removed from attribute values.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
