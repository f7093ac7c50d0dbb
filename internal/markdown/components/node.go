package components

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Properties are directive attributes as passed by the directive parser.
type Properties map[string]string

// Has reports whether the property is set.
func (p Properties) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// element creates an element node with attributes and children.
func element(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
		Attr:     attrs,
	}
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func class(names ...string) html.Attribute {
	return attr("class", strings.Join(names, " "))
}

// retag changes an element's tag name in place.
func retag(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// Render serializes a node to HTML text.
func Render(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return sb.String()
}

// Fragment wraps a node so stage options can carry it and still serialize as HTML.
type Fragment struct {
	Node *html.Node
}

// String returns the rendered HTML.
func (f Fragment) String() string {
	return Render(f.Node)
}

// MarshalText encodes the fragment as rendered HTML.
func (f Fragment) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// MarshalYAML encodes the fragment as rendered HTML.
func (f Fragment) MarshalYAML() (any, error) {
	return f.String(), nil
}
