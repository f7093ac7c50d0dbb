package components

import (
	"encoding/json"

	"golang.org/x/net/html"
)

// Func renders a directive into a node.
type Func func(props Properties, children []*html.Node) *html.Node

// Component is a named directive renderer.
type Component struct {
	Renderer string
	Kind     string
	render   Func
}

// Render runs the component.
func (c Component) Render(props Properties, children []*html.Node) *html.Node {
	if c.render == nil {
		return nil
	}
	if props == nil {
		props = Properties{}
	}
	return c.render(props, children)
}

func (c Component) descriptor() map[string]string {
	d := map[string]string{"renderer": c.Renderer}
	if c.Kind != "" {
		d["kind"] = c.Kind
	}
	return d
}

// MarshalJSON encodes the component descriptor.
func (c Component) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.descriptor())
}

// MarshalYAML encodes the component descriptor.
func (c Component) MarshalYAML() (any, error) {
	return c.descriptor(), nil
}

// Set maps directive names to components.
type Set map[string]Component

// Directives returns the directive components: the GitHub card plus one
// admonition renderer per kind.
func Directives() Set {
	set := Set{"github": GitHubCard()}
	for _, kind := range AdmonitionKinds {
		set[kind] = Admonition(kind)
	}
	return set
}
