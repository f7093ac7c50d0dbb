package components

import (
	"golang.org/x/net/html"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AdmonitionKinds lists the directive names rendered as admonitions.
var AdmonitionKinds = []string{"note", "notice", "tip", "question", "important", "warning", "caution", "danger"}

const invalidAdmonition = `Invalid admonition directive. (Admonition directives must be of block type ":::note{name="name"} <content> :::")`

var upper = cases.Upper(language.Und)

// Admonition returns the renderer for one admonition kind.
func Admonition(kind string) Component {
	return Component{
		Renderer: "admonition",
		Kind:     kind,
		render: func(props Properties, children []*html.Node) *html.Node {
			return renderAdmonition(kind, props, children)
		},
	}
}

func renderAdmonition(kind string, props Properties, children []*html.Node) *html.Node {
	if len(children) == 0 {
		return element("div", []html.Attribute{class("hidden")}, text(invalidAdmonition))
	}

	var label *html.Node
	if props.Has("has-directive-label") {
		label = children[0]
		children = children[1:]
		if label.Type == html.ElementNode {
			retag(label, "div")
		}
	} else {
		label = text(upper.String(kind))
	}

	title := element("span", []html.Attribute{class("bdm-title")}, label)
	return element("blockquote",
		[]html.Attribute{class("admonition", "bdm-"+kind)},
		append([]*html.Node{title}, children...)...,
	)
}
