package components

import "golang.org/x/net/html"

// AnchorContent returns the span appended to headings as their self link.
// The span is excluded from the search index.
func AnchorContent(glyph string) *html.Node {
	return element("span",
		[]html.Attribute{class("anchor-icon"), attr("data-pagefind-ignore", "")},
		text(glyph),
	)
}
