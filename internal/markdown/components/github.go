package components

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/html"
)

const (
	invalidGitHubDirective = `Invalid directive. ("github" directive must be leaf type "::github{repo="owner/repo"}")`
	invalidGitHubRepo      = `Invalid repository. ("repo" attribute must be in the format "owner/repo")`
)

// newCardID returns the element ID prefix for a card.
var newCardID = func() string {
	return "GC" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

// GitHubCard returns the renderer for the github leaf directive.
func GitHubCard() Component {
	return Component{Renderer: "github-card", render: renderGitHubCard}
}

func renderGitHubCard(props Properties, children []*html.Node) *html.Node {
	if len(children) != 0 {
		return element("div", []html.Attribute{class("hidden")}, text(invalidGitHubDirective))
	}
	repo := props["repo"]
	owner, name, ok := strings.Cut(repo, "/")
	if !ok || owner == "" || name == "" {
		return element("div", []html.Attribute{class("hidden")}, text(invalidGitHubRepo))
	}

	id := newCardID()
	div := func(suffix, cls string, kids ...*html.Node) *html.Node {
		attrs := []html.Attribute{class(cls)}
		if suffix != "" {
			attrs = append([]html.Attribute{attr("id", id+"-"+suffix)}, attrs...)
		}
		return element("div", attrs, kids...)
	}

	titleBar := div("", "gc-titlebar",
		div("", "gc-titlebar-left",
			div("", "gc-owner",
				div("avatar", "gc-avatar"),
				div("", "gc-user", text(owner)),
			),
			div("", "gc-divider", text("/")),
			div("", "gc-repo", text(name)),
		),
		div("", "github-logo"),
	)
	language := element("span", []html.Attribute{attr("id", id+"-language"), class("gc-language")}, text("Waiting..."))
	infoBar := div("", "gc-infobar",
		div("stars", "gc-stars", text("00K")),
		div("forks", "gc-forks", text("0K")),
		div("license", "gc-license", text("0K")),
		language,
	)

	return element("a", []html.Attribute{
		attr("id", id+"-card"),
		class("card-github", "fetch-waiting", "no-styling"),
		attr("href", "https://github.com/"+owner+"/"+name),
		attr("target", "_blank"),
		attr("repo", repo),
	},
		titleBar,
		div("description", "gc-description", text("Waiting for api.github.com...")),
		infoBar,
	)
}
