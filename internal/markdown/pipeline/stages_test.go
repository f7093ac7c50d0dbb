package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/components"
)

func TestBuild_FixedOrder(t *testing.T) {
	p := Build(nil)

	assert.Equal(t, ThemePair{Light: "vitesse-light", Dark: "catppuccin-frappe"}, p.Themes)

	assert.Equal(t, []string{
		"transformer-colorized-brackets",
		"transformer-notation-diff",
		"transformer-notation-highlight",
		"transformer-notation-word-highlight",
		"transformer-notation-focus",
		"transformer-notation-error-level",
		"transformer-meta-highlight",
		"transformer-meta-word-highlight",
		"transformer-remove-notation-escape",
		"transformer-twoslash",
		"transformer-copy-button",
	}, Names(p.Transformers))

	assert.Equal(t, []string{
		"remark-component-embed",
		"remark-toc",
		"remark-math",
		"remark-reading-time",
		"remark-github-admonitions-to-directives",
		"remark-directive",
		"remark-directive-rehype",
	}, Names(p.PreParse))

	assert.Equal(t, []string{
		"rehype-external-links",
		"rehype-katex",
		"rehype-slug",
		"rehype-components",
		"rehype-autolink-headings",
	}, Names(p.PostParse))
}

func TestBuild_OptionsFollowConfig(t *testing.T) {
	cfg := &config.ThemeConfig{Markdown: config.Markdown{
		ColorizedBrackets: config.Trigger{ExplicitTrigger: true},
		Twoslash:          config.Trigger{ExplicitTrigger: false},
		HeadingAnchor:     "¶",
	}}
	p := Build(cfg)

	assert.Equal(t, map[string]any{"explicitTrigger": true}, p.Transformers[0].Options)
	assert.Equal(t, map[string]any{"explicitTrigger": false}, p.Transformers[9].Options)
	for _, s := range p.Transformers[1:6] {
		assert.Equal(t, "v3", s.Options["matchAlgorithm"], s.Name)
	}
	for _, s := range p.Transformers[6:9] {
		assert.Empty(t, s.Options, s.Name)
	}

	anchor := p.PostParse[4]
	assert.Equal(t, "append", anchor.Options["behavior"])
	assert.Equal(t, map[string]any{"className": []string{"anchor"}}, anchor.Options["properties"])
	content, ok := anchor.Options["content"].(components.Fragment)
	require.True(t, ok)
	assert.Equal(t, `<span class="anchor-icon" data-pagefind-ignore="">¶</span>`, content.String())
}

func TestBuild_DefaultMarkdown(t *testing.T) {
	p := Build(nil)
	assert.Equal(t, false, p.Transformers[0].Options["explicitTrigger"])
	assert.Equal(t, true, p.Transformers[9].Options["explicitTrigger"])
	content := p.PostParse[4].Options["content"].(components.Fragment)
	assert.Contains(t, content.String(), ">#</span>")
}

func TestPostParse_ExternalLinksAndComponents(t *testing.T) {
	stages := PostParse(config.DefaultMarkdown())

	links := stages[0].Options
	assert.Equal(t, []string{"nofollow", "noopener", "noreferrer"}, links["rel"])
	assert.Equal(t, "_blank", links["target"])
	assert.Equal(t, map[string]any{"data-external": true}, links["properties"])

	set, ok := stages[3].Options["components"].(components.Set)
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"github", "note", "notice", "tip", "question", "important", "warning", "caution", "danger"},
		keys(set))
}

func keys(set components.Set) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
