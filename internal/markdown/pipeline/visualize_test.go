package pipeline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisualize_ContainsEveryStage(t *testing.T) {
	p := Build(nil)

	for _, format := range SupportedFormats() {
		t.Run(string(format), func(t *testing.T) {
			out, err := Visualize(p, format)
			require.NoError(t, err)
			for _, s := range p.Stages() {
				assert.Contains(t, out, s.Name)
			}
			assert.NotEmpty(t, FormatDescription(format))
		})
	}
}

func TestVisualize_Text(t *testing.T) {
	out, err := Visualize(Build(nil), FormatText)
	require.NoError(t, err)

	for _, expected := range []string{
		"Markdown Pipeline Visualization",
		"light=vitesse-light dark=catppuccin-frappe",
		"┌─ 1: transformer",
		"┌─ 3: post-parse",
		"⤷ depends on: rehype-slug",
		"Total: 23 stages across 3 lists",
	} {
		assert.Contains(t, out, expected)
	}
}

func TestVisualize_Mermaid(t *testing.T) {
	out, err := Visualize(Build(nil), FormatMermaid)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "```mermaid\ngraph TD\n"))
	assert.Contains(t, out, `subgraph preparse["pre-parse"]`)
	assert.Contains(t, out, "rehypeslug --> rehypeautolinkheadings")
}

func TestVisualize_DOT(t *testing.T) {
	out, err := Visualize(Build(nil), FormatDOT)
	require.NoError(t, err)

	assert.Contains(t, out, "digraph MarkdownPipeline {")
	assert.Contains(t, out, `"remark-directive" -> "remark-directive-rehype";`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestVisualize_JSON(t *testing.T) {
	out, err := Visualize(Build(nil), FormatJSON)
	require.NoError(t, err)

	var decoded struct {
		Themes ThemePair `json:"themes"`
		Stages []struct {
			Name         string         `json:"name"`
			Order        int            `json:"order"`
			Options      map[string]any `json:"options"`
			MustRunAfter []string       `json:"mustRunAfter"`
		} `json:"stages"`
		TotalStages int `json:"totalStages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 23, decoded.TotalStages)
	assert.Equal(t, "catppuccin-frappe", decoded.Themes.Dark)
	last := decoded.Stages[len(decoded.Stages)-1]
	assert.Equal(t, "rehype-autolink-headings", last.Name)
	assert.Equal(t, 23, last.Order)
	assert.Contains(t, last.Options["content"], "anchor-icon")

	components := decoded.Stages[21].Options["components"].(map[string]any)
	assert.Equal(t, map[string]any{"renderer": "github-card"}, components["github"])
}

func TestVisualize_UnsupportedFormat(t *testing.T) {
	_, err := Visualize(Build(nil), "svg")
	assert.Error(t, err)
}
