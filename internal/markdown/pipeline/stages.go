package pipeline

import (
	"git.home.luguber.info/inful/fishtheme/internal/config"
	"git.home.luguber.info/inful/fishtheme/internal/markdown/components"
)

// Highlighter themes.
const (
	LightTheme = "vitesse-light"
	DarkTheme  = "catppuccin-frappe"
)

// Transformer names.
const (
	TransformerColorizedBrackets     = "transformer-colorized-brackets"
	TransformerNotationDiff          = "transformer-notation-diff"
	TransformerNotationHighlight     = "transformer-notation-highlight"
	TransformerNotationWordHighlight = "transformer-notation-word-highlight"
	TransformerNotationFocus         = "transformer-notation-focus"
	TransformerNotationErrorLevel    = "transformer-notation-error-level"
	TransformerMetaHighlight         = "transformer-meta-highlight"
	TransformerMetaWordHighlight     = "transformer-meta-word-highlight"
	TransformerRemoveNotationEscape  = "transformer-remove-notation-escape"
	TransformerTwoslash              = "transformer-twoslash"
	TransformerCopyButton            = "transformer-copy-button"
)

// Pre-parse plugin names.
const (
	RemarkComponentEmbed                = "remark-component-embed"
	RemarkToc                           = "remark-toc"
	RemarkMath                          = "remark-math"
	RemarkReadingTime                   = "remark-reading-time"
	RemarkGitHubAdmonitionsToDirectives = "remark-github-admonitions-to-directives"
	RemarkDirective                     = "remark-directive"
	RemarkDirectiveRehype               = "remark-directive-rehype"
)

// Post-parse plugin names.
const (
	RehypeExternalLinks    = "rehype-external-links"
	RehypeKatex            = "rehype-katex"
	RehypeSlug             = "rehype-slug"
	RehypeComponents       = "rehype-components"
	RehypeAutolinkHeadings = "rehype-autolink-headings"
)

// NotationMatchAlgorithm is the comment matching algorithm for notation transformers.
const NotationMatchAlgorithm = "v3"

// Build composes the pipeline for a validated configuration.
func Build(cfg *config.ThemeConfig) Pipeline {
	md := config.DefaultMarkdown()
	if cfg != nil {
		md = cfg.Markdown
	}
	return Pipeline{
		Themes:       ThemePair{Light: LightTheme, Dark: DarkTheme},
		Transformers: Transformers(md),
		PreParse:     PreParse(),
		PostParse:    PostParse(md),
	}
}

func notation(name string) Stage {
	return Stage{
		Name:    name,
		Kind:    KindTransformer,
		Options: map[string]any{"matchAlgorithm": NotationMatchAlgorithm},
	}
}

// Transformers returns the highlighter transformers in application order.
func Transformers(md config.Markdown) []Stage {
	notations := []string{
		TransformerNotationDiff,
		TransformerNotationHighlight,
		TransformerNotationWordHighlight,
		TransformerNotationFocus,
		TransformerNotationErrorLevel,
	}

	stages := []Stage{{
		Name:    TransformerColorizedBrackets,
		Kind:    KindTransformer,
		Options: map[string]any{"explicitTrigger": md.ColorizedBrackets.ExplicitTrigger},
	}}
	for _, n := range notations {
		stages = append(stages, notation(n))
	}
	return append(stages,
		Stage{Name: TransformerMetaHighlight, Kind: KindTransformer},
		Stage{Name: TransformerMetaWordHighlight, Kind: KindTransformer},
		Stage{Name: TransformerRemoveNotationEscape, Kind: KindTransformer, MustRunAfter: notations},
		Stage{
			Name:    TransformerTwoslash,
			Kind:    KindTransformer,
			Options: map[string]any{"explicitTrigger": md.Twoslash.ExplicitTrigger},
		},
		Stage{Name: TransformerCopyButton, Kind: KindTransformer},
	)
}

// PreParse returns the markdown syntax tree plugins in application order.
func PreParse() []Stage {
	return []Stage{
		{Name: RemarkComponentEmbed, Kind: KindPreParse},
		{Name: RemarkToc, Kind: KindPreParse},
		{Name: RemarkMath, Kind: KindPreParse},
		{Name: RemarkReadingTime, Kind: KindPreParse},
		{Name: RemarkGitHubAdmonitionsToDirectives, Kind: KindPreParse},
		{Name: RemarkDirective, Kind: KindPreParse, MustRunAfter: []string{RemarkGitHubAdmonitionsToDirectives}},
		{Name: RemarkDirectiveRehype, Kind: KindPreParse, MustRunAfter: []string{RemarkDirective}},
	}
}

// PostParse returns the HTML syntax tree plugins in application order.
func PostParse(md config.Markdown) []Stage {
	return []Stage{
		{
			Name: RehypeExternalLinks,
			Kind: KindPostParse,
			Options: map[string]any{
				"rel":        []string{"nofollow", "noopener", "noreferrer"},
				"properties": map[string]any{"data-external": true},
				"target":     "_blank",
			},
		},
		{Name: RehypeKatex, Kind: KindPostParse, MustRunAfter: []string{RemarkMath}},
		{Name: RehypeSlug, Kind: KindPostParse},
		{
			Name:         RehypeComponents,
			Kind:         KindPostParse,
			Options:      map[string]any{"components": components.Directives()},
			MustRunAfter: []string{RemarkDirectiveRehype},
		},
		{
			Name: RehypeAutolinkHeadings,
			Kind: KindPostParse,
			Options: map[string]any{
				"behavior":   "append",
				"properties": map[string]any{"className": []string{"anchor"}},
				"content":    components.Fragment{Node: components.AnchorContent(md.HeadingAnchor)},
			},
			MustRunAfter: []string{RehypeSlug},
		},
	}
}
