// Package pipeline builds the ordered markdown stage descriptors handed to the
// host: highlighter transformers, pre-parse plugins and post-parse plugins.
package pipeline

// Kind groups stages by the host list they belong to.
// Kinds execute in the order defined by KindOrder.
type Kind string

const (
	// KindTransformer is a syntax highlighter text-rewrite pass.
	KindTransformer Kind = "transformer"

	// KindPreParse is a markdown syntax tree plugin.
	KindPreParse Kind = "pre-parse"

	// KindPostParse is an HTML syntax tree plugin.
	KindPostParse Kind = "post-parse"
)

// KindOrder defines the order in which the host applies each list.
var KindOrder = []Kind{KindTransformer, KindPreParse, KindPostParse}

// KindIndex returns the position of a kind in KindOrder, or -1.
func KindIndex(kind Kind) int {
	for i, k := range KindOrder {
		if k == kind {
			return i
		}
	}
	return -1
}

// Stage is a named pass plus the options it is instantiated with.
type Stage struct {
	Name    string         `json:"name" yaml:"name"`
	Kind    Kind           `json:"kind" yaml:"kind"`
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty"`
	// MustRunAfter lists stage names that must appear earlier in the pipeline.
	MustRunAfter []string `json:"mustRunAfter,omitempty" yaml:"mustRunAfter,omitempty"`
}

// ThemePair names the highlighter theme for each color scheme.
type ThemePair struct {
	Light string `json:"light" yaml:"light"`
	Dark  string `json:"dark" yaml:"dark"`
}

// Pipeline is the full set of stage lists.
type Pipeline struct {
	Themes       ThemePair `json:"themes" yaml:"themes"`
	Transformers []Stage   `json:"transformers" yaml:"transformers"`
	PreParse     []Stage   `json:"preParse" yaml:"preParse"`
	PostParse    []Stage   `json:"postParse" yaml:"postParse"`
}

// Stages returns every stage in execution order.
func (p Pipeline) Stages() []Stage {
	out := make([]Stage, 0, len(p.Transformers)+len(p.PreParse)+len(p.PostParse))
	out = append(out, p.Transformers...)
	out = append(out, p.PreParse...)
	out = append(out, p.PostParse...)
	return out
}

// Names returns the names of stages in order.
func Names(stages []Stage) []string {
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.Name
	}
	return names
}
