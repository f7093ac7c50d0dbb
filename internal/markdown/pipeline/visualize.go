package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"
)

// VisualizationFormat represents the output format for pipeline visualization.
type VisualizationFormat string

const (
	FormatText    VisualizationFormat = "text"
	FormatMermaid VisualizationFormat = "mermaid"
	FormatDOT     VisualizationFormat = "dot"
	FormatJSON    VisualizationFormat = "json"
)

// Visualize generates a visual representation of the pipeline.
func Visualize(p Pipeline, format VisualizationFormat) (string, error) {
	switch format {
	case FormatText:
		return visualizeText(p), nil
	case FormatMermaid:
		return visualizeMermaid(p), nil
	case FormatDOT:
		return visualizeDOT(p), nil
	case FormatJSON:
		return visualizeJSON(p)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func byKind(p Pipeline) map[Kind][]Stage {
	return map[Kind][]Stage{
		KindTransformer: p.Transformers,
		KindPreParse:    p.PreParse,
		KindPostParse:   p.PostParse,
	}
}

// visualizeText creates a text-based visualization with ASCII art.
func visualizeText(p Pipeline) string {
	var sb strings.Builder

	sb.WriteString("Markdown Pipeline Visualization\n")
	sb.WriteString("===============================\n")
	sb.WriteString(fmt.Sprintf("Highlighter themes: light=%s dark=%s\n\n", p.Themes.Light, p.Themes.Dark))

	groups := byKind(p)
	count := 0
	for i, kind := range KindOrder {
		stages := groups[kind]
		if len(stages) == 0 {
			continue
		}
		count++

		sb.WriteString(fmt.Sprintf("┌─ %d: %s\n", i+1, kind))
		sb.WriteString("│\n")

		for j, s := range stages {
			isLast := j == len(stages)-1
			prefix := "├──"
			connector := "│   "
			if isLast {
				prefix = "└──"
				connector = "    "
			}

			sb.WriteString(fmt.Sprintf("│ %s [%s]\n", prefix, s.Name))
			if len(s.MustRunAfter) > 0 {
				sb.WriteString(fmt.Sprintf("│ %s   ⤷ depends on: %s\n", connector, strings.Join(s.MustRunAfter, ", ")))
			}
		}

		sb.WriteString("│\n")
		if i < len(KindOrder)-1 {
			sb.WriteString("↓\n")
		}
	}

	sb.WriteString(fmt.Sprintf("\nTotal: %d stages across %d lists\n", len(p.Stages()), count))
	return sb.String()
}

func mermaidID(name string) string {
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

// visualizeMermaid creates a Mermaid diagram.
func visualizeMermaid(p Pipeline) string {
	var sb strings.Builder

	sb.WriteString("```mermaid\n")
	sb.WriteString("graph TD\n")

	groups := byKind(p)
	for _, kind := range KindOrder {
		stages := groups[kind]
		if len(stages) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    subgraph %s[\"%s\"]\n", mermaidID(string(kind)), kind))
		for _, s := range stages {
			sb.WriteString(fmt.Sprintf("        %s[\"%s\"]\n", mermaidID(s.Name), s.Name))
		}
		sb.WriteString("    end\n")
	}

	sb.WriteString("\n")

	for _, s := range p.Stages() {
		for _, dep := range s.MustRunAfter {
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", mermaidID(dep), mermaidID(s.Name)))
		}
	}

	sb.WriteString("```\n")
	return sb.String()
}

// visualizeDOT creates a Graphviz DOT diagram.
func visualizeDOT(p Pipeline) string {
	var sb strings.Builder

	sb.WriteString("digraph MarkdownPipeline {\n")
	sb.WriteString("    rankdir=TB;\n")
	sb.WriteString("    node [shape=box, style=rounded];\n\n")

	groups := byKind(p)
	for i, kind := range KindOrder {
		stages := groups[kind]
		if len(stages) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("    subgraph cluster_%d {\n", i))
		sb.WriteString(fmt.Sprintf("        label=\"%s\";\n", kind))
		sb.WriteString("        style=filled;\n")
		sb.WriteString("        color=lightgrey;\n\n")
		for j, s := range stages {
			sb.WriteString(fmt.Sprintf("        \"%s\";\n", s.Name))
			if j > 0 {
				sb.WriteString(fmt.Sprintf("        \"%s\" -> \"%s\" [style=dotted];\n", stages[j-1].Name, s.Name))
			}
		}
		sb.WriteString("    }\n\n")
	}

	for _, s := range p.Stages() {
		for _, dep := range s.MustRunAfter {
			sb.WriteString(fmt.Sprintf("    \"%s\" -> \"%s\";\n", dep, s.Name))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

type jsonStage struct {
	Name         string         `json:"name"`
	Kind         Kind           `json:"kind"`
	Order        int            `json:"order"`
	Options      map[string]any `json:"options,omitempty"`
	MustRunAfter []string       `json:"mustRunAfter"`
}

// visualizeJSON creates a JSON representation of the pipeline.
func visualizeJSON(p Pipeline) (string, error) {
	stages := p.Stages()
	out := struct {
		Themes      ThemePair   `json:"themes"`
		Stages      []jsonStage `json:"stages"`
		TotalStages int         `json:"totalStages"`
	}{
		Themes:      p.Themes,
		Stages:      make([]jsonStage, 0, len(stages)),
		TotalStages: len(stages),
	}
	for i, s := range stages {
		deps := s.MustRunAfter
		if deps == nil {
			deps = []string{}
		}
		out.Stages = append(out.Stages, jsonStage{
			Name:         s.Name,
			Kind:         s.Kind,
			Order:        i + 1,
			Options:      s.Options,
			MustRunAfter: deps,
		})
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}

// SupportedFormats returns the supported visualization formats.
func SupportedFormats() []VisualizationFormat {
	return []VisualizationFormat{FormatText, FormatMermaid, FormatDOT, FormatJSON}
}

// FormatDescription returns a description of a visualization format.
func FormatDescription(format VisualizationFormat) string {
	descriptions := map[VisualizationFormat]string{
		FormatText:    "Human-readable text with ASCII art",
		FormatMermaid: "Mermaid diagram (for GitHub, GitLab, etc.)",
		FormatDOT:     "Graphviz DOT format (render with `dot -Tpng pipeline.dot -o pipeline.png`)",
		FormatJSON:    "Structured JSON representation",
	}
	return descriptions[format]
}
