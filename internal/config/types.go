package config

import (
	"encoding/json"

	"git.home.luguber.info/inful/fishtheme/internal/foundation"
)

// ThemeConfig is the validated, fully-defaulted theme configuration.
// Values are produced by Parse and are not modified afterwards.
type ThemeConfig struct {
	Lang              string                    `json:"lang" yaml:"lang"`
	Title             string                    `json:"title" yaml:"title"`
	TitleSuffix       TitleSuffix               `json:"titleSuffix" yaml:"titleSuffix"`
	Description       foundation.Option[string] `json:"description,omitzero" yaml:"description,omitempty"`
	Author            foundation.Option[string] `json:"author,omitzero" yaml:"author,omitempty"`
	PlaceholderImage  foundation.Option[string] `json:"placeholderImage,omitzero" yaml:"placeholderImage,omitempty"`
	LicenseID         foundation.Option[string] `json:"licenseId,omitzero" yaml:"licenseId,omitempty"`
	RSS               bool                      `json:"rss" yaml:"rss"`
	GoogleAnalyticsID foundation.Option[string] `json:"googleAnalyticsId,omitzero" yaml:"googleAnalyticsId,omitempty"`
	Font              Font                      `json:"font" yaml:"font"`
	ShootingStar      bool                      `json:"shootingStar" yaml:"shootingStar"`
	Side              Side                      `json:"side" yaml:"side"`
	Markdown          Markdown                  `json:"markdown" yaml:"markdown"`
	Giscus            foundation.Option[Giscus] `json:"giscus,omitzero" yaml:"giscus,omitempty"`
}

// Side describes the sidebar.
type Side struct {
	Title                  string       `json:"title" yaml:"title"`
	Sub                    string       `json:"sub" yaml:"sub"`
	Bio                    string       `json:"bio" yaml:"bio"`
	NavHome                NavHome      `json:"navHome" yaml:"navHome"`
	Footer                 []FooterLink `json:"footer" yaml:"footer"`
	NavStyle               LinkStyle    `json:"navStyle" yaml:"navStyle"`
	NavMenuIconHoverCursor HoverCursor  `json:"navMenuIconHoverCursor" yaml:"navMenuIconHoverCursor"`
	FooterStyle            LinkStyle    `json:"footerStyle" yaml:"footerStyle"`
	Toc                    Toc          `json:"toc" yaml:"toc"`
}

// NavHome is the sidebar link back to the home page.
type NavHome struct {
	Title string `json:"title" yaml:"title"`
	Link  string `json:"link" yaml:"link"`
	Icon  Icon   `json:"icon" yaml:"icon"`
}

// FooterLink is one entry of the sidebar footer.
type FooterLink struct {
	Title string `json:"title" yaml:"title"`
	Link  string `json:"link" yaml:"link"`
	Icon  Icon   `json:"icon" yaml:"icon"`
}

// Toc configures the table of contents.
type Toc struct {
	Enabled   bool                   `json:"enabled" yaml:"enabled"`
	Title     string                 `json:"title" yaml:"title"`
	MinLength foundation.Option[int] `json:"minLength,omitzero" yaml:"minLength,omitempty"`
	MaxDepth  foundation.Option[int] `json:"maxDepth,omitzero" yaml:"maxDepth,omitempty"`
}

// Markdown holds markdown rendering switches.
type Markdown struct {
	ColorizedBrackets Trigger `json:"colorizedBrackets" yaml:"colorizedBrackets"`
	Twoslash          Trigger `json:"twoslash" yaml:"twoslash"`
	HeadingAnchor     string  `json:"headingAnchor" yaml:"headingAnchor"`
}

// Trigger controls whether a code block feature needs an explicit meta flag.
type Trigger struct {
	ExplicitTrigger bool `json:"explicitTrigger" yaml:"explicitTrigger"`
}

// Giscus configures the comments widget.
type Giscus struct {
	Repo          string        `json:"repo" yaml:"repo"`
	RepoID        string        `json:"repoId" yaml:"repoId"`
	Category      string        `json:"category" yaml:"category"`
	CategoryID    string        `json:"categoryId" yaml:"categoryId"`
	Mapping       GiscusMapping `json:"mapping" yaml:"mapping"`
	Strict        bool          `json:"strict" yaml:"strict"`
	Reactions     bool          `json:"reactions" yaml:"reactions"`
	EmitMetadata  bool          `json:"emitMetadata" yaml:"emitMetadata"`
	InputPosition InputPosition `json:"inputPosition" yaml:"inputPosition"`
	Theme         GiscusTheme   `json:"theme" yaml:"theme"`
}

// GiscusTheme names the widget theme for each color scheme.
type GiscusTheme struct {
	Light string `json:"light" yaml:"light"`
	Dark  string `json:"dark" yaml:"dark"`
}

// TitleSuffix is either a literal suffix or a switch for the default one.
type TitleSuffix struct {
	text   string
	isText bool
	on     bool
}

// TitleSuffixEnabled returns a boolean suffix setting.
func TitleSuffixEnabled(on bool) TitleSuffix {
	return TitleSuffix{on: on}
}

// TitleSuffixText returns a literal suffix.
func TitleSuffixText(text string) TitleSuffix {
	return TitleSuffix{text: text, isText: true, on: true}
}

// Text returns the literal suffix, if one was configured.
func (s TitleSuffix) Text() (string, bool) {
	return s.text, s.isText
}

// Enabled reports whether a suffix is appended at all.
func (s TitleSuffix) Enabled() bool {
	return s.on
}

func (s TitleSuffix) value() any {
	if s.isText {
		return s.text
	}
	return s.on
}

// MarshalJSON encodes the suffix in the shape it was given.
func (s TitleSuffix) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value())
}

// MarshalYAML encodes the suffix in the shape it was given.
func (s TitleSuffix) MarshalYAML() (any, error) {
	return s.value(), nil
}
