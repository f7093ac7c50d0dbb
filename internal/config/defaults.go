package config

// Default values applied when the corresponding key is absent.
const (
	DefaultNavHomeTitle  = "Home"
	DefaultNavHomeLink   = "/"
	DefaultTocTitle      = "Table of contents"
	DefaultHeadingAnchor = "#"
)

// DefaultNavHome returns the home link used when side.navHome is absent.
func DefaultNavHome() NavHome {
	return NavHome{
		Title: DefaultNavHomeTitle,
		Link:  DefaultNavHomeLink,
		Icon:  defaultNavHomeIcon(),
	}
}

func defaultNavHomeIcon() Icon {
	return NewIconStates(
		IconName("solar:file-text-broken"),
		IconName("solar:file-smile-outline"),
		IconName("solar:file-smile-bold-duotone"),
	)
}

// DefaultFooter returns the footer links used when side.footer is absent.
func DefaultFooter() []FooterLink {
	return []FooterLink{
		{Title: "Twitter", Link: "https://x.com/", Icon: NewIcon("simple-icons:twitter")},
		{Title: "GitHub", Link: "https://github.com/felishh77/astro-fish", Icon: NewIcon("simple-icons:github")},
	}
}

// DefaultToc returns the table of contents settings used when side.toc is absent.
func DefaultToc() Toc {
	return Toc{Enabled: true, Title: DefaultTocTitle}
}

// DefaultMarkdown returns the markdown settings used when markdown is absent.
func DefaultMarkdown() Markdown {
	return Markdown{
		ColorizedBrackets: Trigger{ExplicitTrigger: false},
		Twoslash:          Trigger{ExplicitTrigger: true},
		HeadingAnchor:     DefaultHeadingAnchor,
	}
}

// DefaultGiscusTheme returns the widget theme used when giscus.theme is absent.
func DefaultGiscusTheme() GiscusTheme {
	return GiscusTheme{Light: "light", Dark: "dark"}
}

// DefaultSet groups the defaults of every optional subtree.
type DefaultSet struct {
	TitleSuffix   TitleSuffix   `json:"titleSuffix" yaml:"titleSuffix"`
	RSS           bool          `json:"rss" yaml:"rss"`
	Font          Font          `json:"font" yaml:"font"`
	ShootingStar  bool          `json:"shootingStar" yaml:"shootingStar"`
	NavHome       NavHome       `json:"navHome" yaml:"navHome"`
	Footer        []FooterLink  `json:"footer" yaml:"footer"`
	NavStyle      LinkStyle     `json:"navStyle" yaml:"navStyle"`
	HoverCursor   HoverCursor   `json:"navMenuIconHoverCursor" yaml:"navMenuIconHoverCursor"`
	FooterStyle   LinkStyle     `json:"footerStyle" yaml:"footerStyle"`
	Toc           Toc           `json:"toc" yaml:"toc"`
	Markdown      Markdown      `json:"markdown" yaml:"markdown"`
	GiscusMapping GiscusMapping `json:"giscusMapping" yaml:"giscusMapping"`
	GiscusInput   InputPosition `json:"giscusInputPosition" yaml:"giscusInputPosition"`
	GiscusTheme   GiscusTheme   `json:"giscusTheme" yaml:"giscusTheme"`
}

// Defaults returns every default value applied by Parse.
func Defaults() DefaultSet {
	return DefaultSet{
		TitleSuffix:   TitleSuffixEnabled(true),
		RSS:           true,
		Font:          fontNormalizer.Default(),
		ShootingStar:  true,
		NavHome:       DefaultNavHome(),
		Footer:        DefaultFooter(),
		NavStyle:      linkStyleNormalizer.Default(),
		HoverCursor:   hoverCursorNormalizer.Default(),
		FooterStyle:   linkStyleNormalizer.Default(),
		Toc:           DefaultToc(),
		Markdown:      DefaultMarkdown(),
		GiscusMapping: giscusMappingNormalizer.Default(),
		GiscusInput:   inputPositionNormalizer.Default(),
		GiscusTheme:   DefaultGiscusTheme(),
	}
}
