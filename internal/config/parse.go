package config

import (
	"fmt"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/fishtheme/internal/foundation"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// ParseResult is a normalized configuration plus the warnings raised while normalizing it.
type ParseResult struct {
	Config   *ThemeConfig
	Warnings []string
}

// Parse validates raw theme options and returns the normalized configuration.
// On failure the returned error is a classified validation error listing every failing field.
func Parse(raw any) (*ThemeConfig, error) {
	res, err := ParseWithWarnings(raw)
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// ParseWithWarnings is Parse that also reports normalization warnings.
func ParseWithWarnings(raw any) (*ParseResult, error) {
	d := newDecoder()
	cfg := d.themeConfig(raw)
	if err := d.result.ToError("invalid theme configuration"); err != nil {
		return nil, err
	}
	return &ParseResult{Config: cfg, Warnings: d.warnings}, nil
}

// WarningsError turns normalization warnings into a validation error.
func WarningsError(warnings []string) error {
	return errors.ValidationError("theme configuration has warnings").
		WithContext(errors.ContextKeyDetails, warnings).
		Build()
}

// FieldErrors returns the field errors carried by a Parse failure.
func FieldErrors(err error) []foundation.FieldError {
	return foundation.FieldErrorsFrom(err)
}

func (d *decoder) themeConfig(raw any) *ThemeConfig {
	m, ok := d.object("", raw)
	if !ok {
		return nil
	}
	d.unknownKeys("", m, "lang", "title", "titleSuffix", "description", "author", "placeholderImage",
		"licenseId", "rss", "googleAnalyticsId", "font", "shootingStar", "side", "markdown", "giscus")

	cfg := &ThemeConfig{
		Lang:              d.requiredString(m, "", "lang"),
		Title:             d.requiredString(m, "", "title"),
		TitleSuffix:       d.titleSuffix(m),
		Description:       d.optionalString(m, "", "description", 0),
		Author:            d.optionalString(m, "", "author", 0),
		PlaceholderImage:  d.optionalString(m, "", "placeholderImage", 1),
		LicenseID:         d.license(m),
		RSS:               d.boolOr(m, "", "rss", true),
		GoogleAnalyticsID: d.optionalString(m, "", "googleAnalyticsId", 0),
		Font:              enumField(d, m, "", "font", fontNormalizer),
		ShootingStar:      d.boolOr(m, "", "shootingStar", true),
		Side:              d.side(m),
		Markdown:          d.markdown(m),
		Giscus:            d.giscus(m),
	}

	if cfg.Lang != "" {
		if _, err := language.Parse(cfg.Lang); err != nil {
			d.warn("lang %q is not a well-formed BCP 47 tag: %v", cfg.Lang, err)
		}
	}
	return cfg
}

func (d *decoder) titleSuffix(m map[string]any) TitleSuffix {
	v, ok := lookup(m, "titleSuffix")
	if !ok {
		return TitleSuffixEnabled(true)
	}
	switch s := v.(type) {
	case string:
		return TitleSuffixText(s)
	case bool:
		return TitleSuffixEnabled(s)
	}
	d.fail("titleSuffix", codeType, "expected string or boolean, got "+describe(v), v)
	return TitleSuffixEnabled(true)
}

func (d *decoder) license(m map[string]any) foundation.Option[string] {
	id := d.optionalString(m, "", "licenseId", 0)
	if id.IsSome() && !KnownLicense(id.Unwrap()) {
		d.fail("licenseId", codeUnknown, fmt.Sprintf("unknown SPDX license identifier %q", id.Unwrap()), id.Unwrap())
		return foundation.None[string]()
	}
	return id
}

func (d *decoder) side(m map[string]any) Side {
	v, ok := lookup(m, "side")
	if !ok {
		d.fail("side", codeRequired, "required object", nil)
		return Side{}
	}
	sm, ok := d.object("side", v)
	if !ok {
		return Side{}
	}
	d.unknownKeys("side", sm, "title", "sub", "bio", "navHome", "footer", "navStyle",
		"navMenuIconHoverCursor", "footerStyle", "toc")

	return Side{
		Title:                  d.requiredString(sm, "side", "title"),
		Sub:                    d.requiredString(sm, "side", "sub"),
		Bio:                    d.requiredString(sm, "side", "bio"),
		NavHome:                d.navHome(sm),
		Footer:                 d.footer(sm),
		NavStyle:               enumField(d, sm, "side", "navStyle", linkStyleNormalizer),
		NavMenuIconHoverCursor: enumField(d, sm, "side", "navMenuIconHoverCursor", hoverCursorNormalizer),
		FooterStyle:            enumField(d, sm, "side", "footerStyle", linkStyleNormalizer),
		Toc:                    d.toc(sm),
	}
}

func (d *decoder) navHome(side map[string]any) NavHome {
	const path = "side.navHome"
	def := DefaultNavHome()
	m, ok := d.optionalObject(side, "side", "navHome")
	if !ok {
		return def
	}
	d.unknownKeys(path, m, "title", "link", "icon")

	home := NavHome{
		Title: d.stringOr(m, path, "title", def.Title),
		Link:  d.stringOr(m, path, "link", def.Link),
		Icon:  def.Icon,
	}
	if v, ok := lookup(m, "icon"); ok {
		if icon, ok := d.icon(joinPath(path, "icon"), v); ok {
			home.Icon = icon
		}
	}
	return home
}

func (d *decoder) footer(side map[string]any) []FooterLink {
	const path = "side.footer"
	v, ok := lookup(side, "footer")
	if !ok {
		return DefaultFooter()
	}
	items, ok := v.([]any)
	if !ok {
		d.fail(path, codeType, "expected array, got "+describe(v), v)
		return nil
	}
	if len(items) == 0 {
		d.fail(path, codeMinItems, "must contain at least 1 item(s)", v)
		return nil
	}

	links := make([]FooterLink, 0, len(items))
	for i, item := range items {
		p := indexPath(path, i)
		m, ok := d.object(p, item)
		if !ok {
			continue
		}
		d.unknownKeys(p, m, "title", "link", "icon")
		link := FooterLink{
			Title: d.requiredString(m, p, "title"),
			Link:  d.requiredString(m, p, "link"),
		}
		if iv, ok := lookup(m, "icon"); ok {
			link.Icon, _ = d.icon(joinPath(p, "icon"), iv)
		} else {
			d.fail(joinPath(p, "icon"), codeRequired, "required icon", nil)
		}
		links = append(links, link)
	}
	return links
}

func (d *decoder) toc(side map[string]any) Toc {
	const path = "side.toc"
	def := DefaultToc()
	m, ok := d.optionalObject(side, "side", "toc")
	if !ok {
		return def
	}
	d.unknownKeys(path, m, "enabled", "title", "minLength", "maxDepth")

	return Toc{
		Enabled:   d.boolOr(m, path, "enabled", def.Enabled),
		Title:     d.stringOr(m, path, "title", def.Title),
		MinLength: d.optionalIntRange(m, path, "minLength", 1, 3),
		MaxDepth:  d.optionalIntRange(m, path, "maxDepth", 1, 6),
	}
}

func (d *decoder) markdown(root map[string]any) Markdown {
	const path = "markdown"
	def := DefaultMarkdown()
	m, ok := d.optionalObject(root, "", "markdown")
	if !ok {
		return def
	}
	d.unknownKeys(path, m, "colorizedBrackets", "twoslash", "headingAnchor")

	return Markdown{
		ColorizedBrackets: d.trigger(m, path, "colorizedBrackets", def.ColorizedBrackets),
		Twoslash:          d.trigger(m, path, "twoslash", def.Twoslash),
		HeadingAnchor:     d.stringOr(m, path, "headingAnchor", def.HeadingAnchor),
	}
}

func (d *decoder) trigger(parent map[string]any, path, key string, def Trigger) Trigger {
	m, ok := d.optionalObject(parent, path, key)
	if !ok {
		return def
	}
	p := joinPath(path, key)
	d.unknownKeys(p, m, "explicitTrigger")
	return Trigger{ExplicitTrigger: d.boolOr(m, p, "explicitTrigger", def.ExplicitTrigger)}
}

func (d *decoder) giscus(root map[string]any) foundation.Option[Giscus] {
	const path = "giscus"
	v, ok := lookup(root, "giscus")
	if !ok {
		return foundation.None[Giscus]()
	}
	m, ok := d.object(path, v)
	if !ok {
		return foundation.None[Giscus]()
	}
	d.unknownKeys(path, m, "repo", "repoId", "category", "categoryId", "mapping", "strict",
		"reactions", "emitMetadata", "inputPosition", "theme")

	g := Giscus{
		Repo:          d.requiredString(m, path, "repo"),
		RepoID:        d.requiredString(m, path, "repoId"),
		Category:      d.requiredString(m, path, "category"),
		CategoryID:    d.requiredString(m, path, "categoryId"),
		Mapping:       enumField(d, m, path, "mapping", giscusMappingNormalizer),
		Strict:        d.boolOr(m, path, "strict", false),
		Reactions:     d.boolOr(m, path, "reactions", true),
		EmitMetadata:  d.boolOr(m, path, "emitMetadata", false),
		InputPosition: enumField(d, m, path, "inputPosition", inputPositionNormalizer),
		Theme:         DefaultGiscusTheme(),
	}
	if tv, ok := lookup(m, "theme"); ok {
		p := joinPath(path, "theme")
		if tm, ok := d.object(p, tv); ok {
			d.unknownKeys(p, tm, "light", "dark")
			g.Theme = GiscusTheme{
				Light: d.requiredString(tm, p, "light"),
				Dark:  d.requiredString(tm, p, "dark"),
			}
		}
	}
	return foundation.Some(g)
}
