package config

import "git.home.luguber.info/inful/fishtheme/internal/foundation/normalization"

// Font selects how web fonts are loaded.
type Font string

const (
	FontAuto     Font = "auto"
	FontFull     Font = "full"
	FontOnlyEn   Font = "only-en"
	FontDisabled Font = "disabled"
	FontDynamic  Font = "dynamic"
)

// LinkStyle controls how navigation and footer links are drawn.
type LinkStyle string

const (
	LinkStyleDefault   LinkStyle = "default"
	LinkStyleOnlyIcon  LinkStyle = "only-icon"
	LinkStyleOnlyTitle LinkStyle = "only-title"
)

// HoverCursor is the cursor shown over navigation menu icons.
type HoverCursor string

const (
	HoverCursorPointer HoverCursor = "pointer"
	HoverCursorNone    HoverCursor = "none"
)

// GiscusMapping selects how pages map to discussions.
type GiscusMapping string

const (
	GiscusMappingPathname GiscusMapping = "pathname"
	GiscusMappingURL      GiscusMapping = "url"
	GiscusMappingTitle    GiscusMapping = "title"
	GiscusMappingOGTitle  GiscusMapping = "og:title"
)

// InputPosition places the comment box above or below the thread.
type InputPosition string

const (
	InputPositionTop    InputPosition = "top"
	InputPositionBottom InputPosition = "bottom"
)

var (
	fontNormalizer = normalization.NewStrictEnumNormalizer("font", map[string]Font{
		"auto":     FontAuto,
		"full":     FontFull,
		"only-en":  FontOnlyEn,
		"disabled": FontDisabled,
		"dynamic":  FontDynamic,
	}, FontAuto)

	linkStyleNormalizer = normalization.NewStrictEnumNormalizer("link style", map[string]LinkStyle{
		"default":    LinkStyleDefault,
		"only-icon":  LinkStyleOnlyIcon,
		"only-title": LinkStyleOnlyTitle,
	}, LinkStyleDefault)

	hoverCursorNormalizer = normalization.NewStrictEnumNormalizer("hover cursor", map[string]HoverCursor{
		"pointer": HoverCursorPointer,
		"none":    HoverCursorNone,
	}, HoverCursorNone)

	giscusMappingNormalizer = normalization.NewStrictEnumNormalizer("giscus mapping", map[string]GiscusMapping{
		"pathname": GiscusMappingPathname,
		"url":      GiscusMappingURL,
		"title":    GiscusMappingTitle,
		"og:title": GiscusMappingOGTitle,
	}, GiscusMappingPathname)

	inputPositionNormalizer = normalization.NewStrictEnumNormalizer("input position", map[string]InputPosition{
		"top":    InputPositionTop,
		"bottom": InputPositionBottom,
	}, InputPositionTop)
)
