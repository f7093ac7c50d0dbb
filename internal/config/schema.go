package config

import "encoding/json"

// Schema returns a JSON Schema describing a theme options file as indented JSON.
func Schema() []byte {
	schema := map[string]any{
		"$schema":              "https://json-schema.org/draft/2020-12/schema",
		"title":                "Fish theme options",
		"description":          "Options passed to the Fish theme integration: the theme configuration and optional virtual import overrides.",
		"type":                 "object",
		"required":             []string{"config"},
		"additionalProperties": false,
		"$defs": map[string]any{
			"iconValue": map[string]any{
				"description": "An icon name such as \"simple-icons:github\", or a pair used for light and dark color schemes.",
				"oneOf": []any{
					map[string]any{"type": "string"},
					map[string]any{
						"type":     "object",
						"required": []string{"light", "dark"},
						"properties": map[string]any{
							"light": map[string]any{"type": "string"},
							"dark":  map[string]any{"type": "string"},
						},
					},
				},
			},
			"icon": map[string]any{
				"description": "An icon value, or a {default, hover, active} object whose states are icon values.",
				"anyOf": []any{
					map[string]any{"$ref": "#/$defs/iconValue"},
					map[string]any{
						"type":     "object",
						"required": []string{"default", "hover", "active"},
						"properties": map[string]any{
							"default": map[string]any{"$ref": "#/$defs/iconValue"},
							"hover":   map[string]any{"$ref": "#/$defs/iconValue"},
							"active":  map[string]any{"$ref": "#/$defs/iconValue"},
						},
					},
				},
			},
			"linkStyle": enumSchema("How links are drawn.", linkStyleNormalizer.ValidValues(), string(LinkStyleDefault)),
		},
		"properties": map[string]any{
			"config":    themeConfigSchema(),
			"overrides": overridesSchema(),
		},
	}

	out, _ := json.MarshalIndent(schema, "", "  ")
	return out
}

func enumSchema(description string, values []string, def string) map[string]any {
	return map[string]any{
		"type":        "string",
		"description": description,
		"enum":        values,
		"default":     def,
	}
}

func stringSchema(description string) map[string]any {
	return map[string]any{"type": "string", "description": description}
}

func boolSchema(description string, def bool) map[string]any {
	return map[string]any{"type": "boolean", "description": description, "default": def}
}

func themeConfigSchema() map[string]any {
	defs := Defaults()
	return map[string]any{
		"description": "Theme configuration. Unknown keys are ignored.",
		"type":        "object",
		"required":    []string{"lang", "title", "side"},
		"properties": map[string]any{
			"lang":  stringSchema("Site language as a BCP 47 tag (e.g. \"en\")."),
			"title": stringSchema("Site title."),
			"titleSuffix": map[string]any{
				"description": "Suffix appended to page titles: a literal string, or a boolean toggling the default suffix.",
				"type":        []string{"string", "boolean"},
				"default":     true,
			},
			"description": stringSchema("Site description."),
			"author":      stringSchema("Default post author."),
			"placeholderImage": map[string]any{
				"type":        "string",
				"description": "Image shown for posts without a cover.",
				"minLength":   1,
			},
			"licenseId": map[string]any{
				"type":        "string",
				"description": "SPDX license identifier for site content.",
				"enum":        Licenses(),
			},
			"rss":               boolSchema("Publish an RSS feed.", defs.RSS),
			"googleAnalyticsId": stringSchema("Google Analytics measurement ID."),
			"font":              enumSchema("Web font loading mode.", fontNormalizer.ValidValues(), string(defs.Font)),
			"shootingStar":      boolSchema("Show the shooting star background animation.", defs.ShootingStar),
			"side":              sideSchema(defs),
			"markdown":          markdownSchema(defs),
			"giscus":            giscusSchema(defs),
		},
	}
}

func sideSchema(defs DefaultSet) map[string]any {
	link := map[string]any{
		"type":     "object",
		"required": []string{"title", "link", "icon"},
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"link":  map[string]any{"type": "string"},
			"icon":  map[string]any{"$ref": "#/$defs/icon"},
		},
	}
	return map[string]any{
		"description": "Sidebar.",
		"type":        "object",
		"required":    []string{"title", "sub", "bio"},
		"properties": map[string]any{
			"title": stringSchema("Sidebar title."),
			"sub":   stringSchema("Sidebar subtitle."),
			"bio":   stringSchema("Short biography."),
			"navHome": map[string]any{
				"description": "Link back to the home page.",
				"type":        "object",
				"properties": map[string]any{
					"title": map[string]any{"type": "string", "default": defs.NavHome.Title},
					"link":  map[string]any{"type": "string", "default": defs.NavHome.Link},
					"icon":  map[string]any{"$ref": "#/$defs/icon", "default": defs.NavHome.Icon},
				},
			},
			"footer": map[string]any{
				"description": "Footer links.",
				"type":        "array",
				"minItems":    1,
				"items":       link,
				"default":     defs.Footer,
			},
			"navStyle": map[string]any{"$ref": "#/$defs/linkStyle"},
			"navMenuIconHoverCursor": enumSchema("Cursor over navigation icons.",
				hoverCursorNormalizer.ValidValues(), string(defs.HoverCursor)),
			"footerStyle": map[string]any{"$ref": "#/$defs/linkStyle"},
			"toc": map[string]any{
				"description": "Table of contents.",
				"type":        "object",
				"properties": map[string]any{
					"enabled":   boolSchema("Show the table of contents.", defs.Toc.Enabled),
					"title":     map[string]any{"type": "string", "default": defs.Toc.Title},
					"minLength": map[string]any{"type": "integer", "minimum": 1, "maximum": 3, "description": "Minimum heading count before the table is shown."},
					"maxDepth":  map[string]any{"type": "integer", "minimum": 1, "maximum": 6, "description": "Deepest heading level listed."},
				},
			},
		},
	}
}

func markdownSchema(defs DefaultSet) map[string]any {
	trigger := func(description string, def bool) map[string]any {
		return map[string]any{
			"type":        "object",
			"description": description,
			"properties": map[string]any{
				"explicitTrigger": boolSchema("Only apply when the code block meta requests it.", def),
			},
		}
	}
	return map[string]any{
		"description": "Markdown rendering switches.",
		"type":        "object",
		"properties": map[string]any{
			"colorizedBrackets": trigger("Bracket pair colorizing in code blocks.", defs.Markdown.ColorizedBrackets.ExplicitTrigger),
			"twoslash":          trigger("Type hover annotations in code blocks.", defs.Markdown.Twoslash.ExplicitTrigger),
			"headingAnchor":     map[string]any{"type": "string", "default": defs.Markdown.HeadingAnchor, "description": "Glyph appended to headings as a self link."},
		},
	}
}

func giscusSchema(defs DefaultSet) map[string]any {
	return map[string]any{
		"description": "Giscus comments widget. Omit to disable comments.",
		"type":        "object",
		"required":    []string{"repo", "repoId", "category", "categoryId"},
		"properties": map[string]any{
			"repo":          stringSchema("Repository in owner/name form."),
			"repoId":        stringSchema("Repository ID."),
			"category":      stringSchema("Discussion category."),
			"categoryId":    stringSchema("Discussion category ID."),
			"mapping":       enumSchema("Page to discussion mapping.", giscusMappingNormalizer.ValidValues(), string(defs.GiscusMapping)),
			"strict":        boolSchema("Use strict title matching.", false),
			"reactions":     boolSchema("Enable reactions on the main post.", true),
			"emitMetadata":  boolSchema("Emit discussion metadata.", false),
			"inputPosition": enumSchema("Comment box position.", inputPositionNormalizer.ValidValues(), string(defs.GiscusInput)),
			"theme": map[string]any{
				"type":     "object",
				"required": []string{"light", "dark"},
				"properties": map[string]any{
					"light": map[string]any{"type": "string"},
					"dark":  map[string]any{"type": "string"},
				},
				"default": defs.GiscusTheme,
			},
		},
	}
}

func overridesSchema() map[string]any {
	return map[string]any{
		"description":          "Replacements for the theme's virtual imports.",
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"userCustomStyle": map[string]any{
				"description": "Stylesheets loaded after the theme styles.",
				"type":        []string{"string", "array"},
				"items":       map[string]any{"type": "string"},
			},
			"custom": map[string]any{
				"description":          "Component slots, each mapped to a component path.",
				"type":                 "object",
				"additionalProperties": map[string]any{"type": "string"},
			},
		},
	}
}
