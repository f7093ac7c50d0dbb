package theme

import (
	"fmt"
	"slices"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// ResolveImports applies overrides to the default imports. An override
// replaces the default for its key. Unknown keys and malformed values fail.
func ResolveImports(overrides any) (Imports, error) {
	imports := DefaultImports()
	if overrides == nil {
		return imports, nil
	}

	m, ok := overrides.(map[string]any)
	if !ok {
		return imports, overrideError("overrides", fmt.Sprintf("expected an object, got %T", overrides))
	}

	for key, value := range m {
		if value == nil {
			continue
		}
		switch key {
		case "userCustomStyle":
			styles, err := stringList(value)
			if err != nil {
				return imports, overrideError("overrides.userCustomStyle", err.Error())
			}
			imports.UserCustomStyle = styles
		case "custom":
			if err := applyCustom(imports.Custom, value); err != nil {
				return imports, err
			}
		default:
			return imports, overrideError("overrides."+key, "unknown override")
		}
	}
	return imports, nil
}

func applyCustom(custom map[string]string, value any) error {
	m, ok := value.(map[string]any)
	if !ok {
		return overrideError("overrides.custom", fmt.Sprintf("expected an object, got %T", value))
	}
	for slot, target := range m {
		if !slices.Contains(CustomSlots, slot) {
			return overrideError("overrides.custom."+slot, "unknown custom export")
		}
		path, ok := target.(string)
		if !ok || path == "" {
			return overrideError("overrides.custom."+slot, "expected a non-empty path")
		}
		custom[slot] = path
	}
	return nil
}

func stringList(value any) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []string:
		return append([]string(nil), v...), nil
	case []any:
		out := make([]string, 0, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("item %d: expected a string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected a path or a list of paths, got %T", value)
	}
}

func overrideError(path, reason string) error {
	return errors.ConfigError("invalid theme override").
		Fatal().
		WithContext("path", path).
		WithContext(errors.ContextKeyDetails, []string{path + ": " + reason}).
		Build()
}
