package integration

import (
	"os"
	"path/filepath"
)

// CustomStylePath is the local stylesheet picked up when it exists.
const CustomStylePath = "./src/styles/custom-fish.css"

// AddCustomStylesheet appends CustomStylePath to
// options["overrides"]["userCustomStyle"] when the file exists under workDir.
// Missing maps and lists are created. The path is never added twice.
// It reports whether options changed.
func AddCustomStylesheet(options map[string]any, workDir string) bool {
	if options == nil {
		return false
	}
	if _, err := os.Stat(filepath.Join(workDir, CustomStylePath)); err != nil {
		return false
	}

	overrides, ok := options["overrides"].(map[string]any)
	if !ok {
		overrides = map[string]any{}
		options["overrides"] = overrides
	}

	switch styles := overrides["userCustomStyle"].(type) {
	case nil:
		overrides["userCustomStyle"] = []any{CustomStylePath}
	case string:
		if styles == CustomStylePath {
			return false
		}
		overrides["userCustomStyle"] = []any{styles, CustomStylePath}
	case []string:
		for _, s := range styles {
			if s == CustomStylePath {
				return false
			}
		}
		overrides["userCustomStyle"] = append(styles, CustomStylePath)
	case []any:
		for _, s := range styles {
			if s == CustomStylePath {
				return false
			}
		}
		overrides["userCustomStyle"] = append(styles, CustomStylePath)
	default:
		// Left for the theme provider to reject.
		return false
	}
	return true
}
