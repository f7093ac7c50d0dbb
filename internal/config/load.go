package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
	"git.home.luguber.info/inful/fishtheme/internal/logfields"
)

// envFiles are loaded from the options file's directory, most specific first.
// godotenv never overrides variables that are already set, so earlier files win.
var envFiles = []string{".env.local", ".env"}

// LoadOptions reads a theme options file (YAML, TOML or JSON by extension),
// expands ${VAR} references and returns the decoded tree.
func LoadOptions(path string) (map[string]any, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NewError(errors.CategoryNotFound, "options file not found").
			WithContext("path", path).
			WithContext(errors.ContextKeyDetails, []string{path}).
			Build()
	}

	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryFileSystem, "failed to read options file").
			WithContext("path", path).
			Build()
	}

	expanded := expandEnv(data)

	options, err := decodeOptions(format, expanded)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse options file").
			Fatal().
			WithContext("path", path).
			WithContext("format", format).
			Build()
	}
	if options == nil {
		options = map[string]any{}
	}
	return options, nil
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv substitutes ${VAR} references to set variables. Bare $NAME,
// $$ and references to unset variables are left as written.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		name := envRef.FindSubmatch(ref)[1]
		if v, ok := os.LookupEnv(string(name)); ok {
			return []byte(v)
		}
		return ref
	})
}

func formatFor(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	case ".json":
		return "json", nil
	}
	return "", errors.ConfigError("unsupported options file extension").
		WithContext("path", path).
		WithContext(errors.ContextKeyDetails, []string{"use .yaml, .yml, .toml or .json: " + path}).
		Build()
}

func decodeOptions(format string, data []byte) (map[string]any, error) {
	var options map[string]any
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, &options)
	case "json":
		err = json.Unmarshal(data, &options)
	default:
		err = yaml.Unmarshal(data, &options)
	}
	return options, err
}

func loadEnvFiles(dir string) {
	for _, name := range envFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(p), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(p))
	}
}
