package errors

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: 0},
		{name: "validation", err: ValidationError("invalid input").Build(), expected: 2},
		{name: "config", err: ConfigError("no config").Build(), expected: 7},
		{name: "filesystem", err: FileSystemError("read failed").Build(), expected: 11},
		{name: "integration", err: IntegrationError("compose failed").Build(), expected: 12},
		{name: "internal", err: InternalError("boom").Build(), expected: 10},
		{name: "wrapped validation", err: fmt.Errorf("load: %w", ValidationError("bad").Build()), expected: 2},
		{name: "unclassified error", err: stderrors.New("unknown error"), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapter.ExitCodeFor(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCodeFor() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCLIErrorAdapter_FormatError(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	t.Run("details are listed", func(t *testing.T) {
		err := ValidationError("theme configuration is invalid").
			WithContext(ContextKeyDetails, []string{"title: required", "side.bio: required"}).
			Build()
		got := adapter.FormatError(err)
		want := "Error: theme configuration is invalid\n  - title: required\n  - side.bio: required"
		if got != want {
			t.Errorf("FormatError() = %q, want %q", got, want)
		}
	})

	t.Run("cause is appended without details", func(t *testing.T) {
		err := WrapError(stderrors.New("permission denied"), CategoryFileSystem, "failed to read options").Build()
		got := adapter.FormatError(err)
		if got != "Error: failed to read options: permission denied" {
			t.Errorf("FormatError() = %q", got)
		}
	})

	t.Run("internal errors are hidden", func(t *testing.T) {
		got := adapter.FormatError(InternalError("nil map").Build())
		if !strings.Contains(got, "use -v") {
			t.Errorf("FormatError() = %q, expected hint", got)
		}
	})

	t.Run("verbose prints full error", func(t *testing.T) {
		verbose := NewCLIErrorAdapter(true, nil)
		got := verbose.FormatError(ConfigError("no config").Build())
		if got != "[config:fatal] no config" {
			t.Errorf("FormatError() = %q", got)
		}
	})

	t.Run("unclassified", func(t *testing.T) {
		if got := adapter.FormatError(stderrors.New("x")); got != "Error: x" {
			t.Errorf("FormatError() = %q", got)
		}
	})
}
