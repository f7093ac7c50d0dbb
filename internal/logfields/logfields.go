package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyCompositionID = "composition_id"
	KeyIntegration   = "integration"
	KeyHook          = "hook"
	KeyStage         = "stage"
	KeyDurationMS    = "duration_ms"
	KeyPath          = "path"
	KeyFile          = "file"
	KeyName          = "name"
	KeyFormat        = "format"
	KeyCount         = "count"
	KeyAddr          = "addr"
	KeyOp            = "op"
	KeyError         = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func CompositionID(id string) slog.Attr { return slog.String(KeyCompositionID, id) }
func Integration(n string) slog.Attr    { return slog.String(KeyIntegration, n) }
func Hook(name string) slog.Attr        { return slog.String(KeyHook, name) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr           { return slog.String(KeyPath, p) }
func File(f string) slog.Attr           { return slog.String(KeyFile, f) }
func Name(n string) slog.Attr           { return slog.String(KeyName, n) }
func Format(f string) slog.Attr         { return slog.String(KeyFormat, f) }
func Count(n int) slog.Attr             { return slog.Int(KeyCount, n) }
func Addr(a string) slog.Attr           { return slog.String(KeyAddr, a) }
func Op(o string) slog.Attr             { return slog.String(KeyOp, o) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
