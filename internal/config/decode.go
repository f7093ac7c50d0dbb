package config

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"git.home.luguber.info/inful/fishtheme/internal/foundation"
	"git.home.luguber.info/inful/fishtheme/internal/foundation/normalization"
)

const (
	codeRequired  = foundation.CodeRequired
	codeType      = foundation.CodeType
	codeEnum      = foundation.CodeEnum
	codeRange     = foundation.CodeRange
	codeMinLength = foundation.CodeMinLength
	codeMinItems  = foundation.CodeMinItems
	codeUnknown   = foundation.CodeUnknown
	codeShape     = foundation.CodeShape
)

// decoder walks an untyped options tree, collecting field errors and warnings.
type decoder struct {
	result   foundation.ValidationResult
	warnings []string
}

func newDecoder() *decoder {
	return &decoder{result: foundation.Valid()}
}

func (d *decoder) fail(path, code, message string, value any) {
	d.result.Add(foundation.NewFieldError(path, code, message).WithValue(value))
}

func (d *decoder) warn(format string, args ...any) {
	d.warnings = append(d.warnings, fmt.Sprintf(format, args...))
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

func indexPath(parent string, i int) string {
	return fmt.Sprintf("%s[%d]", parent, i)
}

// asObject accepts the map shapes produced by the supported decoders.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number"
	case []any:
		return "array"
	}
	if _, ok := asObject(v); ok {
		return "object"
	}
	return fmt.Sprintf("%T", v)
}

// lookup returns the value under key, treating an explicit null as absent.
func lookup(m map[string]any, key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// unknownKeys reports keys outside known as stripped.
func (d *decoder) unknownKeys(path string, m map[string]any, known ...string) {
	var extra []string
	for k := range m {
		found := false
		for _, kk := range known {
			if k == kk {
				found = true
				break
			}
		}
		if !found {
			extra = append(extra, joinPath(path, k))
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		d.warn("ignoring unknown key %s", k)
	}
}

func (d *decoder) object(path string, v any) (map[string]any, bool) {
	m, ok := asObject(v)
	if !ok {
		d.fail(path, codeType, "expected object, got "+describe(v), v)
	}
	return m, ok
}

// optionalObject returns the object under key; absent yields an empty map.
func (d *decoder) optionalObject(m map[string]any, path, key string) (map[string]any, bool) {
	v, ok := lookup(m, key)
	if !ok {
		return map[string]any{}, true
	}
	return d.object(joinPath(path, key), v)
}

func (d *decoder) requiredString(m map[string]any, path, key string) string {
	p := joinPath(path, key)
	v, ok := lookup(m, key)
	if !ok {
		d.fail(p, codeRequired, "required string", nil)
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.fail(p, codeType, "expected string, got "+describe(v), v)
	}
	return s
}

func (d *decoder) stringOr(m map[string]any, path, key, def string) string {
	v, ok := lookup(m, key)
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		d.fail(joinPath(path, key), codeType, "expected string, got "+describe(v), v)
		return def
	}
	return s
}

func (d *decoder) optionalString(m map[string]any, path, key string, minLen int) foundation.Option[string] {
	v, ok := lookup(m, key)
	if !ok {
		return foundation.None[string]()
	}
	p := joinPath(path, key)
	s, ok := v.(string)
	if !ok {
		d.fail(p, codeType, "expected string, got "+describe(v), v)
		return foundation.None[string]()
	}
	if len(s) < minLen {
		d.fail(p, codeMinLength, fmt.Sprintf("must contain at least %d character(s)", minLen), v)
		return foundation.None[string]()
	}
	return foundation.Some(s)
}

func (d *decoder) boolOr(m map[string]any, path, key string, def bool) bool {
	v, ok := lookup(m, key)
	if !ok {
		return def
	}
	b, ok := v.(bool)
	if !ok {
		d.fail(joinPath(path, key), codeType, "expected boolean, got "+describe(v), v)
		return def
	}
	return b
}

// toInt accepts the integer kinds produced by decoders and integral floats.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func (d *decoder) optionalIntRange(m map[string]any, path, key string, lo, hi int) foundation.Option[int] {
	v, ok := lookup(m, key)
	if !ok {
		return foundation.None[int]()
	}
	p := joinPath(path, key)
	n, ok := toInt(v)
	if !ok {
		d.fail(p, codeType, "expected integer, got "+describe(v), v)
		return foundation.None[int]()
	}
	if n < lo || n > hi {
		d.fail(p, codeRange, fmt.Sprintf("must be between %d and %d", lo, hi), v)
		return foundation.None[int]()
	}
	return foundation.Some(n)
}

// enumField decodes a closed-set string, returning the normalizer default when absent.
func enumField[T ~string](d *decoder, m map[string]any, path, key string, n *normalization.EnumNormalizer[T]) T {
	v, ok := lookup(m, key)
	if !ok {
		return n.Default()
	}
	p := joinPath(path, key)
	s, ok := v.(string)
	if !ok {
		d.fail(p, codeType, "expected string, got "+describe(v), v)
		return n.Default()
	}
	value, err := n.NormalizeWithValidation(s)
	if err != nil {
		msg := "must be one of [" + strings.Join(n.ValidValues(), ", ") + "]"
		if suggestion, ok := n.Suggest(s); ok {
			msg += fmt.Sprintf(" (did you mean %q?)", string(suggestion))
		}
		d.fail(p, codeEnum, msg, v)
		return n.Default()
	}
	return value
}
