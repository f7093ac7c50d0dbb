package normalization

import "fmt"

// EnumNormalizer provides a higher-level interface for enum normalization
// that integrates with config validation.
type EnumNormalizer[T comparable] struct {
	normalizer *Normalizer[T]
	lenient    *Normalizer[T]
	enumName   string // For better error messages
}

// NewEnumNormalizer creates an enum normalizer with descriptive error messages.
// Matching ignores case and surrounding whitespace.
func NewEnumNormalizer[T comparable](enumName string, values map[string]T, defaultValue T) *EnumNormalizer[T] {
	n := NewNormalizer(values, defaultValue)
	return &EnumNormalizer[T]{
		normalizer: n,
		lenient:    n,
		enumName:   enumName,
	}
}

// NewStrictEnumNormalizer creates an enum normalizer that only accepts the
// exact spelling of each value. A lenient lookup is kept for suggestions.
func NewStrictEnumNormalizer[T comparable](enumName string, values map[string]T, defaultValue T) *EnumNormalizer[T] {
	return &EnumNormalizer[T]{
		normalizer: WithCustomNormalizer(values, defaultValue, Exact),
		lenient:    NewNormalizer(values, defaultValue),
		enumName:   enumName,
	}
}

// Name returns the enum name used in messages.
func (e *EnumNormalizer[T]) Name() string {
	return e.enumName
}

// Default returns the enum's default value.
func (e *EnumNormalizer[T]) Default() T {
	return e.normalizer.Default()
}

// Normalize converts raw string to enum value, returning default on invalid input.
func (e *EnumNormalizer[T]) Normalize(raw string) T {
	return e.normalizer.Normalize(raw)
}

// NormalizeWithValidation converts raw string to enum value with validation error.
func (e *EnumNormalizer[T]) NormalizeWithValidation(raw string) (T, error) {
	result, err := e.normalizer.NormalizeWithError(raw)
	if err != nil {
		return result, fmt.Errorf("invalid %s: %w", e.enumName, err)
	}
	return result, nil
}

// IsValid reports whether raw is accepted.
func (e *EnumNormalizer[T]) IsValid(raw string) bool {
	_, ok := e.normalizer.Lookup(raw)
	return ok
}

// ValidValues returns all valid enum values for documentation/help.
func (e *EnumNormalizer[T]) ValidValues() []string {
	return e.normalizer.ValidKeys()
}

// Suggest returns the accepted spelling of raw when only case or whitespace differs.
func (e *EnumNormalizer[T]) Suggest(raw string) (T, bool) {
	if e.IsValid(raw) {
		var zero T
		return zero, false
	}
	return e.lenient.Lookup(raw)
}
