package pipeline

import (
	"fmt"
	"strings"
)

// ValidationResult holds the results of pipeline validation.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// AddError adds an error to the validation result.
func (vr *ValidationResult) AddError(format string, args ...any) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fmt.Sprintf(format, args...))
}

// AddWarning adds a warning to the validation result.
func (vr *ValidationResult) AddWarning(format string, args ...any) {
	vr.Warnings = append(vr.Warnings, fmt.Sprintf(format, args...))
}

// Err returns the errors joined into one error, or nil when valid.
func (vr *ValidationResult) Err() error {
	if vr.Valid {
		return nil
	}
	return fmt.Errorf("invalid pipeline: %s", strings.Join(vr.Errors, "; "))
}

// Validate checks that the fixed order satisfies every declared constraint:
// stage names are unique, kinds are known and grouped in KindOrder, and each
// MustRunAfter dependency exists and appears earlier.
func Validate(p Pipeline) *ValidationResult {
	result := &ValidationResult{Valid: true}

	checkList := func(list []Stage, kind Kind) {
		for _, s := range list {
			if s.Kind != kind {
				result.AddError("stage %q has kind %q but is listed under %q", s.Name, s.Kind, kind)
			}
		}
	}
	checkList(p.Transformers, KindTransformer)
	checkList(p.PreParse, KindPreParse)
	checkList(p.PostParse, KindPostParse)

	stages := p.Stages()
	if len(stages) == 0 {
		result.AddWarning("pipeline has no stages")
		return result
	}

	position := make(map[string]int, len(stages))
	for i, s := range stages {
		if s.Name == "" {
			result.AddError("stage %d has no name", i+1)
			continue
		}
		if KindIndex(s.Kind) < 0 {
			result.AddError("stage %q has invalid kind %q", s.Name, s.Kind)
		}
		if prev, dup := position[s.Name]; dup {
			result.AddError("stage %q appears twice (positions %d and %d)", s.Name, prev+1, i+1)
			continue
		}
		position[s.Name] = i
	}

	for i, s := range stages {
		for _, dep := range s.MustRunAfter {
			at, exists := position[dep]
			switch {
			case !exists:
				result.AddError("stage %q depends on missing stage %q (MustRunAfter)", s.Name, dep)
			case at >= i:
				result.AddError("stage %q must run after %q but is at position %d before %d", s.Name, dep, i+1, at+1)
			case stages[at].Kind != s.Kind:
				result.AddWarning("stage %q (%s) depends on %q (%s); ordering is guaranteed by the host list order",
					s.Name, s.Kind, dep, stages[at].Kind)
			}
		}
	}

	return result
}

// PrintValidationResult formats a validation result for display.
func PrintValidationResult(result *ValidationResult) string {
	var sb strings.Builder

	sb.WriteString("Pipeline Validation\n")
	sb.WriteString("===================\n\n")

	if result.Valid && len(result.Warnings) == 0 {
		sb.WriteString("✓ Pipeline is valid with no warnings\n")
		return sb.String()
	}

	if len(result.Errors) > 0 {
		sb.WriteString(fmt.Sprintf("✗ Errors (%d):\n", len(result.Errors)))
		for i, err := range result.Errors {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
		sb.WriteString("\n")
	}

	if len(result.Warnings) > 0 {
		sb.WriteString(fmt.Sprintf("⚠ Warnings (%d):\n", len(result.Warnings)))
		for i, warn := range result.Warnings {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, warn))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
