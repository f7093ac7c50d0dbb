package foundation

import (
	stderrors "errors"
	"fmt"

	"git.home.luguber.info/inful/fishtheme/internal/foundation/errors"
)

// ContextKeyFields is the error context key holding []FieldError.
const ContextKeyFields = "fields"

// Field error codes.
const (
	CodeRequired  = "required"
	CodeType      = "type"
	CodeEnum      = "enum"
	CodeRange     = "range"
	CodeMinLength = "min_length"
	CodeMinItems  = "min_items"
	CodeUnknown   = "unknown"
	CodeShape     = "shape"
)

// ValidationResult contains the result of a validation operation.
type ValidationResult struct {
	Valid  bool
	Errors []FieldError
}

// FieldError represents a single validation failure.
type FieldError struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface.
func (fe FieldError) Error() string {
	if fe.Path != "" {
		return fmt.Sprintf("%s: %s", fe.Path, fe.Message)
	}
	return fe.Message
}

// Valid creates a successful validation result.
func Valid() ValidationResult {
	return ValidationResult{Valid: true}
}

// Invalid creates a failed validation result with errors.
func Invalid(errors ...FieldError) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: errors,
	}
}

// NewFieldError creates a field error.
func NewFieldError(path, code, message string) FieldError {
	return FieldError{
		Path:    path,
		Code:    code,
		Message: message,
	}
}

// WithValue returns a copy of the error carrying the offending value.
func (fe FieldError) WithValue(v any) FieldError {
	fe.Value = v
	return fe
}

// Add records a failure.
func (vr *ValidationResult) Add(fe FieldError) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, fe)
}

// Combine merges multiple validation results.
func (vr ValidationResult) Combine(other ValidationResult) ValidationResult {
	if vr.Valid && other.Valid {
		return Valid()
	}

	var allErrors []FieldError
	allErrors = append(allErrors, vr.Errors...)
	allErrors = append(allErrors, other.Errors...)

	return Invalid(allErrors...)
}

// ToError converts a validation result to a classified validation error.
// The error context carries the field errors and one detail line per field.
func (vr ValidationResult) ToError(message string) error {
	if vr.Valid {
		return nil
	}

	details := make([]string, 0, len(vr.Errors))
	for _, fe := range vr.Errors {
		details = append(details, fe.Error())
	}

	return errors.ValidationError(message).
		WithContext(ContextKeyFields, append([]FieldError(nil), vr.Errors...)).
		WithContext(errors.ContextKeyDetails, details).
		Build()
}

// FieldErrorsFrom extracts the field errors carried by err, if any.
func FieldErrorsFrom(err error) []FieldError {
	var classified *errors.ClassifiedError
	if !stderrors.As(err, &classified) {
		return nil
	}
	fields, _ := classified.Context()[ContextKeyFields].([]FieldError)
	return fields
}
