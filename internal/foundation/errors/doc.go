// Package errors provides the classified error primitives used across fishtheme.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, filesystem, integration, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - ClassifiedError: structured error with category, severity and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting for the CLI
//
// Example usage:
//
//	err := errors.ValidationError("theme configuration is invalid").
//		WithContext("fields", fieldErrors).
//		Build()
package errors
