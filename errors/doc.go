// Package errors provides structured error types for the contract runner.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, host result code, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseFixture, errors.KindInvalidData).
//		Path("escrow", "Condition").
//		Detail("odd-length hex string").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing(errors.PhaseFixture, path, "Account")
//	err := errors.Wrap(errors.PhaseFixture, errors.KindInvalidData, err, "decode fixture")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
