package helpers

import "fmt"

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type CoinscopeError struct {
	Message string
	Cause   error
}

func (e *CoinscopeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CoinscopeError) Unwrap() error {
	return e.Cause
}

// Distinct error types for type assertions if needed
type DatasetError struct{ CoinscopeError }
type ConfigurationError struct{ CoinscopeError }
type ValidationError struct{ CoinscopeError }

// -----------------------------------------------------------------------------

// NewDatasetError wraps a cause into a DatasetError.
func NewDatasetError(message string, cause error) *DatasetError {
	return &DatasetError{CoinscopeError{Message: message, Cause: cause}}
}
