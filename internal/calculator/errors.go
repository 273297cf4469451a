package calculator

import "fmt"

// ValidationError means the input is malformed or out of accepted range.
// It maps to HTTP 400.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalidf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DomainError means the input is well-formed but the calculation cannot
// produce a meaningful result. It maps to HTTP 422.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func domainf(format string, args ...any) error {
	return &DomainError{Message: fmt.Sprintf(format, args...)}
}
