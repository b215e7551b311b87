package parser

import "fmt"

// ErrorKind classifies parse failures so callers can distinguish user
// mistakes from caller defects without matching on message text.
type ErrorKind int

const (
	// MissingInput marks a required input that was never supplied.
	// This is a defect in the caller, not bad user input.
	MissingInput ErrorKind = iota

	// FormatViolation marks user input that fails a value type's
	// validation predicate. Recoverable; the message is shown verbatim.
	FormatViolation

	// InvalidIndex marks a one-based index string that is not a
	// positive integer.
	InvalidIndex

	// ArityViolation marks composite input that splits into the wrong
	// number of components.
	ArityViolation
)

// ParseError is the uniform failure returned by every parse function.
// Message carries the fixed, user-facing constraint text of the target
// type.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

func formatViolation(message string) *ParseError {
	return &ParseError{Kind: FormatViolation, Message: message}
}

func missingInput(what string) *ParseError {
	return &ParseError{Kind: MissingInput, Message: fmt.Sprintf("%s must be provided", what)}
}
