package dify

import (
	"errors"
	"fmt"
)

// ErrResponseShape marks replies missing the expected data.outputs.text
// nesting. It is wrapped in a ParseError before reaching the caller, but the
// two stages are logged separately for diagnostics.
var ErrResponseShape = errors.New("invalid response structure")

// TransportError reports a network failure or a non-2xx status from the AI
// service. It aborts the run.
type TransportError struct {
	cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("AI service request failed: %s", e.cause)
}

func (e *TransportError) Unwrap() error { return e.cause }

// ParseError reports that the AI reply could not be turned into name pairs:
// wrong response shape, unrepairable JSON, or a payload missing the expected
// fields. The originating error is preserved as the cause.
type ParseError struct {
	cause error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse AI response: %s", e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }
