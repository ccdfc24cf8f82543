package loc

import (
	"fmt"
	"time"
)

// ParseError is a structural error in a required command. It aborts the
// parse of the document it occurs in.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// FieldError is a malformed line or a missing header key. The offending
// entry is skipped and parsing continues.
type FieldError struct {
	Source string
	Line   int
	Msg    string
}

func (e *FieldError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Result is the outcome of parsing one loc document.
type Result struct {
	Languages   []*Language
	Cancelled   bool
	Elapsed     time.Duration
	Diagnostics []*FieldError
}

// Status returns the progress word printed after an operation.
func Status(cancelled bool) string {
	if cancelled {
		return "CANCELLED"
	}
	return "DONE"
}
