package parser

import (
	"fmt"
	"strings"
)

// ParseError is a single parse failure with its source location.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// ParseErrors collects every error encountered during a parse so the caller
// can report them all at once instead of stopping at the first one.
type ParseErrors struct {
	errors []ParseError
}

// Add appends a new parse error.
func (p *ParseErrors) Add(msg string, line, column int) {
	p.errors = append(p.errors, ParseError{
		Message: msg,
		Line:    line,
		Column:  column,
	})
}

// Addf appends a new parse error with formatting.
func (p *ParseErrors) Addf(line, column int, format string, args ...any) {
	p.Add(fmt.Sprintf(format, args...), line, column)
}

// HasErrors reports whether any errors have been collected.
func (p *ParseErrors) HasErrors() bool {
	return len(p.errors) > 0
}

// Count returns the number of collected errors.
func (p *ParseErrors) Count() int {
	return len(p.errors)
}

// Errors returns every collected error.
func (p *ParseErrors) Errors() []ParseError {
	return p.errors
}

// Error implements the error interface.
func (p *ParseErrors) Error() string {
	if len(p.errors) == 0 {
		return "no errors"
	}
	if len(p.errors) == 1 {
		return p.errors[0].Error()
	}

	msgs := make([]string, 0, len(p.errors))
	for _, err := range p.errors {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("%d parse errors:\n%s", len(p.errors), strings.Join(msgs, "\n"))
}

// First returns the first collected error, or nil if there are none.
func (p *ParseErrors) First() error {
	if len(p.errors) == 0 {
		return nil
	}

	return p.errors[0]
}
