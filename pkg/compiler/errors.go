package compiler

import (
	"fmt"
	"strings"
)

// CompileError is a single semantic failure discovered while lowering the
// AST: a redeclared identifier, an assignment to an undeclared name, or a
// type mismatch on reassignment.
type CompileError struct {
	Message string
}

func (e CompileError) Error() string { return e.Message }

// CompileErrors collects every error encountered while compiling so the
// caller can report all of them at once, the same collection idiom
// pkg/parser uses for ParseErrors.
type CompileErrors struct {
	errors []CompileError
}

// Add appends a pre-formatted compile error.
func (c *CompileErrors) Add(msg string) {
	c.errors = append(c.errors, CompileError{Message: msg})
}

// Addf appends a compile error built from a format string.
func (c *CompileErrors) Addf(format string, args ...any) {
	c.Add(fmt.Sprintf(format, args...))
}

// HasErrors reports whether any error has been collected.
func (c *CompileErrors) HasErrors() bool { return len(c.errors) > 0 }

// Count returns the number of collected errors.
func (c *CompileErrors) Count() int { return len(c.errors) }

// Errors returns every collected error.
func (c *CompileErrors) Errors() []CompileError { return c.errors }

// Messages returns every collected error rendered as a string, in the order
// they were recorded.
func (c *CompileErrors) Messages() []string {
	msgs := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}

	return msgs
}

// Error implements the error interface so CompileErrors itself can be
// returned/wrapped wherever a single error is expected.
func (c *CompileErrors) Error() string {
	if len(c.errors) == 0 {
		return "no errors"
	}
	if len(c.errors) == 1 {
		return c.errors[0].Error()
	}

	msgs := make([]string, 0, len(c.errors))
	for _, err := range c.errors {
		msgs = append(msgs, err.Error())
	}

	return fmt.Sprintf("%d compile errors:\n%s", len(c.errors), strings.Join(msgs, "\n"))
}
