// Package rendering turns structured legal documents and their analyses into
// annotated render trees shared by the screen and print targets.
package rendering

import "fmt"

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// EditError represents an edit that cannot be applied to a section
type EditError struct {
	Section string
	Line    int
	Message string
}

func (e *EditError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("edit error: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("edit error: %s line %d: %s", e.Section, e.Line, e.Message)
}
