// Package emit realizes render trees as the interactive screen target, the
// fixed-page print target, LaTeX and plain text.
package emit

import "fmt"

// TemplateError represents an error parsing or executing an output template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// ParityError reports that the screen and print targets disagree on content.
type ParityError struct {
	Line   int // first differing line, 1-based
	Screen string
	Print  string
}

func (e *ParityError) Error() string {
	return fmt.Sprintf("parity error: screen and print differ at line %d: %q != %q", e.Line, e.Screen, e.Print)
}
