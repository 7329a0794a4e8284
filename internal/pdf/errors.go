// Package pdf exports the print target to paginated PDF through headless
// Chrome and inspects the result with pdfcpu.
package pdf

import "fmt"

// Error represents a PDF export failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pdf error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("pdf error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
