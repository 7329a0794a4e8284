package types

import "fmt"

// UnknownDocumentTypeError is returned for document type tags outside the supported set
type UnknownDocumentTypeError struct {
	Value string
}

func (e *UnknownDocumentTypeError) Error() string {
	return fmt.Sprintf("unknown document type: %q", e.Value)
}

// SectionError reports an operation on a section the document type does not support
type SectionError struct {
	DocumentType DocumentType
	Section      string
	Message      string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q of %s: %s", e.Section, e.DocumentType, e.Message)
}
