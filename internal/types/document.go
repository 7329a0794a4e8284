// Package types provides type definitions for structured legal documents and their analyses.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"
)

// DocumentType discriminates the supported legal document templates.
// It is always supplied by the caller and never inferred from the fields present.
type DocumentType string

const (
	DocumentTypeDemandText         DocumentType = "demand_text"
	DocumentTypeExceptionsResponse DocumentType = "exceptions_response"
	DocumentTypeDispatchResolution DocumentType = "dispatch_resolution"
	DocumentTypeWithdrawal         DocumentType = "withdrawal"
)

// Section names shared by the document templates
const (
	SectionHeader                  = "header"
	SectionSummary                 = "summary"
	SectionCourt                   = "court"
	SectionOpening                 = "opening"
	SectionMissingPaymentArguments = "missing_payment_arguments"
	SectionExceptionResponses      = "exception_responses"
	SectionMainRequest             = "main_request"
	SectionAdditionalRequests      = "additional_requests"
	SectionContent                 = "content"
)

// DocumentTypes returns every supported document type in a stable order.
func DocumentTypes() []DocumentType {
	return []DocumentType{
		DocumentTypeDemandText,
		DocumentTypeExceptionsResponse,
		DocumentTypeDispatchResolution,
		DocumentTypeWithdrawal,
	}
}

// ParseDocumentType converts a raw tag into a DocumentType.
func ParseDocumentType(value string) (DocumentType, error) {
	candidate := DocumentType(strings.TrimSpace(value))
	for _, dt := range DocumentTypes() {
		if dt == candidate {
			return dt, nil
		}
	}
	return "", &UnknownDocumentTypeError{Value: value}
}

// Document is the sealed union of all structured legal documents.
type Document interface {
	DocumentType() DocumentType
	// Section returns a scalar section's text. ok is false when the name is not
	// a scalar section of this document type; text is nil when the section is absent.
	Section(name string) (text *string, ok bool)
	// ListSection returns the entries of a list-valued section.
	ListSection(name string) (entries []string, ok bool)

	replace(name string, text *string) (Document, error)
}

// DocumentAnalysis is the per-section analysis that mirrors a Document.
type DocumentAnalysis interface {
	DocumentType() DocumentType
	Section(name string) *Analysis
	ListSection(name string) []*Analysis
	OverallAnalysis() *Analysis
}

// WithSection returns a copy of doc with one scalar section replaced by text.
// The original document is left untouched.
func WithSection(doc Document, name, text string) (Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	return doc.replace(name, &text)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
