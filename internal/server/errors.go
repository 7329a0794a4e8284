// Package server provides the HTTP API for rendering and correcting legal documents.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/legaldoc/internal/pdf"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/jonathan/legaldoc/internal/types"
)

// ErrNotFound indicates a missing resource
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUnavailable indicates a feature whose backing service is not configured
type ErrUnavailable struct {
	Feature string
}

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("%s is not configured", e.Feature)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound    *ErrNotFound
		validation  *ErrValidation
		unavailable *ErrUnavailable
		schemaErr   *schemas.ValidationError
		fieldErrs   validator.ValidationErrors
		unknownType *types.UnknownDocumentTypeError
		sectionErr  *types.SectionError
		editErr     *rendering.EditError
		renderErr   *rendering.RenderError
		pdfErr      *pdf.Error
	)

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &schemaErr), errors.As(err, &fieldErrs),
		errors.As(err, &unknownType), errors.As(err, &sectionErr):
		return http.StatusBadRequest
	case errors.As(err, &editErr), errors.As(err, &renderErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unavailable):
		return http.StatusServiceUnavailable
	case errors.As(err, &pdfErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
