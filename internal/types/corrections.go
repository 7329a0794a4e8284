package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CorrectionRequest asks for one value of an aligned section to be replaced.
type CorrectionRequest struct {
	Document Envelope `json:"document"`
	Section  string   `json:"section" validate:"required"`
	Line     int      `json:"line" validate:"gte=0"`
	Value    string   `json:"value"`
}

// Validate validates the CorrectionRequest using the validator.
func (r *CorrectionRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Correction is a stored correction together with the full corrected structure.
type Correction struct {
	ID           uuid.UUID    `json:"id"`
	DocumentType DocumentType `json:"document_type"`
	Section      string       `json:"section"`
	Line         int          `json:"line"`
	Value        string       `json:"value"`
	Document     Envelope     `json:"document"`
	CreatedBy    uuid.UUID    `json:"created_by"`
	CreatedAt    time.Time    `json:"created_at"`
}
