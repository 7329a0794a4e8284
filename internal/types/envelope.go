package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Envelope is the wire and file shape of a document: the type tag, the
// structure and an optional analysis, both still undecoded.
type Envelope struct {
	DocumentType DocumentType    `json:"document_type" validate:"required,oneof=demand_text exceptions_response dispatch_resolution withdrawal"`
	Structure    json.RawMessage `json:"structure" validate:"required"`
	Analysis     json.RawMessage `json:"analysis,omitempty"`
}

// Validate validates the Envelope using the validator.
func (e *Envelope) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}

// Decode decodes the structure and analysis into the concrete types for the
// envelope's document type. analysis is nil when the envelope carries none.
func (e *Envelope) Decode() (Document, DocumentAnalysis, error) {
	if e.DocumentType != "" {
		if _, err := ParseDocumentType(string(e.DocumentType)); err != nil {
			return nil, nil, err
		}
	}
	if err := e.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid envelope: %w", err)
	}

	doc, err := DecodeStructure(e.DocumentType, e.Structure)
	if err != nil {
		return nil, nil, err
	}

	analysis, err := DecodeAnalysis(e.DocumentType, e.Analysis)
	if err != nil {
		return nil, nil, err
	}

	return doc, analysis, nil
}

// DecodeStructure decodes raw JSON into the structure for dt.
func DecodeStructure(dt DocumentType, raw json.RawMessage) (Document, error) {
	if isNull(raw) {
		return nil, fmt.Errorf("structure for %s is null", dt)
	}
	doc, err := newDocument(dt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s structure: %w", dt, err)
	}
	return doc, nil
}

// DecodeAnalysis decodes raw JSON into the analysis for dt. Empty or null input
// yields a nil analysis.
func DecodeAnalysis(dt DocumentType, raw json.RawMessage) (DocumentAnalysis, error) {
	if isNull(raw) {
		return nil, nil
	}
	analysis, err := newDocumentAnalysis(dt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s analysis: %w", dt, err)
	}
	return analysis, nil
}

// NewEnvelope encodes a document and its optional analysis back into an Envelope.
func NewEnvelope(doc Document, analysis DocumentAnalysis) (*Envelope, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	structure, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal structure: %w", err)
	}

	env := &Envelope{DocumentType: doc.DocumentType(), Structure: structure}
	if analysis != nil {
		if analysis.DocumentType() != doc.DocumentType() {
			return nil, fmt.Errorf("analysis type %s does not match document type %s", analysis.DocumentType(), doc.DocumentType())
		}
		raw, err := json.Marshal(analysis)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal analysis: %w", err)
		}
		env.Analysis = raw
	}
	return env, nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
