package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/legaldoc/internal/observability"
	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/jonathan/legaldoc/internal/server/middleware"
	"github.com/jonathan/legaldoc/internal/types"
	"go.uber.org/zap"
)

// CorrectionResponse is returned after an edit is applied.
type CorrectionResponse struct {
	// ID is set when the correction was stored.
	ID        *uuid.UUID     `json:"id,omitempty"`
	Document  types.Envelope `json:"document"`
	Persisted bool           `json:"persisted"`
}

// handleCreateCorrection applies one aligned edit and returns the full
// updated envelope, storing it when persistence is configured.
func (s *Server) handleCreateCorrection(w http.ResponseWriter, r *http.Request) {
	var req types.CorrectionRequest
	if _, err := s.readJSON(w, r, &req); err != nil {
		s.fail(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.fail(w, r, err)
		return
	}
	raw, err := json.Marshal(req.Document)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := schemas.ValidateEnvelope(raw); err != nil {
		s.fail(w, r, err)
		return
	}

	doc, analysis, err := req.Document.Decode()
	if err != nil {
		s.fail(w, r, err)
		return
	}
	updated, err := s.composer.Edit(doc, req.Section, req.Line, req.Value, nil)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	env, err := types.NewEnvelope(updated, analysis)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	resp := CorrectionResponse{Document: *env}
	status := http.StatusOK

	if s.store != nil {
		userID, _ := middleware.GetUserID(r)
		correction := &types.Correction{
			DocumentType: env.DocumentType,
			Section:      req.Section,
			Line:         req.Line,
			Value:        req.Value,
			Document:     *env,
			CreatedBy:    userID,
			CreatedAt:    time.Now().UTC(),
		}
		if err := s.store.SaveCorrection(r.Context(), correction); err != nil {
			s.fail(w, r, err)
			return
		}
		resp.ID = &correction.ID
		resp.Persisted = true
		status = http.StatusCreated
	}

	observability.CorrectionsTotal.WithLabelValues(string(env.DocumentType)).Inc()
	s.logger.Info("correction applied",
		zap.String("document_type", string(env.DocumentType)),
		zap.String("section", req.Section),
		zap.Int("line", req.Line),
		zap.Bool("persisted", resp.Persisted),
	)
	s.jsonResponse(w, status, resp)
}

// handleGetCorrection returns one stored correction.
func (s *Server) handleGetCorrection(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, &ErrUnavailable{Feature: "correction storage"})
		return
	}

	idStr := r.PathValue("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		s.fail(w, r, &ErrValidation{Field: "id", Message: "must be a UUID"})
		return
	}

	correction, err := s.store.GetCorrection(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if correction == nil {
		s.fail(w, r, &ErrNotFound{Resource: "correction", ID: idStr})
		return
	}
	s.jsonResponse(w, http.StatusOK, correction)
}

// handleListCorrections returns recent corrections, optionally filtered by
// ?document_type= and capped by ?limit=.
func (s *Server) handleListCorrections(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.fail(w, r, &ErrUnavailable{Feature: "correction storage"})
		return
	}

	var documentType types.DocumentType
	if value := r.URL.Query().Get("document_type"); value != "" {
		dt, err := types.ParseDocumentType(value)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		documentType = dt
	}

	limit := 0
	if value := r.URL.Query().Get("limit"); value != "" {
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 500 {
			s.fail(w, r, &ErrValidation{Field: "limit", Message: "must be between 1 and 500"})
			return
		}
		limit = n
	}

	corrections, err := s.store.ListCorrections(r.Context(), documentType, limit)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if corrections == nil {
		corrections = []types.Correction{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"corrections": corrections})
}
