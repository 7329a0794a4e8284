package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jonathan/legaldoc/internal/emit"
	"github.com/jonathan/legaldoc/internal/observability"
	"github.com/jonathan/legaldoc/internal/rendering"
	"github.com/jonathan/legaldoc/internal/schemas"
	"github.com/jonathan/legaldoc/internal/types"
	"go.uber.org/zap"
)

// readJSON reads the request body, capped at the configured size, and
// unmarshals it into v. It returns the raw bytes for schema validation.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, v any) ([]byte, error) {
	body := io.Reader(r.Body)
	if limit := s.cfg.Server.MaxBodyBytes; limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, &ErrValidation{Field: "body", Message: "request body too large"}
		}
		return nil, &ErrValidation{Field: "body", Message: "failed to read request body"}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()}
	}
	return raw, nil
}

// readEnvelope reads a document envelope and checks it against the document schema.
func (s *Server) readEnvelope(w http.ResponseWriter, r *http.Request) (*types.Envelope, error) {
	var env types.Envelope
	raw, err := s.readJSON(w, r, &env)
	if err != nil {
		return nil, err
	}
	if err := schemas.ValidateEnvelope(raw); err != nil {
		return nil, err
	}
	return &env, nil
}

// render reads the envelope and composes it.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts ...rendering.ComposeOption) (*rendering.Rendered, error) {
	env, err := s.readEnvelope(w, r)
	if err != nil {
		return nil, err
	}
	return s.composer.ComposeEnvelope(*env, opts...)
}

func queryBool(r *http.Request, name string) (bool, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &ErrValidation{Field: name, Message: "must be a boolean"}
	}
	return b, nil
}

func (s *Server) pageFromQuery(r *http.Request) (emit.PageSetup, error) {
	page, err := s.cfg.PageFor(r.URL.Query().Get("size"))
	if err != nil {
		return emit.PageSetup{}, &ErrValidation{Field: "size", Message: err.Error()}
	}
	return page, nil
}

// handleRenderTree returns the annotated render tree as JSON.
func (s *Server) handleRenderTree(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	editable, err := queryBool(r, "editable")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rendered, err := s.render(w, r, rendering.WithEditable(editable))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	observability.ObserveRender(string(rendered.DocumentType), "tree", started)
	s.jsonResponse(w, http.StatusOK, rendered)
}

// handleRenderScreen returns the interactive screen HTML.
func (s *Server) handleRenderScreen(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	editable, err := queryBool(r, "editable")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rendered, err := s.render(w, r, rendering.WithEditable(editable))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := emit.Screen(&buf, rendered); err != nil {
		s.fail(w, r, err)
		return
	}
	observability.ObserveRender(string(rendered.DocumentType), "screen", started)
	s.writeBody(w, "text/html; charset=utf-8", buf.Bytes())
}

// handleRenderPrint returns the paginated print HTML.
func (s *Server) handleRenderPrint(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	rendered, page, withAnalysis, ok := s.printRequest(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := emit.Print(&buf, rendered, page, withAnalysis); err != nil {
		s.fail(w, r, err)
		return
	}
	observability.ObserveRender(string(rendered.DocumentType), "print", started)
	s.writeBody(w, "text/html; charset=utf-8", buf.Bytes())
}

// handleRenderLaTeX returns the LaTeX source of the print target.
func (s *Server) handleRenderLaTeX(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	page, err := s.pageFromQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	rendered, err := s.render(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := emit.LaTeX(&buf, rendered, page); err != nil {
		s.fail(w, r, err)
		return
	}
	observability.ObserveRender(string(rendered.DocumentType), "latex", started)
	s.writeBody(w, "application/x-tex; charset=utf-8", buf.Bytes())
}

// handleRenderPDF returns the exported PDF.
func (s *Server) handleRenderPDF(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		s.fail(w, r, &ErrUnavailable{Feature: "PDF export"})
		return
	}
	rendered, page, withAnalysis, ok := s.printRequest(w, r)
	if !ok {
		return
	}

	export, err := s.exporter.Export(r.Context(), rendered, page, withAnalysis)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	w.Header().Set("X-Page-Count", strconv.Itoa(export.Pages))
	if export.Cached {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.Header().Set("Content-Disposition", `inline; filename="`+string(rendered.DocumentType)+`.pdf"`)
	s.writeBody(w, "application/pdf", export.PDF)
}

// printRequest parses the query and body shared by the print and PDF routes.
func (s *Server) printRequest(w http.ResponseWriter, r *http.Request) (*rendering.Rendered, emit.PageSetup, bool, bool) {
	page, err := s.pageFromQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return nil, emit.PageSetup{}, false, false
	}
	withAnalysis, err := queryBool(r, "analysis")
	if err != nil {
		s.fail(w, r, err)
		return nil, emit.PageSetup{}, false, false
	}
	rendered, err := s.render(w, r)
	if err != nil {
		s.fail(w, r, err)
		return nil, emit.PageSetup{}, false, false
	}
	return rendered, page, withAnalysis, true
}

func (s *Server) writeBody(w http.ResponseWriter, contentType string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Warn("failed to write response", zap.Error(err))
	}
}
