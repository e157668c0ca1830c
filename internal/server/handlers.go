package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/medley/agentic-sales-framework-sub000/internal/pipeline"
)

// HealthResponse represents the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the JSON error envelope
type ErrorResponse struct {
	Error string `json:"error"`
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}

// handleHealth reports liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func validateProspect(p *pipeline.Prospect) error {
	if p.CompanyName == "" {
		return &ErrValidation{Field: "company_name", Message: "is required"}
	}
	if p.RoleTitle == "" {
		return &ErrValidation{Field: "role_title", Message: "is required"}
	}
	return nil
}

// handleRunProspect executes the pipeline synchronously for one prospect
func (s *Server) handleRunProspect(w http.ResponseWriter, r *http.Request) {
	var prospect pipeline.Prospect
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateProspect(&prospect); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.runner.Run(r.Context(), prospect)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Pipeline failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleRunStream executes the pipeline and streams progress events over SSE
func (s *Server) handleRunStream(w http.ResponseWriter, r *http.Request) {
	var prospect pipeline.Prospect
	if err := json.NewDecoder(r.Body).Decode(&prospect); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validateProspect(&prospect); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	runner := s.runner.WithProgress(func(event pipeline.ProgressEvent) {
		sse.WriteEvent("progress", event) //nolint:errcheck
	})

	result, err := runner.Run(r.Context(), prospect)
	if err != nil {
		sse.WriteError(err.Error())
		return
	}

	sse.WriteEvent("result", result) //nolint:errcheck
	sse.WriteComplete(result.RunID.String(), result.Status)
}

// handleListRuns lists recent runs
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to list runs: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

func parseRunID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}
	return id, nil
}

// handleGetRun retrieves one run record
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := parseRunID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	run, err := s.store.GetRun(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get run: "+err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, run)
}

// handleGetBrief retrieves the assembled brief for a run
func (s *Server) handleGetBrief(w http.ResponseWriter, r *http.Request) {
	id, err := parseRunID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	b, err := s.store.GetBrief(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get brief: "+err.Error())
		return
	}
	if b == nil {
		notFound := &ErrBriefNotFound{RunID: id}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, b)
}

// handleGetVariants retrieves the rendered variants for a run
func (s *Server) handleGetVariants(w http.ResponseWriter, r *http.Request) {
	id, err := parseRunID(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	variants, err := s.store.GetVariants(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to get variants: "+err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"variants": variants})
}
