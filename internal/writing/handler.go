package writing

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/models"
)

// Handler exposes the writing-task endpoints. Controllers stay thin:
// decode, delegate, map errors to the response envelope.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) MultipleChoice(w http.ResponseWriter, r *http.Request) {
	var req models.WritingTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}
	if req.Language == "" || req.Level == "" {
		writeJSON(w, http.StatusBadRequest, models.Fail("Language and level are required"))
		return
	}

	task, err := h.service.GenerateMultipleChoice(r.Context(), req.Language, req.Level)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OK(task))
}

func (h *Handler) FillInBlank(w http.ResponseWriter, r *http.Request) {
	var req models.WritingTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}
	if req.Language == "" || req.Level == "" {
		writeJSON(w, http.StatusBadRequest, models.Fail("Language and level are required"))
		return
	}

	task, err := h.service.GenerateFillInBlank(r.Context(), req.Language, req.Level)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OK(task))
}

func (h *Handler) ExplainAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.ExplainAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}
	if req.Language == "" || req.Level == "" || req.Task == "" {
		writeJSON(w, http.StatusBadRequest, models.Fail("Language, level and task are required"))
		return
	}

	result, err := h.service.ExplainAnswer(r.Context(), req)
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OK(result))
}

// writeTaskError maps pipeline errors to the uniform error envelope.
// Internal diagnostics stay in the logs, not the payload.
func writeTaskError(w http.ResponseWriter, err error) {
	log.Printf("writing task error: %v", err)

	var invalidLevel *ErrInvalidLevel
	if errors.As(err, &invalidLevel) {
		writeJSON(w, http.StatusBadRequest, models.Fail(invalidLevel.Error()))
		return
	}

	var unsupported *gateway.ErrUnsupportedProvider
	var missingCred *gateway.ErrMissingCredential
	if errors.As(err, &unsupported) || errors.As(err, &missingCred) {
		writeJSON(w, http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	var timeout *gateway.ErrTimeout
	var provider *gateway.ErrProvider
	var empty *gateway.ErrEmptyResponse
	if errors.As(err, &timeout) || errors.As(err, &provider) || errors.As(err, &empty) {
		writeJSON(w, http.StatusBadGateway, models.Fail("AI provider call failed"))
		return
	}

	writeJSON(w, http.StatusInternalServerError, models.Fail("Failed to create valid task"))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
