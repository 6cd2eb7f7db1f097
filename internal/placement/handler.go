package placement

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/linguabridge/backend/internal/gateway"
	"github.com/linguabridge/backend/internal/models"
)

// availableLanguages is the closed set the placement test supports.
var availableLanguages = []string{
	"polish", "english", "german", "french", "spanish", "italian", "russian",
}

func languageSupported(language string) bool {
	for _, l := range availableLanguages {
		if strings.EqualFold(l, language) {
			return true
		}
	}
	return false
}

// Handler exposes the placement-test endpoints.
type Handler struct {
	engine *Engine
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{engine: engine}
}

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.PlacementTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}

	if req.Language == "" {
		writeJSON(w, http.StatusBadRequest, models.Fail("Language is required"))
		return
	}
	if !languageSupported(req.Language) {
		msg := fmt.Sprintf("Language %s is not supported. Available languages: %s",
			req.Language, strings.Join(availableLanguages, ", "))
		writeJSON(w, http.StatusBadRequest, models.Fail(msg))
		return
	}

	task, err := h.engine.GenerateTask(r.Context(), req.SessionID, req.Language, req.PreviousAnswer)
	if err != nil {
		writePlacementError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OK(task))
}

func (h *Handler) EvaluateTest(w http.ResponseWriter, r *http.Request) {
	var req models.EvaluateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.Fail("Invalid request body"))
		return
	}

	result, err := h.engine.EvaluateResults(r.Context(), req.Answers, req.Language)
	if err != nil {
		writePlacementError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.OK(result))
}

func writePlacementError(w http.ResponseWriter, err error) {
	log.Printf("placement error: %v", err)

	switch {
	case errors.Is(err, ErrNoAnswers),
		errors.Is(err, ErrLanguageRequired),
		errors.Is(err, ErrAnswerShape):
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

	var unsupported *gateway.ErrUnsupportedProvider
	var missingCred *gateway.ErrMissingCredential
	if errors.As(err, &unsupported) || errors.As(err, &missingCred) {
		writeJSON(w, http.StatusBadRequest, models.Fail(err.Error()))
		return
	}

	writeJSON(w, http.StatusInternalServerError, models.Fail("Failed to process placement request"))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
