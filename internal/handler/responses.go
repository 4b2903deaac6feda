package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arenatools/questplanner/internal/domain"
	"github.com/arenatools/questplanner/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent at this point, logging is all we can do
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and translates the error
// into an appropriate HTTP status and user-facing message.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())
	log.Error(opName+" failed", "error", err)

	status, message := mapServiceErrorToUserMessage(err)
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgNoActiveQuestsError = "No active quests to plan for"
	ErrMsgNotEnoughTimeError  = "Not enough time to complete any quest. Increase the time budget."
	ErrMsgStepNotFoundError   = "Plan step not found"
	ErrMsgPlanRequiredError   = "A plan is required for this operation"
	ErrMsgBadRewardTableError = "Reward table is invalid"
	ErrMsgUnknownQueueError   = "Unknown queue"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP
// responses. Internal detail stays in the logs; the client sees a stable
// status code and a short actionable message.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrNoActiveQuests):
		return http.StatusUnprocessableEntity, ErrMsgNoActiveQuestsError
	case errors.Is(err, domain.ErrInsufficientTime):
		return http.StatusUnprocessableEntity, ErrMsgNotEnoughTimeError
	case errors.Is(err, domain.ErrStepNotFound):
		return http.StatusNotFound, ErrMsgStepNotFoundError
	case errors.Is(err, domain.ErrNilPlan):
		return http.StatusBadRequest, ErrMsgPlanRequiredError
	case errors.Is(err, domain.ErrInvalidRewardTable):
		return http.StatusInternalServerError, ErrMsgBadRewardTableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
