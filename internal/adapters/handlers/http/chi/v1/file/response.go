package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
	"workspace-drive/internal/core/domain"

	"github.com/go-chi/chi/v5/middleware"
)

// V1Response wraps every successful payload
type V1Response struct {
	Data      any             `json:"data"`
	Timestamp time.Time       `json:"timestamp"`
	Metadata  *V1ListMetadata `json:"metadata,omitempty"`
}

// V1ListMetadata is attached to list responses
type V1ListMetadata struct {
	Count int `json:"count"`
}

// V1Error describes a failed request
type V1Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// V1ErrorResponse wraps every error
type V1ErrorResponse struct {
	Error     V1Error   `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *HandlerV1) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

func (h *HandlerV1) respond(w http.ResponseWriter, status int, data any) {
	h.writeJSON(w, status, V1Response{Data: data, Timestamp: time.Now().UTC()})
}

func (h *HandlerV1) respondList(w http.ResponseWriter, entities []domain.FileEntity) {
	h.writeJSON(w, http.StatusOK, V1Response{
		Data:      entities,
		Timestamp: time.Now().UTC(),
		Metadata:  &V1ListMetadata{Count: len(entities)},
	})
}

// fail maps err to a status code. Internal details are logged, never returned.
func (h *HandlerV1) fail(w http.ResponseWriter, r *http.Request, operation string, fileID string, err error) {
	now := time.Now().UTC()
	requestID := middleware.GetReqID(r.Context())

	var status int
	var code, message string
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code, message = http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, domain.ErrValidation):
		status, code, message = http.StatusBadRequest, "VALIDATION_ERROR", err.Error()
	case errors.As(err, &maxBytesErr):
		status, code, message = http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "request body too large"
	case errors.Is(err, domain.ErrStorage):
		status, code, message = http.StatusBadGateway, "STORAGE_ERROR", "file storage is unavailable"
	case errors.Is(err, domain.ErrPersistence):
		status, code, message = http.StatusInternalServerError, "PERSISTENCE_ERROR", "database error"
	default:
		status, code, message = http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"
	}

	attrs := []any{
		"operation", operation,
		"file_id", fileID,
		"request_id", requestID,
		"status", status,
		"error", err,
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", append(attrs, "timestamp", now)...)
	} else {
		h.logger.Warn("request rejected", attrs...)
	}

	h.writeJSON(w, status, V1ErrorResponse{
		Error:     V1Error{Status: status, Message: message, Code: code},
		Timestamp: now,
	})
}
