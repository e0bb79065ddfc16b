package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/classlab/helpdesk/pkg/helpqueue"
	"github.com/classlab/helpdesk/pkg/logger"
)

// jsonResponse is the standard response envelope.
type jsonResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonResponse{Data: data})
}

// respondError maps queue and request errors onto transport-level failures.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, helpqueue.ErrDuplicateRequest):
		status, code = http.StatusConflict, "duplicate_request"
	case errors.Is(err, helpqueue.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, helpqueue.ErrEmptyQueue):
		status, code = http.StatusNotFound, "empty_queue"
	case errors.Is(err, helpqueue.ErrCorrupted):
		status, code = http.StatusServiceUnavailable, "queue_unavailable"
	case errors.Is(err, errInvalidBody), errors.Is(err, errInvalidGroupParam):
		status, code = http.StatusBadRequest, "invalid_request"
	case errors.Is(err, errUnknownGroup):
		status, code = http.StatusUnprocessableEntity, "unknown_group"
	}

	if status >= http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "request failed", logger.Error(err))
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(jsonResponse{Error: &errorDetail{
		Code:    code,
		Message: err.Error(),
	}})
}

// decodeJSON parses the request body into v. With allowEmpty, a missing or
// empty body leaves v at its zero value.
func decodeJSON(r *http.Request, v any, allowEmpty bool) error {
	if r.Body == nil || r.Body == http.NoBody {
		if allowEmpty {
			return nil
		}
		return errInvalidBody
	}

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return errors.Join(errInvalidBody, err)
	}
	return nil
}
