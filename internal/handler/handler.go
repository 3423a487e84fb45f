package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"smartexpire/internal/model"
	"smartexpire/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON, model.ErrCodeValidationFailed, model.ErrCodeUnsupportedFormat:
		return http.StatusBadRequest
	case model.ErrCodeSessionNotFound, model.ErrCodeItemNotFound,
		model.ErrCodeRecipeNotFound, model.ErrCodeListItemNotFound:
		return http.StatusNotFound
	case model.ErrCodeExternalService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes the error body for err. Internal errors are logged and
// reported without detail.
func writeError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	code := model.ErrorCode(err)
	status := statusFor(code)

	message := "internal server error"
	var de *model.DomainError
	if errors.As(err, &de) {
		message = de.Message
	}

	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Int("status", status).Msg("handler error")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return model.NewDomainError(model.ErrCodeInvalidJSON, "request body is required")
		}
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// decodeOptionalJSON decodes the request body into v when one is present.
func decodeOptionalJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return model.NewDomainError(model.ErrCodeInvalidJSON, "invalid request body")
	}
	return nil
}

// idParam parses the {id} URL parameter.
func idParam(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, model.NewValidationError("invalid id format")
	}
	return id, nil
}

// currentSession returns the session resolved by the session middleware.
func currentSession(r *http.Request) (*session.State, error) {
	st, ok := session.FromContext(r.Context())
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	return st, nil
}
