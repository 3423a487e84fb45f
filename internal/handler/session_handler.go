package handler

import (
	"net/http"

	"smartexpire/internal/model"
	"smartexpire/internal/service"

	"github.com/rs/zerolog"
)

// SessionHandler handles session lifecycle and mode requests.
type SessionHandler struct {
	service service.SessionService
	logger  zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(service service.SessionService, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		logger:  logger.With().Str("handler", "session").Logger(),
	}
}

// Create handles POST /api/sessions requests.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	st, err := h.service.Create(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, st.Summary())
}

// Get handles GET /api/session requests.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, st.Summary())
}

// End handles DELETE /api/session requests.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	if err := h.service.End(r.Context(), st.ID()); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetMode handles PUT /api/session/mode requests.
func (h *SessionHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.SetModeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	profile, err := h.service.SetMode(st, req.Mode)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// Modes handles GET /api/modes requests.
func (h *SessionHandler) Modes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Modes())
}
