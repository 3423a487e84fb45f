package handler

import (
	"net/http"

	"smartexpire/internal/model"
	"smartexpire/internal/service"

	"github.com/rs/zerolog"
)

// ItemHandler handles inventory requests.
type ItemHandler struct {
	service service.InventoryService
	logger  zerolog.Logger
}

// NewItemHandler creates a new item handler.
func NewItemHandler(service service.InventoryService, logger zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		logger:  logger.With().Str("handler", "item").Logger(),
	}
}

// Create handles POST /api/items requests.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.AddItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entry, err := h.service.AddItem(r.Context(), st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// List handles GET /api/items requests.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	entries, err := h.service.ListItems(r.Context(), st, r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// ListUsed handles GET /api/items/used requests.
func (h *ItemHandler) ListUsed(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	used, err := h.service.ListUsed(r.Context(), st)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, used)
}

// Stats handles GET /api/items/stats requests.
func (h *ItemHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context(), st)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Get handles GET /api/items/{id} requests.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	detail, err := h.service.GetItem(r.Context(), st, id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// ToggleOpened handles POST /api/items/{id}/opened requests.
func (h *ItemHandler) ToggleOpened(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	entry, err := h.service.ToggleOpened(r.Context(), st, id)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// MarkUsed handles POST /api/items/{id}/use requests. The body is optional.
func (h *ItemHandler) MarkUsed(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	id, err := idParam(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.MarkUsedRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	used, err := h.service.MarkUsed(r.Context(), st, id, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, used)
}

// Disposal handles GET /api/disposal requests.
func (h *ItemHandler) Disposal(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Disposal(st, r.URL.Query().Get("category")))
}
