package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"smartexpire/internal/model"
	"smartexpire/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// multipartOverhead is the body allowance for multipart framing on top of
// the image itself.
const multipartOverhead = 64 << 10

// HubHandler handles shopping list, card, schedule and receipt requests.
type HubHandler struct {
	service         service.HubService
	maxReceiptBytes int
	logger          zerolog.Logger
}

// NewHubHandler creates a new hub handler.
func NewHubHandler(service service.HubService, maxReceiptBytes int, logger zerolog.Logger) *HubHandler {
	return &HubHandler{
		service:         service,
		maxReceiptBytes: maxReceiptBytes,
		logger:          logger.With().Str("handler", "hub").Logger(),
	}
}

// ShoppingList handles GET /api/shopping-list requests.
func (h *HubHandler) ShoppingList(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.ShoppingList(st))
}

// AddShoppingItem handles POST /api/shopping-list requests.
func (h *HubHandler) AddShoppingItem(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.ShoppingItemRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	list, err := h.service.AddShoppingItem(st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, list)
}

// RemoveShoppingItem handles DELETE /api/shopping-list/{name} requests.
func (h *HubHandler) RemoveShoppingItem(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	if err := h.service.RemoveShoppingItem(st, name); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Cards handles GET /api/cards requests.
func (h *HubHandler) Cards(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Cards(st))
}

// AddCard handles POST /api/cards requests.
func (h *HubHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.CardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	card, err := h.service.AddCard(st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

// RemoveCard handles DELETE /api/cards/{id} requests.
func (h *HubHandler) RemoveCard(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.RemoveCard(st, id); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Schedule handles GET /api/schedule requests.
func (h *HubHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Schedule(st))
}

// AddSchedule handles POST /api/schedule requests.
func (h *HubHandler) AddSchedule(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	entry, err := h.service.AddSchedule(st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

// RemoveSchedule handles DELETE /api/schedule/{id} requests.
func (h *HubHandler) RemoveSchedule(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.RemoveSchedule(st, id); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Receipts handles GET /api/receipts requests.
func (h *HubHandler) Receipts(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Receipts(st))
}

// UploadReceipt handles POST /api/receipts requests carrying a multipart
// "image" field.
func (h *HubHandler) UploadReceipt(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	image, err := h.readImage(w, r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	summary, err := h.service.UploadReceipt(r.Context(), st, image)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, summary)
}

func (h *HubHandler) readImage(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(h.maxReceiptBytes)+multipartOverhead)

	file, _, err := r.FormFile("image")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, model.NewValidationError(fmt.Sprintf("receipt image exceeds %d bytes", h.maxReceiptBytes))
		}
		return nil, model.NewValidationError("multipart field \"image\" is required")
	}
	defer file.Close()

	// One byte past the limit is enough for the service to reject it.
	data, err := io.ReadAll(io.LimitReader(file, int64(h.maxReceiptBytes)+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt image: %w", err)
	}
	return data, nil
}

// RemoveReceipt handles DELETE /api/receipts/{id} requests.
func (h *HubHandler) RemoveReceipt(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.RemoveReceipt(st, id); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
