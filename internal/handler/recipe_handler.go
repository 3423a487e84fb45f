package handler

import (
	"net/http"

	"smartexpire/internal/model"
	"smartexpire/internal/service"

	"github.com/rs/zerolog"
)

// RecipeHandler handles recipe and favourite requests.
type RecipeHandler struct {
	service service.RecipeService
	logger  zerolog.Logger
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(service service.RecipeService, logger zerolog.Logger) *RecipeHandler {
	return &RecipeHandler{
		service: service,
		logger:  logger.With().Str("handler", "recipe").Logger(),
	}
}

// Search handles GET /api/recipes requests.
func (h *RecipeHandler) Search(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	recipes, err := h.service.Search(st, r.URL.Query().Get("item"))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// Recommend handles POST /api/recipes/recommend requests.
func (h *RecipeHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.RecommendRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	recipes, err := h.service.Recommend(st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// Expiring handles GET /api/recipes/expiring requests.
func (h *RecipeHandler) Expiring(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	recipes, err := h.service.Expiring(r.Context(), st)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

// Favorites handles GET /api/favorites requests.
func (h *RecipeHandler) Favorites(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.service.Favorites(st))
}

// AddFavorite handles POST /api/favorites requests.
func (h *RecipeHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.FavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	favorites, err := h.service.AddFavorite(st, &req)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, favorites)
}

// RemoveFavorite handles DELETE /api/favorites?name=&type= requests.
func (h *RecipeHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	st, err := currentSession(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	q := r.URL.Query()
	if err := h.service.RemoveFavorite(st, q.Get("name"), q.Get("type")); err != nil {
		writeError(w, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
