package router

import (
	"net/http"

	"smartexpire/internal/handler"
	"smartexpire/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Session *handler.SessionHandler
	Items   *handler.ItemHandler
	Recipes *handler.RecipeHandler
	Hub     *handler.HubHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	h Handlers,
	sessions middleware.SessionResolver,
	allowedOrigin string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Applied in order: RequestID -> Recovery -> Logging -> CORS
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(allowedOrigin))

	// Health check endpoint (no session required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", h.Session.Create)
		r.Get("/modes", h.Session.Modes)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(sessions, logger))

			r.Get("/session", h.Session.Get)
			r.Delete("/session", h.Session.End)
			r.Put("/session/mode", h.Session.SetMode)

			r.Route("/items", func(r chi.Router) {
				r.Post("/", h.Items.Create)
				r.Get("/", h.Items.List)
				r.Get("/used", h.Items.ListUsed)
				r.Get("/stats", h.Items.Stats)
				r.Get("/{id}", h.Items.Get)
				r.Post("/{id}/opened", h.Items.ToggleOpened)
				r.Post("/{id}/use", h.Items.MarkUsed)
			})
			r.Get("/disposal", h.Items.Disposal)

			r.Get("/recipes", h.Recipes.Search)
			r.Post("/recipes/recommend", h.Recipes.Recommend)
			r.Get("/recipes/expiring", h.Recipes.Expiring)

			r.Get("/favorites", h.Recipes.Favorites)
			r.Post("/favorites", h.Recipes.AddFavorite)
			r.Delete("/favorites", h.Recipes.RemoveFavorite)

			r.Get("/shopping-list", h.Hub.ShoppingList)
			r.Post("/shopping-list", h.Hub.AddShoppingItem)
			r.Delete("/shopping-list/{name}", h.Hub.RemoveShoppingItem)

			r.Get("/cards", h.Hub.Cards)
			r.Post("/cards", h.Hub.AddCard)
			r.Delete("/cards/{id}", h.Hub.RemoveCard)

			r.Get("/schedule", h.Hub.Schedule)
			r.Post("/schedule", h.Hub.AddSchedule)
			r.Delete("/schedule/{id}", h.Hub.RemoveSchedule)

			r.Get("/receipts", h.Hub.Receipts)
			r.Post("/receipts", h.Hub.UploadReceipt)
			r.Delete("/receipts/{id}", h.Hub.RemoveReceipt)
		})
	})

	return r
}
