package service

import (
	"context"

	"smartexpire/internal/model"
	"smartexpire/internal/session"

	"github.com/google/uuid"
)

// SessionService defines session lifecycle operations.
type SessionService interface {
	// Create starts a session, seeding sample data when configured.
	Create(ctx context.Context) (*session.State, error)

	// Resolve looks a session up by its wire id.
	Resolve(id string) (*session.State, error)

	// End discards the session and everything it owns.
	End(ctx context.Context, id uuid.UUID) error

	// SetMode switches the session's active mode.
	SetMode(s *session.State, mode string) (model.ModeProfile, error)

	// Modes lists every mode profile in display order.
	Modes() []model.ModeProfile
}

// InventoryService defines inventory operations in the session's active mode.
type InventoryService interface {
	// AddItem validates and stores a new entry.
	AddItem(ctx context.Context, s *session.State, req *model.AddItemRequest) (*model.ClassifiedEntry, error)

	// ListItems returns the classified list view, optionally filtered by name.
	ListItems(ctx context.Context, s *session.State, search string) ([]model.ClassifiedEntry, error)

	// ListUsed returns used entries of the active mode.
	ListUsed(ctx context.Context, s *session.State) ([]model.UsedEntry, error)

	// Stats returns the home page counters.
	Stats(ctx context.Context, s *session.State) (*model.Stats, error)

	// GetItem returns the info view of one entry.
	GetItem(ctx context.Context, s *session.State, id uuid.UUID) (*model.ItemDetail, error)

	// ToggleOpened flips the opened flag of one entry.
	ToggleOpened(ctx context.Context, s *session.State, id uuid.UUID) (*model.ClassifiedEntry, error)

	// MarkUsed moves an entry to the used list, optionally adding its name
	// to the shopping list.
	MarkUsed(ctx context.Context, s *session.State, id uuid.UUID, req *model.MarkUsedRequest) (*model.UsedEntry, error)

	// Disposal returns disposal advice for a category in the active mode.
	Disposal(s *session.State, category string) model.Disposal
}

// RecipeService defines recipe lookup and favourites.
type RecipeService interface {
	// Search recommends recipes for one ingredient name.
	Search(s *session.State, item string) ([]model.Recipe, error)

	// Recommend recommends recipes for several ingredient names.
	Recommend(s *session.State, req *model.RecommendRequest) ([]model.Recipe, error)

	// Expiring recommends recipes for grocery entries close to expiry.
	Expiring(ctx context.Context, s *session.State) ([]model.Recipe, error)

	// Favorites lists saved recipes.
	Favorites(s *session.State) []model.Recipe

	// AddFavorite saves a catalog recipe and returns the updated list.
	AddFavorite(s *session.State, req *model.FavoriteRequest) ([]model.Recipe, error)

	// RemoveFavorite deletes a saved recipe.
	RemoveFavorite(s *session.State, name, tier string) error
}

// HubService defines the auxiliary list operations.
type HubService interface {
	ShoppingList(s *session.State) []model.ShoppingListItem
	AddShoppingItem(s *session.State, req *model.ShoppingItemRequest) ([]model.ShoppingListItem, error)
	RemoveShoppingItem(s *session.State, name string) error

	Cards(s *session.State) []model.BarcodeCard
	AddCard(s *session.State, req *model.CardRequest) (*model.BarcodeCard, error)
	RemoveCard(s *session.State, id uuid.UUID) error

	Schedule(s *session.State) []model.ScheduleEntry
	AddSchedule(s *session.State, req *model.ScheduleRequest) (*model.ScheduleEntry, error)
	RemoveSchedule(s *session.State, id uuid.UUID) error

	Receipts(s *session.State) []model.ReceiptSummary
	// UploadReceipt sniffs, extracts and records a receipt image. Nothing is
	// recorded when extraction fails.
	UploadReceipt(ctx context.Context, s *session.State, image []byte) (*model.ReceiptSummary, error)
	RemoveReceipt(s *session.State, id uuid.UUID) error
}

// Catalog is the recipe and disposal lookup the services depend on.
type Catalog interface {
	RecipesFor(name string) []model.Recipe
	FindRecipe(name string, tier model.Tier) (model.Recipe, bool)
	Advise(category string, mode model.Mode) model.Disposal
}
