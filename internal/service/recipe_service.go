package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"smartexpire/internal/expiry"
	"smartexpire/internal/model"
	"smartexpire/internal/recommend"
	"smartexpire/internal/repository"
	"smartexpire/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// PanicWindowDays bounds the days until expiry of entries used for
// expiring-item recommendations.
const PanicWindowDays = 3

// recipeService implements RecipeService.
type recipeService struct {
	repo      repository.InventoryRepository
	catalog   Catalog
	engine    *recommend.Engine
	validator *validator.Validate
	now       func() time.Time
	logger    zerolog.Logger
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	repo repository.InventoryRepository,
	catalog Catalog,
	validator *validator.Validate,
	now func() time.Time,
	logger zerolog.Logger,
) RecipeService {
	if now == nil {
		now = time.Now
	}
	return &recipeService{
		repo:      repo,
		catalog:   catalog,
		engine:    recommend.NewEngine(catalog),
		validator: validator,
		now:       now,
		logger:    logger.With().Str("service", "recipe").Logger(),
	}
}

func recipesEnabled(st *session.State) bool {
	return st.Mode().Profile().RecipesEnabled
}

func (s *recipeService) Search(st *session.State, item string) ([]model.Recipe, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, model.NewValidationError("item is required")
	}
	if !recipesEnabled(st) {
		return []model.Recipe{}, nil
	}
	return s.engine.SearchItem(item), nil
}

func (s *recipeService) Recommend(st *session.State, req *model.RecommendRequest) ([]model.Recipe, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	if !recipesEnabled(st) {
		return []model.Recipe{}, nil
	}

	names := make([]string, 0, len(req.Ingredients))
	for _, n := range req.Ingredients {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return s.engine.Recommend(names), nil
}

// Expiring recommends recipes for grocery entries that expire within
// PanicWindowDays, most urgent first.
func (s *recipeService) Expiring(ctx context.Context, st *session.State) ([]model.Recipe, error) {
	if !recipesEnabled(st) {
		return []model.Recipe{}, nil
	}

	entries, err := s.repo.ListByMode(ctx, st.ID(), model.ModeGrocery)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", st.ID().String()).Msg("failed to list items")
		return nil, fmt.Errorf("failed to recommend recipes: %w", err)
	}

	names := expiry.ExpiringWithin(entries, model.DateOf(s.now()), PanicWindowDays)
	s.logger.Debug().
		Str("session_id", st.ID().String()).
		Int("expiring_items", len(names)).
		Msg("recommending recipes for expiring items")
	return s.engine.Recommend(names), nil
}

func (s *recipeService) Favorites(st *session.State) []model.Recipe {
	return st.Favorites()
}

// AddFavorite saves the catalog recipe named by req. Saving twice is a no-op.
func (s *recipeService) AddFavorite(st *session.State, req *model.FavoriteRequest) ([]model.Recipe, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	tier, err := model.ParseTier(req.Type)
	if err != nil {
		return nil, err
	}

	recipe, ok := s.catalog.FindRecipe(req.Name, tier)
	if !ok {
		return nil, model.ErrRecipeNotFound
	}

	if st.AddFavorite(recipe) {
		s.logger.Debug().
			Str("session_id", st.ID().String()).
			Str("recipe", recipe.Name).
			Msg("favorite added")
	}
	return st.Favorites(), nil
}

func (s *recipeService) RemoveFavorite(st *session.State, name, tier string) error {
	t, err := model.ParseTier(tier)
	if err != nil {
		return err
	}
	return st.RemoveFavorite(name, t)
}
