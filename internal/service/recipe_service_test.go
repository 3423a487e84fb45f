package service

import (
	"context"
	"testing"

	"smartexpire/internal/catalog"
	"smartexpire/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecipeService(repo *MockInventoryRepository) RecipeService {
	return NewRecipeService(repo, catalog.Builtin(), NewValidator(), fixedNow, zerolog.Nop())
}

func recipeNames(recipes []model.Recipe) []string {
	names := make([]string, len(recipes))
	for i, r := range recipes {
		names[i] = r.Name
	}
	return names
}

func TestRecipeService_Search(t *testing.T) {
	svc := newRecipeService(new(MockInventoryRepository))
	st := newTestState()

	got, err := svc.Search(st, " Eggs ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Scrambled Eggs", "Boiled Eggs", "Vegetable Frittata"}, recipeNames(got))

	got, err = svc.Search(st, "Dragon Fruit")
	require.NoError(t, err)
	assert.Equal(t, []string{"Quick Stir-fry", "Roasted Dish", "Gourmet Casserole"}, recipeNames(got))

	_, err = svc.Search(st, "  ")
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRecipeService_Search_DisabledOutsideGrocery(t *testing.T) {
	svc := newRecipeService(new(MockInventoryRepository))
	st := newTestState()
	st.SetMode(model.ModeCosmetics)

	got, err := svc.Search(st, "Eggs")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecipeService_Recommend(t *testing.T) {
	svc := newRecipeService(new(MockInventoryRepository))
	st := newTestState()

	got, err := svc.Recommend(st, &model.RecommendRequest{Ingredients: []string{"Organic Milk", "Eggs"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Milk Smoothie", "Pancakes", "Creamy Mushroom Pasta"}, recipeNames(got))

	_, err = svc.Recommend(st, &model.RecommendRequest{})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.Recommend(st, &model.RecommendRequest{Ingredients: []string{"Eggs", ""}})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRecipeService_Expiring(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	svc := newRecipeService(repo)
	st := newTestState()

	repo.On("ListByMode", ctx, st.ID(), model.ModeGrocery).Return([]model.InventoryEntry{
		newEntry(st, "Eggs", "Dairy", model.ModeGrocery, 10),
		newEntry(st, "Organic Milk", "Dairy", model.ModeGrocery, 3),
	}, nil)

	got, err := svc.Expiring(ctx, st)

	require.NoError(t, err)
	assert.Equal(t, []string{"Milk Smoothie", "Pancakes", "Creamy Mushroom Pasta"}, recipeNames(got))
}

func TestRecipeService_Expiring_NothingClose(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInventoryRepository)
	svc := newRecipeService(repo)
	st := newTestState()

	repo.On("ListByMode", ctx, st.ID(), model.ModeGrocery).Return([]model.InventoryEntry{
		newEntry(st, "Eggs", "Dairy", model.ModeGrocery, 4),
	}, nil)

	got, err := svc.Expiring(ctx, st)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRecipeService_Expiring_DisabledOutsideGrocery(t *testing.T) {
	repo := new(MockInventoryRepository)
	svc := newRecipeService(repo)
	st := newTestState()
	st.SetMode(model.ModePharmacy)

	got, err := svc.Expiring(context.Background(), st)

	require.NoError(t, err)
	assert.Empty(t, got)
	repo.AssertNotCalled(t, "ListByMode", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecipeService_Favorites(t *testing.T) {
	svc := newRecipeService(new(MockInventoryRepository))
	st := newTestState()

	favs, err := svc.AddFavorite(st, &model.FavoriteRequest{Name: "Pancakes", Type: "Simple"})
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.Equal(t, model.TierSimple, favs[0].Tier)
	assert.NotEmpty(t, favs[0].Instructions, "favorites carry the full catalog recipe")

	favs, err = svc.AddFavorite(st, &model.FavoriteRequest{Name: "Pancakes", Type: "Simple"})
	require.NoError(t, err)
	assert.Len(t, favs, 1, "saving twice keeps one copy")

	assert.Len(t, svc.Favorites(st), 1)

	require.NoError(t, svc.RemoveFavorite(st, "Pancakes", "Simple"))
	assert.Empty(t, svc.Favorites(st))
	assert.ErrorIs(t, svc.RemoveFavorite(st, "Pancakes", "Simple"), model.ErrListItemNotFound)
}

func TestRecipeService_AddFavorite_Errors(t *testing.T) {
	tests := []struct {
		name string
		req  *model.FavoriteRequest
		want error
	}{
		{name: "unknown recipe", req: &model.FavoriteRequest{Name: "Beef Wellington", Type: "Gourmet"}, want: model.ErrRecipeNotFound},
		{name: "wrong tier", req: &model.FavoriteRequest{Name: "Pancakes", Type: "Panic"}, want: model.ErrRecipeNotFound},
		{name: "unknown tier", req: &model.FavoriteRequest{Name: "Pancakes", Type: "Quick"}, want: model.ErrValidation},
		{name: "missing name", req: &model.FavoriteRequest{Type: "Simple"}, want: model.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newRecipeService(new(MockInventoryRepository))
			st := newTestState()

			_, err := svc.AddFavorite(st, tt.req)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, st.Favorites())
		})
	}
}

func TestRecipeService_RemoveFavorite_UnknownTier(t *testing.T) {
	svc := newRecipeService(new(MockInventoryRepository))

	err := svc.RemoveFavorite(newTestState(), "Pancakes", "Brunch")

	assert.ErrorIs(t, err, model.ErrValidation)
}
