package handler

import (
	"net/http"
	"testing"

	"smartexpire/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipeHandler_Search(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		mode     model.Mode
		expected []string
	}{
		{
			name:     "Known ingredient",
			path:     "/api/recipes?item=Eggs",
			mode:     model.ModeGrocery,
			expected: []string{"Scrambled Eggs", "Boiled Eggs", "Vegetable Frittata"},
		},
		{
			name:     "Unknown ingredient",
			path:     "/api/recipes?item=Kohlrabi",
			mode:     model.ModeGrocery,
			expected: []string{"Quick Stir-fry", "Roasted Dish", "Gourmet Casserole"},
		},
		{
			name:     "Recipes are grocery only",
			path:     "/api/recipes?item=Eggs",
			mode:     model.ModePetCare,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &fakeExtractor{})
			env.state.SetMode(tt.mode)

			w := env.do(t, http.MethodGet, tt.path, nil)

			require.Equal(t, http.StatusOK, w.Code)
			recipes := decodeBody[[]model.Recipe](t, w)
			names := make([]string, 0, len(recipes))
			for _, r := range recipes {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}

func TestRecipeHandler_Search_MissingItem(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	w := env.do(t, http.MethodGet, "/api/recipes", nil)

	assertError(t, w, http.StatusBadRequest, model.ErrCodeValidationFailed)
}

func TestRecipeHandler_Recommend(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	w := env.do(t, http.MethodPost, "/api/recipes/recommend", model.RecommendRequest{Ingredients: []string{"Eggs", "Organic Milk"}})
	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody[[]model.Recipe](t, w)
	require.Len(t, recipes, 3)
	assert.Equal(t, model.TierPanic, recipes[0].Tier)
	assert.Equal(t, "Scrambled Eggs", recipes[0].Name)

	w = env.do(t, http.MethodPost, "/api/recipes/recommend", model.RecommendRequest{})
	assertError(t, w, http.StatusBadRequest, model.ErrCodeValidationFailed)
}

func TestRecipeHandler_Expiring(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})
	req := milkRequest()
	req.ExpiryDate = "2026-03-11"
	addItem(t, env, req)

	w := env.do(t, http.MethodGet, "/api/recipes/expiring", nil)

	require.Equal(t, http.StatusOK, w.Code)
	recipes := decodeBody[[]model.Recipe](t, w)
	require.Len(t, recipes, 3)
	assert.Equal(t, "Milk Smoothie", recipes[0].Name)
}

func TestRecipeHandler_Favorites(t *testing.T) {
	env := newTestEnv(t, &fakeExtractor{})

	w := env.do(t, http.MethodPost, "/api/favorites", model.FavoriteRequest{Name: "Pancakes", Type: "Simple"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Len(t, decodeBody[[]model.Recipe](t, w), 1)

	w = env.do(t, http.MethodPost, "/api/favorites", model.FavoriteRequest{Name: "Pancakes", Type: "Simple"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Len(t, decodeBody[[]model.Recipe](t, w), 1)

	w = env.do(t, http.MethodGet, "/api/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	favorites := decodeBody[[]model.Recipe](t, w)
	require.Len(t, favorites, 1)
	assert.Equal(t, "Pancakes", favorites[0].Name)

	w = env.do(t, http.MethodDelete, "/api/favorites?name=Pancakes&type=Simple", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodDelete, "/api/favorites?name=Pancakes&type=Simple", nil)
	assertError(t, w, http.StatusNotFound, model.ErrCodeListItemNotFound)
}

func TestRecipeHandler_AddFavorite_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           model.FavoriteRequest
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Not in catalog",
			body:           model.FavoriteRequest{Name: "Toast", Type: "Simple"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   model.ErrCodeRecipeNotFound,
		},
		{
			name:           "Unknown type",
			body:           model.FavoriteRequest{Name: "Pancakes", Type: "Breakfast"},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   model.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, &fakeExtractor{})

			w := env.do(t, http.MethodPost, "/api/favorites", tt.body)

			assertError(t, w, tt.expectedStatus, tt.expectedCode)
			assert.Empty(t, env.state.Favorites())
		})
	}
}
