// Package recommend picks recipes for a list of ingredient names.
package recommend

import "smartexpire/internal/model"

// MaxRecipes caps the number of recipes returned by one recommendation.
const MaxRecipes = 3

// RecipeSource supplies the recipe list for an ingredient name.
type RecipeSource interface {
	RecipesFor(name string) []model.Recipe
}

// Engine recommends recipes from a RecipeSource.
type Engine struct {
	source RecipeSource
}

// NewEngine creates an engine over source.
func NewEngine(source RecipeSource) *Engine {
	return &Engine{source: source}
}

// Recommend walks names in order and, for each, takes the first recipe of
// every tier from Panic to Gourmet. Collection stops at MaxRecipes.
func (e *Engine) Recommend(names []string) []model.Recipe {
	out := make([]model.Recipe, 0, MaxRecipes)
	for _, name := range names {
		recipes := e.source.RecipesFor(name)
		for _, tier := range model.Tiers {
			r, ok := firstOfTier(recipes, tier)
			if !ok {
				continue
			}
			out = append(out, r)
			if len(out) == MaxRecipes {
				return out
			}
		}
	}
	return out
}

// SearchItem recommends recipes for a single ingredient.
func (e *Engine) SearchItem(name string) []model.Recipe {
	return e.Recommend([]string{name})
}

func firstOfTier(recipes []model.Recipe, tier model.Tier) (model.Recipe, bool) {
	for _, r := range recipes {
		if r.Tier == tier {
			return r, true
		}
	}
	return model.Recipe{}, false
}
