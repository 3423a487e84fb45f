package model

import "fmt"

// Tier is the effort level of a recipe.
type Tier string

const (
	TierPanic   Tier = "Panic"
	TierSimple  Tier = "Simple"
	TierGourmet Tier = "Gourmet"
)

// Tiers lists recipe tiers in recommendation order.
var Tiers = []Tier{TierPanic, TierSimple, TierGourmet}

// ParseTier converts a wire value into a Tier.
func ParseTier(s string) (Tier, error) {
	for _, t := range Tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", NewValidationError(fmt.Sprintf("unknown recipe type %q", s))
}

// Recipe is a catalog recipe. Name and Tier together identify it.
type Recipe struct {
	Name         string `json:"name" yaml:"name"`
	Tier         Tier   `json:"type" yaml:"type"`
	Description  string `json:"description" yaml:"description"`
	Ingredients  string `json:"ingredients" yaml:"ingredients"`
	PrepTime     string `json:"prepTime" yaml:"prep_time"`
	Instructions string `json:"instructions" yaml:"instructions"`
	Image        string `json:"image" yaml:"image"`
}

// Same reports whether r and other share name and tier.
func (r Recipe) Same(other Recipe) bool {
	return r.Name == other.Name && r.Tier == other.Tier
}

// RecommendRequest is the payload for a multi-ingredient recommendation.
type RecommendRequest struct {
	Ingredients []string `json:"ingredients" validate:"required,min=1,dive,required"`
}

// FavoriteRequest identifies a catalog recipe to save.
type FavoriteRequest struct {
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=Panic Simple Gourmet"`
}
