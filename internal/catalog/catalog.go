package catalog

import (
	"context"
	"fmt"

	"smartexpire/internal/model"
)

// DefaultKey is the recipe list used for ingredients with no entry of their own.
const DefaultKey = "default"

// Catalog holds the recipe table and the grocery disposal table.
type Catalog struct {
	Recipes         map[string][]model.Recipe `yaml:"recipes"`
	Disposal        map[string]model.Disposal `yaml:"disposal"`
	DefaultDisposal model.Disposal            `yaml:"default_disposal"`
}

// Loader defines the interface for loading catalog files.
type Loader interface {
	// Load reads a catalog file and returns the parsed catalog.
	Load(ctx context.Context, path string) (*Catalog, error)
}

// RecipesFor returns the recipe list for an ingredient name. Lookup is exact
// and case-sensitive; unknown names get the default list.
func (c *Catalog) RecipesFor(name string) []model.Recipe {
	if recipes, ok := c.Recipes[name]; ok {
		return recipes
	}
	return c.Recipes[DefaultKey]
}

// FindRecipe looks a recipe up by name and tier across every ingredient list.
func (c *Catalog) FindRecipe(name string, tier model.Tier) (model.Recipe, bool) {
	for _, recipes := range c.Recipes {
		for _, r := range recipes {
			if r.Name == name && r.Tier == tier {
				return r, true
			}
		}
	}
	return model.Recipe{}, false
}

// Advise returns disposal advice for a category in a mode. Modes with fixed
// advice ignore the category; grocery falls back to the default entry.
func (c *Catalog) Advise(category string, mode model.Mode) model.Disposal {
	if fixed := mode.Profile().FixedDisposal; fixed != nil {
		return *fixed
	}
	if d, ok := c.Disposal[category]; ok {
		return d
	}
	return c.DefaultDisposal
}

// Validate checks that the catalog can serve every lookup.
func (c *Catalog) Validate() error {
	defaults, ok := c.Recipes[DefaultKey]
	if !ok || len(defaults) == 0 {
		return fmt.Errorf("catalog has no %q recipe list", DefaultKey)
	}
	for key, recipes := range c.Recipes {
		for i, r := range recipes {
			if r.Name == "" {
				return fmt.Errorf("recipe %d for %q has no name", i, key)
			}
			if _, err := model.ParseTier(string(r.Tier)); err != nil {
				return fmt.Errorf("recipe %q for %q: %w", r.Name, key, err)
			}
		}
	}
	if c.DefaultDisposal.Instructions == "" {
		return fmt.Errorf("catalog has no default disposal advice")
	}
	return nil
}

// withDefaults fills sections missing from a loaded file with built-in data.
func (c *Catalog) withDefaults() *Catalog {
	builtin := Builtin()
	if len(c.Recipes) == 0 {
		c.Recipes = builtin.Recipes
	}
	if len(c.Disposal) == 0 {
		c.Disposal = builtin.Disposal
	}
	if c.DefaultDisposal.Instructions == "" {
		c.DefaultDisposal = builtin.DefaultDisposal
	}
	return c
}
