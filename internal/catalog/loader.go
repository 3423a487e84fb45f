package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for catalog files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based catalog loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a YAML catalog file. Paths ending in .gz are gunzipped.
func (l *fileLoader) Load(ctx context.Context, path string) (*Catalog, error) {
	l.logger.Info().Str("file", path).Msg("loading catalog file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open catalog file")
		return nil, fmt.Errorf("failed to open catalog file %s: %w", path, err)
	}
	defer file.Close()

	c, err := Decode(file, IsGzip(path))
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode catalog file")
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("ingredients", len(c.Recipes)).
		Int("disposal_categories", len(c.Disposal)).
		Msg("catalog file loaded successfully")

	return c, nil
}

// builtinLoader serves the compiled-in catalog.
type builtinLoader struct{}

// NewBuiltinLoader returns a Loader that ignores the path and returns Builtin().
func NewBuiltinLoader() Loader {
	return builtinLoader{}
}

func (builtinLoader) Load(ctx context.Context, _ string) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Builtin(), nil
}
