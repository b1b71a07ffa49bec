package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/config"
	"github.com/osse101/craftlab/internal/database/memory"
)

// LoadCatalog loads cfg.CatalogPath, or the built-in catalog when it is empty
func LoadCatalog(ctx context.Context, cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		slog.Debug(LogMsgUsingBuiltInCatalog)
		return catalog.Default(), nil
	}

	c, err := catalog.NewLoader(catalog.Options{Strict: cfg.CatalogStrict}).Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}
	return c, nil
}

// InitializeRepositories creates the recipe store over c
func InitializeRepositories(c *catalog.Catalog) *memory.RecipeRepository {
	return memory.NewRecipeRepository(c)
}
