package repository

import (
	"context"

	"github.com/osse101/craftlab/internal/domain"
)

// Recipes is the recipe store: catalog definitions merged with discovery progress.
// RecordCraft is the only way progress changes.
type Recipes interface {
	// ListRecipes returns every recipe in catalog order
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)
	// GetRecipe returns nil without error when the id is unknown
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)
	// RecordCraft atomically marks the recipe discovered and increments its completion count
	RecordCraft(ctx context.Context, id string) (*CraftRecord, error)
}

// CraftRecord is the outcome of RecordCraft
type CraftRecord struct {
	Recipe         domain.Recipe
	FirstDiscovery bool
}
