package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/repository"
)

type progress struct {
	discovered     bool
	timesCompleted int
}

// RecipeRepository keeps discovery progress in memory for the life of the process
type RecipeRepository struct {
	catalog *catalog.Catalog

	mu       sync.RWMutex
	progress map[string]progress
}

var _ repository.Recipes = (*RecipeRepository)(nil)

// NewRecipeRepository creates a store over c with no recipes discovered
func NewRecipeRepository(c *catalog.Catalog) *RecipeRepository {
	return &RecipeRepository{
		catalog:  c,
		progress: make(map[string]progress, c.Len()),
	}
}

func (r *RecipeRepository) snapshot(def domain.Recipe) domain.Recipe {
	p := r.progress[def.ID]
	def.Discovered = p.discovered
	def.TimesCompleted = p.timesCompleted
	return def
}

// ListRecipes returns every recipe in catalog order
func (r *RecipeRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Recipe, r.catalog.Len())
	for i := range out {
		out[i] = r.snapshot(r.catalog.At(i))
	}
	return out, nil
}

// GetRecipe returns the recipe with its current progress, or nil if the id is unknown
func (r *RecipeRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	def, ok := r.catalog.Get(id)
	if !ok {
		return nil, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snap := r.snapshot(def)
	return &snap, nil
}

// RecordCraft marks the recipe discovered and increments its completion count.
// A cancelled context leaves progress untouched.
func (r *RecipeRepository) RecordCraft(ctx context.Context, id string) (*repository.CraftRecord, error) {
	def, ok := r.catalog.Get(id)
	if !ok {
		return nil, fmt.Errorf("record craft %q: %w", id, domain.ErrRecipeNotFound)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := r.progress[id]
	first := !p.discovered
	p.discovered = true
	p.timesCompleted++
	r.progress[id] = p

	return &repository.CraftRecord{
		Recipe:         r.snapshot(def),
		FirstDiscovery: first,
	}, nil
}
