package stats

import (
	"context"
	"fmt"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/repository"
)

// Service derives discovery statistics from the recipe store. It never mutates progress.
type Service interface {
	GetRecipeStats(ctx context.Context) (*domain.RecipeStats, error)
	GetCategoryStats(ctx context.Context) ([]domain.CategoryStats, error)
}

type service struct {
	repo repository.Recipes
}

// NewService creates a new stats service
func NewService(repo repository.Recipes) Service {
	return &service{repo: repo}
}

// GetRecipeStats summarises the whole catalog
func (s *service) GetRecipeStats(ctx context.Context) (*domain.RecipeStats, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	stats := Compute(recipes)
	return &stats, nil
}

// GetCategoryStats summarises each category in domain.Categories order.
// Categories without recipes are included with zero totals.
func (s *service) GetCategoryStats(ctx context.Context) ([]domain.CategoryStats, error) {
	recipes, err := s.repo.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	grouped := make(map[domain.Category][]domain.Recipe, len(domain.Categories))
	for _, r := range recipes {
		grouped[r.Category] = append(grouped[r.Category], r)
	}

	result := make([]domain.CategoryStats, 0, len(domain.Categories))
	for _, category := range domain.Categories {
		result = append(result, domain.CategoryStats{
			Category:    category,
			RecipeStats: Compute(grouped[category]),
		})
	}
	return result, nil
}

// Compute derives stats from a recipe snapshot
func Compute(recipes []domain.Recipe) domain.RecipeStats {
	var stats domain.RecipeStats
	stats.TotalCount = len(recipes)
	for _, r := range recipes {
		if r.Discovered {
			stats.DiscoveredCount++
		}
		stats.TotalCrafts += r.TimesCompleted
	}
	stats.CompletionPercentage = Percentage(stats.DiscoveredCount, stats.TotalCount)
	return stats
}

// Percentage returns round(100*part/total), halves rounding up; 0 when total is 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*part + total) / (2 * total)
}
