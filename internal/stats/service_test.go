package stats

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftlab/internal/catalog"
	"github.com/osse101/craftlab/internal/database/memory"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/logger"
	"github.com/osse101/craftlab/internal/repository"
)

// MockRepository for stats tests
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]domain.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Recipe), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) RecordCraft(ctx context.Context, id string) (*repository.CraftRecord, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*repository.CraftRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total, want int
	}{
		{0, 0, 0},
		{0, 12, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13}, // 12.5 rounds up
		{1, 12, 8},
		{12, 12, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.part, tt.total), "%d/%d", tt.part, tt.total)
	}
}

func TestCompute(t *testing.T) {
	assert.Equal(t, domain.RecipeStats{}, Compute(nil))

	stats := Compute([]domain.Recipe{
		{ID: "a", Discovered: true, TimesCompleted: 4},
		{ID: "b"},
		{ID: "c", Discovered: true, TimesCompleted: 1},
	})

	assert.Equal(t, domain.RecipeStats{
		DiscoveredCount:      2,
		TotalCount:           3,
		CompletionPercentage: 67,
		TotalCrafts:          5,
	}, stats)
}

func TestService_TracksStore(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRecipeRepository(catalog.Default())
	svc := NewService(repo)

	stats, err := svc.GetRecipeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalCount)
	assert.Zero(t, stats.DiscoveredCount)
	assert.Zero(t, stats.CompletionPercentage)

	for _, id := range []string{"storm_keys", "storm_keys", "keycap"} {
		_, err := repo.RecordCraft(ctx, id)
		require.NoError(t, err)
	}

	stats, err = svc.GetRecipeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DiscoveredCount)
	assert.Equal(t, 3, stats.TotalCrafts)
	assert.Equal(t, 17, stats.CompletionPercentage)

	// totalCrafts always equals the sum of per-recipe counts
	recipes, err := repo.ListRecipes(ctx)
	require.NoError(t, err)
	sum := 0
	for _, r := range recipes {
		sum += r.TimesCompleted
	}
	assert.Equal(t, sum, stats.TotalCrafts)

	byCategory, err := svc.GetCategoryStats(ctx)
	require.NoError(t, err)
	require.Len(t, byCategory, len(domain.Categories))

	total := 0
	for i, cs := range byCategory {
		assert.Equal(t, domain.Categories[i], cs.Category)
		total += cs.TotalCount
		switch cs.Category {
		case domain.CategoryEvolution:
			assert.Equal(t, 1, cs.DiscoveredCount)
			assert.Equal(t, 2, cs.TotalCrafts)
			assert.Equal(t, 33, cs.CompletionPercentage)
		case domain.CategoryCraft:
			assert.Equal(t, 1, cs.DiscoveredCount)
			assert.Equal(t, 1, cs.TotalCrafts)
		default:
			assert.Zero(t, cs.DiscoveredCount)
		}
	}
	assert.Equal(t, stats.TotalCount, total)
}

func TestService_RepositoryError(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRecipes", mock.Anything).Return(nil, errors.New("unavailable"))
	svc := NewService(repo)

	_, err := svc.GetRecipeStats(context.Background())
	assert.Error(t, err)

	_, err = svc.GetCategoryStats(context.Background())
	assert.Error(t, err)

	repo.AssertExpectations(t)
}

func TestEventHandler_LogsProgress(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	logger.InitWithWriter(logger.Config{Level: "info", Format: "text"}, &buf)

	repo := new(MockRepository)
	repo.On("ListRecipes", mock.Anything).Return([]domain.Recipe{
		{ID: "a", Discovered: true, TimesCompleted: 1},
	}, nil)

	bus := event.NewMemoryBus()
	NewEventHandler(NewService(repo)).Register(bus)

	err := bus.Publish(context.Background(), event.Event{
		Type:     domain.EventTypeRecipeDiscovered,
		Metadata: event.Metadata{domain.MetadataKeyRecipeID: "a"},
	})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), LogMsgDiscoveryProgress)
	assert.Contains(t, buf.String(), "completion_percentage=100")
	assert.Contains(t, buf.String(), LogMsgCatalogCompleted)
}

func TestEventHandler_StatsFailureIsNotFatal(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListRecipes", mock.Anything).Return(nil, errors.New("unavailable"))

	h := NewEventHandler(NewService(repo))
	err := h.HandleRecipeDiscovered(context.Background(), event.Event{Type: domain.EventTypeRecipeDiscovered})
	assert.NoError(t, err)
}
