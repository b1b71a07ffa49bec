package bootstrap

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftlab/internal/config"
	"github.com/osse101/craftlab/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:       "debug",
		LogFormat:      "json",
		Environment:    "test",
		SlotLimit:      config.DefaultSlotLimit,
		MatchStrategy:  config.MatchStrategyCounted,
		MatchCacheSize: 16,
	}
}

func setupLogger(t *testing.T, cfg *config.Config) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	var buf bytes.Buffer
	SetupLogger(cfg, &buf)
	return &buf
}

func TestNew_WiresEngineEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig()
	logs := setupLogger(t, cfg)

	app, err := New(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, 12, app.Catalog.Len())

	id, ok := app.Resolver.Resolve("Water Drop")
	require.True(t, ok)
	assert.Equal(t, "water_drop", id)

	s := app.Engine.NewSession(ctx)
	defer s.Close()
	for _, token := range []string{"lightning", "lightning", "lightning"} {
		s.AddToken(ctx, token)
	}
	require.True(t, s.Craft(ctx))
	<-s.Done()

	result, ok := s.Result()
	require.True(t, ok)
	assert.Equal(t, "storm_keys", result.ID)

	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.CraftsCompleted.WithLabelValues("storm_keys", string(domain.CategoryEvolution))))
	assert.Equal(t, 1.0, testutil.ToFloat64(app.Metrics.RecipesDiscovered))

	stats, err := app.Stats.GetRecipeStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DiscoveredCount)

	assert.Contains(t, logs.String(), `"service":"craftlab"`)
	assert.Contains(t, logs.String(), `"session_id":"`+s.ID()+`"`)
	assert.Contains(t, logs.String(), "Discovery progress")
}

func TestNew_CatalogFromFile(t *testing.T) {
	cfg := testConfig()
	cfg.CatalogPath = filepath.Join("..", "catalog", "testdata", "ambiguous.json")
	setupLogger(t, cfg)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, app.Catalog.Len())

	cfg.CatalogStrict = true
	_, err = New(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousRecipe)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
}

func TestNew_InvalidStrategy(t *testing.T) {
	cfg := testConfig()
	cfg.MatchStrategy = "fuzzy"
	setupLogger(t, cfg)

	_, err := New(context.Background(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
