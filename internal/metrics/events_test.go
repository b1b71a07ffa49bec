package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/craftlab/internal/crafting"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
)

func newCollector(t *testing.T) (*Metrics, event.Bus) {
	t.Helper()
	m := New()
	bus := event.NewMemoryBus()
	NewEventMetricsCollector(m).Register(bus)
	return m, bus
}

func publish(t *testing.T, bus event.Bus, evt event.Event) {
	t.Helper()
	require.NoError(t, bus.Publish(context.Background(), evt))
}

func TestEventMetricsCollector_CraftLifecycle(t *testing.T) {
	m, bus := newCollector(t)
	recipe := domain.Recipe{ID: "keycap", Category: domain.CategoryCraft}

	publish(t, bus, crafting.NewMatchChangedEvent("s1", &recipe, []string{"plastic", "plastic", "spring"}))
	publish(t, bus, crafting.NewCraftStartedEvent("s1", recipe.ID, time.Now().Add(-time.Second), time.Second))
	publish(t, bus, crafting.NewCraftCompletedEvent("s1", recipe, true))
	publish(t, bus, crafting.NewRecipeDiscoveredEvent("s1", recipe))
	publish(t, bus, crafting.NewMatchChangedEvent("s1", nil, nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchChanges.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MatchChanges.WithLabelValues("false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CraftsStarted.WithLabelValues("keycap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CraftsCompleted.WithLabelValues("keycap", "craft")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RecipesDiscovered))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(domain.EventTypeMatchChanged)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.CraftDuration))
}

func TestEventMetricsCollector_Cancelled(t *testing.T) {
	m, bus := newCollector(t)

	publish(t, bus, crafting.NewCraftStartedEvent("s1", "keycap", time.Now(), time.Hour))
	publish(t, bus, crafting.NewCraftCancelledEvent("s1", "keycap", crafting.CancelReasonSessionClosed))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CraftsCancelled.WithLabelValues(crafting.CancelReasonSessionClosed)))
	assert.Zero(t, testutil.CollectAndCount(m.CraftsCompleted))

	samples, err := m.Snapshot()
	require.NoError(t, err)
	for _, s := range samples {
		if s.Name == Namespace+"_"+MetricNameCraftDuration {
			assert.Zero(t, s.Value, "a cancelled craft has no duration")
		}
	}
}

func TestEventMetricsCollector_UndecodablePayload(t *testing.T) {
	m, bus := newCollector(t)

	publish(t, bus, event.Event{Type: domain.EventTypeCraftStarted, Payload: "not a payload"})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues(domain.EventTypeCraftStarted)))
	assert.Zero(t, testutil.CollectAndCount(m.CraftsStarted))
}

func TestMetrics_PrivateRegistries(t *testing.T) {
	a := New()
	b := New()

	a.RecipesDiscovered.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.RecipesDiscovered))
	assert.Zero(t, testutil.ToFloat64(b.RecipesDiscovered))
}

func TestMetrics_Snapshot(t *testing.T) {
	m := New()
	m.CraftsStarted.WithLabelValues("a").Inc()
	m.CraftsStarted.WithLabelValues("b").Add(2)
	m.CraftDuration.Observe(0.5)

	samples, err := m.Snapshot()
	require.NoError(t, err)

	values := make(map[string]float64, len(samples))
	names := make([]string, 0, len(samples))
	for _, s := range samples {
		values[s.Name] = s.Value
		names = append(names, s.Name)
	}

	assert.IsIncreasing(t, names)
	assert.Equal(t, 3.0, values["craftlab_crafts_started_total"])
	assert.Equal(t, 1.0, values["craftlab_craft_duration_seconds"])
	assert.Equal(t, 0.0, values["craftlab_recipes_discovered"])
}
