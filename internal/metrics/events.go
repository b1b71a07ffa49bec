package metrics

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/osse101/craftlab/internal/crafting"
	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/logger"
)

// EventMetricsCollector subscribes to crafting events and records metrics
type EventMetricsCollector struct {
	metrics *Metrics

	mu      sync.Mutex
	started map[string]time.Time // session id -> pending craft start
}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector(m *Metrics) *EventMetricsCollector {
	return &EventMetricsCollector{
		metrics: m,
		started: make(map[string]time.Time),
	}
}

// Register subscribes to all crafting events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	eventTypes := []event.Type{
		domain.EventTypeMatchChanged,
		domain.EventTypeCraftStarted,
		domain.EventTypeCraftCompleted,
		domain.EventTypeCraftCancelled,
		domain.EventTypeRecipeDiscovered,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics. Undecodable payloads are
// logged and skipped; metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	e.metrics.EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeMatchChanged:
		var p crafting.MatchChangedPayload
		if p, err = event.DecodePayload[crafting.MatchChangedPayload](evt.Payload); err == nil {
			e.metrics.MatchChanges.WithLabelValues(strconv.FormatBool(p.Recipe != nil)).Inc()
		}

	case domain.EventTypeCraftStarted:
		var p crafting.CraftStartedPayload
		if p, err = event.DecodePayload[crafting.CraftStartedPayload](evt.Payload); err == nil {
			e.metrics.CraftsStarted.WithLabelValues(p.RecipeID).Inc()
			e.mu.Lock()
			e.started[p.SessionID] = p.StartedAt
			e.mu.Unlock()
		}

	case domain.EventTypeCraftCompleted:
		var p crafting.CraftCompletedPayload
		if p, err = event.DecodePayload[crafting.CraftCompletedPayload](evt.Payload); err == nil {
			e.metrics.CraftsCompleted.WithLabelValues(p.Recipe.ID, string(p.Recipe.Category)).Inc()
			if startedAt, ok := e.takeStart(p.SessionID); ok {
				e.metrics.CraftDuration.Observe(time.Since(startedAt).Seconds())
			}
		}

	case domain.EventTypeCraftCancelled:
		var p crafting.CraftCancelledPayload
		if p, err = event.DecodePayload[crafting.CraftCancelledPayload](evt.Payload); err == nil {
			e.metrics.CraftsCancelled.WithLabelValues(p.Reason).Inc()
			e.takeStart(p.SessionID)
		}

	case domain.EventTypeRecipeDiscovered:
		e.metrics.RecipesDiscovered.Inc()
	}

	if err != nil {
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) takeStart(sessionID string) (time.Time, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.started[sessionID]
	delete(e.started, sessionID)
	return t, ok
}
