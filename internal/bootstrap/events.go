package bootstrap

import (
	"log/slog"

	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/metrics"
	"github.com/osse101/craftlab/internal/stats"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus     event.Bus
	Metrics      *metrics.Metrics
	StatsService stats.Service
}

// InitializeEventSystem creates the in-process event bus
func InitializeEventSystem() event.Bus {
	bus := event.NewMemoryBus()
	slog.Debug(LogMsgEventSystemInitialized)
	return bus
}

// RegisterEventHandlers subscribes the metrics collector and the stats progress logger
func RegisterEventHandlers(deps EventHandlerDependencies) {
	metrics.NewEventMetricsCollector(deps.Metrics).Register(deps.EventBus)
	slog.Debug(LogMsgMetricsCollectorRegistered)

	stats.NewEventHandler(deps.StatsService).Register(deps.EventBus)
	slog.Debug(LogMsgStatsHandlerRegistered)
}
