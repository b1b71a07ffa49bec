package stats

import (
	"context"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
	"github.com/osse101/craftlab/internal/logger"
)

// EventHandler logs discovery progress as recipes are discovered
type EventHandler struct {
	service Service
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(service Service) *EventHandler {
	return &EventHandler{
		service: service,
	}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.Type(domain.EventTypeRecipeDiscovered), h.HandleRecipeDiscovered)
}

// HandleRecipeDiscovered logs the updated completion percentage
func (h *EventHandler) HandleRecipeDiscovered(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	stats, err := h.service.GetRecipeStats(ctx)
	if err != nil {
		log.Warn(LogMsgStatsUnavailable, "error", err)
		return nil
	}

	log.Info(LogMsgDiscoveryProgress,
		"recipe_id", evt.GetMetadataValue(domain.MetadataKeyRecipeID),
		"discovered", stats.DiscoveredCount,
		"total", stats.TotalCount,
		"completion_percentage", stats.CompletionPercentage)

	if stats.TotalCount > 0 && stats.DiscoveredCount == stats.TotalCount {
		log.Info(LogMsgCatalogCompleted, "total_crafts", stats.TotalCrafts)
	}
	return nil
}
