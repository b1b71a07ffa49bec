package crafting

import (
	"time"

	"github.com/osse101/craftlab/internal/domain"
	"github.com/osse101/craftlab/internal/event"
)

// MatchChangedPayload is published when the staged tokens start or stop matching a recipe
type MatchChangedPayload struct {
	SessionID string         `json:"session_id"`
	Recipe    *domain.Recipe `json:"recipe,omitempty"` // nil when nothing matches
	Tokens    []string       `json:"tokens"`
	Timestamp int64          `json:"timestamp"`
}

// CraftStartedPayload is published when a session enters the crafting state
type CraftStartedPayload struct {
	SessionID string        `json:"session_id"`
	RecipeID  string        `json:"recipe_id"`
	StartedAt time.Time     `json:"started_at"`
	Delay     time.Duration `json:"delay"`
}

// CraftCompletedPayload carries the committed recipe for display
type CraftCompletedPayload struct {
	SessionID      string        `json:"session_id"`
	Recipe         domain.Recipe `json:"recipe"`
	FirstDiscovery bool          `json:"first_discovery"`
	Timestamp      int64         `json:"timestamp"`
}

// CraftCancelledPayload is published when a pending craft resolves without committing
type CraftCancelledPayload struct {
	SessionID string `json:"session_id"`
	RecipeID  string `json:"recipe_id"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// RecipeDiscoveredPayload is published the first time a recipe is crafted
type RecipeDiscoveredPayload struct {
	SessionID string          `json:"session_id"`
	RecipeID  string          `json:"recipe_id"`
	Name      string          `json:"name"`
	Category  domain.Category `json:"category"`
	Timestamp int64           `json:"timestamp"`
}

func metadata(sessionID, recipeID string) event.Metadata {
	m := event.Metadata{
		domain.MetadataKeySessionID: sessionID,
		domain.MetadataKeySource:    EventSource,
	}
	if recipeID != "" {
		m[domain.MetadataKeyRecipeID] = recipeID
	}
	return m
}

// NewMatchChangedEvent creates a match.changed event; recipe may be nil
func NewMatchChangedEvent(sessionID string, recipe *domain.Recipe, tokens []string) event.Event {
	recipeID := ""
	if recipe != nil {
		recipeID = recipe.ID
	}
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeMatchChanged,
		Payload: MatchChangedPayload{
			SessionID: sessionID,
			Recipe:    recipe,
			Tokens:    tokens,
			Timestamp: time.Now().Unix(),
		},
		Metadata: metadata(sessionID, recipeID),
	}
}

// NewCraftStartedEvent creates a craft.started event
func NewCraftStartedEvent(sessionID, recipeID string, startedAt time.Time, delay time.Duration) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeCraftStarted,
		Payload: CraftStartedPayload{
			SessionID: sessionID,
			RecipeID:  recipeID,
			StartedAt: startedAt,
			Delay:     delay,
		},
		Metadata: metadata(sessionID, recipeID),
	}
}

// NewCraftCompletedEvent creates a craft.completed event
func NewCraftCompletedEvent(sessionID string, recipe domain.Recipe, firstDiscovery bool) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeCraftCompleted,
		Payload: CraftCompletedPayload{
			SessionID:      sessionID,
			Recipe:         recipe,
			FirstDiscovery: firstDiscovery,
			Timestamp:      time.Now().Unix(),
		},
		Metadata: metadata(sessionID, recipe.ID),
	}
}

// NewCraftCancelledEvent creates a craft.cancelled event
func NewCraftCancelledEvent(sessionID, recipeID, reason string) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeCraftCancelled,
		Payload: CraftCancelledPayload{
			SessionID: sessionID,
			RecipeID:  recipeID,
			Reason:    reason,
			Timestamp: time.Now().Unix(),
		},
		Metadata: metadata(sessionID, recipeID),
	}
}

// NewRecipeDiscoveredEvent creates a recipe.discovered event
func NewRecipeDiscoveredEvent(sessionID string, recipe domain.Recipe) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeRecipeDiscovered,
		Payload: RecipeDiscoveredPayload{
			SessionID: sessionID,
			RecipeID:  recipe.ID,
			Name:      recipe.Name,
			Category:  recipe.Category,
			Timestamp: time.Now().Unix(),
		},
		Metadata: metadata(sessionID, recipe.ID),
	}
}
