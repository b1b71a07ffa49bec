package domain

// Event type constants used for event bus subscriptions and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "craft.completed")
const (
	// EventTypeMatchChanged is published when the staged ingredients start or stop matching a recipe
	EventTypeMatchChanged = "match.changed"

	// EventTypeCraftStarted is published when a session enters the crafting state
	EventTypeCraftStarted = "craft.started"

	// EventTypeCraftCompleted is published when the crafting delay elapses and the result is committed
	EventTypeCraftCompleted = "craft.completed"

	// EventTypeCraftCancelled is published when a pending craft is abandoned before it resolves
	EventTypeCraftCancelled = "craft.cancelled"

	// EventTypeRecipeDiscovered is published the first time a recipe is crafted
	EventTypeRecipeDiscovered = "recipe.discovered"
)

// Metadata keys attached to crafting events
const (
	MetadataKeyRecipeID  = "recipe_id"
	MetadataKeySessionID = "session_id"
	MetadataKeySource    = "source"
)
