package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// LogMsgHandlerErrorFormat reports aggregated handler failures for one publish
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	// LogMsgNoSubscribers is logged at debug level when nobody listens for a type
	LogMsgNoSubscribers = "No subscribers for event"
)
