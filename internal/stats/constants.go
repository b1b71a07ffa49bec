package stats

// Log messages
const (
	LogMsgDiscoveryProgress = "Discovery progress"
	LogMsgCatalogCompleted  = "Every recipe discovered"
	LogMsgStatsUnavailable  = "Failed to compute discovery stats"
)
