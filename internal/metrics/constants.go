package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every crafting metric
const Namespace = "craftlab"

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Crafting metric names
const (
	MetricNameMatchChanges      = "match_changes_total"
	MetricNameCraftsStarted     = "crafts_started_total"
	MetricNameCraftsCompleted   = "crafts_completed_total"
	MetricNameCraftsCancelled   = "crafts_cancelled_total"
	MetricNameRecipesDiscovered = "recipes_discovered"
	MetricNameCraftDuration     = "craft_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextEventsPublished   = "Total number of crafting events observed"
	HelpTextMatchChanges      = "Total number of times a session's matched recipe changed"
	HelpTextCraftsStarted     = "Total number of crafts started"
	HelpTextCraftsCompleted   = "Total number of crafts committed to the recipe store"
	HelpTextCraftsCancelled   = "Total number of crafts abandoned before committing"
	HelpTextRecipesDiscovered = "Number of distinct recipes discovered"
	HelpTextCraftDuration     = "Time from craft start to commit in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelType     = "type"
	LabelRecipe   = "recipe"
	LabelCategory = "category"
	LabelReason   = "reason"
	LabelMatched  = "matched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// CraftDurationBuckets spans instant crafts up to well past the default 2s delay
var CraftDurationBuckets = []float64{.01, .05, .1, .25, .5, 1, 2, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
