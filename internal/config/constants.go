package config

// Environment variable names
const (
	EnvLogLevel       = "LOG_LEVEL"
	EnvLogFormat      = "LOG_FORMAT"
	EnvEnvironment    = "ENVIRONMENT"
	EnvCatalogPath    = "CATALOG_PATH"
	EnvCatalogStrict  = "CATALOG_STRICT"
	EnvCraftDelayMS   = "CRAFT_DELAY_MS"
	EnvSlotLimit      = "SLOT_LIMIT"
	EnvMatchStrategy  = "MATCH_STRATEGY"
	EnvMatchCacheSize = "MATCH_CACHE_SIZE"
)

// Defaults
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultEnvironment    = "dev"
	DefaultCraftDelayMS   = 2000
	DefaultSlotLimit      = 6
	DefaultMatchStrategy  = "sorted"
	DefaultMatchCacheSize = 128
)

// Match strategies
const (
	MatchStrategySorted  = "sorted"
	MatchStrategyCounted = "counted"
)
