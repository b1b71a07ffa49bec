package bootstrap

// Log messages
const (
	LogMsgLoggingInitialized         = "Logging initialized"
	LogMsgStarting                   = "Starting craftlab"
	LogMsgConfigurationLoaded        = "Configuration loaded"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Stats event handler registered"
	LogMsgUsingBuiltInCatalog        = "Using built-in recipe catalog"
	LogMsgCatalogReady               = "Recipe catalog ready"
)

// Error messages
const (
	ErrMsgFailedLoadCatalog  = "failed to load recipe catalog"
	ErrMsgFailedCreateEngine = "failed to create crafting engine"
)
