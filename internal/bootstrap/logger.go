package bootstrap

import (
	"io"
	"log/slog"

	"github.com/osse101/craftlab/internal/config"
	"github.com/osse101/craftlab/internal/logger"
)

// SetupLogger installs the default slog logger described by cfg, writing to w
func SetupLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	l := logger.InitWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.Environment), w)
	l.Debug(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Debug(LogMsgConfigurationLoaded,
		"catalog_path", cfg.CatalogPath,
		"catalog_strict", cfg.CatalogStrict,
		"craft_delay", cfg.CraftDelay(),
		"match_strategy", cfg.MatchStrategy,
		"match_cache_size", cfg.MatchCacheSize)

	return l
}
