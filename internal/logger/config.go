package logger

import (
	"log/slog"
	"strings"
)

// Config describes how craftlab logs. Logs always go to stderr or a test
// writer, so command output on stdout stays clean.
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // text or json
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig builds the logger config for one run. Source locations are only
// attached to debug logs in the dev environment, where they are read by a person.
func NewConfig(level, format, environment string) Config {
	level = strings.ToLower(level)
	return Config{
		Level:       level,
		Format:      strings.ToLower(format),
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: environment,
		AddSource:   environment == EnvironmentDev && level == LogLevelDebug,
	}
}

// LogLevel maps Level to a slog level; unknown names log at info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes are attached to every record. Empty values are left out.
func (c Config) BaseAttributes() []slog.Attr {
	var attrs []slog.Attr
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
