package logger

import (
	"log/slog"
	"strings"
)

// Config selects the handler and the attributes stamped on every record.
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ConfigFor returns the preset for an environment. Production and staging
// log JSON at info, tests stay quiet below warn, anything else is treated
// as a developer machine.
func ConfigFor(environment string) Config {
	cfg := Config{
		Level:       LogLevelInfo,
		Format:      LogFormatJSON,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: environment,
	}
	switch environment {
	case EnvironmentProduction, EnvironmentStaging:
	case EnvironmentTest:
		cfg.Level = LogLevelWarn
		cfg.Format = LogFormatText
	default:
		cfg.Level = LogLevelDebug
		cfg.Format = LogFormatText
		cfg.Environment = EnvironmentDev
		cfg.AddSource = true
	}
	return cfg
}

// DevelopmentConfig is ConfigFor(EnvironmentDev).
func DevelopmentConfig() Config { return ConfigFor(EnvironmentDev) }

// LogLevel maps Level to a slog level, defaulting to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record. Empty values are skipped.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
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
