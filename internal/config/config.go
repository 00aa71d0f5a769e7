package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/R-Gerard/Roguelike-sub001/internal/cooldown"
	"github.com/R-Gerard/Roguelike-sub001/internal/inventory"
	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
)

// Config holds the simulator configuration
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`
	Environment      string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging production test"`
	ServiceName      string `env:"SERVICE_NAME" envDefault:"dungeon-sim" validate:"required"`
	Version          string `env:"VERSION" envDefault:"dev"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogSource bool   `env:"LOG_SOURCE"`
	// LogDir also writes logs to a session file there when set.
	LogDir string `env:"LOG_DIR"`

	ItemsPath      string `env:"ITEMS_PATH" envDefault:"configs/items.yaml" validate:"required"`
	PopulationPath string `env:"POPULATION_PATH" envDefault:"configs/population.json"`

	// Seed 0 seeds from the clock.
	Seed  uint64 `env:"SEED"`
	Turns int    `env:"TURNS" envDefault:"100" validate:"gte=0"`

	// HTTPAddr enables the debug server when set, e.g. ":8080".
	HTTPAddr string `env:"HTTP_ADDR"`

	InventoryMaxSlots int `env:"INVENTORY_MAX_SLOTS" envDefault:"26" validate:"gte=0"`
	InventoryMaxLoad  int `env:"INVENTORY_MAX_LOAD" validate:"gte=0"`

	LootCacheSize int           `env:"LOOT_CACHE_SIZE" envDefault:"128" validate:"gte=1"`
	LootCacheTTL  time.Duration `env:"LOOT_CACHE_TTL" envDefault:"30m"`

	SpawnCooldownTurns int64 `env:"SPAWN_COOLDOWN_TURNS" envDefault:"10" validate:"gte=0"`
	DevMode            bool  `env:"DEV_MODE"`
}

// Load reads .env files if present, then the environment. Values already
// set in the environment win over the files.
func Load(files ...string) (*Config, error) {
	// Missing .env files are fine; real env vars may be set instead
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf(ErrMsgParseEnvFailed, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	if err := cfg.CheckFiles(); err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidConfig, err)
	}
	return &cfg, nil
}

// Logger returns the logger settings.
func (c *Config) Logger() logger.Config {
	return logger.NewConfig(c.LogLevel, c.LogFormat, c.ServiceName, c.Version, c.Environment, c.LogSource)
}

// InventoryLimits returns the per-actor inventory bounds.
func (c *Config) InventoryLimits() inventory.Limits {
	return inventory.Limits{MaxSlots: c.InventoryMaxSlots, MaxLoad: c.InventoryMaxLoad}
}

// Cooldowns returns the respawn cooldown settings.
func (c *Config) Cooldowns() cooldown.Config {
	return cooldown.Config{DevMode: c.DevMode, Default: c.SpawnCooldownTurns}
}

// DebugServerEnabled reports whether the debug server should run.
func (c *Config) DebugServerEnabled() bool { return c.HTTPAddr != "" }
