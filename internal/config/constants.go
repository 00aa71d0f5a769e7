package config

// Default file locations, relative to the working directory
const (
	ConfigPathItems      = "configs/items.yaml"
	ConfigPathPopulation = "configs/population.json"
)

const (
	ErrMsgParseEnvFailed   = "parse env: %w"
	ErrMsgInvalidConfig    = "invalid configuration: %w"
	ErrMsgFileUnreadable   = "%s %q: %w"
	ErrMsgVersionMismatch  = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	WarnMsgDevModeInProd   = "DEV_MODE is enabled in production; respawn cooldowns are bypassed"
	WarnMsgUnseededInTests = "SEED is not set; test runs will not be reproducible"
)
