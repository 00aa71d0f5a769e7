package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of old log files kept before a new one is opened
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting dungeon simulation"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgConfigWarning       = "Configuration warning"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory: %w"
	ErrMsgFailedOpenLogFile   = "failed to open log file: %w"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Simulation
// =============================================================================

const (
	// HeroID names the scripted adventurer
	HeroID = "hero"

	// HeroHealth is the adventurer's starting health
	HeroHealth = 30

	// PotionInterval is how often, in turns, the adventurer drinks a potion
	PotionInterval = 10
)

const (
	LogMsgSimulationReady    = "Simulation ready"
	LogMsgSimulationFinished = "Simulation finished"
	LogMsgHeroArmed          = "Hero armed"
	LogMsgHeroKilled         = "Hero killed an entity"
	LogMsgHeroCollected      = "Hero collected an item"
	LogMsgHeroDiscarded      = "Hero left an item behind"
	LogMsgLootOpened         = "Hero opened a container"

	ErrMsgBuildSpawnList = "spawn list %q: %w"
	ErrMsgOpenContainer  = "open %q: %w"
)

const (
	LogFieldSeed       = "seed"
	LogFieldRegions    = "regions"
	LogFieldContainers = "containers"
	LogFieldContainer  = "container"
	LogFieldTurns      = "turns"
	LogFieldSpawned    = "spawned"
	LogFieldKilled     = "killed"
	LogFieldCollected  = "collected"
	LogFieldKind       = "kind"
	LogFieldRegion     = "region"
	LogFieldItems      = "items"
	LogFieldError      = "error"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
)

// ShutdownTimeout bounds how long the debug server gets to drain
const ShutdownTimeout = 10 * time.Second
