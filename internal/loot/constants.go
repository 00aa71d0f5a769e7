package loot

import "time"

// Cache defaults
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 30 * time.Minute
)

const (
	LogMsgContainerOpened = "Container opened"
	LogMsgTableCompiled   = "Loot table compiled"
)

const (
	LogFieldContainer = "container"
	LogFieldFixed     = "fixed"
	LogFieldRandom    = "random"
	LogFieldEntries   = "entries"
)

const ErrFmtContainer = "container %q: %w"
