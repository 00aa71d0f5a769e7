package cooldown

// =============================================================================
// Turn Constants
// =============================================================================

const (
	// DefaultCooldownTurns is the fallback window when no specific one is configured
	DefaultCooldownTurns int64 = 10
)

// =============================================================================
// Log Message Constants
// =============================================================================

const (
	// LogMsgDevModeBypass is logged when dev mode bypasses cooldown enforcement
	LogMsgDevModeBypass = "DEV_MODE: Bypassing cooldown enforcement"

	// LogMsgCooldownEnforced is logged when an action ran and its window restarted
	LogMsgCooldownEnforced = "Cooldown enforced successfully"
)

// =============================================================================
// Error Message Format Strings (for ErrOnCooldown.Error())
// =============================================================================

const (
	// ErrFmtCooldownTurns formats a cooldown error with the remaining turns
	ErrFmtCooldownTurns = "%s is cooling down for %d more turns"

	// ErrFmtCooldownOneTurn formats a cooldown error with a single turn left
	ErrFmtCooldownOneTurn = "%s is cooling down for 1 more turn"
)
