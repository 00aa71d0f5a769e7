package cooldown

import (
	"context"
	"fmt"
)

// Clock reports the current turn. The turn loop owns it.
type Clock interface {
	Turn() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

func (f ClockFunc) Turn() int64 { return f() }

// Service tracks per-key cooldowns measured in turns
type Service interface {
	// CheckCooldown reports whether key is cooling down and how many turns remain
	CheckCooldown(key string) (bool, int64)

	// EnforceCooldown checks the cooldown and runs fn if allowed.
	// The cooldown restarts only when fn succeeds.
	EnforceCooldown(ctx context.Context, key string, fn func() error) error

	// SetCooldown overrides the window length for key
	SetCooldown(key string, turns int64)

	// ResetCooldown clears the last use of key
	ResetCooldown(key string)

	// GetLastUsed returns the turn key last ran, if ever
	GetLastUsed(key string) (int64, bool)
}

// ErrOnCooldown is returned when an action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining int64
}

func (e ErrOnCooldown) Error() string {
	if e.Remaining == 1 {
		return fmt.Sprintf(ErrFmtCooldownOneTurn, e.Action)
	}
	return fmt.Sprintf(ErrFmtCooldownTurns, e.Action, e.Remaining)
}

// Is allows errors.Is() to work with ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	_, ok := target.(ErrOnCooldown)
	return ok
}
