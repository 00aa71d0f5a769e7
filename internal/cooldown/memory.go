package cooldown

import (
	"context"

	"github.com/R-Gerard/Roguelike-sub001/internal/logger"
)

// memoryBackend implements Service in process. The game is single
// threaded so no locking is done.
type memoryBackend struct {
	clock    Clock
	config   Config
	lastUsed map[string]int64
}

// NewService creates a cooldown service driven by clock
func NewService(clock Clock, config Config) Service {
	if config.Cooldowns == nil {
		config.Cooldowns = make(map[string]int64)
	}
	return &memoryBackend{
		clock:    clock,
		config:   config,
		lastUsed: make(map[string]int64),
	}
}

func (b *memoryBackend) CheckCooldown(key string) (bool, int64) {
	if b.config.DevMode {
		return false, 0
	}
	last, ok := b.lastUsed[key]
	if !ok {
		return false, 0
	}
	return b.checkCooldownInternal(b.clock.Turn(), &last, b.config.GetCooldownTurns(key))
}

func (b *memoryBackend) EnforceCooldown(ctx context.Context, key string, fn func() error) error {
	log := logger.FromContext(ctx)

	if b.config.DevMode {
		log.Debug(LogMsgDevModeBypass, "action", key)
	} else if onCooldown, remaining := b.CheckCooldown(key); onCooldown {
		return ErrOnCooldown{Action: key, Remaining: remaining}
	}

	if err := fn(); err != nil {
		return err
	}

	b.lastUsed[key] = b.clock.Turn()
	log.Debug(LogMsgCooldownEnforced, "action", key, "turn", b.lastUsed[key])
	return nil
}

func (b *memoryBackend) SetCooldown(key string, turns int64) {
	b.config.Cooldowns[key] = turns
}

func (b *memoryBackend) ResetCooldown(key string) {
	delete(b.lastUsed, key)
}

func (b *memoryBackend) GetLastUsed(key string) (int64, bool) {
	turn, ok := b.lastUsed[key]
	return turn, ok
}

// checkCooldownInternal is the pure window test. A window of n turns that
// started at turn t is open again from turn t+n.
func (b *memoryBackend) checkCooldownInternal(now int64, lastUsed *int64, window int64) (bool, int64) {
	if lastUsed == nil {
		return false, 0
	}
	elapsed := now - *lastUsed
	if elapsed >= window {
		return false, 0
	}
	return true, window - elapsed
}
