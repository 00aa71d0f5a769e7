package cooldown

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps keys to their window in turns
	Cooldowns map[string]int64

	// Default applies to keys without an entry. Zero means DefaultCooldownTurns.
	Default int64
}

// GetCooldownTurns returns the window for a key
func (c *Config) GetCooldownTurns(key string) int64 {
	if c.Cooldowns != nil {
		if turns, ok := c.Cooldowns[key]; ok {
			return turns
		}
	}
	if c.Default > 0 {
		return c.Default
	}
	return DefaultCooldownTurns
}
