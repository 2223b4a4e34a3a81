package config

import (
	"fmt"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.LockTimeout < 0 {
		return fmt.Errorf("database.lock_timeout must be >= 0 (got %s)", c.Database.LockTimeout)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	if err := c.Claims.validate(); err != nil {
		return fmt.Errorf("claims: %w", err)
	}

	return nil
}

func (c ClaimsConfig) validate() error {
	if c.LeaseTTL < 0 {
		return fmt.Errorf("lease_ttl must be >= 0 (got %s)", c.LeaseTTL)
	}
	if c.LeaseEnabled() && c.ReclaimInterval <= 0 {
		return fmt.Errorf("reclaim_interval must be > 0 when lease_ttl is set (got %s)", c.ReclaimInterval)
	}
	return nil
}
