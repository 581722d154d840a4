package scope

import (
	"fmt"
	"time"
)

// Payload is the identity carried inside an access token.
type Payload struct {
	UserID   string
	Username string
}

// Config holds token manager configuration.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Validate validates the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("scope: Secret is required")
	}
	if c.TokenTTL <= 0 {
		c.TokenTTL = DefaultTokenTTL
	}
	return nil
}

const (
	// DefaultTokenTTL is the default access token lifetime.
	DefaultTokenTTL = 24 * time.Hour

	// verifyCacheSize bounds the verified-token cache.
	verifyCacheSize = 1024

	// verifyCacheTTL is how long a verified token stays cached. Kept well
	// below any sane token TTL so revocation-by-expiry is not extended.
	verifyCacheTTL = 5 * time.Minute
)
