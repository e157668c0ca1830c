package config

import (
	"fmt"
	"os"
	"strconv"
)

// DefaultTokenExpirationHours is the token lifetime when JWT_EXPIRATION_HOURS
// is unset.
const DefaultTokenExpirationHours = 24

// JWTConfig holds the API token signing settings
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig builds the JWT configuration from the environment. The secret
// is mandatory; a server must never start with an empty signing key.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	hours := DefaultTokenExpirationHours
	if raw := os.Getenv("JWT_EXPIRATION_HOURS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be a positive integer, got %q", raw)
		}
		hours = parsed
	}

	return &JWTConfig{
		Secret:          secret,
		ExpirationHours: hours,
	}, nil
}
