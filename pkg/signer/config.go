package signer

import (
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload" // Load .env file automatically
)

// Config holds signer settings sourced from the environment.
type Config struct {
	Secret string        `env:"SIGNER_SECRET,required"`          // HMAC root key material, never logged
	Salt   string        `env:"SIGNER_SALT" envDefault:""`       // Purpose namespace; empty means DefaultSalt
	MaxAge time.Duration `env:"SIGNER_MAX_AGE" envDefault:"24h"` // Suggested verification window for callers
}

// LoadConfig reads the signer configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig creates a TimestampSigner from the provided Config.
// Returns ErrNoSecret when the secret is empty.
func NewFromConfig(cfg Config, opts ...Option) (*TimestampSigner, error) {
	if cfg.Secret == "" {
		return nil, ErrNoSecret
	}
	return NewTimestamp([]byte(cfg.Secret), []byte(cfg.Salt), opts...), nil
}
