// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Storage backends.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds every setting the server reads at startup.
type Config struct {
	Addr        string
	WebDir      string
	DatabaseURL string
	Storage     string
	FoodCatalog string
	DisableAuth bool
	OIDC        OIDC

	// TrustForwardAuth enables Remote-User login. Only safe behind a proxy
	// that owns the header.
	TrustForwardAuth bool
}

// OIDC holds the single sign-on client settings. SSO is enabled when Issuer
// and ClientID are both set.
type OIDC struct {
	Issuer       string
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether SSO is configured.
func (o OIDC) Enabled() bool {
	return o.Issuer != "" && o.ClientID != ""
}

// LoadEnvFile copies envFiles (default ".env") into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(envFiles ...string) error {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// LogLevel parses LOG_LEVEL, defaulting to info. Call LoadEnvFile first so a
// level set in .env is seen.
func LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(env("LOG_LEVEL", "info"))
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// Load reads envFiles (default ".env") if present and then the environment.
func Load(envFiles ...string) (*Config, error) {
	if err := LoadEnvFile(envFiles...); err != nil {
		return nil, err
	}

	disableAuth, err := boolEnv("DISABLE_AUTH", false)
	if err != nil {
		return nil, err
	}
	trustForwardAuth, err := boolEnv("TRUST_FORWARD_AUTH", false)
	if err != nil {
		return nil, err
	}

	c := &Config{
		Addr:        env("ADDR", ":8080"),
		WebDir:      env("WEB_DIR", "web"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Storage:     env("STORAGE", StoragePostgres),
		FoodCatalog: os.Getenv("FOOD_CATALOG"),
		DisableAuth: disableAuth,

		TrustForwardAuth: trustForwardAuth,
		OIDC: OIDC{
			Issuer:       os.Getenv("OIDC_ISSUER"),
			ClientID:     os.Getenv("OIDC_CLIENT_ID"),
			ClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),
		},
	}
	return c, c.Validate()
}

// Validate checks the combination of settings.
func (c *Config) Validate() error {
	switch c.Storage {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("STORAGE must be %q or %q", StoragePostgres, StorageMemory)
	}
	if c.OIDC.Enabled() && c.OIDC.RedirectURL == "" {
		return errors.New("OIDC_REDIRECT_URL is required when SSO is enabled")
	}
	return nil
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
