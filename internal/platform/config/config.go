// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors. No global variables are used to store config.
*/
package config

import (
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/inkwell/internal/platform/constants"
)

// # Configuration Schema

// Config holds all runtime configuration for the Inkwell API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required,notEmpty"`

	// Token signing. The secret is read once and never rotated at runtime.
	JWTSecret string        `env:"JWT_SECRET,required,unset"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"inkwell.blog"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"24h"`

	// BcryptCost is the password hashing work factor.
	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`

	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Real-IP and X-Forwarded-For headers are believed. Empty means
	// the client address is always the TCP peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	trustedPrefixes []netip.Prefix
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks cross-field constraints that struct tags cannot express.
func (c *Config) Validate() error {
	if len(c.JWTSecret) < constants.MinSecretLength {
		return fmt.Errorf("config: JWT_SECRET must be at least %d bytes", constants.MinSecretLength)
	}

	if c.JWTTTL <= 0 {
		return fmt.Errorf("config: JWT_TTL must be positive, got %s", c.JWTTTL)
	}

	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("config: BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}

	prefixes, err := parsePrefixes(c.TrustedProxies)
	if err != nil {
		return fmt.Errorf("config: TRUSTED_PROXIES: %w", err)
	}
	c.trustedPrefixes = prefixes

	return nil
}

// TrustedProxyPrefixes returns the ranges parsed from TRUSTED_PROXIES by [Config.Validate].
func (c *Config) TrustedProxyPrefixes() []netip.Prefix {
	return c.trustedPrefixes
}

// parsePrefixes accepts CIDR ranges and bare addresses. A bare address
// becomes a single-host prefix.
func parsePrefixes(values []string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		if strings.Contains(value, "/") {
			prefix, err := netip.ParsePrefix(value)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}

		addr, err := netip.ParseAddr(value)
		if err != nil {
			return nil, err
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowsOrigin reports whether a browser origin may call the API outside development.
func (c *Config) AllowsOrigin(origin string) bool {
	for _, allowed := range c.ExtraOrigins {
		if strings.EqualFold(strings.TrimSpace(allowed), origin) {
			return true
		}
	}
	return false
}
