// Package config builds the engine's immutable configuration from named
// environment channels and an optional TOML file.
//
// The hosting launcher passes everything environment-style: the query, the
// session token, the scoring weights, and the cache root. Precedence is
// environment over file over built-in defaults; the engine itself never
// reads ambient state after Load returns.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dshills/fuzzyfeed/internal/fuzzy"
)

// Environment channel names.
const (
	// EnvQuery carries the text to filter against.
	EnvQuery = "query"

	// EnvSessionVar overrides the name of the session token channel.
	EnvSessionVar = "session_var"

	// EnvCacheDir carries the base path for the session cache.
	EnvCacheDir = "cache_dir"

	// EnvSeparators carries the separator character set.
	EnvSeparators = "separators"

	// Integer weight channels.
	EnvAdjBonus         = "adj_bonus"
	EnvCamelBonus       = "camel_bonus"
	EnvLeadPenalty      = "lead_penalty"
	EnvMaxLeadPenalty   = "max_lead_penalty"
	EnvSepBonus         = "sep_bonus"
	EnvUnmatchedPenalty = "unmatched_penalty"
)

// DefaultSessionVar is the variable name carrying the session token unless
// overridden via EnvSessionVar.
const DefaultSessionVar = "fuzzy_session_id"

// ErrInvalidChannel indicates a channel value could not be parsed.
var ErrInvalidChannel = errors.New("invalid channel value")

// Config is the engine configuration, built once and passed in explicitly.
type Config struct {
	// Query is the text to filter against; may be empty.
	Query string

	// SessionVar is the variable name carrying the session token.
	SessionVar string

	// SessionID is the externally supplied session token; empty starts a
	// new session.
	SessionID string

	// CacheRoot is the base path for the session cache.
	CacheRoot string

	// Weights are the matcher's scoring weights.
	Weights fuzzy.Weights
}

// Load builds a Config from the environment, layered over the optional
// TOML file at path (empty path skips the file) and the built-in defaults.
func Load(path string) (Config, error) {
	cfg := Config{
		SessionVar: DefaultSessionVar,
		Weights:    fuzzy.DefaultWeights(),
	}

	if path != "" {
		if err := applyFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays set environment channels onto cfg.
func applyEnv(cfg *Config) error {
	cfg.Query = os.Getenv(EnvQuery)
	if v, ok := os.LookupEnv(EnvSessionVar); ok && v != "" {
		cfg.SessionVar = v
	}
	cfg.SessionID = os.Getenv(cfg.SessionVar)
	if v, ok := os.LookupEnv(EnvCacheDir); ok && v != "" {
		cfg.CacheRoot = v
	}
	if v, ok := os.LookupEnv(EnvSeparators); ok && v != "" {
		cfg.Weights.Separators = v
	}

	ints := []struct {
		name string
		dst  *int
	}{
		{EnvAdjBonus, &cfg.Weights.AdjBonus},
		{EnvCamelBonus, &cfg.Weights.CamelBonus},
		{EnvLeadPenalty, &cfg.Weights.LeadPenalty},
		{EnvMaxLeadPenalty, &cfg.Weights.MaxLeadPenalty},
		{EnvSepBonus, &cfg.Weights.SepBonus},
		{EnvUnmatchedPenalty, &cfg.Weights.UnmatchedPenalty},
	}
	for _, ch := range ints {
		v, ok := os.LookupEnv(ch.name)
		if !ok || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidChannel, ch.name, v)
		}
		*ch.dst = n
	}
	return nil
}

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}
