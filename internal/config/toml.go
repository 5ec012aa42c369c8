package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrFileNotFound indicates the configuration file doesn't exist.
var ErrFileNotFound = errors.New("config file not found")

// fileConfig is the TOML file schema. Pointer fields distinguish "absent"
// from zero so the file only overrides what it actually sets.
type fileConfig struct {
	SessionVar       *string `toml:"session_var"`
	CacheDir         *string `toml:"cache_dir"`
	Separators       *string `toml:"separators"`
	AdjBonus         *int    `toml:"adj_bonus"`
	CamelBonus       *int    `toml:"camel_bonus"`
	LeadPenalty      *int    `toml:"lead_penalty"`
	MaxLeadPenalty   *int    `toml:"max_lead_penalty"`
	SepBonus         *int    `toml:"sep_bonus"`
	UnmatchedPenalty *int    `toml:"unmatched_penalty"`
}

// applyFile overlays the TOML file at path onto cfg.
func applyFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if fc.SessionVar != nil && *fc.SessionVar != "" {
		cfg.SessionVar = *fc.SessionVar
	}
	if fc.CacheDir != nil {
		cfg.CacheRoot = *fc.CacheDir
	}
	if fc.Separators != nil {
		cfg.Weights.Separators = *fc.Separators
	}
	if fc.AdjBonus != nil {
		cfg.Weights.AdjBonus = *fc.AdjBonus
	}
	if fc.CamelBonus != nil {
		cfg.Weights.CamelBonus = *fc.CamelBonus
	}
	if fc.LeadPenalty != nil {
		cfg.Weights.LeadPenalty = *fc.LeadPenalty
	}
	if fc.MaxLeadPenalty != nil {
		cfg.Weights.MaxLeadPenalty = *fc.MaxLeadPenalty
	}
	if fc.SepBonus != nil {
		cfg.Weights.SepBonus = *fc.SepBonus
	}
	if fc.UnmatchedPenalty != nil {
		cfg.Weights.UnmatchedPenalty = *fc.UnmatchedPenalty
	}
	return nil
}
