// Package config loads the engine's runtime configuration from an
// optional JSON file with an environment variable overlay.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/anthropics/rebel-command-engine/internal/domain"
)

// Config holds the engine's runtime configuration.
// MaxActiveSessions caps campaigns still in play; -1 removes the cap.
type Config struct {
	ListenAddr        string `json:"listen_addr" env:"REBELCMD_LISTEN_ADDR"`
	ArchivePath       string `json:"archive_path" env:"REBELCMD_ARCHIVE_PATH"`
	ArchiveDisabled   bool   `json:"archive_disabled" env:"REBELCMD_ARCHIVE_DISABLED"`
	MaxActiveSessions int    `json:"max_active_sessions" env:"REBELCMD_MAX_ACTIVE_SESSIONS"`
}

// Load reads a JSON config file if path is non-empty, overlays
// environment variables, applies defaults, and validates.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config JSON: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = ":9784"
	}
	if c.ArchivePath == "" {
		c.ArchivePath = "rebelcmd.db"
	}
	if c.MaxActiveSessions == 0 {
		c.MaxActiveSessions = 1000
	}
}

func (c *Config) validate() error {
	var problems []string

	if c.MaxActiveSessions < -1 {
		problems = append(problems, "max_active_sessions must be positive, or -1 to remove the cap")
	}
	if !c.ArchiveDisabled && c.ArchivePath == "" {
		problems = append(problems, "archive_path is required unless archiving is disabled")
	}

	if len(problems) > 0 {
		return &domain.EngineError{
			Code:    domain.ErrConfigInvalid.Code,
			Message: fmt.Sprintf("%s: %v", domain.ErrConfigInvalid.Message, problems),
		}
	}
	return nil
}
