// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"github.com/hirelance/matchd/internal/domain/match"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// FreelancersPath points at the freelancer corpus JSON file.
	FreelancersPath string `koanf:"freelancers_path"`

	// JobsPath points at the optional sample jobs JSON file.
	JobsPath string `koanf:"jobs_path"`

	// TopN sets the default number of recommendations per request.
	TopN int `koanf:"top_n"`

	// MaxTopN caps the top_n request parameter.
	MaxTopN int `koanf:"max_top_n"`

	// CollaborativeWeight is the default hybrid blend weight in [0, 1].
	CollaborativeWeight float64 `koanf:"collaborative_weight"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:            "info",
		Addr:                ":8000",
		FreelancersPath:     "data/freelancers.json",
		JobsPath:            "",
		TopN:                match.DefaultTopN,
		MaxTopN:             50,
		CollaborativeWeight: 0.3,
	}
	return c
}
