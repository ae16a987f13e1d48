package config

import "strings"

// Default score bounds, matching the score editor's 1-10 scale.
const (
	DefaultScoreMin = 1
	DefaultScoreMax = 10
)

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{}
	Normalize(&cfg)
	return cfg
}

// Normalize fills defaults in place.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = "auto"
	}
	if cfg.Score.Min == 0 && cfg.Score.Max == 0 {
		cfg.Score.Min = DefaultScoreMin
		cfg.Score.Max = DefaultScoreMax
	}
}
