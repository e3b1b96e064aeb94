package config

import "github.com/OCharnyshevich/dynlights/internal/lights"

// Config holds the dynamic lights settings.
type Config struct {
	Mode                lights.Mode `json:"mode" yaml:"mode"`
	WaterSensitiveCheck bool        `json:"water_sensitive_check" yaml:"water_sensitive_check"`
	Locale              string      `json:"locale" yaml:"locale"`
	GameData            string      `json:"game_data" yaml:"game_data"` // registered version name or minecraft-data scheme dir
	TickRate            int         `json:"tick_rate" yaml:"tick_rate"` // game loop ticks per second
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Mode:                lights.Fancy,
		WaterSensitiveCheck: true,
		Locale:              "en_us",
		GameData:            "vanilla",
		TickRate:            20,
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["mode"] {
		cfg.Mode = fromFile.Mode
	}
	if !explicitFlags["water-check"] {
		cfg.WaterSensitiveCheck = fromFile.WaterSensitiveCheck
	}
	if !explicitFlags["locale"] {
		cfg.Locale = fromFile.Locale
	}
	if !explicitFlags["gamedata"] {
		cfg.GameData = fromFile.GameData
	}
	if !explicitFlags["tick-rate"] {
		cfg.TickRate = fromFile.TickRate
	}
}
