package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/dynlights/internal/lights"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, lights.Fancy, cfg.Mode)
	assert.True(t, cfg.WaterSensitiveCheck)
	assert.Equal(t, "vanilla", cfg.GameData)
	assert.Equal(t, 20, cfg.TickRate)
}

func TestMerge_RespectsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = lights.Fast
	cfg.Locale = "fr_fr"

	fromFile := &Config{
		Mode:                lights.Off,
		WaterSensitiveCheck: false,
		Locale:              "en_us",
		GameData:            "/data/pc-1.21",
		TickRate:            40,
	}
	Merge(cfg, fromFile, map[string]bool{"mode": true, "locale": true})

	assert.Equal(t, lights.Fast, cfg.Mode)
	assert.Equal(t, "fr_fr", cfg.Locale)
	assert.False(t, cfg.WaterSensitiveCheck)
	assert.Equal(t, "/data/pc-1.21", cfg.GameData)
	assert.Equal(t, 40, cfg.TickRate)
}

func TestConfig_JSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = lights.Fastest

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"mode":"fastest"`)

	var got Config
	require.NoError(t, json.Unmarshal([]byte(`{"mode":"FAST","water_sensitive_check":true}`), &got))
	assert.Equal(t, lights.Fast, got.Mode)

	err = json.Unmarshal([]byte(`{"mode":"blinding"}`), &got)
	assert.Error(t, err)
}

func TestConfig_YAML(t *testing.T) {
	var got Config
	require.NoError(t, yaml.Unmarshal([]byte("mode: off\nlocale: fr_fr\ntick_rate: 30\n"), &got))
	assert.Equal(t, lights.Off, got.Mode)
	assert.Equal(t, "fr_fr", got.Locale)
	assert.Equal(t, 30, got.TickRate)

	data, err := yaml.Marshal(&Config{Mode: lights.Fastest})
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: fastest")
}
