package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSchema(t *testing.T) {
	out := filepath.Join(t.TempDir(), "schema", "item_light_source.json")

	require.NoError(t, writeSchema(out, buildSchema()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Item Light Source", doc["title"])
	assert.Contains(t, string(data), `"item"`)
	assert.Contains(t, string(data), `"luminance"`)
	assert.Contains(t, string(data), `"water_sensitive"`)

	_, err = os.Stat(out + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")
}
