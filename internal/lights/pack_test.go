package lights

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(s string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(s)}
}

func TestLoadPack(t *testing.T) {
	r, _, logs := newTestResolver(t)

	pack := NewPack("test", fstest.MapFS{
		"assets/lambdynlights/dynamiclights/item/torch.json":      file(`{"item":"minecraft:torch","luminance":"block","water_sensitive":true}`),
		"assets/lambdynlights/dynamiclights/item/nested/rod.json": file(`{"item":"minecraft:blaze_rod","luminance":10}`),
		"assets/lambdynlights/dynamiclights/item/broken.json":     file(`{"luminance":10}`),
		"assets/lambdynlights/dynamiclights/item/othermod.json":   file(`{"item":"othermod:glow_stick","luminance":8}`),
		"assets/lambdynlights/dynamiclights/item/readme.txt":      file(`not a source`),
		"assets/lambdynlights/dynamiclights/entity/blaze.json":    file(`{"entity":"minecraft:blaze"}`),
		"assets/minecraft/textures/item/torch.png":                file(``),
		"assets/extra/dynamiclights/item/lantern.json":            file(`{"item":"minecraft:lantern","luminance":"block"}`),
	})

	sources, err := r.LoadPack(pack)
	require.NoError(t, err)
	require.Len(t, sources, 3)

	assert.Equal(t, "extra:dynamiclights/item/lantern", sources[0].ID.String())
	assert.Equal(t, 15, sources[0].Luminance)
	assert.Equal(t, "lambdynlights:dynamiclights/item/nested/rod", sources[1].ID.String())
	assert.Equal(t, 10, sources[1].Luminance)
	assert.Equal(t, "lambdynlights:dynamiclights/item/torch", sources[2].ID.String())
	assert.True(t, sources[2].WaterSensitive)

	assert.Equal(t, 1, logs.warnings(), "only the broken descriptor is reported")
}

func TestLoadPack_NoAssets(t *testing.T) {
	r, _, _ := newTestResolver(t)

	sources, err := r.LoadPack(NewPack("empty", fstest.MapFS{"pack.mcmeta": file(`{}`)}))
	require.NoError(t, err)
	assert.Empty(t, sources)
}

func TestOpenPacks(t *testing.T) {
	dir := t.TempDir()

	src := filepath.Join(dir, "dirpack", "assets", "lambdynlights", "dynamiclights", "item")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "rod.json"), []byte(`{"item":"minecraft:blaze_rod","luminance":10}`), 0o644))

	zf, err := os.Create(filepath.Join(dir, "zippack.zip"))
	require.NoError(t, err)
	zw := zip.NewWriter(zf)
	w, err := zw.Create("assets/lambdynlights/dynamiclights/item/star.json")
	require.NoError(t, err)
	_, err = w.Write([]byte(`{"item":"minecraft:nether_star","luminance":12}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, zf.Close())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	r, _, logs := newTestResolver(t)
	packs, err := OpenPacks(dir, r.log)
	require.NoError(t, err)
	defer ClosePacks(packs)
	require.Len(t, packs, 2)
	assert.Zero(t, logs.warnings())
	assert.Equal(t, "dirpack", packs[0].Name)
	assert.Equal(t, "zippack.zip", packs[1].Name)

	var lums []int
	for _, p := range packs {
		sources, err := r.LoadPack(p)
		require.NoError(t, err)
		for _, s := range sources {
			lums = append(lums, s.Luminance)
		}
	}
	assert.Equal(t, []int{10, 12}, lums)
}

func TestOpenPacks_SkipsBrokenZip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "dirpack", "assets", "lambdynlights", "dynamiclights", "item")
	require.NoError(t, os.MkdirAll(src, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "rod.json"), []byte(`{"item":"minecraft:blaze_rod","luminance":10}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.zip"), []byte("not a zip"), 0o644))

	r, _, logs := newTestResolver(t)
	packs, err := OpenPacks(dir, r.log)
	require.NoError(t, err)
	defer ClosePacks(packs)

	require.Len(t, packs, 1)
	assert.Equal(t, "dirpack", packs[0].Name)
	assert.Equal(t, 1, logs.warnings())
	assert.Contains(t, logs.String(), "pack=broken.zip")
}

func TestOpenPacks_MissingDir(t *testing.T) {
	r, _, _ := newTestResolver(t)
	packs, err := OpenPacks(filepath.Join(t.TempDir(), "nope"), r.log)
	require.NoError(t, err)
	assert.Nil(t, packs)
}
