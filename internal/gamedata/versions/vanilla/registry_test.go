package vanilla_test

import (
	"testing"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
	"github.com/OCharnyshevich/dynlights/internal/gamedata/versions/vanilla"
)

func newGameData(t *testing.T) *gamedata.GameData {
	t.Helper()
	gd := vanilla.New()
	if gd == nil {
		t.Fatal("New() returned nil")
	}
	return gd
}

func TestInitRegistration(t *testing.T) {
	gd, err := gamedata.Load(vanilla.Name)
	if err != nil {
		t.Fatalf("vanilla should be registered via init(), got error: %v", err)
	}
	if gd == nil {
		t.Fatal("expected non-nil GameData from Load")
	}
}

func TestBlocks_ByName(t *testing.T) {
	gd := newGameData(t)

	tests := []struct {
		name  string
		light int
	}{
		{"torch", 14},
		{"glowstone", 15},
		{"sea_lantern", 15},
		{"soul_torch", 10},
		{"redstone_torch", 7},
		{"lava", 15},
		{"stone", 0},
	}
	for _, tt := range tests {
		b, ok := gd.Blocks.ByName(tt.name)
		if !ok {
			t.Errorf("expected to find block %q", tt.name)
			continue
		}
		if b.LightEmission() != tt.light {
			t.Errorf("%s: expected light emission %d, got %d", tt.name, tt.light, b.LightEmission())
		}
	}
}

func TestBlocks_Air(t *testing.T) {
	gd := newGameData(t)

	air, ok := gd.Blocks.ByName("air")
	if !ok {
		t.Fatal("expected to find block 'air'")
	}
	if air.ID != 0 {
		t.Errorf("expected air ID 0, got %d", air.ID)
	}
	if !air.IsAir() {
		t.Error("expected air to be the air sentinel")
	}
}

func TestBlocks_NotFound(t *testing.T) {
	gd := newGameData(t)

	if _, ok := gd.Blocks.ByID(99999); ok {
		t.Error("expected not found for non-existent block ID")
	}
	if _, ok := gd.Blocks.ByName("nonexistent_block"); ok {
		t.Error("expected not found for non-existent block name")
	}
}

func TestItems_BlockPlacing(t *testing.T) {
	gd := newGameData(t)

	torch, ok := gd.Items.ByName("torch")
	if !ok {
		t.Fatal("expected to find item 'torch'")
	}
	if !torch.PlacesBlock() {
		t.Error("expected torch to place a block")
	}
	if b := gd.PlacedBlock(torch); b.Name != "torch" {
		t.Errorf("expected torch to place 'torch', got %q", b.Name)
	}

	bucket, ok := gd.Items.ByName("lava_bucket")
	if !ok {
		t.Fatal("expected to find item 'lava_bucket'")
	}
	if bucket.PlacesBlock() {
		t.Error("expected lava_bucket not to place a block")
	}

	air, _ := gd.Items.ByName("air")
	if air.PlacesBlock() {
		t.Error("expected air item not to place a block")
	}
}

func TestItems_All(t *testing.T) {
	gd := newGameData(t)

	all := gd.Items.All()
	if len(all) == 0 {
		t.Fatal("expected non-empty item list")
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Fatalf("expected items ordered by id, got %d before %d", all[i-1].ID, all[i].ID)
		}
	}
}

func TestVersion(t *testing.T) {
	gd := newGameData(t)

	if gd.Version == nil {
		t.Fatal("expected version info")
	}
	if gd.Version.MajorVersion != "1.21" {
		t.Errorf("expected major version 1.21, got %q", gd.Version.MajorVersion)
	}
}
