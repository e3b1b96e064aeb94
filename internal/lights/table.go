package lights

import (
	"sort"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// Table is an immutable set of item light sources keyed by id.
type Table struct {
	data    Lookup
	sources []ItemLightSource
	byID    map[gamedata.Identifier]int
	byItem  map[string]int
}

// NewTable indexes sources. A later source replaces an earlier one with the
// same id; when several sources name the same item the first one wins.
func NewTable(data Lookup, sources []ItemLightSource) *Table {
	t := &Table{
		data:   data,
		byID:   make(map[gamedata.Identifier]int, len(sources)),
		byItem: make(map[string]int, len(sources)),
	}
	for _, src := range sources {
		if i, ok := t.byID[src.ID]; ok {
			t.sources[i] = src
			continue
		}
		t.byID[src.ID] = len(t.sources)
		t.sources = append(t.sources, src)
	}
	for i, src := range t.sources {
		if _, ok := t.byItem[src.Item.Name]; !ok {
			t.byItem[src.Item.Name] = i
		}
	}
	return t
}

func (t *Table) Len() int {
	return len(t.sources)
}

func (t *Table) Get(id gamedata.Identifier) (ItemLightSource, bool) {
	i, ok := t.byID[id]
	if !ok {
		return ItemLightSource{}, false
	}
	return t.sources[i], true
}

// ByItem returns the source configured for the named item.
func (t *Table) ByItem(name string) (ItemLightSource, bool) {
	i, ok := t.byItem[name]
	if !ok {
		return ItemLightSource{}, false
	}
	return t.sources[i], true
}

// All returns the sources sorted by id.
func (t *Table) All() []ItemLightSource {
	out := make([]ItemLightSource, len(t.sources))
	copy(out, t.sources)
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

// Luminance returns the light level item emits. Items without a configured
// source fall back to the light of the block they place.
func (t *Table) Luminance(item gamedata.Item, submerged bool) int {
	if src, ok := t.ByItem(item.Name); ok {
		return src.EffectiveLuminance(submerged)
	}
	if t.data != nil && item.PlacesBlock() {
		return t.data.PlacedBlock(item).LightEmission()
	}
	return 0
}
