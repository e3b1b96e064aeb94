package lights

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// Registry publishes the current light source table. Readers call Table or
// Luminance without locking; Reload builds a new table and swaps it in.
type Registry struct {
	resolver *Resolver
	log      *slog.Logger

	mu     sync.Mutex // serializes Reload and static registration
	static []ItemLightSource

	current atomic.Pointer[Table]
}

func NewRegistry(resolver *Resolver, log *slog.Logger) *Registry {
	r := &Registry{resolver: resolver, log: log}
	r.current.Store(NewTable(resolver.data, nil))
	return r
}

// RegisterStatic adds a source that is kept across reloads. A second source
// for an item that already has one is rejected. The source becomes visible
// at the next Reload.
func (r *Registry) RegisterStatic(src ItemLightSource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, other := range r.static {
		if other.Item.Name == src.Item.Name {
			r.log.Warn("failed to register item light source, duplicate item",
				"id", src.ID.String(), "item", src.Item.Identifier().String(), "existing", other.ID.String())
			return fmt.Errorf("item %s already has light source %s", src.Item.Identifier(), other.ID)
		}
	}
	r.static = append(r.static, src)
	return nil
}

// Reload rebuilds the table from packs followed by the static sources. A pack
// source wins over a static one with the same id or item. On error the
// previous table stays published.
func (r *Registry) Reload(packs ...Pack) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sources []ItemLightSource
	ids := make(map[gamedata.Identifier]bool)
	for _, p := range packs {
		loaded, err := r.resolver.LoadPack(p)
		if err != nil {
			return nil, fmt.Errorf("reload light sources: %w", err)
		}
		for _, src := range loaded {
			if !r.isStatic(src) {
				sources = append(sources, src)
				ids[src.ID] = true
			}
		}
	}
	fromPacks := len(sources)
	// A pack source keeps its id over a static source.
	for _, src := range r.static {
		if !ids[src.ID] {
			sources = append(sources, src)
		}
	}

	t := NewTable(r.resolver.data, sources)
	r.current.Store(t)
	r.log.Info("loaded item light sources", "packs", len(packs), "fromPacks", fromPacks, "static", len(r.static), "total", t.Len())
	return t, nil
}

func (r *Registry) isStatic(src ItemLightSource) bool {
	for _, s := range r.static {
		if s.Equal(src) {
			return true
		}
	}
	return false
}

// Table returns the published table.
func (r *Registry) Table() *Table {
	return r.current.Load()
}

// Luminance is Table().Luminance.
func (r *Registry) Luminance(item gamedata.Item, submerged bool) int {
	return r.Table().Luminance(item, submerged)
}
