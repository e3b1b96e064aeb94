package lights

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// itemSourceDir is where packs keep item light sources, under assets/<namespace>/.
const itemSourceDir = "dynamiclights/item"

// Pack is a resource pack: a directory or zip file with an assets/ tree.
type Pack struct {
	Name  string
	FS    fs.FS
	close func() error
}

// NewPack wraps an existing filesystem, for example an embedded one.
func NewPack(name string, fsys fs.FS) Pack {
	return Pack{Name: name, FS: fsys}
}

func (p Pack) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

// OpenPacks opens every directory and .zip file in dir as a pack, in name
// order. A missing dir yields no packs. A zip that cannot be opened is logged
// and skipped.
func OpenPacks(dir string, log *slog.Logger) ([]Pack, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read packs directory %s: %w", dir, err)
	}

	var packs []Pack
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		switch {
		case e.IsDir():
			packs = append(packs, Pack{Name: e.Name(), FS: os.DirFS(p)})
		case strings.EqualFold(filepath.Ext(e.Name()), ".zip"):
			zr, err := zip.OpenReader(p)
			if err != nil {
				log.Warn("failed to open resource pack, skipping", "pack", e.Name(), "error", err)
				continue
			}
			packs = append(packs, Pack{Name: e.Name(), FS: zr, close: zr.Close})
		}
	}
	return packs, nil
}

// ClosePacks closes every pack, ignoring errors.
func ClosePacks(packs []Pack) {
	for _, p := range packs {
		_ = p.Close()
	}
}

// LoadPack resolves every assets/<namespace>/dynamiclights/item/**/*.json file
// in the pack. Each file is independent: unreadable or unresolvable entries
// are skipped and the rest still load.
func (r *Resolver) LoadPack(p Pack) ([]ItemLightSource, error) {
	namespaces, err := fs.ReadDir(p.FS, "assets")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read pack %s: %w", p.Name, err)
	}
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i].Name() < namespaces[j].Name() })

	var sources []ItemLightSource
	for _, ns := range namespaces {
		if !ns.IsDir() {
			continue
		}
		base := path.Join("assets", ns.Name())
		root := path.Join(base, itemSourceDir)

		err := fs.WalkDir(p.FS, root, func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				if name == root && errors.Is(err, fs.ErrNotExist) {
					return fs.SkipDir
				}
				return err
			}
			if d.IsDir() || path.Ext(name) != ".json" {
				return nil
			}

			id := gamedata.Identifier{
				Namespace: ns.Name(),
				Path:      strings.TrimSuffix(strings.TrimPrefix(name, base+"/"), ".json"),
			}
			data, err := fs.ReadFile(p.FS, name)
			if err != nil {
				r.log.Warn("failed to load item light source", "id", id.String(), "pack", p.Name, "error", err)
				return nil
			}
			if src, ok := r.ResolveJSON(id, data); ok {
				sources = append(sources, src)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk pack %s: %w", p.Name, err)
		}
	}
	return sources, nil
}
