package gamedata

import (
	"fmt"
	"sort"
)

var versions = map[string]func() *GameData{}

func Register(name string, factory func() *GameData) {
	versions[name] = factory
}

// Load returns the game data registered under name. A name that is not
// registered is treated as a minecraft-data scheme directory.
func Load(name string) (*GameData, error) {
	if f, ok := versions[name]; ok {
		return f(), nil
	}
	gd, err := LoadDir(name)
	if err != nil {
		return nil, fmt.Errorf("unknown version %s: %w", name, err)
	}
	return gd, nil
}

func RegisteredVersions() []string {
	names := make([]string, 0, len(versions))
	for name := range versions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
