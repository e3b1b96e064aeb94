// Package vanilla registers a built-in subset of the minecraft-data registries
// covering the light-emitting vanilla blocks and the items that carry them.
package vanilla

import (
	"embed"
	"io/fs"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// Name is the version name the data is registered under.
const Name = "vanilla"

//go:embed data/*.json
var dataFS embed.FS

func init() {
	gamedata.Register(Name, New)
}

// New builds the embedded game data. It panics if the embedded files are
// malformed, which can only happen through a broken build.
func New() *gamedata.GameData {
	sub, err := fs.Sub(dataFS, "data")
	if err != nil {
		panic(err)
	}
	gd, err := gamedata.LoadFS(sub)
	if err != nil {
		panic(err)
	}
	return gd
}
