package gamedata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Raw minecraft-data shapes, as found in data/<platform>/<version>/*.json.

type rawBlock struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Hardness    *float64 `json:"hardness"`
	StackSize   int      `json:"stackSize"`
	Diggable    bool     `json:"diggable"`
	Material    string   `json:"material"`
	Transparent bool     `json:"transparent"`
	EmitLight   int      `json:"emitLight"`
	FilterLight int      `json:"filterLight"`
	Resistance  float64  `json:"resistance"`
}

type rawItem struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	StackSize   int    `json:"stackSize"`
}

type rawVersion struct {
	Version          int    `json:"version"`
	MinecraftVersion string `json:"minecraftVersion"`
	MajorVersion     string `json:"majorVersion"`
}

// LoadDir reads blocks.json, items.json and the optional version.json from a
// minecraft-data scheme directory.
func LoadDir(dir string) (*GameData, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS is LoadDir over an arbitrary filesystem. Items sharing their name with
// a block are considered to place that block.
func LoadFS(fsys fs.FS) (*GameData, error) {
	blocks, err := loadJSON[rawBlock](fsys, "blocks.json")
	if err != nil {
		return nil, err
	}
	items, err := loadJSON[rawItem](fsys, "items.json")
	if err != nil {
		return nil, err
	}

	gd := &GameData{}

	bs := make([]Block, 0, len(blocks))
	names := make(map[string]bool, len(blocks))
	for _, b := range blocks {
		bs = append(bs, Block{
			ID:          b.ID,
			Name:        b.Name,
			DisplayName: b.DisplayName,
			Hardness:    b.Hardness,
			StackSize:   b.StackSize,
			Diggable:    b.Diggable,
			Material:    b.Material,
			Transparent: b.Transparent,
			EmitLight:   b.EmitLight,
			FilterLight: b.FilterLight,
			Resistance:  b.Resistance,
		})
		names[b.Name] = true
	}
	gd.Blocks = NewBlockRegistry(bs)

	is := make([]Item, 0, len(items))
	for _, i := range items {
		item := Item{
			ID:          i.ID,
			Name:        i.Name,
			DisplayName: i.DisplayName,
			StackSize:   i.StackSize,
		}
		if names[i.Name] && i.Name != AirBlock.Name {
			item.Block = i.Name
		}
		is = append(is, item)
	}
	gd.Items = NewItemRegistry(is)

	raw, err := fs.ReadFile(fsys, "version.json")
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read version.json: %w", err)
	default:
		var v rawVersion
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parse version.json: %w", err)
		}
		gd.Version = &Version{
			Protocol:         v.Version,
			MinecraftVersion: v.MinecraftVersion,
			MajorVersion:     v.MajorVersion,
		}
	}

	return gd, nil
}

func loadJSON[T any](fsys fs.FS, name string) ([]T, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return out, nil
}
