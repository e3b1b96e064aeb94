package gamedata

type GameData struct {
	Blocks  BlockRegistry
	Items   ItemRegistry
	Version *Version
}

type Version struct {
	Protocol         int
	MinecraftVersion string
	MajorVersion     string
}

// ResolveItem looks id up in the item registry, returning AirItem when it is unknown.
func (gd *GameData) ResolveItem(id Identifier) Item {
	if id.Namespace != DefaultNamespace {
		return AirItem
	}
	item, ok := gd.Items.ByName(id.Path)
	if !ok {
		return AirItem
	}
	return item
}

// ResolveBlock looks id up in the block registry, returning AirBlock when it is unknown.
func (gd *GameData) ResolveBlock(id Identifier) Block {
	if id.Namespace != DefaultNamespace {
		return AirBlock
	}
	block, ok := gd.Blocks.ByName(id.Path)
	if !ok {
		return AirBlock
	}
	return block
}

// PlacedBlock returns the block item places, or AirBlock when it places none.
func (gd *GameData) PlacedBlock(item Item) Block {
	if !item.PlacesBlock() {
		return AirBlock
	}
	block, ok := gd.Blocks.ByName(item.Block)
	if !ok {
		return AirBlock
	}
	return block
}
