package gamedata

type Item struct {
	ID          int
	Name        string
	DisplayName string
	StackSize   int

	// Block is the name of the block this item places, empty for items
	// that do not place a block.
	Block string
}

// AirItem is returned for item identifiers that are not registered.
var AirItem = Item{Name: "air", DisplayName: "Air"}

// IsAir reports whether i is the air sentinel.
func (i Item) IsAir() bool {
	return i.Name == AirItem.Name
}

// PlacesBlock reports whether using the item places a block.
func (i Item) PlacesBlock() bool {
	return i.Block != ""
}

// Identifier returns the item's registry identifier.
func (i Item) Identifier() Identifier {
	return Identifier{Namespace: DefaultNamespace, Path: i.Name}
}
