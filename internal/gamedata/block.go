package gamedata

type Block struct {
	ID          int
	Name        string
	DisplayName string
	Hardness    *float64
	StackSize   int
	Diggable    bool
	Material    string
	Transparent bool
	EmitLight   int
	FilterLight int
	Resistance  float64
}

// AirBlock is returned for block identifiers that are not registered.
var AirBlock = Block{Name: "air", DisplayName: "Air", Transparent: true}

// IsAir reports whether b is the air sentinel.
func (b Block) IsAir() bool {
	return b.Name == AirBlock.Name
}

// LightEmission returns the light level the block's default state emits (0-15).
func (b Block) LightEmission() int {
	return b.EmitLight
}
