package lights

import (
	"fmt"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
)

// ItemLightSource is the resolved light configuration of one item.
type ItemLightSource struct {
	ID             gamedata.Identifier
	Item           gamedata.Item
	Luminance      int
	WaterSensitive bool
}

// EffectiveLuminance returns the light level the item emits. Water sensitive
// items go dark while submerged.
func (s ItemLightSource) EffectiveLuminance(submerged bool) int {
	if s.WaterSensitive && submerged {
		return 0
	}
	return s.Luminance
}

// Equal reports whether both sources have the same id, item, luminance and
// water sensitivity.
func (s ItemLightSource) Equal(o ItemLightSource) bool {
	return s.ID == o.ID &&
		s.Item == o.Item &&
		s.Luminance == o.Luminance &&
		s.WaterSensitive == o.WaterSensitive
}

func (s ItemLightSource) String() string {
	return fmt.Sprintf("ItemLightSource{item=%s, luminance=%d, water_sensitive=%t}",
		s.Item.Identifier(), s.Luminance, s.WaterSensitive)
}
