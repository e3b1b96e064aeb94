package lights

import (
	"fmt"
	"strings"
	"time"

	"github.com/OCharnyshevich/dynlights/internal/text"
)

// Mode is the dynamic lights update mode. The order of the constants is the
// order the settings screen cycles through.
type Mode int32

const (
	Off Mode = iota
	Fastest
	Fast
	Fancy
)

type modeInfo struct {
	name       string
	delay      time.Duration
	formatting text.Formatting
	labelKey   string
}

var modes = [...]modeInfo{
	Off:     {"off", 0, text.Red, "spruceui.options.off"},
	Fastest: {"fastest", 500 * time.Millisecond, text.Gold, "spruceui.options.generic.fastest"},
	Fast:    {"fast", 250 * time.Millisecond, text.Yellow, "spruceui.options.generic.fast"},
	Fancy:   {"fancy", 0, text.Green, "spruceui.options.generic.fancy"},
}

// Modes returns every mode in cycling order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	for i := range modes {
		out[i] = Mode(i)
	}
	return out
}

func (m Mode) info() modeInfo {
	if m < 0 || int(m) >= len(modes) {
		return modes[Off]
	}
	return modes[m]
}

// IsEnabled reports whether the mode turns dynamic lights on at all.
func (m Mode) IsEnabled() bool {
	return m != Off
}

// HasDelay reports whether updates are throttled.
func (m Mode) HasDelay() bool {
	return m.info().delay != 0
}

// Delay is the minimum time between two light recomputations. Zero means
// either disabled (Off) or every frame (Fancy).
func (m Mode) Delay() time.Duration {
	return m.info().delay
}

// DelayMillis is Delay in whole milliseconds.
func (m Mode) DelayMillis() int {
	return int(m.info().delay / time.Millisecond)
}

// Next returns the following mode, wrapping from the last back to Off.
func (m Mode) Next() Mode {
	if m < 0 || int(m) >= len(modes) {
		return Off
	}
	return Mode((int(m) + 1) % len(modes))
}

// Name returns the lowercase name used in config files.
func (m Mode) Name() string {
	return m.info().name
}

func (m Mode) String() string {
	return m.Name()
}

// Label returns the coloured option text for the mode.
func (m Mode) Label() text.Component {
	info := m.info()
	return text.Translatable(info.labelKey, info.formatting)
}

// ModeByName finds a mode by name, ignoring case.
func ModeByName(name string) (Mode, bool) {
	for i, info := range modes {
		if strings.EqualFold(info.name, name) {
			return Mode(i), true
		}
	}
	return Off, false
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.Name()), nil
}

func (m *Mode) UnmarshalText(b []byte) error {
	mode, ok := ModeByName(string(b))
	if !ok {
		return fmt.Errorf("unknown dynamic lights mode %q", string(b))
	}
	*m = mode
	return nil
}
