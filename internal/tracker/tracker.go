// Package tracker decides when dynamic lights are recomputed and answers
// luminance queries under the current settings.
package tracker

import (
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/OCharnyshevich/dynlights/internal/gamedata"
	"github.com/OCharnyshevich/dynlights/internal/lights"
)

// Tracker owns the current update mode. It is safe for a settings screen to
// change the mode while the game loop ticks.
type Tracker struct {
	sources *lights.Registry

	state      atomic.Pointer[modeState]
	waterCheck atomic.Bool
}

// modeState pairs a mode with the limiter throttling it. Both are swapped
// together so a delayed mode never runs with another mode's limiter.
type modeState struct {
	mode    lights.Mode
	limiter *rate.Sometimes
}

func newModeState(m lights.Mode) *modeState {
	return &modeState{mode: m, limiter: &rate.Sometimes{Interval: m.Delay()}}
}

func New(sources *lights.Registry, mode lights.Mode, waterSensitiveCheck bool) *Tracker {
	t := &Tracker{sources: sources}
	t.waterCheck.Store(waterSensitiveCheck)
	t.SetMode(mode)
	return t
}

func (t *Tracker) Mode() lights.Mode {
	return t.state.Load().mode
}

// SetMode switches the mode and restarts throttling, so the next Tick after a
// change always updates.
func (t *Tracker) SetMode(m lights.Mode) {
	t.state.Store(newModeState(m))
}

// CycleMode advances to the next mode and returns it.
func (t *Tracker) CycleMode() lights.Mode {
	for {
		cur := t.state.Load()
		next := newModeState(cur.mode.Next())
		if t.state.CompareAndSwap(cur, next) {
			return next.mode
		}
	}
}

func (t *Tracker) WaterSensitiveCheck() bool {
	return t.waterCheck.Load()
}

// SetWaterSensitiveCheck turns the submersion check on or off. With it off,
// water sensitive items keep glowing underwater.
func (t *Tracker) SetWaterSensitiveCheck(on bool) {
	t.waterCheck.Store(on)
}

// Tick runs update if the current mode allows an update now and reports
// whether it ran. Off never updates; a mode without delay updates every tick.
func (t *Tracker) Tick(update func()) bool {
	st := t.state.Load()
	if !st.mode.IsEnabled() {
		return false
	}
	if !st.mode.HasDelay() {
		update()
		return true
	}
	ran := false
	st.limiter.Do(func() {
		update()
		ran = true
	})
	return ran
}

// Luminance returns the light item gives off right now: zero with dynamic
// lights off, and water sensitivity applied only when the check is on.
func (t *Tracker) Luminance(item gamedata.Item, submerged bool) int {
	if !t.Mode().IsEnabled() {
		return 0
	}
	return t.sources.Luminance(item, submerged && t.WaterSensitiveCheck())
}
