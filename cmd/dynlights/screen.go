package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/OCharnyshevich/dynlights/internal/app"
	"github.com/OCharnyshevich/dynlights/internal/lights"
	"github.com/OCharnyshevich/dynlights/internal/text"
)

const sourcesTop = 7

var (
	unlit = colorful.Color{R: 0.25, G: 0.25, B: 0.3}
	lit   = colorful.Color{R: 1, G: 0.9, B: 0.45}
)

// settingsScreen is the options screen: it cycles the mode, toggles the
// water check and previews every item light source.
type settingsScreen struct {
	screen tcell.Screen
	app    *app.App
	log    *slog.Logger

	submerged bool
	scroll    int
	updates   int
}

func newSettingsScreen(screen tcell.Screen, a *app.App, log *slog.Logger) *settingsScreen {
	return &settingsScreen{screen: screen, app: a, log: log}
}

func (s *settingsScreen) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	updates := make(chan struct{}, 1)
	runErr := make(chan error, 1)
	go func() {
		runErr <- s.app.Run(ctx, func() {
			select {
			case updates <- struct{}{}:
			default:
			}
		})
	}()

	s.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-runErr:
			return err
		case <-updates:
			s.updates++
			s.draw()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.screen.Sync()
			case *tcell.EventKey:
				if s.handleKey(ev) {
					return nil
				}
			}
			s.draw()
		}
	}
}

// handleKey applies a key press and reports whether the screen should close.
func (s *settingsScreen) handleKey(ev *tcell.EventKey) bool {
	tr := s.app.Tracker()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		s.log.Info("mode changed", "mode", tr.CycleMode())
	case tcell.KeyUp:
		if s.scroll > 0 {
			s.scroll--
		}
	case tcell.KeyDown:
		if s.scroll < s.app.Sources().Table().Len()-1 {
			s.scroll++
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'm':
			s.log.Info("mode changed", "mode", tr.CycleMode())
		case 'w':
			s.submerged = !s.submerged
		case 'c':
			tr.SetWaterSensitiveCheck(!tr.WaterSensitiveCheck())
		case 'r':
			if err := s.app.Reload(); err != nil {
				s.log.Error("reload light sources", "error", err)
			}
		}
	}
	return false
}

func (s *settingsScreen) draw() {
	tr := s.app.Translator()
	tracker := s.app.Tracker()
	mode := tracker.Mode()

	s.screen.Clear()
	plain := tcell.StyleDefault
	bold := plain.Bold(true)

	x := s.text(0, 0, tr.Translate("lambdynlights.option.mode")+": ", bold)
	s.text(x, 0, mode.Label().Plain(tr), formattingStyle(mode.Label().Formatting).Bold(true))
	if mode.IsEnabled() {
		s.text(2, 1, tr.Translate("lambdynlights.tooltip.mode."+strconv.Itoa(int(mode))), plain.Dim(true))
	}

	x = s.text(0, 2, tr.Translate("lambdynlights.option.water_check")+": ", bold)
	s.text(x, 2, onOff(tr, tracker.WaterSensitiveCheck()), plain)
	x = s.text(0, 3, tr.Translate("lambdynlights.menu.submerged")+": ", bold)
	s.text(x, 3, onOff(tr, s.submerged), plain)
	s.text(0, 4, fmt.Sprintf("updates: %d", s.updates), plain.Dim(true))

	sources := s.app.Sources().Table().All()
	s.text(0, 6, fmt.Sprintf("%s (%d)", tr.Translate("lambdynlights.menu.light_sources"), len(sources)), bold)

	_, h := s.screen.Size()
	for i, y := s.scroll, sourcesTop; i < len(sources) && y < h-1; i, y = i+1, y+1 {
		src := sources[i]
		lum := tracker.Luminance(src.Item, s.submerged)
		row := fmt.Sprintf("%-46s %-20s %2d -> %2d", src.ID, src.Item.DisplayName, src.Luminance, lum)
		if src.WaterSensitive {
			row += " ~"
		}
		s.text(0, y, row, luminanceStyle(lum))
	}

	s.text(0, h-1, "m/enter: mode  w: submerge  c: water check  r: reload  q: quit", plain.Reverse(true))
	s.screen.Show()
}

func (s *settingsScreen) text(x, y int, str string, style tcell.Style) int {
	for _, r := range str {
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func onOff(tr *text.Translator, on bool) string {
	if on {
		return tr.Translate("spruceui.options.on")
	}
	return lights.Off.Label().Plain(tr)
}

func formattingStyle(f text.Formatting) tcell.Style {
	c, err := colorful.Hex(f.Hex())
	if err != nil {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcellColor(c))
}

// luminanceStyle tints a row from dim blue-grey at light 0 to warm white at 15.
func luminanceStyle(lum int) tcell.Style {
	t := float64(lum) / 15
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return tcell.StyleDefault.Foreground(tcellColor(unlit.BlendLuv(lit, t).Clamped()))
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
