package app

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/dynlights/internal/config"
	"github.com/OCharnyshevich/dynlights/internal/gamedata"
	_ "github.com/OCharnyshevich/dynlights/internal/gamedata/versions/vanilla"
	"github.com/OCharnyshevich/dynlights/internal/lights"
	"github.com/OCharnyshevich/dynlights/internal/text"
	"github.com/OCharnyshevich/dynlights/internal/tracker"
)

//go:embed defaults
var defaultsFS embed.FS

// App wires game data, light sources and the update tracker together.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	packsDir string

	data       *gamedata.GameData
	sources    *lights.Registry
	tracker    *tracker.Tracker
	translator *text.Translator
}

// New loads the configured game data and the light sources from the built-in
// pack and every pack in packsDir.
func New(cfg *config.Config, packsDir string, log *slog.Logger) (*App, error) {
	data, err := gamedata.Load(cfg.GameData)
	if err != nil {
		return nil, fmt.Errorf("load game data: %w", err)
	}

	sources := lights.NewRegistry(lights.NewResolver(data, log), log)
	a := &App{
		cfg:        cfg,
		log:        log,
		packsDir:   packsDir,
		data:       data,
		sources:    sources,
		tracker:    tracker.New(sources, cfg.Mode, cfg.WaterSensitiveCheck),
		translator: text.NewTranslatorFor(cfg.Locale),
	}
	if err := a.Reload(); err != nil {
		return nil, err
	}
	return a, nil
}

// Reload re-reads every pack and publishes a fresh light source table.
func (a *App) Reload() error {
	builtin, err := fs.Sub(defaultsFS, "defaults")
	if err != nil {
		return fmt.Errorf("open built-in pack: %w", err)
	}

	user, err := lights.OpenPacks(a.packsDir, a.log)
	if err != nil {
		return err
	}
	defer lights.ClosePacks(user)

	// A later pack replaces a source with the same id, as resource packs do.
	packs := append([]lights.Pack{lights.NewPack("builtin", builtin)}, user...)
	if _, err := a.sources.Reload(packs...); err != nil {
		return err
	}
	return nil
}

// Run ticks the game loop at the configured rate until ctx is cancelled.
// onUpdate is called whenever the current mode allows a light update.
func (a *App) Run(ctx context.Context, onUpdate func()) error {
	rate := a.cfg.TickRate
	if rate <= 0 {
		rate = config.DefaultConfig().TickRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	a.log.Info("dynamic lights running",
		"mode", a.tracker.Mode(),
		"tickRate", rate,
		"sources", a.sources.Table().Len(),
	)

	for {
		select {
		case <-ctx.Done():
			a.log.Info("dynamic lights stopping")
			return nil
		case <-ticker.C:
			a.tracker.Tick(onUpdate)
		}
	}
}

// SyncConfig copies the live settings back into the config for saving.
func (a *App) SyncConfig() *config.Config {
	a.cfg.Mode = a.tracker.Mode()
	a.cfg.WaterSensitiveCheck = a.tracker.WaterSensitiveCheck()
	return a.cfg
}

func (a *App) Data() *gamedata.GameData {
	return a.data
}

func (a *App) Sources() *lights.Registry {
	return a.sources
}

func (a *App) Tracker() *tracker.Tracker {
	return a.tracker
}

func (a *App) Translator() *text.Translator {
	return a.translator
}
