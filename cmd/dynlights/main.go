package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/OCharnyshevich/dynlights/internal/app"
	"github.com/OCharnyshevich/dynlights/internal/config"
	"github.com/OCharnyshevich/dynlights/internal/lights"
	"github.com/OCharnyshevich/dynlights/internal/storage"
)

func main() {
	cfg := config.DefaultConfig()
	dir := flag.String("dir", ".", "settings and resource packs directory")
	mode := flag.String("mode", cfg.Mode.Name(), "dynamic lights mode: off, fastest, fast or fancy")
	flag.BoolVar(&cfg.WaterSensitiveCheck, "water-check", cfg.WaterSensitiveCheck, "turn water sensitive items off underwater")
	flag.StringVar(&cfg.Locale, "locale", cfg.Locale, "language of the settings screen")
	flag.StringVar(&cfg.GameData, "gamedata", cfg.GameData, "registered game data version or minecraft-data scheme directory")
	flag.IntVar(&cfg.TickRate, "tick-rate", cfg.TickRate, "game loop ticks per second")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		slog.Error("create directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logFile, err := os.OpenFile(filepath.Join(*dir, "latest.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		slog.Error("open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if explicit["mode"] {
		m, ok := lights.ModeByName(*mode)
		if !ok {
			log.Error("unknown mode", "mode", *mode)
			os.Exit(2)
		}
		cfg.Mode = m
	}

	store, err := storage.New(*dir, log)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}
	fromFile := *cfg
	if err := store.LoadConfig(&fromFile); err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}
	config.Merge(cfg, &fromFile, explicit)

	a, err := app.New(cfg, store.PacksDir(), log)
	if err != nil {
		log.Error("start dynamic lights", "error", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Error("create screen", "error", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		log.Error("init screen", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ui := newSettingsScreen(screen, a, log)
	err = ui.run(ctx)
	screen.Fini()
	if err != nil {
		log.Error("settings screen", "error", err)
	}

	if err := store.SaveConfig(a.SyncConfig()); err != nil {
		log.Error("save config", "error", err)
		os.Exit(1)
	}
}
