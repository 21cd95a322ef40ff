package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/notify"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/storage"
	"github.com/sandeepkv93/dayboard/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dayboard failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "dayboard")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	clock := clockwork.NewRealClock()
	today := model.DateOf(clock.Now())
	s, err := storage.LoadState(ctx, store, today, logger)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}
	s, keys, err := s.Rollover(today)
	if err != nil {
		return fmt.Errorf("rollover: %w", err)
	}
	if err := storage.SaveKeys(ctx, store, s, keys); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	engine := scheduler.NewEngine(clock, cfg.EventBuffer)
	if err := engine.Every(scheduler.KindTick, cfg.TickInterval); err != nil {
		return err
	}
	if err := engine.Every(scheduler.KindRollover, cfg.RolloverInterval); err != nil {
		return err
	}
	engine.Start()
	defer engine.Stop()

	var notifier notify.Notifier = notify.NoopNotifier{}
	if cfg.DesktopNotifications {
		notifier = notify.NewDesktopNotifier()
	}

	logger.Info("starting", "date", s.CurrentDate, "store", string(cfg.Store))
	program := tea.NewProgram(update.NewModel(s, update.Deps{
		Clock:    clock,
		Store:    store,
		Engine:   engine,
		Notifier: notifier,
		Logger:   logger,
	}), tea.WithAltScreen())
	_, err = program.Run()
	return err
}

func openStore(cfg update.RuntimeConfig) (storage.Store, error) {
	switch cfg.Store {
	case update.StoreFile:
		store, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("open data dir: %w", err)
		}
		return store, nil
	default:
		store, err := storage.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return store, nil
	}
}
