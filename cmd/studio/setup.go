package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-studio/internal/config"
	"github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/games/studio"
	"github.com/vovakirdan/tile-studio/internal/platform/tui"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

// loadStudioConfig checks the config before the terminal is taken over, so
// a broken file is reported instead of silently replaced by defaults.
func loadStudioConfig() (config.StudioConfig, error) {
	cfg, err := config.LoadStudio(flagConfig)
	if err != nil {
		return cfg, err
	}
	studio.SetConfigPath(flagConfig)
	studio.SetDifficultyPreset(flagDifficulty)

	switch {
	case flagMute:
		studio.SetAudio(cfg.Audio.Volume, true)
	case flagVolume >= 0:
		studio.SetAudio(flagVolume, cfg.Audio.Muted)
	}
	return cfg, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens score storage. The studio works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newLogger returns the file logger set with --log, or a discarding one.
// The terminal belongs to the UI, so nothing is logged to stderr.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(flagLogPath), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "studio",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}

// localPlayer names the player of a local session.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// session bundles the sinks of a local run.
type session struct {
	store      *storage.Store
	dispatcher *tui.Dispatcher
	logCloser  io.Closer
}

func openSession() (*session, error) {
	logger, closer, err := newLogger()
	if err != nil {
		return nil, err
	}
	store := openStore()
	return &session{
		store: store,
		dispatcher: tui.NewDispatcher(tui.DispatcherOptions{
			Logger: logger,
			Bell:   os.Stdout,
			Store:  store,
		}),
		logCloser: closer,
	}, nil
}

// Close flushes pending events before closing storage.
func (s *session) Close() {
	s.dispatcher.Close()
	if s.store != nil {
		s.store.Close()
	}
	//nolint:errcheck // Best-effort close
	s.logCloser.Close()
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
