package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/audio"
	"github.com/vovakirdan/retro-arcade/internal/audio/beepout"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/platformer"
	"github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// scoreStore is what the commands need from the score book. Both the
// SQLite store and the in-memory fallback implement it.
type scoreStore interface {
	core.ScoreBook
	Bests() ([]storage.BestEntry, error)
	ClearBest(gameID string) error
}

// newLogger creates the arcade logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
}

// tuiLogger logs to ~/.arcade/arcade.log while a TUI owns the terminal.
// The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	path := filepath.Join(home, ".arcade", "arcade.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// openScores opens the score database, falling back to memory so games
// still run without persistence.
func openScores(logger *log.Logger) (scoreStore, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return storage.NewMemory(), func() {}
	}
	return store, func() { store.Close() }
}

// openAudio returns the speaker player, or a silent one when muted or
// when no audio device is available.
func openAudio(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	player, err := beepout.New(beepout.DefaultVolume)
	if err != nil {
		logger.Warn("audio unavailable, playing silently", "error", err)
		return audio.Nop{}
	}
	return player
}

// configureGame passes the tuning file and difficulty preset to a game
// before it is created.
func configureGame(gameID, configPath, difficulty string) {
	switch gameID {
	case "snake":
		snake.SetConfigPath(configPath)
		snake.SetDifficultyPreset(difficulty)
	case "platformer":
		platformer.SetConfigPath(configPath)
		platformer.SetDifficultyPreset(difficulty)
	}
}

// loadLevel applies --level, which only the platformer understands.
func loadLevel(gameID, path string) {
	if path == "" {
		return
	}
	if gameID != "platformer" {
		fmt.Fprintf(os.Stderr, "Error: --level is only supported by the platformer\n")
		os.Exit(1)
	}
	if err := platformer.SetLevelFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading level: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func unknownGame(gameID string) {
	fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
	fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
	os.Exit(1)
}
