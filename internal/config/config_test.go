package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var snake SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &snake); err != nil {
		t.Fatalf("parse snake.yaml: %v", err)
	}
	if snake != DefaultSnakeConfig() {
		t.Errorf("embedded snake.yaml = %+v, expected %+v", snake, DefaultSnakeConfig())
	}

	var plat PlatformerConfig
	if err := yaml.Unmarshal(defaultPlatformerYAML, &plat); err != nil {
		t.Fatalf("parse platformer.yaml: %v", err)
	}
	if plat != DefaultPlatformerConfig() {
		t.Errorf("embedded platformer.yaml = %+v, expected %+v", plat, DefaultPlatformerConfig())
	}
}

func TestLoadCustomPathKeepsMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("speed:\n  base_ms: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() error = %v", err)
	}
	if cfg.Speed.BaseMs != 99 {
		t.Errorf("BaseMs = %d, expected 99", cfg.Speed.BaseMs)
	}
	if cfg.Grid.Cols != 30 || cfg.Speed.MinMs != 50 {
		t.Errorf("missing keys lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadPlatformer(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPlatformer(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		baseMs   int
		progress bool
		lives    int
	}{
		{DifficultyEasy, 180, true, 5},
		{DifficultyNormal, 150, true, 3},
		{DifficultyHard, 120, true, 2},
		{DifficultyFixed, 150, false, 3},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			s := DefaultSnakeConfig()
			ApplySnakePreset(&s, tc.preset)
			if s.Speed.BaseMs != tc.baseMs || s.Difficulty.Progression != tc.progress {
				t.Errorf("snake preset = %+v", s)
			}

			p := DefaultPlatformerConfig()
			ApplyPlatformerPreset(&p, tc.preset)
			if p.Gameplay.Lives != tc.lives {
				t.Errorf("platformer lives = %d, expected %d", p.Gameplay.Lives, tc.lives)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) failed")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}

func TestWatchReportsGame(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan string, 8)
	if err := Watch(ctx, []string{dir}, func(game string) { changed <- game }, nil); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "platformer.yaml"), []byte("gameplay:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case game := <-changed:
		if game != "platformer" {
			t.Errorf("changed game = %q, expected platformer", game)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no change notification")
	}
}

func TestWatchNoDirectories(t *testing.T) {
	err := Watch(context.Background(), []string{filepath.Join(t.TempDir(), "nope")}, func(string) {}, nil)
	if err == nil {
		t.Error("expected error when no directory is watchable")
	}
}
