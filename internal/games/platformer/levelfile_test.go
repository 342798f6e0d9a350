package platformer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

const shortLevel = `
name: Short hop
width: 1200
platforms:
  - {x: 0, y: 550, w: 1200, h: 50}
  - {x: 300, y: 400, w: 100, h: 20}
enemies:
  - {x: 600, y: 520}
coins:
  - {x: 320, y: 350}
  - {x: 700, y: 500}
powerups:
  - {x: 900, y: 500}
`

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel([]byte(shortLevel))
	require.NoError(t, err)

	assert.Equal(t, "Short hop", level.Name)
	assert.Equal(t, 1200.0, level.Width)
	assert.Equal(t, core.RectF{X: 300, Y: 400, W: 100, H: 20}, level.Platforms[1])
	assert.Equal(t, []Spawn{{600, 520}}, level.Enemies)
	assert.Len(t, level.Coins, 2)
	assert.Len(t, level.PowerUps, 1)
}

func TestParseLevelRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{"no platforms", "name: empty\n", "NO_PLATFORMS"},
		{"flat platform", "platforms:\n  - {x: 0, y: 10, w: 100, h: 0}\n", "BAD_PLATFORM"},
		{"negative width", "width: -5\nplatforms:\n  - {x: 0, y: 10, w: 100, h: 10}\n", "BAD_WIDTH"},
		{"goal behind spawn", "width: 150\nplatforms:\n  - {x: 0, y: 550, w: 150, h: 50}\n", "BAD_WIDTH"},
		{"narrower than the view", "width: 700\nplatforms:\n  - {x: 0, y: 550, w: 700, h: 50}\n", "BAD_WIDTH"},
		{
			"coin past the end",
			"width: 900\nplatforms:\n  - {x: 0, y: 10, w: 100, h: 10}\ncoins:\n  - {x: 1000, y: 0}\n",
			"OUT_OF_BOUNDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tt.yaml))
			var levelErr LevelError
			require.ErrorAs(t, err, &levelErr)
			assert.Equal(t, tt.code, levelErr.Code)
		})
	}

	_, err := ParseLevel([]byte("platforms: [oops"))
	assert.Error(t, err)
}

func TestDefaultLevelIsValid(t *testing.T) {
	assert.NoError(t, DefaultLevel.Validate())
}

func TestSetLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.yaml")
	require.NoError(t, os.WriteFile(path, []byte(shortLevel), 0o600))

	require.NoError(t, SetLevelFile(path))
	t.Cleanup(func() { SetLevelFile("") }) //nolint:errcheck

	assert.Equal(t, "Short hop", New().Level().Name)

	require.NoError(t, SetLevelFile(""))
	assert.Equal(t, DefaultLevel.Name, New().Level().Name)

	assert.Error(t, SetLevelFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestLevelWidthOverridesConfig(t *testing.T) {
	level, err := ParseLevel([]byte(shortLevel))
	require.NoError(t, err)

	g := NewWithLevel(config.DefaultPlatformerConfig(), level)
	g.Reset(core.RuntimeConfig{Seed: 1})
	g.phase = core.PhaseRunning

	g.player.X = 1200 - g.cfg.Gameplay.GoalMargin + 1
	g.player.Y = 550 - g.player.H
	g.player.Grounded = true
	res := g.Step(core.NewInputFrame(), 0)

	assert.True(t, res.Ended, "reaching the file's width completes the level")
	assert.Equal(t, g.cfg.Scoring.LevelComplete, res.FinalScore)
}

func TestNarrowLevelNeverStartsPastTheGoal(t *testing.T) {
	level := Level{
		Name:      "stub",
		Width:     150,
		Platforms: []core.RectF{{X: 0, Y: 550, W: 150, H: 50}},
	}
	g := NewWithLevel(config.DefaultPlatformerConfig(), level)
	g.Reset(core.RuntimeConfig{Seed: 1})

	start := core.NewInputFrame()
	start.Set(core.ActionConfirm)
	g.Step(start, 0)
	require.Equal(t, core.PhaseRunning, g.State().Phase)

	for i := 0; i < 10; i++ {
		res := g.Step(core.NewInputFrame(), 0)
		require.False(t, res.Ended, "tick %d ended the session", i)
	}
	assert.Equal(t, g.cfg.World.LevelWidth, g.levelWidth())
}

func TestMinWidth(t *testing.T) {
	cfg := config.DefaultPlatformerConfig()
	assert.Equal(t, cfg.World.ViewWidth, MinWidth(cfg))

	cfg.Gameplay.GoalMargin = 1000
	assert.Equal(t, cfg.Player.SpawnX+cfg.Player.Width+1000, MinWidth(cfg))
}
