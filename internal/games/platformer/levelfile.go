package platformer

import (
	"fmt"
	"math"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// yamlLevel is the on-disk level format.
type yamlLevel struct {
	Name      string      `yaml:"name"`
	Width     float64     `yaml:"width,omitempty"`
	Platforms []yamlRect  `yaml:"platforms"`
	Enemies   []yamlPoint `yaml:"enemies,omitempty"`
	Coins     []yamlPoint `yaml:"coins,omitempty"`
	PowerUps  []yamlPoint `yaml:"powerups,omitempty"`
}

type yamlRect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// LevelError describes why a level file was rejected.
type LevelError struct {
	Code    string
	Message string
}

func (e LevelError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ParseLevel decodes and validates a YAML level.
func ParseLevel(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	level := Level{
		Name:      yl.Name,
		Width:     yl.Width,
		Platforms: make([]core.RectF, len(yl.Platforms)),
		Enemies:   spawns(yl.Enemies),
		Coins:     spawns(yl.Coins),
		PowerUps:  spawns(yl.PowerUps),
	}
	for i, p := range yl.Platforms {
		level.Platforms[i] = core.RectF{X: p.X, Y: p.Y, W: p.W, H: p.H}
	}

	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func spawns(points []yamlPoint) []Spawn {
	out := make([]Spawn, len(points))
	for i, p := range points {
		out[i] = Spawn{X: p.X, Y: p.Y}
	}
	return out
}

// LoadLevelFile reads a level from a YAML file.
func LoadLevelFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading level %s: %w", path, err)
	}
	level, err := ParseLevel(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing level %s: %w", path, err)
	}
	return level, nil
}

// MinWidth is the narrowest level cfg can play: it fills the view and
// puts the goal past the player's spawn.
func MinWidth(cfg config.PlatformerConfig) float64 {
	return math.Max(cfg.World.ViewWidth, cfg.Player.SpawnX+cfg.Player.Width+cfg.Gameplay.GoalMargin)
}

// Validate checks the level against the default tuning.
func (l Level) Validate() error {
	return l.ValidateFor(config.DefaultPlatformerConfig())
}

// ValidateFor checks that the level is playable with cfg: at least one
// platform, no empty platforms, and when its width is set, room to reach
// the goal with every spawn inside the level.
func (l Level) ValidateFor(cfg config.PlatformerConfig) error {
	if l.Width < 0 {
		return LevelError{Code: "BAD_WIDTH", Message: fmt.Sprintf("width %g is negative", l.Width)}
	}
	if l.Width > 0 && l.Width < MinWidth(cfg) {
		return LevelError{
			Code:    "BAD_WIDTH",
			Message: fmt.Sprintf("width %g is below the minimum %g", l.Width, MinWidth(cfg)),
		}
	}
	if len(l.Platforms) == 0 {
		return LevelError{Code: "NO_PLATFORMS", Message: "level has no platforms"}
	}
	for i, p := range l.Platforms {
		if p.W <= 0 || p.H <= 0 {
			return LevelError{
				Code:    "BAD_PLATFORM",
				Message: fmt.Sprintf("platform %d has size %gx%g", i, p.W, p.H),
			}
		}
	}
	if l.Width == 0 {
		return nil
	}

	groups := []struct {
		kind   string
		spawns []Spawn
	}{
		{"enemy", l.Enemies},
		{"coin", l.Coins},
		{"power-up", l.PowerUps},
	}
	for _, g := range groups {
		for i, s := range g.spawns {
			if s.X < 0 || s.X > l.Width {
				return LevelError{
					Code:    "OUT_OF_BOUNDS",
					Message: fmt.Sprintf("%s %d at x=%g is outside 0..%g", g.kind, i, s.X, l.Width),
				}
			}
		}
	}
	return nil
}

var (
	levelMu     sync.RWMutex
	customLevel *Level
)

// SetLevelFile loads the level used by games created with New. An empty
// path restores the built-in level.
func SetLevelFile(path string) error {
	if path == "" {
		levelMu.Lock()
		customLevel = nil
		levelMu.Unlock()
		return nil
	}

	level, err := LoadLevelFile(path)
	if err != nil {
		return err
	}
	levelMu.Lock()
	customLevel = &level
	levelMu.Unlock()
	return nil
}

func currentLevel() Level {
	levelMu.RLock()
	defer levelMu.RUnlock()
	if customLevel != nil {
		return *customLevel
	}
	return DefaultLevel
}
