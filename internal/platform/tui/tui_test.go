package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/platformer"
	"github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	return cfg
}

func TestFitArea(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		w, h       float64
		want       core.Rect
	}{
		{"wide terminal", 80, 22, 800, 600, core.Rect{X: 11, Y: 0, W: 58, H: 22}},
		{"tall terminal", 40, 40, 400, 400, core.Rect{X: 0, Y: 10, W: 40, H: 20}},
		{"exact", 40, 20, 400, 400, core.Rect{X: 0, Y: 0, W: 40, H: 20}},
		{"empty screen", 0, 10, 400, 400, core.Rect{}},
		{"empty world", 40, 10, 0, 400, core.Rect{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FitArea(tt.cols, tt.rows, tt.w, tt.h); got != tt.want {
				t.Errorf("FitArea() = %+v, expected %+v", got, tt.want)
			}
		})
	}
}

func TestHUDLine(t *testing.T) {
	tests := []struct {
		name  string
		state core.GameState
		best  int
		want  string
	}{
		{
			name:  "snake hides lives and coins",
			state: core.GameState{Score: 30, Level: 2, Lives: -1, Coins: -1},
			best:  100,
			want:  "SNAKE  Score 30  Best 100  Level 2",
		},
		{
			name:  "best follows live score",
			state: core.GameState{Score: 300, Level: 1, Lives: 3, Coins: 2},
			best:  100,
			want:  "SNAKE  Score 300  Best 300  Level 1  Lives 3  Coins 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HUDLine("Snake", tt.state, tt.best); got != tt.want {
				t.Errorf("HUDLine() = %q, expected %q", got, tt.want)
			}
		})
	}
}

func TestKeyMapActions(t *testing.T) {
	snakeKeys := SnakeKeyMap()
	platformKeys := PlatformerKeyMap()

	tests := []struct {
		name string
		keys GameKeyMap
		msg  tea.KeyMsg
		want core.Action
	}{
		{"snake arrow", snakeKeys, tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"snake wasd", snakeKeys, runes("a"), core.ActionLeft},
		{"snake space pauses", snakeKeys, runes(" "), core.ActionPause},
		{"snake enter unbound", snakeKeys, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionNone},
		{"platformer space jumps", platformKeys, runes(" "), core.ActionJump},
		{"platformer esc pauses", platformKeys, tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"platformer enter starts", platformKeys, tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"platformer down unbound", platformKeys, tea.KeyMsg{Type: tea.KeyDown}, core.ActionNone},
		{"restart", platformKeys, runes("r"), core.ActionRestart},
		{"quit", snakeKeys, tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"help is not an action", snakeKeys, runes("?"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestModelStartsSnakeOnArrow(t *testing.T) {
	m := NewModel(snake.New(), Options{Config: testConfig(), ScreenshotDir: t.TempDir()})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, cmd := next.Update(TickMsg{})
	m = next.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.driver.Last().State.Phase; got != core.PhaseRunning {
		t.Errorf("phase = %q, expected %q", got, core.PhaseRunning)
	}
	if view := m.View(); !strings.Contains(view, "SNAKE") {
		t.Errorf("view is missing the HUD:\n%s", view)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(platformer.New(), Options{Config: testConfig(), ScreenshotDir: t.TempDir()})

	next, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("View() after quit = %q, expected empty", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	dir := t.TempDir()
	m := NewModel(platformer.New(), Options{Config: testConfig(), ScreenshotDir: dir})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)

	for _, pattern := range []string{"platformer_*.txt", "platformer_*.png"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil || len(matches) != 1 {
			t.Errorf("Glob(%s) = %v, %v; expected one file", pattern, matches, err)
		}
	}
	if !strings.HasPrefix(m.notice, "Saved ") {
		t.Errorf("notice = %q", m.notice)
	}
}

func TestModelResize(t *testing.T) {
	m := NewModel(snake.New(), Options{Config: testConfig(), ScreenshotDir: t.TempDir()})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 40-chromeLines {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	book := storage.NewMemory()
	book.Record("snake", 70) //nolint:errcheck

	m := NewMenuModel(book, testConfig())
	if len(m.items) < 2 {
		t.Fatalf("menu has %d items, expected both games", len(m.items))
	}

	snakeIdx := -1
	for i, item := range m.items {
		if item.GameID == "snake" {
			snakeIdx = i
			if item.Best != 70 {
				t.Errorf("snake best = %d, expected 70", item.Best)
			}
		}
	}
	if snakeIdx < 0 {
		t.Fatal("snake missing from menu")
	}

	var model tea.Model = m
	for range snakeIdx {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := model.(MenuModel).Result(); got.GameID != "snake" || got.Quit {
		t.Errorf("Result() = %+v, expected snake", got)
	}

	model, _ = NewMenuModel(nil, testConfig()).Update(tea.KeyMsg{Type: tea.KeyTab})
	if !model.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	model, _ = NewMenuModel(nil, testConfig()).Update(runes("q"))
	if !model.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}
}

func TestDifficultyPicker(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want config.DifficultyPreset
		back bool
	}{
		{"default is normal", []tea.KeyMsg{{Type: tea.KeyEnter}}, config.DifficultyNormal, false},
		{"up to easy", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, config.DifficultyEasy, false},
		{"down to fixed", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, config.DifficultyFixed, false},
		{"back", []tea.KeyMsg{{Type: tea.KeyEsc}}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var model tea.Model = NewDifficultyModel("Snake", 80, 24)
			for _, k := range tt.keys {
				model, _ = model.Update(k)
			}
			m := model.(DifficultyModel)
			if m.Selected() != tt.want || m.WantsBack() != tt.back {
				t.Errorf("Selected() = %q, WantsBack() = %v", m.Selected(), m.WantsBack())
			}
		})
	}
}

func TestScoreboardReset(t *testing.T) {
	book := storage.NewMemory()
	book.Record("platformer", 900) //nolint:errcheck
	book.Record("snake", 40)       //nolint:errcheck

	m := NewScoreboardModel(book, 80, 24)
	if !strings.Contains(m.View(), "900") {
		t.Fatalf("scoreboard is missing a best score:\n%s", m.View())
	}

	// Rows follow registry order; platformer sorts first.
	next, _ := m.Update(runes("x"))
	m = next.(ScoreboardModel)

	if got := book.Best("platformer"); got != 0 {
		t.Errorf("platformer best after reset = %d, expected 0", got)
	}
	if got := book.Best("snake"); got != 40 {
		t.Errorf("snake best = %d, expected 40", got)
	}
	if !strings.Contains(m.message, "reset") {
		t.Errorf("message = %q", m.message)
	}
}
