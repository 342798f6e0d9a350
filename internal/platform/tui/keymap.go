package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// GameKeyMap binds keys to game actions. Bindings double as the in-game
// help bar.
type GameKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Confirm    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return enabled(k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Help, k.Quit)
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		enabled(k.Up, k.Down, k.Left, k.Right, k.Jump),
		enabled(k.Pause, k.Restart, k.Confirm),
		enabled(k.Screenshot, k.Help, k.Quit),
	}
}

func enabled(bindings ...key.Binding) []key.Binding {
	out := make([]key.Binding, 0, len(bindings))
	for _, b := range bindings {
		if b.Enabled() {
			out = append(out, b)
		}
	}
	return out
}

func commonKeys() GameKeyMap {
	return GameKeyMap{
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SnakeKeyMap steers with arrows or WASD; Space pauses.
func SnakeKeyMap() GameKeyMap {
	k := commonKeys()
	k.Up = key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up"))
	k.Down = key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down"))
	k.Left = key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left"))
	k.Right = key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right"))
	k.Pause = key.NewBinding(key.WithKeys(" ", "space", "p", "esc"), key.WithHelp("space", "pause"))
	k.Jump = key.NewBinding(key.WithDisabled())
	k.Confirm = key.NewBinding(key.WithDisabled())
	return k
}

// PlatformerKeyMap runs with arrows or AD and jumps with Space, Up or W.
func PlatformerKeyMap() GameKeyMap {
	k := commonKeys()
	k.Up = key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "jump"))
	k.Down = key.NewBinding(key.WithDisabled())
	k.Left = key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left"))
	k.Right = key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right"))
	k.Jump = key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "jump"))
	k.Pause = key.NewBinding(key.WithKeys("p", "esc"), key.WithHelp("p", "pause"))
	k.Confirm = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start"))
	return k
}

// KeyMapFor returns the bindings for a game ID.
func KeyMapFor(gameID string) GameKeyMap {
	if gameID == "snake" {
		return SnakeKeyMap()
	}
	return PlatformerKeyMap()
}

// Action translates a key message to a game action. Help and screenshot
// keys map to ActionNone.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ", "space":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
