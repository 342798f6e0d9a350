package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/audio"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/input"
	"github.com/vovakirdan/retro-arcade/internal/loop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render/raster"
)

// Lines reserved around the playfield: HUD on top, help bar below.
const chromeLines = 2

var (
	hudStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Options configures a game session in the terminal.
type Options struct {
	Config        core.RuntimeConfig
	Scores        core.ScoreBook
	Player        audio.Player
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.arcade/screenshots
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	driver   *loop.Driver
	sampler  *input.Sampler
	keys     GameKeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	shotDir  string
	notice   string
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = defaultScreenshotDir()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		driver: loop.NewDriver(game, cfg, loop.Options{
			Player: opts.Player,
			Scores: opts.Scores,
			Logger: logger,
		}),
		sampler: input.NewSampler(),
		keys:    KeyMapFor(game.ID()),
		help:    h,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-chromeLines, 1)),
		config:  cfg,
		logger:  logger,
		shotDir: shotDir,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey records key presses; the game sees them on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.notice = m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.notice = ""
		m.sampler.Press(action, m.driver.Now())
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-chromeLines, 1))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.driver.Step(m.sampler.Frame(m.driver.Now()))
	return m, tickCmd(m.config.TickRate)
}

// draw renders the game into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	w, h := m.driver.Game().Viewport()
	area := FitArea(m.screen.Width(), m.screen.Height(), w, h)
	m.driver.Render(core.NewCellSurface(m.screen, area, w, h))

	st := m.driver.Last().State
	if st.Status != "" && (st.Phase == core.PhaseReady || st.Paused() || st.GameOver()) {
		m.screen.DrawTextCentered(area.Y+area.H/2, " "+st.Status+" ", core.ColorBrightYellow)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.hud(),
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

func (m Model) hud() string {
	status := m.driver.Last().State.Status
	if m.notice != "" {
		status = m.notice
	}
	line := hudStyle.Render(HUDLine(m.driver.Game().Title(), m.driver.Last().State, m.driver.Best()))
	if status == "" {
		return line
	}
	return line + "  " + statusStyle.Render(status)
}

// HUDLine formats the score bar. Lives and coins are shown only for
// games that track them.
func HUDLine(title string, st core.GameState, best int) string {
	parts := []string{
		strings.ToUpper(title),
		fmt.Sprintf("Score %d", st.Score),
		fmt.Sprintf("Best %d", max(best, st.Score)),
	}
	if st.Level > 0 {
		parts = append(parts, fmt.Sprintf("Level %d", st.Level))
	}
	if st.Lives >= 0 {
		parts = append(parts, fmt.Sprintf("Lives %d", st.Lives))
	}
	if st.Coins >= 0 {
		parts = append(parts, fmt.Sprintf("Coins %d", st.Coins))
	}
	return strings.Join(parts, "  ")
}

// saveScreenshot writes the terminal frame as text and the game frame as
// PNG, and returns a notice for the HUD.
func (m Model) saveScreenshot() string {
	m.draw()

	stamp := time.Now().Format("20060102_150405")
	base := filepath.Join(m.shotDir, fmt.Sprintf("%s_%s", m.driver.Game().ID(), stamp))

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "Screenshot failed"
	}
	if err := os.WriteFile(base+".txt", []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "Screenshot failed"
	}
	if err := raster.SavePNG(raster.Frame(m.driver.Game(), 1).Image(), base+".png"); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return "Screenshot failed"
	}
	m.logger.Info("screenshot saved", "path", base+".png")
	return "Saved " + filepath.Base(base) + ".png"
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".arcade", "screenshots")
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
