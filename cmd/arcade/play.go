package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevel      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Snake controls:
  Arrows/WASD  - Steer (the first press starts the game)
  Space/P      - Pause and resume
  R            - Restart (while paused or after game over)

Platformer controls:
  Enter/Space  - Start
  Left/Right   - Run
  Space/Up/W   - Jump
  P/Esc        - Pause
  R            - Restart

Everywhere:
  Ctrl+S       - Save a screenshot to ~/.arcade/screenshots
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower snake, more platformer lives
  normal - Default tuning
  hard   - Faster snake, fewer platformer lives
  fixed  - Snake never speeds up

Examples:
  arcade play snake
  arcade play snake --difficulty easy
  arcade play platformer --difficulty hard
  arcade play platformer --config ./my-platformer.yaml
  arcade play platformer --level ./levels/short.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Path to a platformer level YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		unknownGame(gameID)
	}

	logger, closeLog := tuiLogger()
	defer closeLog()

	configureGame(gameID, flagConfig, flagDifficulty)
	loadLevel(gameID, flagLevel)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, closeScores := openScores(logger)
	player := openAudio(logger)

	runErr := tui.Run(game, tui.Options{
		Config: runtimeConfig(),
		Scores: scores,
		Player: player,
		Logger: logger,
	})

	player.Close() //nolint:errcheck
	closeScores()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
