// arcade is a TUI arcade platform for playing retro-style games in the terminal.
//
// Usage:
//
//	arcade list               - List available games
//	arcade play <game>        - Play a game
//	arcade menu               - Start menu to pick games interactively
//	arcade scores [game]      - Show best scores
//	arcade snapshot <game>    - Run a game headless and save a PNG frame
//	arcade preview            - Serve best scores and PNG previews over HTTP
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--mute                - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/retro-arcade/internal/games/platformer"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retro Arcade - Snake and a platformer in your terminal",
	Long: `Retro Arcade is a terminal-based gaming platform with two classic-style
games: Snake and a side-scrolling platformer.

Available commands:
  list      - Show all available games
  play      - Play a specific game directly
  menu      - Interactive game picker menu
  scores    - View or reset best scores
  snapshot  - Render a headless session to PNG
  preview   - Serve best scores and previews over HTTP

Examples:
  arcade list
  arcade play snake
  arcade play platformer --difficulty hard
  arcade menu
  arcade scores
  arcade snapshot platformer --ticks 300 --out frame.png
  arcade preview --http :8080`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(previewCmd)
}
