package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var flagResetScore bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best scores",
	Long: `Display the stored best score of every game, or of one game.

With --reset the best score of the given game is deleted.

Examples:
  arcade scores
  arcade scores snake
  arcade scores platformer --reset`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagResetScore, "reset", false, "Delete the best score of the given game")
}

func runScores(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	scores, closeScores := openScores(logger)
	defer closeScores()

	if len(args) == 0 {
		if flagResetScore {
			fmt.Fprintln(os.Stderr, "Error: --reset needs a game")
			os.Exit(1)
		}
		printBests(scores)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		unknownGame(gameID)
	}

	if flagResetScore {
		if err := scores.ClearBest(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting score: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Best score for %s reset.\n", gameID)
		return
	}

	best := scores.Best(gameID)
	if best == 0 {
		fmt.Println("No best score recorded yet.")
		fmt.Printf("Play 'arcade play %s' to set one!\n", gameID)
		return
	}
	fmt.Printf("Best: %d\n", best)
}

func printBests(scores scoreStore) {
	entries, err := scores.Bests()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	stored := make(map[string]storage.BestEntry, len(entries))
	for _, e := range entries {
		stored[e.GameID] = e
	}

	fmt.Println("Best Scores")
	fmt.Println()
	fmt.Printf("  %-12s  %-8s  %s\n", "Game", "Best", "Updated")
	fmt.Printf("  %-12s  %-8s  %s\n", "----", "----", "-------")
	for _, g := range registry.List() {
		e, ok := stored[g.ID]
		updated := "-"
		if ok && !e.UpdatedAt.IsZero() {
			updated = e.UpdatedAt.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-8d  %s\n", g.Title, e.Score, updated)
	}
}
