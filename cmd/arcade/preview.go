package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/web"
)

var (
	flagHTTPAddr string
	flagNoWatch  bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve best scores and game previews over HTTP",
	Long: `Start a read-only HTTP server with the game list, best scores and PNG
previews rendered from headless sessions.

Endpoints:
  GET /api/games                   - Games with their best scores
  GET /api/games/<id>/best         - Best score of one game
  GET /api/games/<id>/preview      - PNG frame (?ticks=120&scale=1)

Previews are cached and dropped when a game's config file in
~/.arcade/configs or ./configs changes.

Examples:
  arcade preview
  arcade preview --http :9000
  arcade preview --seed 42 --log-level debug`,
	Run: runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagHTTPAddr, "http", ":8080", "HTTP listen address (host:port)")
	previewCmd.Flags().BoolVar(&flagNoWatch, "no-watch", false, "Do not watch config files")
}

func runPreview(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	scores, closeScores := openScores(logger)
	defer closeScores()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := web.NewServer(web.Options{
		Scores: scores,
		Logger: logger,
		Seed:   flagSeed,
		FPS:    flagFPS,
	})

	if !flagNoWatch {
		if err := server.WatchConfig(ctx, config.WatchDirs()); err != nil {
			logger.Warn("config watching disabled", "error", err)
		}
	}

	fmt.Printf("Serving arcade previews on %s\n", flagHTTPAddr)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(ctx, flagHTTPAddr); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
