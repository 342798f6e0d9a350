// Package web serves a read-only HTTP view of the arcade: the game list,
// best scores and PNG previews rendered from headless sessions.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/loop"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/render/raster"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// Preview limits.
const (
	DefaultTicks = 120
	MaxTicks     = 3600
	DefaultScale = 1.0
	MaxScale     = 4.0
)

// Options configures a Server.
type Options struct {
	Scores core.ScoreBook // read only; previews never record scores
	Logger *log.Logger
	Seed   int64 // seed for preview sessions, 1 when zero
	FPS    int
}

// Server is the preview HTTP server.
type Server struct {
	scores core.ScoreBook
	logger *log.Logger
	cfg    core.RuntimeConfig
	engine *gin.Engine

	mu    sync.Mutex
	cache map[previewKey][]byte
	gen   map[string]uint64 // bumped by Invalidate
}

type previewKey struct {
	game  string
	ticks int
	scale float64
}

// GameInfo is the JSON shape of one listed game.
type GameInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Best  int    `json:"best"`
}

// NewServer builds the router.
func NewServer(opts Options) *Server {
	s := &Server{
		scores: opts.Scores,
		logger: opts.Logger,
		cfg:    core.DefaultConfig(),
		cache:  make(map[previewKey][]byte),
		gen:    make(map[string]uint64),
	}
	if s.scores == nil {
		s.scores = storage.NewMemory()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.cfg.Seed = opts.Seed
	if s.cfg.Seed == 0 {
		s.cfg.Seed = 1
	}
	if opts.FPS > 0 {
		s.cfg.TickRate = opts.FPS
	}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLog())
	router.GET("/api/games", s.listGames)
	router.GET("/api/games/:id/best", s.bestScore)
	router.GET("/api/games/:id/preview", s.preview)
	s.engine = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Invalidate drops cached previews of a game.
func (s *Server) Invalidate(game string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen[game]++
	for k := range s.cache {
		if k.game == game {
			delete(s.cache, k)
		}
	}
}

// CachedPreviews returns the number of cached PNGs.
func (s *Server) CachedPreviews() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cache)
}

// WatchConfig invalidates previews when a game's config file changes.
func (s *Server) WatchConfig(ctx context.Context, dirs []string) error {
	return config.Watch(ctx, dirs, func(game string) {
		s.logger.Info("config changed", "game", game)
		s.Invalidate(game)
	}, func(err error) {
		s.logger.Warn("config watcher error", "error", err)
	})
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("web: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}

func (s *Server) listGames(c *gin.Context) {
	games := registry.List()
	out := make([]GameInfo, 0, len(games))
	for _, g := range games {
		out = append(out, GameInfo{ID: g.ID, Title: g.Title, Best: s.scores.Best(g.ID)})
	}
	c.JSON(http.StatusOK, gin.H{"games": out})
}

func (s *Server) bestScore(c *gin.Context) {
	id := c.Param("id")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown game %q", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "best": s.scores.Best(id)})
}

func (s *Server) preview(c *gin.Context) {
	id := c.Param("id")
	if !registry.Exists(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("unknown game %q", id)})
		return
	}

	ticks, err := queryInt(c, "ticks", DefaultTicks)
	if err != nil || ticks < 0 || ticks > MaxTicks {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("ticks must be between 0 and %d", MaxTicks)})
		return
	}
	scale, err := queryFloat(c, "scale", DefaultScale)
	if err != nil || scale <= 0 || scale > MaxScale {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("scale must be in (0, %g]", MaxScale)})
		return
	}

	key := previewKey{game: id, ticks: ticks, scale: scale}
	png, gen, ok := s.cached(key)
	if !ok {
		png, err = s.render(c.Request.Context(), key)
		if err != nil {
			s.logger.Error("preview failed", "game", id, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Unable to render preview"})
			return
		}
		s.store(key, gen, png)
	}
	c.Data(http.StatusOK, "image/png", png)
}

// cached returns the PNG for key and the game's current generation.
func (s *Server) cached(key previewKey) ([]byte, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	png, ok := s.cache[key]
	return png, s.gen[key.game], ok
}

// store caches png unless the game was invalidated since gen was read.
func (s *Server) store(key previewKey, gen uint64, png []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[key.game] != gen {
		return false
	}
	s.cache[key] = png
	return true
}

func (s *Server) render(ctx context.Context, key previewKey) ([]byte, error) {
	game, err := registry.Create(key.game)
	if err != nil {
		return nil, err
	}
	d, err := loop.Simulate(ctx, game, s.cfg, key.ticks, loop.Options{Logger: s.logger},
		loop.Script(core.ActionConfirm, core.ActionRight))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := raster.Frame(d.Game(), key.scale).EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("web: cannot encode preview: %w", err)
	}
	return buf.Bytes(), nil
}

func queryInt(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}

func queryFloat(c *gin.Context, name string, def float64) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
