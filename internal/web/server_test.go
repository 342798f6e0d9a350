package web

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/vovakirdan/retro-arcade/internal/games/platformer"
	_ "github.com/vovakirdan/retro-arcade/internal/games/snake"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*Server, *storage.Memory) {
	t.Helper()
	book := storage.NewMemory()
	return NewServer(Options{Scores: book, Seed: 7}), book
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestListGames(t *testing.T) {
	s, book := newTestServer(t)
	book.Record("snake", 40) //nolint:errcheck

	w := get(t, s, "/api/games")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Games []GameInfo `json:"games"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))

	byID := map[string]GameInfo{}
	for _, g := range body.Games {
		byID[g.ID] = g
	}
	require.Contains(t, byID, "snake")
	require.Contains(t, byID, "platformer")
	assert.Equal(t, 40, byID["snake"].Best)
	assert.Equal(t, 0, byID["platformer"].Best)
	assert.NotEmpty(t, byID["platformer"].Title)
}

func TestBestScore(t *testing.T) {
	s, book := newTestServer(t)
	book.Put(storage.BestKey("platformer"), "1500")

	w := get(t, s, "/api/games/platformer/best")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"platformer","best":1500}`, w.Body.String())

	w = get(t, s, "/api/games/tetris/best")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreviewRendersPNG(t *testing.T) {
	s, book := newTestServer(t)

	w := get(t, s, "/api/games/platformer/preview?ticks=30&scale=0.5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	img, err := png.Decode(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	assert.Equal(t, 1, s.CachedPreviews())
	assert.Zero(t, book.Best("platformer"), "previews never touch the score book")
}

func TestPreviewCachesAndInvalidates(t *testing.T) {
	s, _ := newTestServer(t)

	first := get(t, s, "/api/games/snake/preview?ticks=10")
	second := get(t, s, "/api/games/snake/preview?ticks=10")
	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Equal(t, 1, s.CachedPreviews())

	get(t, s, "/api/games/platformer/preview?ticks=1")
	s.Invalidate("snake")
	assert.Equal(t, 1, s.CachedPreviews())
}

func TestInvalidateDuringRenderSkipsCache(t *testing.T) {
	s, _ := newTestServer(t)
	key := previewKey{game: "snake", ticks: 10, scale: 1}

	_, gen, ok := s.cached(key)
	require.False(t, ok)
	png, err := s.render(context.Background(), key)
	require.NoError(t, err)

	s.Invalidate("snake")
	assert.False(t, s.store(key, gen, png), "render predates the invalidation")
	assert.Equal(t, 0, s.CachedPreviews())

	_, gen, _ = s.cached(key)
	assert.True(t, s.store(key, gen, png))
	assert.Equal(t, 1, s.CachedPreviews())

	// other games are unaffected
	other := previewKey{game: "platformer", ticks: 1, scale: 1}
	_, otherGen, _ := s.cached(other)
	s.Invalidate("snake")
	assert.True(t, s.store(other, otherGen, png))
}

func TestPreviewRejectsBadQuery(t *testing.T) {
	s, _ := newTestServer(t)

	tests := []struct {
		path string
		code int
	}{
		{"/api/games/snake/preview?ticks=-1", http.StatusBadRequest},
		{"/api/games/snake/preview?ticks=abc", http.StatusBadRequest},
		{"/api/games/snake/preview?ticks=999999", http.StatusBadRequest},
		{"/api/games/snake/preview?scale=0", http.StatusBadRequest},
		{"/api/games/snake/preview?scale=9", http.StatusBadRequest},
		{"/api/games/nope/preview", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.code, get(t, s, tc.path).Code)
		})
	}
}

func TestWatchConfigInvalidates(t *testing.T) {
	s, _ := newTestServer(t)
	dir := t.TempDir()

	get(t, s, "/api/games/snake/preview?ticks=1")
	require.Equal(t, 1, s.CachedPreviews())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.WatchConfig(ctx, []string{dir}))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "snake.yaml"), []byte("grid:\n  cols: 20\n"), 0o600))
	assert.Eventually(t, func() bool {
		return s.CachedPreviews() == 0
	}, 2*time.Second, 10*time.Millisecond)
}
