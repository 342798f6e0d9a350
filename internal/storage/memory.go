package storage

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// Memory is an in-process score book used when no database is available
// and in tests. It stores the same decimal strings as Store.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemory creates an empty in-memory score book.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Put stores a raw value under key.
func (m *Memory) Put(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

// Best implements core.ScoreBook.
func (m *Memory) Best(gameID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return ParseScore(m.values[BestKey(gameID)])
}

// Record implements core.ScoreBook.
func (m *Memory) Record(gameID string, score int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := BestKey(gameID)
	if score <= ParseScore(m.values[key]) {
		return false, nil
	}
	m.values[key] = strconv.Itoa(score)
	return true, nil
}

// Bests returns every stored best score, ordered by game ID.
func (m *Memory) Bests() ([]BestEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entries := make([]BestEntry, 0, len(m.values))
	for key, value := range m.values {
		if !strings.HasSuffix(key, bestSuffix) {
			continue
		}
		entries = append(entries, BestEntry{
			GameID: strings.TrimSuffix(key, bestSuffix),
			Score:  ParseScore(value),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GameID < entries[j].GameID
	})
	return entries, nil
}

// ClearBest deletes the stored best score for the given game.
func (m *Memory) ClearBest(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, BestKey(gameID))
	return nil
}
