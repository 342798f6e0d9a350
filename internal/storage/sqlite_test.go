package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreBestDefaultsToZero(t *testing.T) {
	store := openTestStore(t)

	if got := store.Best("snake"); got != 0 {
		t.Errorf("Best() on empty store = %d, expected 0", got)
	}
}

func TestStoreRecordOnlyImproves(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		score    int
		improved bool
		best     int
	}{
		{100, true, 100},
		{50, false, 100},
		{100, false, 100},
		{200, true, 200},
	}

	for _, st := range steps {
		improved, err := store.Record("snake", st.score)
		if err != nil {
			t.Fatalf("Record(%d) failed: %v", st.score, err)
		}
		if improved != st.improved {
			t.Errorf("Record(%d) improved = %v, expected %v", st.score, improved, st.improved)
		}
		if got := store.Best("snake"); got != st.best {
			t.Errorf("after Record(%d) Best() = %d, expected %d", st.score, got, st.best)
		}
	}

	// Other games are independent
	if got := store.Best("platformer"); got != 0 {
		t.Errorf("Best(platformer) = %d, expected 0", got)
	}
}

func TestStoreStoresDecimalString(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.Record("snake", 1230); err != nil {
		t.Fatal(err)
	}
	value, ok, err := store.Get("snake.best_score")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
	if value != "1230" {
		t.Errorf("stored value = %q, expected \"1230\"", value)
	}
}

func TestStoreMalformedValueReadsZero(t *testing.T) {
	store := openTestStore(t)

	for _, raw := range []string{"abc", "", "-5", "12x"} {
		if err := store.Put(BestKey("snake"), raw); err != nil {
			t.Fatal(err)
		}
		if got := store.Best("snake"); got != 0 {
			t.Errorf("Best() with %q = %d, expected 0", raw, got)
		}
	}

	// A malformed value is replaced by any positive score
	improved, err := store.Record("snake", 10)
	if err != nil || !improved {
		t.Errorf("Record() over malformed value = %v, %v", improved, err)
	}
}

func TestStoreBestsAndClear(t *testing.T) {
	store := openTestStore(t)

	store.Record("snake", 40)       //nolint:errcheck
	store.Record("platformer", 900) //nolint:errcheck
	store.Put("unrelated", "7")     //nolint:errcheck

	// "_" in the suffix is a literal, not a wildcard
	store.Put("pongXbest_score", "5") //nolint:errcheck

	entries, err := store.Bests()
	if err != nil {
		t.Fatalf("Bests() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Bests() returned %d entries, expected 2", len(entries))
	}
	if entries[0].GameID != "platformer" || entries[0].Score != 900 {
		t.Errorf("entries[0] = %+v", entries[0])
	}
	if entries[1].GameID != "snake" || entries[1].Score != 40 {
		t.Errorf("entries[1] = %+v", entries[1])
	}

	if err := store.ClearBest("snake"); err != nil {
		t.Fatalf("ClearBest() failed: %v", err)
	}
	if got := store.Best("snake"); got != 0 {
		t.Errorf("Best() after clear = %d, expected 0", got)
	}
}

func TestMemoryMatchesStoreSemantics(t *testing.T) {
	m := NewMemory()

	if improved, _ := m.Record("snake", 30); !improved {
		t.Error("first Record should improve")
	}
	if improved, _ := m.Record("snake", 20); improved {
		t.Error("lower Record should not improve")
	}
	if got := m.Best("snake"); got != 30 {
		t.Errorf("Best() = %d, expected 30", got)
	}

	m.Put(BestKey("snake"), "garbage")
	if got := m.Best("snake"); got != 0 {
		t.Errorf("Best() with garbage = %d, expected 0", got)
	}

	entries, _ := m.Bests()
	if len(entries) != 1 || entries[0].GameID != "snake" {
		t.Errorf("Bests() = %+v", entries)
	}
}

func TestParseScore(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0", 0},
		{"42", 42},
		{" 17 ", 17},
		{"", 0},
		{"NaN", 0},
		{"-1", 0},
	}
	for _, tc := range tests {
		if got := ParseScore(tc.in); got != tc.want {
			t.Errorf("ParseScore(%q) = %d, expected %d", tc.in, got, tc.want)
		}
	}
}
