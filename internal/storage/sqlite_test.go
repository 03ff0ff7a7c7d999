package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/rgballs/internal/engine"
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
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestRecordWinFirstUnlocks(t *testing.T) {
	store := openTestStore(t)

	n, err := store.Unlocked()
	if err != nil {
		t.Fatalf("Unlocked() failed: %v", err)
	}
	if n != 0 {
		t.Errorf("fresh store Unlocked() = %d, expected 0", n)
	}

	wrote, err := store.RecordWin(0, engine.Stars{true, false, true}, 40)
	if err != nil {
		t.Fatalf("RecordWin() failed: %v", err)
	}
	if !wrote {
		t.Error("first win should be written")
	}

	n, _ = store.Unlocked()
	if n != 1 {
		t.Errorf("Unlocked() = %d after first win, expected 1", n)
	}

	r, err := store.Result(0)
	if err != nil {
		t.Fatalf("Result() failed: %v", err)
	}
	if r == nil || r.Stars.String() != "*_*" || r.Steps != 40 {
		t.Errorf("Result(0) = %+v", r)
	}

	missing, err := store.Result(7)
	if err != nil || missing != nil {
		t.Errorf("Result(7) = %+v, %v; expected nil, nil", missing, err)
	}
}

func TestRecordWinReplacementRule(t *testing.T) {
	tests := []struct {
		name     string
		stored   engine.Stars
		incoming engine.Stars
		replaced bool
	}{
		{"completion only is improved by anything", engine.Stars{true, false, false}, engine.Stars{true, false, true}, true},
		{"completion only is replaced by same", engine.Stars{true, false, false}, engine.Stars{true, false, false}, true},
		{"two stars not replaced by two stars", engine.Stars{true, true, false}, engine.Stars{true, false, true}, false},
		{"two stars not replaced by one", engine.Stars{true, true, false}, engine.Stars{true, false, false}, false},
		{"perfect always replaces", engine.Stars{true, true, false}, engine.PerfectStars, true},
		{"perfect replaces perfect", engine.PerfectStars, engine.PerfectStars, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := openTestStore(t)
			if _, err := store.RecordWin(3, tc.stored, 10); err != nil {
				t.Fatalf("RecordWin() failed: %v", err)
			}
			wrote, err := store.RecordWin(3, tc.incoming, 20)
			if err != nil {
				t.Fatalf("RecordWin() failed: %v", err)
			}
			if wrote != tc.replaced {
				t.Errorf("RecordWin() wrote = %v, expected %v", wrote, tc.replaced)
			}

			r, _ := store.Result(3)
			expected := tc.stored
			if tc.replaced {
				expected = tc.incoming
			}
			if r.Stars != expected {
				t.Errorf("stored stars = %s, expected %s", r.Stars, expected)
			}
		})
	}
}

func TestRecordWinRejectsLoss(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.RecordWin(0, engine.Stars{}, 5); err == nil {
		t.Error("RecordWin() without completion star should fail")
	}
}

func TestResultsOrdered(t *testing.T) {
	store := openTestStore(t)
	for _, lvl := range []int{2, 0, 1} {
		if _, err := store.RecordWin(lvl, engine.PerfectStars, lvl*10); err != nil {
			t.Fatalf("RecordWin() failed: %v", err)
		}
	}

	results, err := store.Results()
	if err != nil {
		t.Fatalf("Results() failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("Results() returned %d rows, expected 3", len(results))
	}
	for i, r := range results {
		if r.Level != i {
			t.Errorf("results[%d].Level = %d", i, r.Level)
		}
	}
}

func TestAttemptsAndStats(t *testing.T) {
	store := openTestStore(t)

	attempts := []Attempt{
		{RunID: "a", Level: 1, Outcome: engine.OutcomeLose, Steps: 12},
		{RunID: "b", Level: 1, Outcome: engine.OutcomeWin, Stars: engine.Stars{true, true, false}, Steps: 30},
		{RunID: "c", Level: 1, Outcome: engine.OutcomeWin, Stars: engine.PerfectStars, Steps: 25},
		{RunID: "d", Level: 1, Outcome: engine.OutcomeRetry, Steps: 3},
		{RunID: "e", Level: 2, Outcome: engine.OutcomeAborted},
	}
	for _, a := range attempts {
		if _, err := store.RecordAttempt(a); err != nil {
			t.Fatalf("RecordAttempt() failed: %v", err)
		}
	}

	recent, err := store.RecentAttempts(2)
	if err != nil {
		t.Fatalf("RecentAttempts() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("RecentAttempts(2) returned %d", len(recent))
	}
	if recent[0].RunID != "e" || recent[0].Outcome != engine.OutcomeAborted {
		t.Errorf("newest attempt = %+v", recent[0])
	}
	if recent[1].RunID != "d" || recent[1].Outcome != engine.OutcomeRetry {
		t.Errorf("second newest attempt = %+v", recent[1])
	}

	stats, err := store.Stats(1)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	expected := LevelStats{Level: 1, Attempts: 4, Wins: 2, Losses: 1, Retries: 1, BestRun: 25}
	if *stats != expected {
		t.Errorf("Stats(1) = %+v, expected %+v", *stats, expected)
	}

	empty, err := store.Stats(9)
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Attempts != 0 || empty.BestRun != 0 {
		t.Errorf("Stats(9) = %+v, expected zero", *empty)
	}
}

func TestReset(t *testing.T) {
	store := openTestStore(t)
	store.RecordWin(0, engine.PerfectStars, 1)
	store.RecordAttempt(Attempt{RunID: "x", Outcome: engine.OutcomeWin})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	n, _ := store.Unlocked()
	if n != 0 {
		t.Errorf("Unlocked() = %d after reset", n)
	}
	recent, _ := store.RecentAttempts(10)
	if len(recent) != 0 {
		t.Errorf("attempt log not cleared: %d rows", len(recent))
	}
}
