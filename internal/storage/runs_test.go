package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveRunGeneratesID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(RunRecord{
		GameID:    "platformer",
		Outcome:   OutcomeWon,
		Score:     1680,
		Lives:     3,
		GoalScore: 780,
		Ticks:     612,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() returned non-UUID id %q", id)
	}

	runs, err := store.RecentRuns("platformer", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Outcome != OutcomeWon || got.Score != 1680 || got.GoalScore != 780 || got.Ticks != 612 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)

	want := uuid.New().String()
	id, err := store.SaveRun(RunRecord{ID: want, GameID: "platformer", Outcome: OutcomeQuit})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("Expected id %s, got %s", want, id)
	}

	if _, err := store.SaveRun(RunRecord{ID: want, GameID: "platformer", Outcome: OutcomeQuit}); err == nil {
		t.Error("Expected duplicate id to fail")
	}
}

func TestSaveRunRequiresOutcome(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(RunRecord{GameID: "platformer"}); err == nil {
		t.Error("Expected error for run without outcome")
	}
}

func TestRecentRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 5; i++ {
		store.SaveRun(RunRecord{GameID: "platformer", Outcome: OutcomeGameOver, Score: i * 100})
	}
	store.SaveRun(RunRecord{GameID: "other", Outcome: OutcomeWon})

	runs, err := store.RecentRuns("platformer", 3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	// Newest first
	if runs[0].Score != 500 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}

	if err := store.ClearScores("platformer"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	runs, _ = store.RecentRuns("platformer", 10)
	if len(runs) != 0 {
		t.Errorf("Expected runs cleared, got %d", len(runs))
	}
	other, _ := store.RecentRuns("other", 10)
	if len(other) != 1 {
		t.Error("Clearing one game should not touch another")
	}
}
