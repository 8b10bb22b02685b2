package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

func TestMenuSelectDifficulty(t *testing.T) {
	m := NewMenuModel("platformer", "Platformer", nil, core.DefaultConfig())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if cmd == nil {
		t.Fatal("selecting should exit the menu")
	}
	res := m.Result()
	if res.Quit || res.WantsScoreboard || res.Difficulty != config.DifficultyEasy {
		t.Errorf("Result() = %+v, expected easy play", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel("platformer", "Platformer", nil, core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel("platformer", "Platformer", nil, core.DefaultConfig())
	next, _ = m.Update(runeKey('q'))
	if !next.(MenuModel).Result().Quit {
		t.Error("q should quit")
	}

	// Cursor stays inside the list.
	m = NewMenuModel("platformer", "Platformer", nil, core.DefaultConfig())
	for i := 0; i < 10; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !next.(MenuModel).Result().WantsScoreboard {
		t.Error("last entry should be the scoreboard")
	}
}

func TestScoreboardViews(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "board.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("platformer", 1680)
	store.SaveScore("platformer", 600)
	store.SaveRun(storage.RunRecord{GameID: "platformer", Outcome: storage.OutcomeWon, Score: 1680})

	m := NewScoreboardModel("platformer", "Platformer", store, 80, 24)
	if m.CurrentView() != ViewTopScores || m.RowCount() != 2 {
		t.Fatalf("view=%v rows=%d, expected top scores with 2 rows", m.CurrentView(), m.RowCount())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.CurrentView() != ViewRecentRuns || m.RowCount() != 1 {
		t.Errorf("view=%v rows=%d, expected recent runs with 1 row", m.CurrentView(), m.RowCount())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("esc should go back")
	}
}
