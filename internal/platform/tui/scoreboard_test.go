package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/storage"
)

func TestScoreboardTabs(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	defer store.Close()

	seed := []storage.Run{
		{GameID: "menu_test_mode", Score: 300, Player: "ana"},
		{GameID: "menu_test_mode", Score: 900, Player: "bo"},
		{GameID: "retired_mode", Score: 50},
	}
	for _, r := range seed {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if last := m.tabs[len(m.tabs)-1]; !last.recent() {
		t.Fatalf("last tab = %+v, expected the recent tab", last)
	}

	// Walk to the registered test mode.
	for m.tabs[m.tab].gameID != "menu_test_mode" {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}
	if len(m.runs) != 2 || m.runs[0].Score != 900 {
		t.Errorf("best runs = %+v", m.runs)
	}
	if m.summary == nil || m.summary.Runs != 2 {
		t.Errorf("summary = %+v", m.summary)
	}

	// Shift+tab from the first tab wraps to the recent tab.
	for m.tab != 0 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
		m = next.(ScoreboardModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if !m.tabs[m.tab].recent() {
		t.Fatalf("tab = %+v, expected the recent tab", m.tabs[m.tab])
	}
	if len(m.runs) != 3 || m.runs[0].GameID != "retired_mode" {
		t.Errorf("recent runs = %+v", m.runs)
	}
	if m.summary != nil {
		t.Error("the recent tab has no per-mode summary")
	}
	if !strings.Contains(m.View(), "Latest 3 runs") {
		t.Error("View should describe the recent tab")
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if len(m.runs) != 0 {
		t.Fatalf("runs without a store = %d", len(m.runs))
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty journal should show a placeholder")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Errorf("esc: back=%v quit=%v", m.IsGoingBack(), m.IsQuitting())
	}
}

func TestRecentRow(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	row := RecentRow(storage.Run{Score: 2500, Level: 3, CreatedAt: now.Add(-3 * time.Minute)}, "Alien Invasion", now)

	expected := []string{"Alien Invasion", "2,500", "3", "-", "3 minutes ago"}
	for i, want := range expected {
		if row[i] != want {
			t.Errorf("Column %d = %q, expected %q", i, row[i], want)
		}
	}
}
