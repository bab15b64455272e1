package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// scriptedGame reports whatever state the test sets.
type scriptedGame struct {
	state  core.GameState
	resets int
	steps  []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	if in.Has(core.ActionQuit) {
		g.state.Quit = true
	}
	return core.StepResult{State: g.state}
}

func newTestModel(t *testing.T, g *scriptedGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	m := NewModel(g, store, nil, core.DefaultConfig(), "tester")
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelForwardsKeysAndClicks(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Paused: true}}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	m = update(t, m, tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(time.Now()))

	if len(g.steps) != 1 {
		t.Fatalf("Expected 1 step, got %d", len(g.steps))
	}
	if !g.steps[0].Has(core.ActionFire) {
		t.Error("Space should reach the game as Fire")
	}
	if len(g.steps[0].Clicks) != 1 {
		t.Error("Click should reach the game")
	}

	m = update(t, m, TickMsg(time.Now()))
	if g.steps[1].Has(core.ActionFire) || len(g.steps[1].Clicks) != 0 {
		t.Error("Input should be cleared after each tick")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &scriptedGame{}
	m, _ := newTestModel(t, g)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("Resize must not reset the game, resets=%d", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("Screen not resized: %dx%d", m.screen.Width(), m.screen.Height())
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("View should render the game")
	}
}

func TestModelJournalsRunOnce(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Paused: true}}
	m, store := newTestModel(t, g)

	// Idle, then a run, then game over held for several ticks
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 250, Level: 2}
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 250, Level: 2, GameOver: true, Paused: true}
	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected one journaled run, got %d", len(runs))
	}
	if runs[0].Score != 250 || runs[0].Level != 2 || runs[0].Player != "tester" {
		t.Errorf("Unexpected run: %+v", runs[0])
	}

	// A second run is journaled separately
	g.state = core.GameState{Score: 0, Level: 1}
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 400, Level: 3, GameOver: true, Paused: true}
	update(t, m, TickMsg(time.Now()))

	runs, _ = store.TopRuns("scripted", 10)
	if len(runs) != 2 || runs[0].Score != 400 {
		t.Errorf("Expected second run with 400, got %+v", runs)
	}
}

func TestModelQuitForwardsToGame(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Score: 90, Level: 1}}
	m, store := newTestModel(t, g)
	m = update(t, m, TickMsg(time.Now()))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)

	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit the program")
	}
	last := g.steps[len(g.steps)-1]
	if !last.Has(core.ActionQuit) {
		t.Error("Quit should be forwarded to the game")
	}

	runs, _ := store.TopRuns("scripted", 10)
	if len(runs) != 1 || runs[0].Score != 90 {
		t.Errorf("Quitting mid-run should journal it, got %+v", runs)
	}
}

func TestRunRowAndSummary(t *testing.T) {
	now := time.Date(2026, 1, 2, 12, 0, 0, 0, time.UTC)
	row := RunRow(1, storage.Run{
		Score:     12340,
		Level:     4,
		Duration:  90*time.Second + 400*time.Millisecond,
		CreatedAt: now.Add(-2 * time.Hour),
	}, now)

	expected := []string{"#1", "12,340", "4", "1m30s", "-", "2 hours ago"}
	for i, want := range expected {
		if row[i] != want {
			t.Errorf("Column %d = %q, expected %q", i, row[i], want)
		}
	}

	if got := SummaryLine(nil); got != "No runs yet" {
		t.Errorf("Empty summary = %q", got)
	}
	line := SummaryLine(&storage.Summary{Runs: 3, BestScore: 1500, BestLevel: 3, AvgScore: 1000, TotalDuration: time.Minute})
	if !strings.Contains(line, "best 1,500") || !strings.Contains(line, "avg 1,000") {
		t.Errorf("Summary line missing figures: %q", line)
	}
}
