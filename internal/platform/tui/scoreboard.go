package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/alien-invasion/internal/registry"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

// maxRuns caps the rows loaded per tab.
const maxRuns = 100

var (
	historyTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	historyTabStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	historyActiveTab  = historyTabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	historyMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	historyFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the run history bindings.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns the run history bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next tab")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev tab")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// historyTab is one page of the browser: a mode's best runs, or the
// latest runs of every mode when gameID is empty.
type historyTab struct {
	gameID string
	title  string
}

func (t historyTab) recent() bool { return t.gameID == "" }

// ScoreboardModel browses the run journal.
type ScoreboardModel struct {
	store   *storage.Store
	tabs    []historyTab
	titles  map[string]string
	tab     int
	runs    []storage.Run
	summary *storage.Summary
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int
	now     func() time.Time

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the browser on the first mode. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		titles: make(map[string]string),
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
		now:    time.Now,
	}
	for _, g := range registry.List() {
		m.tabs = append(m.tabs, historyTab{gameID: g.ID, title: g.Title})
		m.titles[g.ID] = g.Title
	}
	m.tabs = append(m.tabs, historyTab{title: "Recent"})
	m.help.Width = width
	m.load()
	return m
}

// load fetches the runs of the current tab and rebuilds the table.
func (m *ScoreboardModel) load() {
	m.runs, m.summary = nil, nil
	tab := m.tabs[m.tab]
	if m.store != nil {
		var runs []storage.Run
		var err error
		if tab.recent() {
			runs, err = m.store.RecentRuns(maxRuns)
		} else {
			runs, err = m.store.TopRuns(tab.gameID, maxRuns)
			if sum, sumErr := m.store.Summarize(tab.gameID); sumErr == nil {
				m.summary = sum
			}
		}
		if err == nil {
			m.runs = runs
		}
	}
	m.table = m.newTable()
}

func (m *ScoreboardModel) newTable() table.Model {
	now := m.now()
	var columns []table.Column
	rows := make([]table.Row, len(m.runs))

	if m.tabs[m.tab].recent() {
		columns = []table.Column{
			{Title: "Mode", Width: 24},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Player", Width: 12},
			{Title: "When", Width: 14},
		}
		for i, r := range m.runs {
			rows[i] = RecentRow(r, m.modeTitle(r.GameID), now)
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Level", Width: 6},
			{Title: "Time", Width: 8},
			{Title: "Player", Width: 12},
			{Title: "When", Width: 14},
		}
		for i, r := range m.runs {
			rows[i] = RunRow(i+1, r, now)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) modeTitle(gameID string) string {
	if title, ok := m.titles[gameID]; ok {
		return title
	}
	return gameID
}

// RunRow formats one of a mode's best runs.
func RunRow(rank int, r storage.Run, now time.Time) table.Row {
	return table.Row{
		fmt.Sprintf("#%d", rank),
		humanize.Comma(int64(r.Score)),
		strconv.Itoa(r.Level),
		r.Duration.Round(time.Second).String(),
		playerOrDash(r.Player),
		relTime(r.CreatedAt, now),
	}
}

// RecentRow formats a run for the cross-mode recent tab.
func RecentRow(r storage.Run, mode string, now time.Time) table.Row {
	return table.Row{
		mode,
		humanize.Comma(int64(r.Score)),
		strconv.Itoa(r.Level),
		playerOrDash(r.Player),
		relTime(r.CreatedAt, now),
	}
}

func playerOrDash(p string) string {
	if p == "" {
		return "-"
	}
	return p
}

func relTime(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// SummaryLine formats aggregated statistics for a mode.
func SummaryLine(sum *storage.Summary) string {
	if sum == nil || sum.Runs == 0 {
		return "No runs yet"
	}
	return fmt.Sprintf("%s runs  |  best %s (level %d)  |  avg %s  |  played %s",
		humanize.Comma(int64(sum.Runs)),
		humanize.Comma(int64(sum.BestScore)),
		sum.BestLevel,
		humanize.Comma(int64(sum.AvgScore)),
		sum.TotalDuration.Round(time.Second),
	)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.tab = (m.tab - 1 + len(m.tabs)) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(historyTitleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n")

	status := SummaryLine(m.summary)
	if m.tabs[m.tab].recent() {
		status = fmt.Sprintf("Latest %d runs across every mode", len(m.runs))
	}
	b.WriteString(centerText(historyMutedStyle.Render(status), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	if len(m.runs) == 0 {
		body = historyMutedStyle.Italic(true).Padding(1, 4).Render("No runs recorded yet.\nFinish a run to see it here!")
	}
	b.WriteString(historyFrameStyle.Render(body))
	b.WriteString("\n")
	b.WriteString(historyMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) renderTabs() string {
	parts := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tab {
			parts[i] = historyActiveTab.Render(t.title)
		} else {
			parts[i] = historyTabStyle.Render(t.title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// IsGoingBack returns true if the user went back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the run history. It returns true to go back to the
// menu and false to quit.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
