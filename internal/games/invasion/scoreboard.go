package invasion

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Scoreboard keeps display-ready scoreboard text in sync with the World.
type Scoreboard struct {
	ScoreText     string
	HighScoreText string
	LevelText     string
	Lives         int
	PointerShown  bool
}

// NewScoreboard creates a scoreboard showing the baseline values.
func NewScoreboard() *Scoreboard {
	sb := &Scoreboard{}
	sb.OnScoreChanged(0)
	sb.OnHighScoreChanged(0)
	sb.OnLevelChanged(1)
	return sb
}

// PrepScoreboard refreshes every field from stats.
func (sb *Scoreboard) PrepScoreboard(stats *GameStats) {
	sb.OnScoreChanged(stats.Score)
	sb.OnHighScoreChanged(stats.HighScore)
	sb.OnLevelChanged(stats.Level)
	sb.OnLivesChanged(stats.ShipsLeft)
}

// FormatScore rounds to the nearest ten and inserts thousands separators.
func FormatScore(score int) string {
	rounded := int64(math.Round(float64(score)/10) * 10)
	return humanize.Comma(rounded)
}

func (sb *Scoreboard) OnScoreChanged(score int) {
	sb.ScoreText = FormatScore(score)
}

func (sb *Scoreboard) OnHighScoreChanged(highScore int) {
	sb.HighScoreText = FormatScore(highScore)
}

func (sb *Scoreboard) OnLevelChanged(level int) {
	sb.LevelText = humanize.Comma(int64(level))
}

func (sb *Scoreboard) OnLivesChanged(shipsLeft int) {
	sb.Lives = shipsLeft
}

func (sb *Scoreboard) OnPointerVisibility(visible bool) {
	sb.PointerShown = visible
}

var _ Listener = (*Scoreboard)(nil)
