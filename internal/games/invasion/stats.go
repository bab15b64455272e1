package invasion

// GameStats tracks the numbers shown on the scoreboard.
type GameStats struct {
	ShipsLeft int
	Score     int
	Level     int

	// HighScore outlives ResetStats for the lifetime of the process.
	HighScore int
}

// NewGameStats creates stats at their baseline with a zero high score.
func NewGameStats(shipLimit int) *GameStats {
	st := &GameStats{}
	st.ResetStats(shipLimit)
	return st
}

// ResetStats restores score, level and ships to their baseline.
func (st *GameStats) ResetStats(shipLimit int) {
	st.ShipsLeft = shipLimit
	st.Score = 0
	st.Level = 1
}

// checkHighScore raises the high score to the current score when it is beaten.
func (st *GameStats) checkHighScore() bool {
	if st.Score > st.HighScore {
		st.HighScore = st.Score
		return true
	}
	return false
}
