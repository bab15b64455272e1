package invasion

// Listener receives scoreboard-relevant changes from the World.
// Callbacks run synchronously on the goroutine that drives the World.
type Listener interface {
	OnScoreChanged(score int)
	OnLevelChanged(level int)
	OnLivesChanged(shipsLeft int)
	OnHighScoreChanged(highScore int)
	OnPointerVisibility(visible bool)
}
