package models

// GameScreen represents the phase of a game session. The string value is
// the serialized form stored in the session document.
type GameScreen string

const (
	// ScreenSetup indicates a session collecting its roster
	ScreenSetup GameScreen = "setup"

	// ScreenCardView indicates players are privately viewing their cards
	ScreenCardView GameScreen = "card_view"

	// ScreenDiscussion indicates the open table-talk phase
	ScreenDiscussion GameScreen = "discussion"

	// ScreenVoting indicates an elimination vote is open
	ScreenVoting GameScreen = "voting"

	// ScreenScoring indicates the round's result is being shown
	ScreenScoring GameScreen = "scoring"

	// ScreenGameOver indicates the match has concluded
	ScreenGameOver GameScreen = "game_over"
)

// Valid reports whether the screen is one of the known phases
func (s GameScreen) Valid() bool {
	switch s {
	case ScreenSetup, ScreenCardView, ScreenDiscussion, ScreenVoting, ScreenScoring, ScreenGameOver:
		return true
	default:
		return false
	}
}
