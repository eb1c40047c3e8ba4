package models

// Player represents one seat in a game session
type Player struct {
	// Name is the display name of the player, unique within the session
	Name string `json:"name"`

	// Score is the player's accumulated score across matches
	Score int `json:"score"`
}
