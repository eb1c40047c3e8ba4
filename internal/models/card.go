package models

// GameCard is the card dealt to a single player for one match
type GameCard struct {
	// Word is the word printed on the card
	Word string `json:"word"`

	// IsImposter marks the one deviating card in the deal
	IsImposter bool `json:"is_imposter"`
}
