package models

import (
	"fmt"
	"sort"
	"time"
)

// MinPlayers is the smallest roster a match can start with
const MinPlayers = 3

// Session is the aggregate root for one resumable game instance
type Session struct {
	// SessionID is the UUID identifying this session in the store
	SessionID string `json:"session_id"`

	// GameScreen is the current phase of the session
	GameScreen GameScreen `json:"game_screen"`

	// Players is the ordered roster, fixed once setup completes
	Players []*Player `json:"players"`

	// RoundNumber counts reveal/discussion/voting cycles, starting at 1
	RoundNumber int `json:"round_number"`

	// Cards holds one card per player, index-aligned with Players
	Cards []*GameCard `json:"cards"`

	// ImposterIndex is the player index holding the imposter card
	ImposterIndex int `json:"imposter_index"`

	// Eliminated lists player indices voted out, sorted ascending
	Eliminated []int `json:"eliminated"`

	// Votes maps voter index to voted-for index for the current round
	Votes map[int]int `json:"votes"`

	// Viewed lists player indices that acknowledged their card this round
	Viewed []int `json:"viewed"`

	// LastPairIndex is the catalog index of the most recent word pair,
	// or -1 when no pair has been dealt yet
	LastPairIndex int `json:"last_pair_index"`

	// CreatedAt is when the session was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session last accepted a transition
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEliminated reports whether the player index has been voted out
func (s *Session) IsEliminated(index int) bool {
	return containsIndex(s.Eliminated, index)
}

// HasViewed reports whether the player index acknowledged their card this round
func (s *Session) HasViewed(index int) bool {
	return containsIndex(s.Viewed, index)
}

// MarkEliminated records a player index as voted out
func (s *Session) MarkEliminated(index int) {
	s.Eliminated = addIndex(s.Eliminated, index)
}

// MarkViewed records a card acknowledgement for a player index
func (s *Session) MarkViewed(index int) {
	s.Viewed = addIndex(s.Viewed, index)
}

// ActiveIndices returns the player indices still in the match, in order
func (s *Session) ActiveIndices() []int {
	active := make([]int, 0, len(s.Players))
	for i := range s.Players {
		if !s.IsEliminated(i) {
			active = append(active, i)
		}
	}
	return active
}

// ActiveCount returns the number of players still in the match
func (s *Session) ActiveCount() int {
	return len(s.ActiveIndices())
}

// AllCardsViewed reports whether every active player acknowledged their card
func (s *Session) AllCardsViewed() bool {
	for _, i := range s.ActiveIndices() {
		if !s.HasViewed(i) {
			return false
		}
	}
	return true
}

// ImposterCaught reports whether the imposter has been voted out
func (s *Session) ImposterCaught() bool {
	return s.IsEliminated(s.ImposterIndex)
}

// Validate checks the session against its structural invariants. A session
// loaded from the store that fails validation is treated as corrupt.
func (s *Session) Validate() error {
	if s.SessionID == "" {
		return fmt.Errorf("session ID is empty")
	}

	if !s.GameScreen.Valid() {
		return fmt.Errorf("unknown game screen %q", s.GameScreen)
	}

	if s.RoundNumber < 1 {
		return fmt.Errorf("round number %d is less than 1", s.RoundNumber)
	}

	seen := make(map[string]bool, len(s.Players))
	for i, p := range s.Players {
		if p == nil || p.Name == "" {
			return fmt.Errorf("player %d has no name", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
		if p.Score < 0 {
			return fmt.Errorf("player %q has negative score", p.Name)
		}
	}

	// Setup sessions carry no deal yet
	if s.GameScreen == ScreenSetup {
		return nil
	}

	if len(s.Players) < MinPlayers {
		return fmt.Errorf("session has %d players, need at least %d", len(s.Players), MinPlayers)
	}

	if len(s.Cards) != len(s.Players) {
		return fmt.Errorf("session has %d cards for %d players", len(s.Cards), len(s.Players))
	}

	if s.ImposterIndex < 0 || s.ImposterIndex >= len(s.Players) {
		return fmt.Errorf("imposter index %d out of range", s.ImposterIndex)
	}

	imposters := 0
	for i, c := range s.Cards {
		if c == nil {
			return fmt.Errorf("card %d is nil", i)
		}
		if c.IsImposter {
			imposters++
			if i != s.ImposterIndex {
				return fmt.Errorf("imposter card at index %d, expected %d", i, s.ImposterIndex)
			}
		}
	}
	if imposters != 1 {
		return fmt.Errorf("session has %d imposter cards", imposters)
	}

	for _, i := range s.Eliminated {
		if i < 0 || i >= len(s.Players) {
			return fmt.Errorf("eliminated index %d out of range", i)
		}
	}

	for _, i := range s.Viewed {
		if i < 0 || i >= len(s.Players) {
			return fmt.Errorf("viewed index %d out of range", i)
		}
	}

	for voter, target := range s.Votes {
		if voter < 0 || voter >= len(s.Players) {
			return fmt.Errorf("voter index %d out of range", voter)
		}
		if target < 0 || target >= len(s.Players) {
			return fmt.Errorf("vote target %d out of range", target)
		}
		if s.IsEliminated(voter) {
			return fmt.Errorf("eliminated player %d has a recorded vote", voter)
		}
	}

	return nil
}

func containsIndex(indices []int, index int) bool {
	for _, i := range indices {
		if i == index {
			return true
		}
	}
	return false
}

func addIndex(indices []int, index int) []int {
	if containsIndex(indices, index) {
		return indices
	}
	indices = append(indices, index)
	sort.Ints(indices)
	return indices
}
