package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSession() *Session {
	return &Session{
		SessionID:  "abc-123",
		GameScreen: ScreenVoting,
		Players: []*Player{
			{Name: "Ana", Score: 10},
			{Name: "Bo", Score: 0},
			{Name: "Cy", Score: 10},
		},
		RoundNumber: 2,
		Cards: []*GameCard{
			{Word: "Coffee"},
			{Word: "Tea", IsImposter: true},
			{Word: "Coffee"},
		},
		ImposterIndex: 1,
		Eliminated:    []int{},
		Votes:         map[int]int{0: 1, 2: 1},
		Viewed:        []int{0, 1, 2},
		LastPairIndex: 0,
		CreatedAt:     time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 4, 5, 10, 30, 0, 0, time.UTC),
	}
}

func TestSessionJSONRoundTrip(t *testing.T) {
	original := validSession()

	blob, err := json.Marshal(original)
	require.NoError(t, err)

	var restored Session
	require.NoError(t, json.Unmarshal(blob, &restored))

	assert.Equal(t, original, &restored)
}

func TestSessionJSONScreenTag(t *testing.T) {
	blob, err := json.Marshal(validSession())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(blob, &doc))

	assert.Equal(t, "voting", doc["game_screen"])
	assert.Equal(t, "abc-123", doc["session_id"])
}

func TestValidateAcceptsSetupSession(t *testing.T) {
	sess := &Session{
		SessionID:     "fresh",
		GameScreen:    ScreenSetup,
		Players:       []*Player{},
		RoundNumber:   1,
		Votes:         map[int]int{},
		LastPairIndex: -1,
	}
	assert.NoError(t, sess.Validate())
}

func TestValidateRejectsCorruptSessions(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(s *Session)
	}{
		{"empty session id", func(s *Session) { s.SessionID = "" }},
		{"unknown screen", func(s *Session) { s.GameScreen = "lobby" }},
		{"round below one", func(s *Session) { s.RoundNumber = 0 }},
		{"duplicate name", func(s *Session) { s.Players[2].Name = "Ana" }},
		{"empty name", func(s *Session) { s.Players[0].Name = "" }},
		{"negative score", func(s *Session) { s.Players[0].Score = -1 }},
		{"card count mismatch", func(s *Session) { s.Cards = s.Cards[:2] }},
		{"imposter index out of range", func(s *Session) { s.ImposterIndex = 7 }},
		{"imposter card misplaced", func(s *Session) {
			s.Cards[1].IsImposter = false
			s.Cards[0].IsImposter = true
		}},
		{"no imposter card", func(s *Session) { s.Cards[1].IsImposter = false }},
		{"eliminated out of range", func(s *Session) { s.Eliminated = []int{5} }},
		{"viewed out of range", func(s *Session) { s.Viewed = []int{-1} }},
		{"vote target out of range", func(s *Session) { s.Votes[0] = 9 }},
		{"vote by eliminated player", func(s *Session) { s.Eliminated = []int{0} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sess := validSession()
			tc.mutate(sess)
			assert.Error(t, sess.Validate())
		})
	}
}

func TestEliminationHelpers(t *testing.T) {
	sess := validSession()

	assert.False(t, sess.IsEliminated(0))
	sess.MarkEliminated(0)
	assert.True(t, sess.IsEliminated(0))
	assert.Equal(t, []int{1, 2}, sess.ActiveIndices())
	assert.Equal(t, 2, sess.ActiveCount())

	// Marking twice keeps the set a set
	sess.MarkEliminated(0)
	assert.Equal(t, []int{0}, sess.Eliminated)
}

func TestAllCardsViewedIgnoresEliminated(t *testing.T) {
	sess := validSession()
	sess.Viewed = []int{}

	sess.MarkEliminated(2)
	sess.MarkViewed(0)
	assert.False(t, sess.AllCardsViewed())

	sess.MarkViewed(1)
	assert.True(t, sess.AllCardsViewed())
}

func TestImposterCaught(t *testing.T) {
	sess := validSession()

	assert.False(t, sess.ImposterCaught())
	sess.MarkEliminated(1)
	assert.True(t, sess.ImposterCaught())
}
