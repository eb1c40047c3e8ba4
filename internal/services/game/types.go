package game

import "github.com/mfell/agentx/internal/models"

type StartGameInput struct {
	Session *models.Session

	// PlayerNames in seat order; at least three, non-empty, unique
	PlayerNames []string
}

type StartGameOutput struct {
	Session *models.Session

	// PersistWarning is set when the post-transition write failed
	PersistWarning string
}

type MarkCardViewedInput struct {
	Session *models.Session

	// PlayerIndex is the seat acknowledging their card
	PlayerIndex int
}

type MarkCardViewedOutput struct {
	Session *models.Session

	// AllViewed is true once every active player has seen their card
	AllViewed bool

	PersistWarning string
}

type OpenVotingInput struct {
	Session *models.Session
}

type OpenVotingOutput struct {
	Session *models.Session

	PersistWarning string
}

type SubmitVoteInput struct {
	Session *models.Session

	// VoterIndex is the seat casting the vote
	VoterIndex int

	// TargetIndex is the seat being voted against
	TargetIndex int
}

type SubmitVoteOutput struct {
	Session *models.Session

	// VotesCast is the number of distinct voters so far this round
	VotesCast int

	// AllVoted is true once every active player has voted
	AllVoted bool

	PersistWarning string
}

type TallyVotesInput struct {
	Session *models.Session

	// Force closes the vote even if not every active player has voted,
	// the timeout path of the voting screen
	Force bool
}

type TallyVotesOutput struct {
	Session *models.Session

	// EliminatedIndex is the seat voted out, or -1 on an exact tie
	EliminatedIndex int

	// Tie is true when no single player held the plurality
	Tie bool

	// ImposterCaught is true when the eliminated seat was the imposter
	ImposterCaught bool

	// MatchDecided is true when the session can only move to game over
	MatchDecided bool

	// VoteCounts maps seat index to votes received
	VoteCounts map[int]int

	PersistWarning string
}

type NextRoundInput struct {
	Session *models.Session
}

type NextRoundOutput struct {
	Session *models.Session

	PersistWarning string
}

type EndGameInput struct {
	Session *models.Session
}

type EndGameOutput struct {
	Session *models.Session

	// ImposterCaught is true when the match ended with the imposter exposed
	ImposterCaught bool

	PersistWarning string
}

type RematchInput struct {
	Session *models.Session
}

type RematchOutput struct {
	Session *models.Session

	PersistWarning string
}

type NewGameInput struct {
	// Session is the session being abandoned; may be nil on a cold start
	Session *models.Session
}

type NewGameOutput struct {
	// Session is the freshly created Setup-state session
	Session *models.Session
}
