package game

import "context"

// Service is the game state machine. Every operation takes the session it
// acts on explicitly; there is no ambient current game. Accepted transitions
// are persisted through the sync manager as a side effect, and a failed
// persist surfaces as a warning on the output rather than a rollback.
type Service interface {
	// StartGame completes setup: validates the roster, deals cards and
	// moves the session to the card-view screen
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// MarkCardViewed records that a player has seen their card; once every
	// active player has, the session moves to discussion
	MarkCardViewed(ctx context.Context, input *MarkCardViewedInput) (*MarkCardViewedOutput, error)

	// OpenVoting moves the session from discussion to voting
	OpenVoting(ctx context.Context, input *OpenVotingInput) (*OpenVotingOutput, error)

	// SubmitVote records one player's elimination vote; a repeat vote by
	// the same player overwrites the previous one
	SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error)

	// TallyVotes closes the vote, eliminates the plurality target, applies
	// scoring and moves the session to the scoring screen
	TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error)

	// NextRound starts another reveal/discussion/voting cycle while the
	// imposter is uncaught, more than two players are active and the round
	// cap has not been reached
	NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error)

	// EndGame concludes the match once the imposter is caught, only two
	// players remain active, or the round cap is reached
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// Rematch starts a new match for the same roster: scores kept,
	// eliminations cleared, fresh cards dealt
	Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error)

	// NewGame abandons the current session and creates a fresh Setup-state
	// session under a new identifier; the old record stays in the store
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
}
