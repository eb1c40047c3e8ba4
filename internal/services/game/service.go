package game

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mfell/agentx/internal/cards"
	"github.com/mfell/agentx/internal/models"
	syncSvc "github.com/mfell/agentx/internal/services/session"
)

const (
	// DefaultMaxRounds is the round cap when none is configured. A match
	// the imposter survives this long ends in the imposter's favor.
	DefaultMaxRounds = 10

	// ImposterCaughtReward is the score each non-imposter gains when the
	// imposter is voted out
	ImposterCaughtReward = 10

	// ImposterSurvivedReward is the score the imposter gains when the
	// match ends without them ever being caught
	ImposterSurvivedReward = 20
)

// Config holds configuration for the game service
type Config struct {
	Sync   syncSvc.Service
	Dealer cards.Dealer
	Logger *zap.Logger

	// MaxRounds caps voting cycles per match; DefaultMaxRounds when zero
	MaxRounds int
}

// service implements the Service interface
type service struct {
	sync      syncSvc.Service
	dealer    cards.Dealer
	logger    *zap.Logger
	maxRounds int
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sync == nil {
		return nil, ErrNilSyncService
	}
	if cfg.Dealer == nil {
		return nil, ErrNilDealer
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxRounds := cfg.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	return &service{
		sync:      cfg.Sync,
		dealer:    cfg.Dealer,
		logger:    logger,
		maxRounds: maxRounds,
	}, nil
}

// StartGame validates the roster, deals the first round and moves the
// session to the card-view screen
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenSetup {
		return nil, invalidTransition("start_game", sess.GameScreen)
	}

	names := make([]string, 0, len(input.PlayerNames))
	seen := make(map[string]bool, len(input.PlayerNames))
	for _, raw := range input.PlayerNames {
		name := strings.TrimSpace(raw)
		if name == "" || seen[name] {
			return nil, ErrInvalidPlayerName
		}
		seen[name] = true
		names = append(names, name)
	}

	if len(names) < models.MinPlayers {
		return nil, cards.ErrInsufficientPlayers
	}

	deal, err := s.dealer.Deal(&cards.DealInput{
		PlayerCount:   len(names),
		LastPairIndex: sess.LastPairIndex,
	})
	if err != nil {
		return nil, err
	}

	players := make([]*models.Player, len(names))
	for i, name := range names {
		players[i] = &models.Player{Name: name}
	}

	sess.Players = players
	sess.RoundNumber = 1
	sess.Cards = deal.Cards
	sess.ImposterIndex = deal.ImposterIndex
	sess.LastPairIndex = deal.PairIndex
	sess.Eliminated = []int{}
	sess.Viewed = []int{}
	sess.Votes = map[int]int{}
	sess.GameScreen = models.ScreenCardView

	return &StartGameOutput{
		Session:        sess,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// MarkCardViewed records a card acknowledgement; the session moves to the
// discussion screen once every active player has seen their card
func (s *service) MarkCardViewed(ctx context.Context, input *MarkCardViewedInput) (*MarkCardViewedOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenCardView {
		return nil, invalidTransition("mark_card_viewed", sess.GameScreen)
	}

	if input.PlayerIndex < 0 || input.PlayerIndex >= len(sess.Players) || sess.IsEliminated(input.PlayerIndex) {
		return nil, ErrInvalidPlayerIndex
	}

	sess.MarkViewed(input.PlayerIndex)

	allViewed := sess.AllCardsViewed()
	if allViewed {
		sess.GameScreen = models.ScreenDiscussion
	}

	return &MarkCardViewedOutput{
		Session:        sess,
		AllViewed:      allViewed,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// OpenVoting moves the session from discussion to voting
func (s *service) OpenVoting(ctx context.Context, input *OpenVotingInput) (*OpenVotingOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenDiscussion {
		return nil, invalidTransition("open_voting", sess.GameScreen)
	}

	sess.GameScreen = models.ScreenVoting

	return &OpenVotingOutput{
		Session:        sess,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// SubmitVote records one elimination vote; the last vote per player wins
func (s *service) SubmitVote(ctx context.Context, input *SubmitVoteInput) (*SubmitVoteOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenVoting {
		return nil, invalidTransition("submit_vote", sess.GameScreen)
	}

	voter, target := input.VoterIndex, input.TargetIndex
	if voter < 0 || voter >= len(sess.Players) || target < 0 || target >= len(sess.Players) {
		return nil, ErrInvalidVote
	}
	if voter == target {
		return nil, ErrInvalidVote
	}
	if sess.IsEliminated(voter) || sess.IsEliminated(target) {
		return nil, ErrInvalidVote
	}

	if sess.Votes == nil {
		sess.Votes = map[int]int{}
	}
	sess.Votes[voter] = target

	return &SubmitVoteOutput{
		Session:        sess,
		VotesCast:      len(sess.Votes),
		AllVoted:       len(sess.Votes) == sess.ActiveCount(),
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// TallyVotes closes the vote, eliminates the plurality target and applies
// scoring. An exact tie eliminates nobody and the round replays.
func (s *service) TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenVoting {
		return nil, invalidTransition("tally_votes", sess.GameScreen)
	}

	if !input.Force && len(sess.Votes) < sess.ActiveCount() {
		return nil, invalidTransition("tally_votes", sess.GameScreen)
	}

	counts := make(map[int]int, len(sess.Votes))
	for _, target := range sess.Votes {
		counts[target]++
	}

	maxVotes := 0
	var leaders []int
	for target, count := range counts {
		switch {
		case count > maxVotes:
			maxVotes = count
			leaders = []int{target}
		case count == maxVotes:
			leaders = append(leaders, target)
		}
	}

	eliminated := -1
	tie := len(leaders) != 1
	if !tie {
		eliminated = leaders[0]
		sess.MarkEliminated(eliminated)
	}

	caught := sess.ImposterCaught()
	if caught {
		// Every non-imposter scores, including previously eliminated players
		for i, p := range sess.Players {
			if i != sess.ImposterIndex {
				p.Score += ImposterCaughtReward
			}
		}
	}

	sess.Votes = map[int]int{}
	sess.GameScreen = models.ScreenScoring

	return &TallyVotesOutput{
		Session:         sess,
		EliminatedIndex: eliminated,
		Tie:             tie,
		ImposterCaught:  caught,
		MatchDecided:    s.matchDecided(sess),
		VoteCounts:      counts,
		PersistWarning:  s.persist(ctx, sess),
	}, nil
}

// NextRound starts another reveal/discussion/voting cycle with the same
// cards and imposter; eliminations carry forward
func (s *service) NextRound(ctx context.Context, input *NextRoundInput) (*NextRoundOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenScoring || s.matchDecided(sess) {
		return nil, invalidTransition("next_round", sess.GameScreen)
	}

	sess.RoundNumber++
	sess.Viewed = []int{}
	sess.Votes = map[int]int{}
	sess.GameScreen = models.ScreenCardView

	return &NextRoundOutput{
		Session:        sess,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// EndGame concludes the match. An uncaught imposter collects their reward
// here, the only way the match can end without them being exposed.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenScoring || !s.matchDecided(sess) {
		return nil, invalidTransition("end_game", sess.GameScreen)
	}

	caught := sess.ImposterCaught()
	if !caught {
		sess.Players[sess.ImposterIndex].Score += ImposterSurvivedReward
	}

	sess.GameScreen = models.ScreenGameOver

	return &EndGameOutput{
		Session:        sess,
		ImposterCaught: caught,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// Rematch deals a new match for the same roster: scores kept, eliminations
// cleared, a fresh word pair that never repeats the previous one
func (s *service) Rematch(ctx context.Context, input *RematchInput) (*RematchOutput, error) {
	if input == nil || input.Session == nil {
		return nil, ErrNilSession
	}
	sess := input.Session

	if sess.GameScreen != models.ScreenGameOver {
		return nil, invalidTransition("rematch", sess.GameScreen)
	}

	deal, err := s.dealer.Deal(&cards.DealInput{
		PlayerCount:   len(sess.Players),
		LastPairIndex: sess.LastPairIndex,
	})
	if err != nil {
		return nil, err
	}

	sess.RoundNumber = 1
	sess.Cards = deal.Cards
	sess.ImposterIndex = deal.ImposterIndex
	sess.LastPairIndex = deal.PairIndex
	sess.Eliminated = []int{}
	sess.Viewed = []int{}
	sess.Votes = map[int]int{}
	sess.GameScreen = models.ScreenCardView

	return &RematchOutput{
		Session:        sess,
		PersistWarning: s.persist(ctx, sess),
	}, nil
}

// NewGame abandons the current session and creates a fresh one under a new
// identifier. The previous record stays in the store as an archive.
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	lastPair := -1
	if input != nil && input.Session != nil {
		lastPair = input.Session.LastPairIndex
	}

	fresh, err := s.sync.StartFresh(ctx, &syncSvc.StartFreshInput{
		LastPairIndex: lastPair,
	})
	if err != nil {
		return nil, err
	}

	return &NewGameOutput{
		Session: fresh.Session,
	}, nil
}

// matchDecided reports whether only end_game remains legal from Scoring.
// With two active players every vote is a forced tie, so the hunt is over
// and the imposter has won.
func (s *service) matchDecided(sess *models.Session) bool {
	return sess.ImposterCaught() || sess.RoundNumber >= s.maxRounds || sess.ActiveCount() <= 2
}

// persist writes the session through the sync manager. Failures do not roll
// back the transition; they come back as a warning string for the caller.
func (s *service) persist(ctx context.Context, sess *models.Session) string {
	err := s.sync.Persist(ctx, &syncSvc.PersistInput{Session: sess})
	if err != nil {
		s.logger.Warn("session persist failed",
			zap.String("session_id", sess.SessionID),
			zap.String("game_screen", string(sess.GameScreen)),
			zap.Error(err))
		return err.Error()
	}
	return ""
}
