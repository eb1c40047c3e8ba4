package game

import (
	"errors"
	"fmt"

	"github.com/mfell/agentx/internal/models"
)

// Define errors
var (
	// ErrInvalidTransition is returned when an event is not legal from the
	// session's current screen; the wrapped message names both
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrInvalidPlayerName is returned when setup names are empty or duplicated
	ErrInvalidPlayerName = errors.New("player names must be non-empty and unique")

	// ErrInvalidVote is returned for votes by or against ineligible players
	ErrInvalidVote = errors.New("invalid vote")

	// ErrInvalidPlayerIndex is returned when a seat index is out of range
	// or refers to an eliminated player
	ErrInvalidPlayerIndex = errors.New("invalid player index")

	ErrNilSession     = errors.New("session cannot be nil")
	ErrNilConfig      = errors.New("config cannot be nil")
	ErrNilSyncService = errors.New("session sync service cannot be nil")
	ErrNilDealer      = errors.New("card dealer cannot be nil")
)

// invalidTransition builds a rejection naming the offending event and the
// screen it was attempted from
func invalidTransition(event string, screen models.GameScreen) error {
	return fmt.Errorf("%w: event %q from screen %q", ErrInvalidTransition, event, screen)
}
