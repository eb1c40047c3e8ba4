package cards

//go:generate mockgen -package=mocks -destination=mocks/mock_dealer.go github.com/mfell/agentx/internal/cards Dealer

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	mathrand "math/rand"
	"time"

	"github.com/mfell/agentx/internal/models"
)

var (
	// ErrInsufficientPlayers is returned when a deal is requested for fewer
	// than the minimum roster size
	ErrInsufficientPlayers = errors.New("at least 3 players are required")

	// ErrEmptyCatalog is returned when no word pairs are configured
	ErrEmptyCatalog = errors.New("word catalog is empty")
)

// WordPair is one catalog entry: the common word and its imposter counterpart
type WordPair struct {
	Common   string
	Imposter string
}

// Dealer deals one round of cards: a word pair and an imposter assignment
type Dealer interface {
	Deal(input *DealInput) (*DealOutput, error)
}

// DealInput holds the parameters for a single deal
type DealInput struct {
	// PlayerCount is the number of cards to deal
	PlayerCount int

	// LastPairIndex is the catalog index used by the previous deal,
	// or -1 when there is none. The same pair is never dealt twice
	// in a row when the catalog has at least two entries.
	LastPairIndex int
}

// DealOutput is the result of a deal
type DealOutput struct {
	// Cards holds one card per player index
	Cards []*models.GameCard

	// ImposterIndex is the player index that received the imposter word
	ImposterIndex int

	// PairIndex is the catalog index of the dealt word pair
	PairIndex int
}

// Config for the dealer
type Config struct {
	// Optional seed for testing
	Seed int64

	// Optional catalog override; DefaultCatalog is used when empty
	Catalog []WordPair
}

// randomDealer implements Dealer using a seeded random source
type randomDealer struct {
	random  *mathrand.Rand
	catalog []WordPair
}

// New creates a new dealer. Without an explicit seed the source is seeded
// from crypto/rand so imposter assignment is not predictable from wall time.
func New(cfg *Config) *randomDealer {
	var seed int64
	catalog := DefaultCatalog

	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = cryptoSeed()
	}

	if cfg != nil && len(cfg.Catalog) > 0 {
		catalog = cfg.Catalog
	}

	return &randomDealer{
		random:  mathrand.New(mathrand.NewSource(seed)),
		catalog: catalog,
	}
}

// Deal draws a word pair and an imposter index for the given roster size
func (d *randomDealer) Deal(input *DealInput) (*DealOutput, error) {
	if input == nil || input.PlayerCount < models.MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	if len(d.catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	pairIndex := d.drawPair(input.LastPairIndex)
	pair := d.catalog[pairIndex]
	imposterIndex := d.random.Intn(input.PlayerCount)

	cards := make([]*models.GameCard, input.PlayerCount)
	for i := range cards {
		if i == imposterIndex {
			cards[i] = &models.GameCard{Word: pair.Imposter, IsImposter: true}
		} else {
			cards[i] = &models.GameCard{Word: pair.Common}
		}
	}

	return &DealOutput{
		Cards:         cards,
		ImposterIndex: imposterIndex,
		PairIndex:     pairIndex,
	}, nil
}

// drawPair picks a catalog index, skipping the previous one when possible
func (d *randomDealer) drawPair(last int) int {
	if last < 0 || last >= len(d.catalog) || len(d.catalog) < 2 {
		return d.random.Intn(len(d.catalog))
	}

	index := d.random.Intn(len(d.catalog) - 1)
	if index >= last {
		index++
	}
	return index
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// fall back to wall time if the system source is unavailable
		return time.Now().UnixNano()
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}
