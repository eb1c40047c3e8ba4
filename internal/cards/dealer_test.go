package cards

import (
	mathrand "math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealExactlyOneImposter(t *testing.T) {
	dealer := New(&Config{Seed: 42})

	for playerCount := 3; playerCount <= 10; playerCount++ {
		out, err := dealer.Deal(&DealInput{
			PlayerCount:   playerCount,
			LastPairIndex: -1,
		})
		require.NoError(t, err)
		require.Len(t, out.Cards, playerCount)

		imposters := 0
		for i, card := range out.Cards {
			if card.IsImposter {
				imposters++
				assert.Equal(t, out.ImposterIndex, i)
			}
		}
		assert.Equal(t, 1, imposters)
	}
}

func TestDealAssignsWordsFromPair(t *testing.T) {
	catalog := []WordPair{{Common: "Coffee", Imposter: "Tea"}}
	dealer := New(&Config{Seed: 7, Catalog: catalog})

	out, err := dealer.Deal(&DealInput{PlayerCount: 4, LastPairIndex: -1})
	require.NoError(t, err)

	for i, card := range out.Cards {
		if i == out.ImposterIndex {
			assert.Equal(t, "Tea", card.Word)
			assert.True(t, card.IsImposter)
		} else {
			assert.Equal(t, "Coffee", card.Word)
			assert.False(t, card.IsImposter)
		}
	}
	assert.Equal(t, 0, out.PairIndex)
}

func TestDealInsufficientPlayers(t *testing.T) {
	dealer := New(&Config{Seed: 1})

	for _, playerCount := range []int{0, 1, 2} {
		_, err := dealer.Deal(&DealInput{PlayerCount: playerCount, LastPairIndex: -1})
		assert.ErrorIs(t, err, ErrInsufficientPlayers)
	}

	_, err := dealer.Deal(nil)
	assert.ErrorIs(t, err, ErrInsufficientPlayers)
}

func TestDealEmptyCatalog(t *testing.T) {
	dealer := &randomDealer{random: mathrand.New(mathrand.NewSource(1))}

	_, err := dealer.Deal(&DealInput{PlayerCount: 3, LastPairIndex: -1})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}

func TestDealNeverRepeatsPairBackToBack(t *testing.T) {
	catalog := []WordPair{
		{Common: "Sun", Imposter: "Moon"},
		{Common: "Cat", Imposter: "Dog"},
	}
	dealer := New(&Config{Seed: 99, Catalog: catalog})

	last := -1
	for i := 0; i < 50; i++ {
		out, err := dealer.Deal(&DealInput{PlayerCount: 3, LastPairIndex: last})
		require.NoError(t, err)
		if last >= 0 {
			assert.NotEqual(t, last, out.PairIndex)
		}
		last = out.PairIndex
	}
}

func TestDealSingleEntryCatalogRepeats(t *testing.T) {
	// With one pair there is nothing else to draw
	catalog := []WordPair{{Common: "Gold", Imposter: "Silver"}}
	dealer := New(&Config{Seed: 3, Catalog: catalog})

	out, err := dealer.Deal(&DealInput{PlayerCount: 3, LastPairIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, out.PairIndex)
}
