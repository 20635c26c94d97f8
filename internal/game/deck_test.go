package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dealAll(t *testing.T, d *Deck) []Card {
	t.Helper()
	var cards []Card
	for d.RemainingCards() > 0 {
		card, err := d.Deal()
		require.NoError(t, err)
		cards = append(cards, card)
	}
	return cards
}

func TestDeckReshuffleHasEveryCardOnce(t *testing.T) {
	d := NewDeck()
	require.Equal(t, 52, d.RemainingCards())

	seen := make(map[Card]int)
	for _, card := range dealAll(t, d) {
		seen[card]++
	}

	assert.Len(t, seen, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.Equal(t, 1, seen[NewCard(suit, rank)], "%s of %s", rank, suit)
		}
	}
}

func TestDeckReshufflesDiffer(t *testing.T) {
	d := NewDeckWithRand(rand.New(rand.NewSource(7)))
	first := dealAll(t, d)

	d.Reshuffle()
	second := dealAll(t, d)

	assert.NotEqual(t, first, second)
}

func TestDeckDealRemovesFrontCard(t *testing.T) {
	d := NewDeck()
	top := d.Cards[0]

	card, err := d.Deal()
	require.NoError(t, err)
	assert.Equal(t, top, card)
	assert.Equal(t, 51, d.RemainingCards())

	next, err := d.Deal()
	require.NoError(t, err)
	assert.NotEqual(t, card, next)
	assert.Equal(t, 50, d.RemainingCards())
}

func TestDeckDealFromEmpty(t *testing.T) {
	d := NewDeck()
	dealAll(t, d)
	assert.Equal(t, 0, d.RemainingCards())

	_, err := d.Deal()
	assert.True(t, errors.Is(err, ErrEmptyDeck))
}

func TestDeckShuffleKeepsCount(t *testing.T) {
	d := NewDeck()
	d.Deal()
	d.Shuffle()
	assert.Equal(t, 51, d.RemainingCards())
}

func TestDeckSeededShuffleIsDeterministic(t *testing.T) {
	a := NewDeckWithRand(rand.New(rand.NewSource(42)))
	b := NewDeckWithRand(rand.New(rand.NewSource(42)))
	assert.Equal(t, a.Cards, b.Cards)
}
