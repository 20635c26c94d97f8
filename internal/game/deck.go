package game

import (
	"errors"
	"math/rand"
	"time"
)

// ErrEmptyDeck is returned when dealing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is a single 52-card deck. It is reshuffled in full before every hand.
type Deck struct {
	Cards []Card
	rng   *rand.Rand
}

// NewDeck creates a full, shuffled 52-card deck
func NewDeck() *Deck {
	return NewDeckWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewDeckWithRand creates a full, shuffled deck drawing randomness from rng
func NewDeckWithRand(rng *rand.Rand) *Deck {
	deck := &Deck{rng: rng}
	deck.Reshuffle()
	return deck
}

// Reshuffle rebuilds all 52 cards in suit order and shuffles them
func (d *Deck) Reshuffle() {
	d.Cards = make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.Cards = append(d.Cards, NewCard(suit, rank))
		}
	}
	d.Shuffle()
}

// Shuffle randomizes the order of the remaining cards
func (d *Deck) Shuffle() {
	// Fisher-Yates shuffle algorithm
	for i := len(d.Cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Deal removes and returns the top card from the deck
func (d *Deck) Deal() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]
	return card, nil
}

// RemainingCards returns the number of cards left in the deck
func (d *Deck) RemainingCards() int {
	return len(d.Cards)
}
