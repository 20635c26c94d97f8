package game

import "strconv"

type Suit string
type Rank string

const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

const (
	Ace   Rank = "A"
	Two   Rank = "2"
	Three Rank = "3"
	Four  Rank = "4"
	Five  Rank = "5"
	Six   Rank = "6"
	Seven Rank = "7"
	Eight Rank = "8"
	Nine  Rank = "9"
	Ten   Rank = "10"
	Jack  Rank = "J"
	Queen Rank = "Q"
	King  Rank = "K"
)

// Suits and Ranks list the closed enumerations in canonical deck order.
var (
	Suits = []Suit{Hearts, Diamonds, Clubs, Spades}
	Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}
)

// Card is an immutable playing card. Two cards are equal when suit and rank match.
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard creates a card from a suit and a rank
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Value returns the blackjack value of the rank. Aces count as 1 here;
// promoting one ace to 11 is handled by Hand.
func (r Rank) Value() int {
	switch r {
	case Ace:
		return 1
	case Jack, Queen, King:
		return 10
	default:
		v, err := strconv.Atoi(string(r))
		if err != nil {
			return 0
		}
		return v
	}
}

// Valid reports whether r is one of the thirteen ranks
func (r Rank) Valid() bool {
	for _, rank := range Ranks {
		if r == rank {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	for _, suit := range Suits {
		if s == suit {
			return true
		}
	}
	return false
}

// Value returns the blackjack value of the card (ace = 1)
func (c Card) Value() int {
	return c.Rank.Value()
}

// IsAce returns true if the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFace returns true for jacks, queens and kings
func (c Card) IsFace() bool {
	return c.Rank == Jack || c.Rank == Queen || c.Rank == King
}

func (c Card) String() string {
	return string(c.Rank) + " of " + string(c.Suit)
}
