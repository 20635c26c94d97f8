package game

import "encoding/json"

// Hand is an ordered, append-only set of cards held by the player or the dealer.
// A new Hand is started for every deal; cards are never removed.
type Hand struct {
	cards []Card
}

// NewHand creates a hand holding the given cards in order
func NewHand(cards ...Card) *Hand {
	h := &Hand{cards: make([]Card, 0, len(cards)+2)}
	h.cards = append(h.cards, cards...)
	return h
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card Card) {
	h.cards = append(h.cards, card)
}

// Cards returns the cards in the order they were dealt.
// The returned slice is a copy.
func (h *Hand) Cards() []Card {
	out := make([]Card, len(h.cards))
	copy(out, h.cards)
	return out
}

// CardCount returns the number of cards in the hand
func (h *Hand) CardCount() int {
	return len(h.cards)
}

// HardTotal sums the hand counting every ace as 1
func (h *Hand) HardTotal() int {
	total := 0
	for _, card := range h.cards {
		total += card.Value()
	}
	return total
}

// SoftTotal returns the total with one ace counted as 11. ok is false when
// the hand has no ace or promoting an ace would bust.
func (h *Hand) SoftTotal() (total int, ok bool) {
	if !h.hasAce() {
		return 0, false
	}

	hard := h.HardTotal()
	if hard+10 > 21 {
		return 0, false
	}
	return hard + 10, true
}

// BestTotal returns the soft total when it exists, otherwise the hard total
func (h *Hand) BestTotal() int {
	if soft, ok := h.SoftTotal(); ok {
		return soft
	}
	return h.HardTotal()
}

// IsSoft reports whether the hand currently counts an ace as 11
func (h *Hand) IsSoft() bool {
	_, ok := h.SoftTotal()
	return ok
}

// IsBlackjack returns true for a two-card 21
func (h *Hand) IsBlackjack() bool {
	return len(h.cards) == 2 && h.BestTotal() == 21
}

// IsBusted returns true when the best total is over 21
func (h *Hand) IsBusted() bool {
	return h.BestTotal() > 21
}

// CanSplit returns true for exactly two cards of the same rank
func (h *Hand) CanSplit() bool {
	return len(h.cards) == 2 && h.cards[0].Rank == h.cards[1].Rank
}

func (h *Hand) hasAce() bool {
	for _, card := range h.cards {
		if card.IsAce() {
			return true
		}
	}
	return false
}

// MarshalJSON encodes the hand as its ordered card list
func (h *Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Cards())
}
