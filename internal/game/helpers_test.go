package game

// hand builds a hand from ranks, cycling suits so cards stay distinct
func hand(ranks ...Rank) *Hand {
	h := NewHand()
	for i, r := range ranks {
		h.AddCard(NewCard(Suits[i%len(Suits)], r))
	}
	return h
}
