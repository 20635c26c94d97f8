package game

// ShouldDealerHit reports whether the dealer must draw another card.
//
// The dealer hits soft 17 (H17). The hard total is checked first, so any
// hand whose aces-as-one total is 16 or less draws, soft or not. A blackjack
// or a hard 17+ stands.
func ShouldDealerHit(hand *Hand) bool {
	if hand.IsBlackjack() {
		return false
	}
	if hand.HardTotal() <= 16 {
		return true
	}
	if soft, ok := hand.SoftTotal(); ok && soft <= 17 {
		return true
	}
	return false
}
