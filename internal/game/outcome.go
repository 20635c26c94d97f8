package game

type HandResult string

const (
	PlayerWin       HandResult = "player_win"
	DealerWin       HandResult = "dealer_win"
	Push            HandResult = "push"
	PlayerBlackjack HandResult = "player_blackjack"
	DealerBlackjack HandResult = "dealer_blackjack"
)

// Points awarded or taken per hand. Scoring is flat; there are no bets.
const (
	WinPoints  = 10
	LossPoints = -10
)

// ResolveHand compares two finished hands. Checks run in order: player bust,
// dealer bust, a single blackjack, then best totals.
func ResolveHand(player, dealer *Hand) HandResult {
	if player.IsBusted() {
		return DealerWin
	}
	if dealer.IsBusted() {
		return PlayerWin
	}

	playerBJ := player.IsBlackjack()
	dealerBJ := dealer.IsBlackjack()
	if playerBJ && !dealerBJ {
		return PlayerBlackjack
	}
	if dealerBJ && !playerBJ {
		return DealerBlackjack
	}

	// Two blackjacks fall through to 21 vs 21
	playerTotal := player.BestTotal()
	dealerTotal := dealer.BestTotal()
	switch {
	case playerTotal > dealerTotal:
		return PlayerWin
	case playerTotal < dealerTotal:
		return DealerWin
	default:
		return Push
	}
}

// CalculateScore returns the score change for a hand result
func CalculateScore(result HandResult) int {
	switch result {
	case PlayerWin, PlayerBlackjack:
		return WinPoints
	case DealerWin, DealerBlackjack:
		return LossPoints
	default:
		return 0
	}
}

// IsPlayerWin returns true for results that credit the player
func (r HandResult) IsPlayerWin() bool {
	return r == PlayerWin || r == PlayerBlackjack
}

// IsDealerWin returns true for results that debit the player
func (r HandResult) IsDealerWin() bool {
	return r == DealerWin || r == DealerBlackjack
}
