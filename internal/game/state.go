package game

type GamePhase string

const (
	NewHandPhase     GamePhase = "new_hand"     // Cards dealt, nothing decided yet
	PlayerTurnPhase  GamePhase = "player_turn"  // Waiting for the player's action
	DealerTurnPhase  GamePhase = "dealer_turn"  // Dealer drawing to policy
	ResolveHandPhase GamePhase = "resolve_hand" // Hand finished, result known
)

// StrategyStats counts basic strategy decisions for a training session
type StrategyStats struct {
	TotalDecisions   int `json:"totalDecisions"`
	CorrectDecisions int `json:"correctDecisions"`
}

// Accuracy returns the share of correct decisions as a percentage (0-100)
func (s StrategyStats) Accuracy() float64 {
	if s.TotalDecisions == 0 {
		return 0
	}
	return float64(s.CorrectDecisions) / float64(s.TotalDecisions) * 100
}

// GameState is the state of one training session between transitions.
// Transition functions take a state and return the next one; hands are
// replaced, never shared between player and dealer.
type GameState struct {
	Phase        GamePhase     `json:"phase"`
	PlayerHand   *Hand         `json:"playerHand"`
	DealerHand   *Hand         `json:"dealerHand"`
	DealerUpcard *Card         `json:"dealerUpcard"`
	Score        int           `json:"score"`
	Result       *HandResult   `json:"handResult"` // Set only in ResolveHandPhase
	Stats        StrategyStats `json:"basicStrategyStats"`
}

// NewGameState creates the state of a fresh session: empty hands, no score
func NewGameState() GameState {
	return GameState{
		Phase:      NewHandPhase,
		PlayerHand: NewHand(),
		DealerHand: NewHand(),
	}
}

// TransitionToNewHand replaces both hands with freshly dealt ones. The
// dealer's first card becomes the upcard.
func TransitionToNewHand(s GameState, playerCards, dealerCards [2]Card) GameState {
	upcard := dealerCards[0]

	s.PlayerHand = NewHand(playerCards[0], playerCards[1])
	s.DealerHand = NewHand(dealerCards[0], dealerCards[1])
	s.DealerUpcard = &upcard
	s.Phase = NewHandPhase
	s.Result = nil
	return s
}

// TransitionToPlayerTurn moves to the player's decision
func TransitionToPlayerTurn(s GameState) GameState {
	s.Phase = PlayerTurnPhase
	s.Result = nil
	return s
}

// TransitionToDealerTurn moves to the dealer drawing phase
func TransitionToDealerTurn(s GameState) GameState {
	s.Phase = DealerTurnPhase
	s.Result = nil
	return s
}

// TransitionToResolveHand finishes the hand with the given result
func TransitionToResolveHand(s GameState, result HandResult) GameState {
	s.Phase = ResolveHandPhase
	s.Result = &result
	return s
}

// AddCardToPlayerHand returns a state whose player hand is a new hand with
// the prior cards followed by card
func AddCardToPlayerHand(s GameState, card Card) GameState {
	s.PlayerHand = withCard(s.PlayerHand, card)
	return s
}

// AddCardToDealerHand returns a state whose dealer hand is a new hand with
// the prior cards followed by card
func AddCardToDealerHand(s GameState, card Card) GameState {
	s.DealerHand = withCard(s.DealerHand, card)
	return s
}

// UpdateScore applies the score change for result
func UpdateScore(s GameState, result HandResult) GameState {
	s.Score += CalculateScore(result)
	return s
}

// RecordBasicStrategyDecision counts one decision, and one correct decision
// when correct is true
func RecordBasicStrategyDecision(s GameState, correct bool) GameState {
	s.Stats.TotalDecisions++
	if correct {
		s.Stats.CorrectDecisions++
	}
	return s
}

func withCard(hand *Hand, card Card) *Hand {
	var cards []Card
	if hand != nil {
		cards = hand.Cards()
	}
	next := NewHand(cards...)
	next.AddCard(card)
	return next
}
