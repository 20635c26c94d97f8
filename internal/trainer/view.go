package trainer

import (
	"time"

	"github.com/calvinwijaya/blackjack-trainer/internal/game"
)

var resultLabels = map[game.HandResult]string{
	game.PlayerWin:       "You Win!",
	game.DealerWin:       "Dealer Wins",
	game.Push:            "Push",
	game.PlayerBlackjack: "Blackjack!",
	game.DealerBlackjack: "Dealer Blackjack",
}

// ResultLabel returns the text shown to the player for a hand result
func ResultLabel(result game.HandResult) string {
	return resultLabels[result]
}

// CardView is a card as the player sees it
type CardView struct {
	Suit     game.Suit `json:"suit,omitempty"`
	Rank     game.Rank `json:"rank,omitempty"`
	FaceDown bool      `json:"faceDown,omitempty"`
}

// HandView is a hand as the player sees it. Total is omitted while the
// dealer's hole card is hidden.
type HandView struct {
	Cards []CardView `json:"cards"`
	Total *int       `json:"total,omitempty"`
}

// View is the player-facing snapshot of a session
type View struct {
	ID             string             `json:"id"`
	Phase          game.GamePhase     `json:"phase"`
	Player         HandView           `json:"player"`
	Dealer         HandView           `json:"dealer"`
	AllowedActions []game.Action      `json:"allowedActions"`
	Score          int                `json:"score"`
	Result         game.HandResult    `json:"result,omitempty"`
	ResultLabel    string             `json:"resultLabel,omitempty"`
	Stats          game.StrategyStats `json:"basicStrategyStats"`
	Accuracy       float64            `json:"basicStrategyCorrectness"`
	LastFeedback   *Feedback          `json:"lastDecisionFeedback,omitempty"`
	RemainingCards int                `json:"remainingCards"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

// View builds the player-facing snapshot. The dealer's second card stays
// face down until the hand is resolved.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	revealed := state.Phase == game.ResolveHandPhase

	v := View{
		ID:             s.ID,
		Phase:          state.Phase,
		Player:         handView(state.PlayerHand, true),
		Dealer:         handView(state.DealerHand, revealed),
		AllowedActions: []game.Action{},
		Score:          state.Score,
		Stats:          state.Stats,
		Accuracy:       state.Stats.Accuracy(),
		LastFeedback:   s.lastFeedback,
		RemainingCards: s.deck.RemainingCards(),
		UpdatedAt:      s.updatedAt,
	}

	if state.Phase == game.PlayerTurnPhase {
		v.AllowedActions = game.AllowedActions(state.PlayerHand)
	}
	if state.Result != nil {
		v.Result = *state.Result
		v.ResultLabel = ResultLabel(*state.Result)
	}
	return v
}

func handView(hand *game.Hand, revealed bool) HandView {
	cards := hand.Cards()
	hv := HandView{Cards: make([]CardView, 0, len(cards))}

	for i, card := range cards {
		if i == 1 && !revealed {
			hv.Cards = append(hv.Cards, CardView{FaceDown: true})
			continue
		}
		hv.Cards = append(hv.Cards, CardView{Suit: card.Suit, Rank: card.Rank})
	}

	if revealed && len(cards) > 0 {
		total := hand.BestTotal()
		hv.Total = &total
	}
	return hv
}
