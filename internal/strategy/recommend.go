package strategy

import (
	"errors"
	"fmt"

	"github.com/calvinwijaya/blackjack-trainer/internal/game"
)

// ErrNoRecommendation is returned for a hand the chart has no row for,
// such as an empty or busted hand.
var ErrNoRecommendation = errors.New("no basic strategy entry")

type HandKind string

const (
	PairHand HandKind = "pair"
	SoftHand HandKind = "soft"
	HardHand HandKind = "hard"
)

// Situation is a player hand classified for chart lookup
type Situation struct {
	Kind     HandKind `json:"kind"`
	Total    int      `json:"total"`
	PairRank string   `json:"pairRank,omitempty"`
	Upcard   string   `json:"upcard"`
}

// UpcardColumn maps the dealer's upcard to its chart column
func UpcardColumn(card game.Card) string {
	if card.IsAce() {
		return "A"
	}
	if card.IsFace() {
		return "10"
	}
	return string(card.Rank)
}

// Classify sorts the hand into pair, soft or hard, in that priority
func Classify(hand *game.Hand, upcard game.Card) Situation {
	situation := Situation{
		Kind:   HardHand,
		Total:  hand.BestTotal(),
		Upcard: UpcardColumn(upcard),
	}

	switch {
	case hand.CanSplit():
		situation.Kind = PairHand
		// J/J, Q/Q and K/K read the tens row
		situation.PairRank = UpcardColumn(hand.Cards()[0])
	case hand.IsSoft():
		situation.Kind = SoftHand
	}
	return situation
}

// Recommend returns the chart action for the hand against the dealer upcard.
// The action is not limited to what the hand may legally do right now; a
// three-card 11 still reads Double.
func Recommend(hand *game.Hand, upcard game.Card) (game.Action, error) {
	return RecommendSituation(Classify(hand, upcard))
}

// RecommendSituation looks up an already classified situation
func RecommendSituation(situation Situation) (game.Action, error) {
	var (
		row Row
		ok  bool
	)

	switch situation.Kind {
	case PairHand:
		row, ok = basicStrategy.Pairs[situation.PairRank]
	case SoftHand:
		row, ok = basicStrategy.Soft[situation.Total]
	default:
		row, ok = basicStrategy.Hard[situation.Total]
	}
	if !ok {
		return "", fmt.Errorf("%w: %s %d", ErrNoRecommendation, situation.Kind, situation.Total)
	}

	action, ok := row.Action(situation.Upcard)
	if !ok {
		return "", fmt.Errorf("%w: upcard %q", ErrNoRecommendation, situation.Upcard)
	}
	return action, nil
}

// IsCorrect reports whether the player's action matches the recommendation
func IsCorrect(playerAction, recommended game.Action) bool {
	return playerAction == recommended
}
