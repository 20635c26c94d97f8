package game

import "fmt"

type Action string

const (
	Hit    Action = "hit"
	Stand  Action = "stand"
	Double Action = "double"
	Split  Action = "split"
)

// Actions lists every action in display order
var Actions = []Action{Hit, Stand, Double, Split}

// ParseAction converts a transport string into an Action
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", s)
}

// CanHit is true while the hand is live and below 21
func CanHit(hand *Hand) bool {
	return !hand.IsBusted() && !hand.IsBlackjack() && hand.BestTotal() < 21
}

// CanStand is always true
func CanStand(hand *Hand) bool {
	return true
}

// CanDouble is only allowed on the first decision
func CanDouble(hand *Hand) bool {
	return hand.CardCount() == 2 && !hand.IsBusted() && !hand.IsBlackjack()
}

// CanSplit is allowed on two cards of the same rank
func CanSplit(hand *Hand) bool {
	return hand.CardCount() == 2 && hand.CanSplit()
}

// AllowedActions returns the legal actions for the hand, ordered
// Hit, Stand, Double, Split. Stand is always present.
func AllowedActions(hand *Hand) []Action {
	actions := make([]Action, 0, len(Actions))
	if CanHit(hand) {
		actions = append(actions, Hit)
	}
	if CanStand(hand) {
		actions = append(actions, Stand)
	}
	if CanDouble(hand) {
		actions = append(actions, Double)
	}
	if CanSplit(hand) {
		actions = append(actions, Split)
	}
	return actions
}

// IsAllowed reports whether action is currently legal for the hand
func IsAllowed(hand *Hand, action Action) bool {
	for _, a := range AllowedActions(hand) {
		if a == action {
			return true
		}
	}
	return false
}
