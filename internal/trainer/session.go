// Package trainer drives a basic strategy training session: it deals hands,
// checks each player decision against the chart and plays out the dealer.
package trainer

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/calvinwijaya/blackjack-trainer/internal/game"
	"github.com/calvinwijaya/blackjack-trainer/internal/strategy"
	"github.com/google/uuid"
)

var (
	ErrNotPlayerTurn       = errors.New("not the player's turn")
	ErrActionNotAllowed    = errors.New("action not allowed for this hand")
	ErrHandInProgress      = errors.New("hand still in progress")
	ErrSplitNotImplemented = errors.New("split is not implemented")
)

// CardSource is where a session draws cards from. *game.Deck satisfies it.
type CardSource interface {
	Reshuffle()
	Deal() (game.Card, error)
	RemainingCards() int
}

// Feedback describes how the player's last decision compared to the chart
type Feedback struct {
	Action      game.Action `json:"action"`
	Recommended game.Action `json:"recommended"`
	Correct     bool        `json:"correct"`
	Message     string      `json:"message"`
}

// Session is one player's training run. All methods are safe to call from
// concurrent requests; they are serialized on the session mutex.
type Session struct {
	ID        string
	CreatedAt time.Time

	mu           sync.Mutex
	updatedAt    time.Time
	deck         CardSource
	state        game.GameState
	lastFeedback *Feedback
}

// NewSession creates a session with a freshly shuffled deck
func NewSession() *Session {
	return NewSessionWithSource(game.NewDeck())
}

// NewSessionWithSource creates a session drawing from the given card source
func NewSessionWithSource(deck CardSource) *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		updatedAt: now,
		deck:      deck,
		state:     game.NewGameState(),
	}
}

// State returns a copy of the current game state
func (s *Session) State() game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastActive returns when the session last changed
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// StartTraining resets score and statistics and deals the first hand
func (s *Session) StartTraining() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase == game.PlayerTurnPhase || s.state.Phase == game.DealerTurnPhase {
		log.Printf("[SESSION] %s restarting training mid-hand", s.ID)
	}
	return s.deal(game.NewGameState())
}

// NewHand deals the next hand, keeping the session's statistics and score
func (s *Session) NewHand() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase == game.PlayerTurnPhase || s.state.Phase == game.DealerTurnPhase {
		return ErrHandInProgress
	}

	next := game.NewGameState()
	next.Score = s.state.Score
	next.Stats = s.state.Stats
	return s.deal(next)
}

// deal reshuffles, deals player, player, dealer, dealer and either resolves
// an immediate blackjack or hands the turn to the player.
func (s *Session) deal(state game.GameState) error {
	s.deck.Reshuffle()

	var cards [4]game.Card
	for i := range cards {
		card, err := s.deck.Deal()
		if err != nil {
			return fmt.Errorf("dealing new hand: %w", err)
		}
		cards[i] = card
	}

	state = game.TransitionToNewHand(state,
		[2]game.Card{cards[0], cards[1]},
		[2]game.Card{cards[2], cards[3]},
	)

	if state.PlayerHand.IsBlackjack() || state.DealerHand.IsBlackjack() {
		state = resolve(state, game.ResolveHand(state.PlayerHand, state.DealerHand))
	} else {
		state = game.TransitionToPlayerTurn(state)
	}

	s.state = state
	s.lastFeedback = nil
	s.updatedAt = time.Now()
	return nil
}

// Act applies the player's action. The decision is graded against the
// chart before the action runs.
func (s *Session) Act(action game.Action) (*Feedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Phase != game.PlayerTurnPhase {
		return nil, ErrNotPlayerTurn
	}
	if !game.IsAllowed(s.state.PlayerHand, action) {
		return nil, fmt.Errorf("%w: %s", ErrActionNotAllowed, action)
	}

	recommended, err := strategy.Recommend(s.state.PlayerHand, *s.state.DealerUpcard)
	if err != nil {
		return nil, err
	}

	correct := strategy.IsCorrect(action, recommended)
	feedback := &Feedback{
		Action:      action,
		Recommended: recommended,
		Correct:     correct,
		Message:     FeedbackMessage(correct, recommended),
	}

	state := game.RecordBasicStrategyDecision(s.state, correct)

	switch action {
	case game.Hit:
		state, err = s.hit(state)
	case game.Stand:
		state, err = s.playDealer(state)
	case game.Double:
		state, err = s.double(state)
	case game.Split:
		// The decision still counts; the hand itself is left as it was
		feedback.Message = "Split not yet implemented"
		s.commit(state, feedback)
		return feedback, ErrSplitNotImplemented
	}
	if err != nil {
		return nil, err
	}

	s.commit(state, feedback)
	return feedback, nil
}

func (s *Session) commit(state game.GameState, feedback *Feedback) {
	s.state = state
	s.lastFeedback = feedback
	s.updatedAt = time.Now()
}

func (s *Session) hit(state game.GameState) (game.GameState, error) {
	card, err := s.deck.Deal()
	if err != nil {
		return state, err
	}

	state = game.AddCardToPlayerHand(state, card)
	if state.PlayerHand.IsBusted() {
		state = resolve(state, game.DealerWin)
	}
	return state, nil
}

func (s *Session) double(state game.GameState) (game.GameState, error) {
	card, err := s.deck.Deal()
	if err != nil {
		return state, err
	}

	state = game.AddCardToPlayerHand(state, card)
	if state.PlayerHand.IsBusted() {
		return resolve(state, game.DealerWin), nil
	}
	return s.playDealer(state)
}

// playDealer draws to the dealer policy and resolves the hand
func (s *Session) playDealer(state game.GameState) (game.GameState, error) {
	state = game.TransitionToDealerTurn(state)

	for game.ShouldDealerHit(state.DealerHand) && !state.DealerHand.IsBusted() {
		card, err := s.deck.Deal()
		if err != nil {
			return state, err
		}
		state = game.AddCardToDealerHand(state, card)
	}

	return resolve(state, game.ResolveHand(state.PlayerHand, state.DealerHand)), nil
}

func resolve(state game.GameState, result game.HandResult) game.GameState {
	state = game.TransitionToResolveHand(state, result)
	return game.UpdateScore(state, result)
}

// FeedbackMessage renders the decision feedback shown to the player
func FeedbackMessage(correct bool, recommended game.Action) string {
	if correct {
		return fmt.Sprintf("Correct! Basic strategy recommends %s", recommended)
	}
	return fmt.Sprintf("Incorrect. Basic strategy recommends %s", recommended)
}
