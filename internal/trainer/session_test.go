package trainer

import (
	"errors"
	"testing"

	"github.com/calvinwijaya/blackjack-trainer/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stackedDeck deals a fixed sequence of hands; each Reshuffle moves on to the
// next one.
type stackedDeck struct {
	hands     [][]game.Card
	next      int
	cards     []game.Card
	reshuffle int
}

func newStackedDeck(hands ...[]game.Card) *stackedDeck {
	return &stackedDeck{hands: hands}
}

func (d *stackedDeck) Reshuffle() {
	d.reshuffle++
	d.cards = nil
	if d.next < len(d.hands) {
		d.cards = append(d.cards, d.hands[d.next]...)
		d.next++
	}
}

func (d *stackedDeck) Deal() (game.Card, error) {
	if len(d.cards) == 0 {
		return game.Card{}, game.ErrEmptyDeck
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

func (d *stackedDeck) RemainingCards() int {
	return len(d.cards)
}

func cards(ranks ...game.Rank) []game.Card {
	out := make([]game.Card, len(ranks))
	for i, r := range ranks {
		out[i] = game.NewCard(game.Suits[i%len(game.Suits)], r)
	}
	return out
}

func TestNewSessionWaitsForStart(t *testing.T) {
	s := NewSessionWithSource(newStackedDeck())

	state := s.State()
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, game.NewHandPhase, state.Phase)
	assert.Equal(t, 0, state.PlayerHand.CardCount())

	_, err := s.Act(game.Hit)
	assert.True(t, errors.Is(err, ErrNotPlayerTurn))
}

func TestStartTrainingDealsPlayerThenDealer(t *testing.T) {
	// player 10,6 ; dealer 9,7
	deck := newStackedDeck(cards(game.Ten, game.Six, game.Nine, game.Seven))
	s := NewSessionWithSource(deck)

	require.NoError(t, s.StartTraining())
	state := s.State()

	assert.Equal(t, 1, deck.reshuffle)
	assert.Equal(t, game.PlayerTurnPhase, state.Phase)
	assert.Equal(t, 16, state.PlayerHand.BestTotal())
	assert.Equal(t, 16, state.DealerHand.BestTotal())
	require.NotNil(t, state.DealerUpcard)
	assert.Equal(t, game.Nine, state.DealerUpcard.Rank)
	assert.Nil(t, state.Result)
}

func TestImmediateBlackjackSkipsPlayerTurn(t *testing.T) {
	tests := []struct {
		name     string
		deal     []game.Card
		expected game.HandResult
		score    int
	}{
		{"player blackjack", cards(game.Ace, game.King, game.Ten, game.Seven), game.PlayerBlackjack, 10},
		{"dealer blackjack", cards(game.Ten, game.Seven, game.Ace, game.Queen), game.DealerBlackjack, -10},
		{"both blackjack", cards(game.Ace, game.King, game.Ace, game.Jack), game.Push, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSessionWithSource(newStackedDeck(tt.deal))
			require.NoError(t, s.StartTraining())

			state := s.State()
			assert.Equal(t, game.ResolveHandPhase, state.Phase)
			require.NotNil(t, state.Result)
			assert.Equal(t, tt.expected, *state.Result)
			assert.Equal(t, tt.score, state.Score)
			assert.Equal(t, 0, state.Stats.TotalDecisions)
		})
	}
}

func TestStandPlaysOutDealer(t *testing.T) {
	// player 10,9 ; dealer 10,6 draws 2 then stands on 18
	deck := newStackedDeck(cards(game.Ten, game.Nine, game.Ten, game.Six, game.Two, game.Five))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	feedback, err := s.Act(game.Stand)
	require.NoError(t, err)
	assert.True(t, feedback.Correct)
	assert.Equal(t, game.Stand, feedback.Recommended)
	assert.Equal(t, "Correct! Basic strategy recommends stand", feedback.Message)

	state := s.State()
	assert.Equal(t, game.ResolveHandPhase, state.Phase)
	assert.Equal(t, 3, state.DealerHand.CardCount())
	assert.Equal(t, 18, state.DealerHand.BestTotal())
	assert.Equal(t, game.PlayerWin, *state.Result)
	assert.Equal(t, 10, state.Score)
	assert.Equal(t, game.StrategyStats{TotalDecisions: 1, CorrectDecisions: 1}, state.Stats)
	assert.Equal(t, 1, deck.RemainingCards())
}

func TestDealerHitsSoft17(t *testing.T) {
	// player 10,8 ; dealer A,6 (soft 17) draws a 10 and stands on hard 17
	deck := newStackedDeck(cards(game.Ten, game.Eight, game.Ace, game.Six, game.Ten))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	_, err := s.Act(game.Stand)
	require.NoError(t, err)

	state := s.State()
	assert.Equal(t, 3, state.DealerHand.CardCount())
	assert.Equal(t, 17, state.DealerHand.BestTotal())
	assert.Equal(t, game.PlayerWin, *state.Result)
}

func TestHitBustResolvesImmediately(t *testing.T) {
	// player 10,6 vs dealer 7: chart says hit; the 9 busts
	deck := newStackedDeck(cards(game.Ten, game.Six, game.Seven, game.Ten, game.Nine))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	feedback, err := s.Act(game.Hit)
	require.NoError(t, err)
	assert.True(t, feedback.Correct)

	state := s.State()
	assert.Equal(t, game.ResolveHandPhase, state.Phase)
	assert.Equal(t, game.DealerWin, *state.Result)
	assert.Equal(t, -10, state.Score)
	assert.Equal(t, 3, state.PlayerHand.CardCount())
	// The dealer never drew
	assert.Equal(t, 2, state.DealerHand.CardCount())
}

func TestHitWithoutBustKeepsPlayerTurn(t *testing.T) {
	deck := newStackedDeck(cards(game.Five, game.Four, game.Ten, game.Seven, game.Two))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	// Hard 9 vs 10 is a hit
	feedback, err := s.Act(game.Hit)
	require.NoError(t, err)
	assert.True(t, feedback.Correct)

	state := s.State()
	assert.Equal(t, game.PlayerTurnPhase, state.Phase)
	assert.Equal(t, 11, state.PlayerHand.BestTotal())

	// Double is only offered on the first two cards
	_, err = s.Act(game.Double)
	assert.True(t, errors.Is(err, ErrActionNotAllowed))

	feedback, err = s.Act(game.Hit)
	require.Error(t, err) // deck exhausted by the stacked deal
	assert.Nil(t, feedback)
	assert.Equal(t, 1, s.State().Stats.TotalDecisions)
}

func TestDoubleDrawsOneCardThenDealerPlays(t *testing.T) {
	// player 6,5 vs dealer 6,10 ; double draws 10 to 21, dealer draws 8 and busts
	deck := newStackedDeck(cards(game.Six, game.Five, game.Six, game.Ten, game.Ten, game.Eight))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	feedback, err := s.Act(game.Double)
	require.NoError(t, err)
	assert.True(t, feedback.Correct)

	state := s.State()
	assert.Equal(t, 3, state.PlayerHand.CardCount())
	assert.Equal(t, 21, state.PlayerHand.BestTotal())
	assert.Equal(t, 24, state.DealerHand.BestTotal())
	assert.Equal(t, game.PlayerWin, *state.Result)
}

func TestDoubleBustSkipsDealer(t *testing.T) {
	// player 10,2 doubles into a king
	deck := newStackedDeck(cards(game.Ten, game.Two, game.Nine, game.Five, game.King))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	feedback, err := s.Act(game.Double)
	require.NoError(t, err)
	assert.False(t, feedback.Correct)
	assert.Equal(t, game.Hit, feedback.Recommended)
	assert.Equal(t, "Incorrect. Basic strategy recommends hit", feedback.Message)

	state := s.State()
	assert.Equal(t, game.DealerWin, *state.Result)
	assert.Equal(t, 2, state.DealerHand.CardCount())
	assert.Equal(t, game.StrategyStats{TotalDecisions: 1, CorrectDecisions: 0}, state.Stats)
}

func TestSplitIsGradedButNotPlayed(t *testing.T) {
	deck := newStackedDeck(cards(game.Eight, game.Eight, game.Ten, game.Seven))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	feedback, err := s.Act(game.Split)
	assert.True(t, errors.Is(err, ErrSplitNotImplemented))
	require.NotNil(t, feedback)
	assert.True(t, feedback.Correct)
	assert.Equal(t, "Split not yet implemented", feedback.Message)

	state := s.State()
	assert.Equal(t, game.PlayerTurnPhase, state.Phase)
	assert.Equal(t, 2, state.PlayerHand.CardCount())
	assert.Equal(t, 1, state.Stats.TotalDecisions)
}

func TestDisallowedActionIsNotRecorded(t *testing.T) {
	deck := newStackedDeck(cards(game.Ten, game.Seven, game.Ten, game.Seven))
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	_, err := s.Act(game.Split)
	assert.True(t, errors.Is(err, ErrActionNotAllowed))
	assert.Equal(t, 0, s.State().Stats.TotalDecisions)
}

func TestNewHandKeepsStatsAndScore(t *testing.T) {
	deck := newStackedDeck(
		cards(game.Ten, game.Nine, game.Ten, game.Seven),
		cards(game.Ten, game.Six, game.Nine, game.Seven),
	)
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())

	// Not allowed mid-hand
	assert.True(t, errors.Is(s.NewHand(), ErrHandInProgress))

	_, err := s.Act(game.Stand)
	require.NoError(t, err)
	require.Equal(t, 10, s.State().Score)

	require.NoError(t, s.NewHand())
	state := s.State()
	assert.Equal(t, game.PlayerTurnPhase, state.Phase)
	assert.Equal(t, 10, state.Score)
	assert.Equal(t, 1, state.Stats.TotalDecisions)
	assert.Nil(t, state.Result)
	assert.Nil(t, s.View().LastFeedback)
}

func TestStartTrainingResetsStats(t *testing.T) {
	deck := newStackedDeck(
		cards(game.Ten, game.Nine, game.Ten, game.Seven),
		cards(game.Ten, game.Six, game.Nine, game.Seven),
	)
	s := NewSessionWithSource(deck)
	require.NoError(t, s.StartTraining())
	_, err := s.Act(game.Stand)
	require.NoError(t, err)

	require.NoError(t, s.StartTraining())
	state := s.State()
	assert.Zero(t, state.Score)
	assert.Equal(t, game.StrategyStats{}, state.Stats)
}

func TestDealFromEmptySource(t *testing.T) {
	s := NewSessionWithSource(newStackedDeck(cards(game.Ten, game.Nine)))
	err := s.StartTraining()
	assert.True(t, errors.Is(err, game.ErrEmptyDeck))
}

func TestRealDeckSession(t *testing.T) {
	s := NewSession()

	for i := 0; i < 50; i++ {
		if i == 0 {
			require.NoError(t, s.StartTraining())
		} else {
			require.NoError(t, s.NewHand())
		}

		for s.State().Phase == game.PlayerTurnPhase {
			_, err := s.Act(game.Stand)
			require.NoError(t, err)
		}

		state := s.State()
		assert.Equal(t, game.ResolveHandPhase, state.Phase)
		require.NotNil(t, state.Result)
		assert.Equal(t, 52, state.PlayerHand.CardCount()+state.DealerHand.CardCount()+s.View().RemainingCards)
	}
}
