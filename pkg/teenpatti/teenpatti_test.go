package teenpatti

import (
	"strings"
	"testing"

	"teenpatti-server/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

// gameWithHands builds a dealt game with the given hands, bypassing the deck
func gameWithHands(t *testing.T, hands ...string) *Game {
	t.Helper()

	game, err := NewGame(logrus.StandardLogger(), Options{Players: len(hands)})
	assert.NoError(t, err)

	for i, hand := range hands {
		p := game.participants[i]
		p.hand = deck.CardsFromString(hand)
		assert.NoError(t, p.analyze())
	}

	game.state = StateDealt
	return game
}

func TestNewGame_playerCount(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), Options{Players: 0})
	a.Nil(game)
	a.Equal(PlayerCountError(0), err)

	game, err = NewGame(logrus.StandardLogger(), Options{Players: 18})
	a.Nil(game)
	a.EqualError(err, "expected 1–17 players, got 18")

	game, err = NewGame(logrus.StandardLogger(), Options{Players: 17})
	a.NoError(err)
	a.Equal(17, len(game.Participants()))

	game, err = NewGame(logrus.StandardLogger(), Options{Players: 1})
	a.NoError(err)
	a.NotEmpty(game.ID())
}

func TestGame_Deal(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), Options{Players: 4, Seed: 1})
	a.NoError(err)
	a.Equal(StateInitialized, game.State())

	a.NoError(game.Deal())
	a.Equal(StateDealt, game.State())
	a.Equal(40, game.deck.CardsLeft())

	counts := make(map[int]int)
	for _, p := range game.Participants() {
		hand := p.Hand()
		a.Equal(HandSize, len(hand))
		a.NotNil(p.Analysis())

		for _, card := range hand {
			counts[card.Rank]++
		}
	}

	// no rank can be dealt more often than it exists in the deck
	for rank, count := range counts {
		a.LessOrEqual(count, 4, "rank %d dealt %d times", rank, count)
	}

	a.Equal(ErrAlreadyDealt, game.Deal())
}

func TestGame_Deal_isDeterministicWithSeed(t *testing.T) {
	a := assert.New(t)

	play := func() *Result {
		game, err := NewGame(logrus.StandardLogger(), Options{Players: 4, Seed: 99})
		a.NoError(err)
		a.NoError(game.Deal())
		a.NoError(game.Evaluate())

		result, err := game.Result()
		a.NoError(err)
		return result
	}

	r1 := play()
	r2 := play()

	a.Equal(r1.Players, r2.Players)
	a.Equal(r1.Winners, r2.Winners)
	a.NotEqual(r1.ID, r2.ID)
}

func TestGame_stateOrder(t *testing.T) {
	a := assert.New(t)

	game, err := NewGame(logrus.StandardLogger(), DefaultOptions())
	a.NoError(err)

	a.Equal(ErrNotDealt, game.Evaluate())

	_, err = game.AllWinners()
	a.Equal(ErrNotEvaluated, err)

	_, err = game.SingleWinner()
	a.Equal(ErrNotEvaluated, err)

	_, err = game.Result()
	a.Equal(ErrNotEvaluated, err)

	a.NoError(game.Deal())
	a.NoError(game.Evaluate())
	a.Equal(StateEvaluated, game.State())
}

func TestGame_Evaluate(t *testing.T) {
	a := assert.New(t)

	game := gameWithHands(t, "A,K,9", "5,5,9", "2,3,4", "2,2,2")
	a.NoError(game.Evaluate())

	winners, err := game.AllWinners()
	a.NoError(err)
	a.Equal(1, len(winners))
	a.Equal(4, winners[0].ID)

	winner, err := game.SingleWinner()
	a.NoError(err)
	a.Equal(4, winner.ID)
}

func TestGame_Evaluate_laterStrongerHandWins(t *testing.T) {
	a := assert.New(t)

	game := gameWithHands(t, "2,9,4", "J,Q,K", "10,J,Q", "A,A,2")
	a.NoError(game.Evaluate())

	winners, err := game.AllWinners()
	a.NoError(err)
	a.Equal(1, len(winners))
	a.Equal(2, winners[0].ID)
}

func TestGame_Evaluate_coWinners(t *testing.T) {
	a := assert.New(t)

	// players 2 and 4 tie on category, tiebreak, and high card
	game := gameWithHands(t, "2,9,3", "5,5,9", "A,K,9", "5,9,5")
	a.NoError(game.Evaluate())

	winners, err := game.AllWinners()
	a.NoError(err)
	a.Equal(2, len(winners))
	a.Equal(2, winners[0].ID)
	a.Equal(4, winners[1].ID)

	winner, err := game.SingleWinner()
	a.NoError(err)
	a.Equal(2, winner.ID)
}

func TestGame_Result(t *testing.T) {
	a := assert.New(t)

	game := gameWithHands(t, "A,K,9", "2,2,2")
	a.NoError(game.Evaluate())

	result, err := game.Result()
	a.NoError(err)

	a.Equal(game.ID(), result.ID)
	a.Equal([]PlayerResult{
		{Player: 1, Hand: "A,K,9", HandType: HighCard},
		{Player: 2, Hand: "2,2,2", HandType: Trail},
	}, result.Players)
	a.Equal([]PlayerResult{
		{Player: 2, Hand: "2,2,2", HandType: Trail},
	}, result.Winners)
}

func TestPlayGame(t *testing.T) {
	a := assert.New(t)

	result, err := PlayGame(4)
	a.NoError(err)
	a.Equal(4, len(result.Players))
	a.GreaterOrEqual(len(result.Winners), 1)

	for i, p := range result.Players {
		a.Equal(i+1, p.Player)
		a.Equal(3, len(strings.Split(p.Hand, ",")))
	}

	_, err = PlayGame(0)
	a.Equal(PlayerCountError(0), err)
}
