package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	a := assert.New(t)

	card, err := NewCard(2)
	a.NoError(err)
	a.Equal(2, card.Rank)

	card, err = NewCard(Ace)
	a.NoError(err)
	a.Equal(14, card.Rank)

	card, err = NewCard(1)
	a.Nil(card)
	a.Equal(InvalidRankError(1), err)
	a.EqualError(err, "invalid rank: 1")

	card, err = NewCard(15)
	a.Nil(card)
	a.Equal(InvalidRankError(15), err)
}

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("2", (&Card{Rank: 2}).String())
	a.Equal("10", (&Card{Rank: 10}).String())
	a.Equal("J", (&Card{Rank: Jack}).String())
	a.Equal("Q", (&Card{Rank: Queen}).String())
	a.Equal("K", (&Card{Rank: King}).String())
	a.Equal("A", (&Card{Rank: Ace}).String())

	a.Panics(func() {
		_ = (&Card{Rank: 1}).String()
	})
}

func TestCard_Equal(t *testing.T) {
	a := assert.New(t)
	a.True(CardFromString("5").Equal(CardFromString("5")))
	a.False(CardFromString("5").Equal(CardFromString("6")))
}

func TestCardFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal(3, CardFromString("3").Rank)
	a.Equal(10, CardFromString("10").Rank)
	a.Equal(Jack, CardFromString("j").Rank)
	a.Equal(Ace, CardFromString(" A ").Rank)

	a.Panics(func() {
		CardFromString("X")
	})

	a.Panics(func() {
		CardFromString("15")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)

	cards := CardsFromString("A,K,9")
	a.Equal(3, len(cards))
	a.Equal(Ace, cards[0].Rank)
	a.Equal(King, cards[1].Rank)
	a.Equal(9, cards[2].Rank)

	a.Equal(0, len(CardsFromString("")))

	a.Equal("A,K,9", CardsToString(cards))
}
