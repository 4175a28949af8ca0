package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14
)

// InvalidRankError is an error when a rank outside 2-14 is encountered.
// It indicates a bug in deck or hand construction, not a user error.
type InvalidRankError int

func (e InvalidRankError) Error() string {
	return fmt.Sprintf("invalid rank: %d", int(e))
}

// Card is an individual playing card.
// Only the rank matters in this game, so cards carry no suit.
type Card struct {
	Rank int `json:"rank"`
}

// NewCard returns a card for the given rank
func NewCard(rank int) (*Card, error) {
	if rank < 2 || rank > Ace {
		return nil, InvalidRankError(rank)
	}

	return &Card{Rank: rank}, nil
}

func (c *Card) String() string {
	switch c.Rank {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}

	if c.Rank < 2 || c.Rank > 10 {
		panic(InvalidRankError(c.Rank))
	}

	return strconv.Itoa(c.Rank)
}

// Equal returns true if the cards have the same rank
func (c *Card) Equal(card *Card) bool {
	return c.Rank == card.Rank
}

// Clone returns a clone of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// CardFromString returns a Card from the string.
// The string must be one of 2-10, J, Q, K, or A.
func CardFromString(s string) *Card {
	var rank int
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		val, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
		}

		rank = val
	}

	card, err := NewCard(rank)
	if err != nil {
		panic(fmt.Sprintf("could not parse card `%s`: %v", s, err))
	}

	return card
}

// CardsFromString will return a slice of cards from a string like "A,K,9"
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardsToString will convert a slice of cards to a string in the format of A,K,9
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
