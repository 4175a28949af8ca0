package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"teenpatti-server/internal/rng"
)

// copies of each rank in a standard deck
const copiesPerRank = 4

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a playing deck of rank-only cards
type Deck struct {
	Cards []*Card `json:"cards"`
	seed  int64
	rng   rng.Generator
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call the Shuffle() method to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
		rng:  rng.Crypto{},
	}

	d.buildDeck()
	return d
}

// SetSeed installs a deterministic random source.
// This should only be used by tests and for replaying a known deal.
func (d *Deck) SetSeed(seed int64) {
	d.seed = seed
	d.rng = rng.NewSeeded(seed)
}

// GetSeed returns the seed, or -1 if the deck uses the crypto source
func (d *Deck) GetSeed() int64 {
	return d.seed
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, 52)
	for i := 0; i < copiesPerRank; i++ {
		for rank := 2; rank <= Ace; rank++ {
			cards = append(cards, &Card{Rank: rank})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards.
// A partially drawn deck is rebuilt first; shuffling always starts from 52 cards.
func (d *Deck) Shuffle() {
	if len(d.Cards) != 52 {
		d.buildDeck()
	}

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rng.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
