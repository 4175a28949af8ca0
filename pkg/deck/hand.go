package deck

import "sort"

// Hand represents a collection of cards in the order they were dealt
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// FirstCard returns the first-dealt card in the hand or nil if the hand is empty.
// The deal order matters here; some tiebreaks key off the first card.
func (h Hand) FirstCard() *Card {
	if len(h) == 0 {
		return nil
	}

	return h[0]
}

// HighValue returns the highest rank in the hand, or 0 for an empty hand
func (h Hand) HighValue() int {
	high := 0
	for _, c := range h {
		if c.Rank > high {
			high = c.Rank
		}
	}

	return high
}

// SortedValues returns the ranks in ascending order without mutating the hand
func (h Hand) SortedValues() []int {
	values := make([]int, len(h))
	for i, c := range h {
		values[i] = c.Rank
	}

	sort.Ints(values)
	return values
}

func (h Hand) String() string {
	return CardsToString(h)
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
