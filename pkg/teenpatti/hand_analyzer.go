package teenpatti

import (
	"encoding/json"

	"teenpatti-server/pkg/deck"
)

// HandCategory represents the type of a three-card hand.
// Lower values are stronger.
type HandCategory int

const (
	// Trail is three cards of the same rank
	Trail HandCategory = iota
	// Sequence is three cards with consecutive ranks, ace high, no wraparound
	Sequence
	// Pair is at least two cards of the same rank
	Pair
	// HighCard is any hand that is not a trail, sequence, or pair
	HighCard
)

func (c HandCategory) String() string {
	switch c {
	case Trail:
		return "Trail"
	case Sequence:
		return "Sequence"
	case Pair:
		return "Pair"
	case HighCard:
		return "High Card"
	default:
		return "Unknown"
	}
}

// MarshalJSON encodes the category as its display name
func (c HandCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// HandAnalyzer classifies a three-card hand
type HandAnalyzer struct {
	hand   deck.Hand
	sorted []int

	category HandCategory
	tiebreak int
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(hand deck.Hand) (*HandAnalyzer, error) {
	if len(hand) != HandSize {
		return nil, ErrHandSize
	}

	h := &HandAnalyzer{
		hand:   hand.Clone(),
		sorted: hand.SortedValues(),
	}

	h.analyzeHand()
	return h, nil
}

// analyzeHand checks the categories in strict priority order.
// A trail would also satisfy the pair predicate, so the order matters.
func (h *HandAnalyzer) analyzeHand() {
	switch {
	case h.isTrail():
		h.category = Trail
		h.tiebreak = h.hand[0].Rank
	case h.isSequence():
		h.category = Sequence
		h.tiebreak = h.sorted[2]
	case h.isPair():
		h.category = Pair
		// the original game keys the pair tiebreak off the first-dealt
		// card, even when the pair sits elsewhere in the hand
		h.tiebreak = h.hand.FirstCard().Rank
	default:
		h.category = HighCard
		h.tiebreak = h.sorted[2]
	}
}

func (h *HandAnalyzer) isTrail() bool {
	return h.hand[0].Rank == h.hand[1].Rank && h.hand[1].Rank == h.hand[2].Rank
}

func (h *HandAnalyzer) isSequence() bool {
	return h.sorted[0]+1 == h.sorted[1] && h.sorted[1]+1 == h.sorted[2]
}

func (h *HandAnalyzer) isPair() bool {
	return h.hand[0].Rank == h.hand[1].Rank ||
		h.hand[1].Rank == h.hand[2].Rank ||
		h.hand[0].Rank == h.hand[2].Rank
}

// Category returns the category of the hand
func (h *HandAnalyzer) Category() HandCategory {
	return h.category
}

// Tiebreak returns the category-specific discriminator value
func (h *HandAnalyzer) Tiebreak() int {
	return h.tiebreak
}

// HighValue returns the highest rank in the hand
func (h *HandAnalyzer) HighValue() int {
	return h.sorted[2]
}

// Hand returns a copy of the analyzed hand in deal order
func (h *HandAnalyzer) Hand() deck.Hand {
	return h.hand.Clone()
}
