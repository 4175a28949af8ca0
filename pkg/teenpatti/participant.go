package teenpatti

import "teenpatti-server/pkg/deck"

// Participant is an individual player in the game
type Participant struct {
	// ID is the 1-based player number
	ID int

	hand     deck.Hand
	analysis *HandAnalyzer
}

func newParticipant(id int) *Participant {
	return &Participant{
		ID:   id,
		hand: make(deck.Hand, 0, HandSize),
	}
}

func (p *Participant) addCard(card *deck.Card) {
	p.hand.AddCard(card)
}

// analyze classifies the hand; called once after the deal completes
func (p *Participant) analyze() error {
	analysis, err := NewHandAnalyzer(p.hand)
	if err != nil {
		return err
	}

	p.analysis = analysis
	return nil
}

// Hand returns a shallow copy of the participant's hand
func (p *Participant) Hand() deck.Hand {
	return p.hand.Clone()
}

// Analysis returns the classified hand, or nil before the deal
func (p *Participant) Analysis() *HandAnalyzer {
	return p.analysis
}
