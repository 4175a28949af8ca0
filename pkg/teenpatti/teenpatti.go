package teenpatti

import (
	"sort"

	"teenpatti-server/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HandSize is the number of cards dealt to each player
const HandSize = 3

// MaxPlayers is the most hands a 52-card deck can supply
const MaxPlayers = 52 / HandSize

// State represents where the game is in its lifecycle
type State int

const (
	// StateInitialized is a game with a built deck and no cards dealt
	StateInitialized State = iota
	// StateDealt is a game where every player holds a classified hand
	StateDealt
	// StateEvaluated is a terminal state with the winner set determined
	StateEvaluated
)

// Game is a single three-card game.
// A Game is single-use; concurrent callers must each construct their own.
type Game struct {
	id           string
	options      Options
	deck         *deck.Deck
	participants []*Participant
	winners      []*Participant
	state        State

	logger logrus.FieldLogger
}

// NewGame returns a new game in the initialized state
func NewGame(logger logrus.FieldLogger, options Options) (*Game, error) {
	if options.Players < 1 || options.Players*HandSize > 52 {
		return nil, PlayerCountError(options.Players)
	}

	d := deck.New()
	if options.Seed != 0 {
		d.SetSeed(options.Seed)
	}

	id := uuid.New().String()

	participants := make([]*Participant, options.Players)
	for i := range participants {
		participants[i] = newParticipant(i + 1)
	}

	return &Game{
		id:           id,
		options:      options,
		deck:         d,
		participants: participants,
		state:        StateInitialized,
		logger:       logger.WithField("game", id),
	}, nil
}

// ID returns the unique identifier for the game
func (g *Game) ID() string {
	return g.id
}

// State returns the current game state
func (g *Game) State() State {
	return g.state
}

// Participants returns the players in deal order
func (g *Game) Participants() []*Participant {
	return append([]*Participant{}, g.participants...)
}

// Deal shuffles the deck and deals each player a classified three-card hand
func (g *Game) Deal() error {
	if g.state != StateInitialized {
		return ErrAlreadyDealt
	}

	g.deck.Shuffle()

	if !g.deck.CanDraw(len(g.participants) * HandSize) {
		return deck.ErrEndOfDeck
	}

	for _, p := range g.participants {
		for i := 0; i < HandSize; i++ {
			card, err := g.deck.Draw()
			if err != nil {
				return err
			}

			p.addCard(card)
		}

		if err := p.analyze(); err != nil {
			return err
		}

		g.logger.WithFields(logrus.Fields{
			"player":   p.ID,
			"hand":     p.hand.String(),
			"handType": p.analysis.Category().String(),
		}).Debug("dealt hand")
	}

	g.state = StateDealt
	return nil
}

// Evaluate determines the winner set.
// A strictly stronger hand replaces the set; a hand equal on every
// discriminator joins it.
func (g *Game) Evaluate() error {
	if g.state != StateDealt {
		return ErrNotDealt
	}

	var best *Participant
	var winners []*Participant

	for _, p := range g.participants {
		if best == nil || p.analysis.Beats(best.analysis) {
			best = p
			winners = []*Participant{p}
		} else if CompareHands(p.analysis, best.analysis) == 0 {
			winners = append(winners, p)
		}
	}

	g.winners = winners
	g.state = StateEvaluated

	g.logger.WithFields(logrus.Fields{
		"winners":  len(winners),
		"handType": best.analysis.Category().String(),
	}).Debug("evaluated game")

	return nil
}

// AllWinners returns every player tied for the strongest hand
func (g *Game) AllWinners() ([]*Participant, error) {
	if g.state != StateEvaluated {
		return nil, ErrNotEvaluated
	}

	return append([]*Participant{}, g.winners...), nil
}

// SingleWinner returns "the" winner: the co-winner with the highest card,
// with earlier players winning a perfect tie
func (g *Game) SingleWinner() (*Participant, error) {
	winners, err := g.AllWinners()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(winners, func(i, j int) bool {
		return winners[i].hand.HighValue() > winners[j].hand.HighValue()
	})

	return winners[0], nil
}

// Result assembles the final game result with all hands and the winner set
func (g *Game) Result() (*Result, error) {
	winners, err := g.AllWinners()
	if err != nil {
		return nil, err
	}

	players := make([]PlayerResult, len(g.participants))
	for i, p := range g.participants {
		players[i] = newPlayerResult(p)
	}

	winnerResults := make([]PlayerResult, len(winners))
	for i, p := range winners {
		winnerResults[i] = newPlayerResult(p)
	}

	return &Result{
		ID:      g.id,
		Players: players,
		Winners: winnerResults,
	}, nil
}

// PlayGame runs one complete game and returns its result
func PlayGame(players int) (*Result, error) {
	game, err := NewGame(logrus.StandardLogger(), Options{Players: players})
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	if err := game.Evaluate(); err != nil {
		return nil, err
	}

	return game.Result()
}
