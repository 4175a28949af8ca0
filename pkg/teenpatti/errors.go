package teenpatti

import (
	"errors"
	"fmt"
)

// ErrHandSize is an error when a hand does not contain exactly three cards
var ErrHandSize = errors.New("a hand must contain exactly three cards")

// ErrAlreadyDealt is an error when Deal() is called twice
var ErrAlreadyDealt = errors.New("cards have already been dealt")

// ErrNotDealt is an error when the game is evaluated before the deal
var ErrNotDealt = errors.New("cards have not been dealt")

// ErrNotEvaluated is an error when winners are requested before Evaluate()
var ErrNotEvaluated = errors.New("the game has not been evaluated")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected 1–%d players, got %d", MaxPlayers, int(p))
}
