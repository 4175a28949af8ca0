package teenpatti

// PlayerResult is one player's entry in a game result
type PlayerResult struct {
	Player   int          `json:"player"`
	Hand     string       `json:"hand"`
	HandType HandCategory `json:"hand_type"`
}

// Result contains the results from a completed game
type Result struct {
	ID      string         `json:"id"`
	Players []PlayerResult `json:"players"`
	Winners []PlayerResult `json:"winners"`
}

func newPlayerResult(p *Participant) PlayerResult {
	return PlayerResult{
		Player:   p.ID,
		Hand:     p.hand.String(),
		HandType: p.analysis.Category(),
	}
}
