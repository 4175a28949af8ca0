package teenpatti

// Options are options for creating a new game
type Options struct {
	// Players is the number of hands to deal. Default: 4
	Players int

	// Seed makes the shuffle deterministic when non-zero.
	// Leave it at 0 for a crypto-backed shuffle.
	Seed int64
}

// DefaultOptions returns the default options for a game
func DefaultOptions() Options {
	return Options{
		Players: 4,
	}
}
