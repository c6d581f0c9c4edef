package bot

// Tuning groups the knobs of the heuristic brain.
type Tuning struct {
	// MinConfidenceTricks is the estimated trick count required before the
	// bot will bid at all.
	MinConfidenceTricks int
	// EarlyTrickMaxPlays is the largest number of cards already in the
	// trick for the bot to still contest it when following suit.
	EarlyTrickMaxPlays int
}

// DefaultTuning trades a few missed auctions for rarely going set.
var DefaultTuning = Tuning{
	MinConfidenceTricks: 5,
	EarlyTrickMaxPlays:  2,
}
