package domain

// Phase is the lifecycle stage of a round. Transitions are one-directional:
// bidding → trump-selection → playing → finished.
type Phase string

const (
	PhaseBidding        Phase = "bidding"
	PhaseTrumpSelection Phase = "trump-selection"
	PhasePlaying        Phase = "playing"
	PhaseFinished       Phase = "finished"
)

// Bid is the standing bid. A zero Amount means no bid has been placed.
type Bid struct {
	Seat   Seat
	Amount int
}

// Play is one card laid into a trick by a seat.
type Play struct {
	Seat Seat
	Card Card
}

// Trick is a completed set of four plays and the seat that won it.
type Trick struct {
	Plays  []Play
	Winner Seat
}

// Scores holds the running team totals.
type Scores struct {
	TeamA int
	TeamB int
}

// Round is the authoritative state of one round. Transition functions take a
// Round by value and return the successor; they never mutate their input.
type Round struct {
	Phase           Phase
	CurrentSeat     Seat
	Bid             Bid
	Passed          []Seat
	Trump           Suit
	CurrentTrick    []Play
	CompletedTricks []Trick
	Scores          Scores
}

// Game bundles a round with the four hands. Hands[i] belongs to seat i+1 and
// is visible only to that seat.
type Game struct {
	Round Round
	Hands [4][]Card
}

// NewGame deals a shuffled deck into a fresh round in the bidding phase with
// seat 1 to act. The carried scores come from previous rounds of the session.
func NewGame(deck []Card, carry Scores) Game {
	return Game{
		Round: Round{
			Phase:       PhaseBidding,
			CurrentSeat: 1,
			Trump:       SuitNone,
			Scores:      carry,
		},
		Hands: Deal(deck),
	}
}

// HandOf returns the hand for the given seat, or nil for an invalid seat.
func (g Game) HandOf(seat Seat) []Card {
	if seat < 1 || seat > 4 {
		return nil
	}
	return g.Hands[seat-1]
}

// TricksCompleted returns the number of resolved tricks this round.
func (g Game) TricksCompleted() int {
	return len(g.Round.CompletedTricks)
}

// clone deep-copies the round so transitions can build the successor without
// touching the input's backing arrays.
func (r Round) clone() Round {
	out := r
	out.Passed = append([]Seat(nil), r.Passed...)
	out.CurrentTrick = append([]Play(nil), r.CurrentTrick...)
	out.CompletedTricks = make([]Trick, len(r.CompletedTricks))
	for i, t := range r.CompletedTricks {
		out.CompletedTricks[i] = Trick{
			Plays:  append([]Play(nil), t.Plays...),
			Winner: t.Winner,
		}
	}
	return out
}

func (g Game) clone() Game {
	out := Game{Round: g.Round.clone()}
	for i := range g.Hands {
		out.Hands[i] = append([]Card(nil), g.Hands[i]...)
	}
	return out
}

func (r Round) hasPassed(seat Seat) bool {
	for _, s := range r.Passed {
		if s == seat {
			return true
		}
	}
	return false
}
