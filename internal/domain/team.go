package domain

// Seat identifies one of the four positions, 1..4. SeatNone marks states
// where no actor is expected.
type Seat int

const SeatNone Seat = 0

// Team identifies one of the two fixed partnerships.
type Team int

const (
	TeamA Team = iota // seats 1 and 3
	TeamB             // seats 2 and 4
)

// TeamOf maps a seat to its partnership. Seats 1/3 are TeamA, 2/4 TeamB,
// fixed for the lifetime of a game.
func TeamOf(s Seat) Team {
	if s == 1 || s == 3 {
		return TeamA
	}
	return TeamB
}

// SameTeam reports whether the two seats are partners.
func SameTeam(a, b Seat) bool {
	return TeamOf(a) == TeamOf(b)
}

// NextSeat returns the cyclically next seat (1→2→3→4→1).
func NextSeat(s Seat) Seat {
	return s%4 + 1
}
