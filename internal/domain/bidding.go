package domain

import "errors"

// Bidding bounds: a bid is a claim to win at least Amount of the 13 tricks.
const (
	MinBid = 7
	MaxBid = 13
)

// PassBid is the amount submitted to pass instead of bidding.
const PassBid = 0

var (
	ErrWrongPhase  = errors.New("action not valid in current phase")
	ErrNotYourTurn = errors.New("not this seat's turn")

	// ErrAllPassed signals that all four seats passed without a bid. The
	// round has no defined continuation; the caller is expected to redeal.
	ErrAllPassed = errors.New("all seats passed without a bid")
)

// PlaceBid applies one bidding action by the given seat: amount 0 passes,
// MinBid..MaxBid above the standing bid takes over the auction. A stale or
// out-of-range amount is not an error: the turn simply advances with
// nothing recorded, so a racing client cannot corrupt the auction.
//
// Bidding concludes when three seats have passed against a standing bid, or
// when the standing bid reaches MaxBid; the winner then moves to trump
// selection and will lead the first trick.
func PlaceBid(g Game, seat Seat, amount int) (Game, error) {
	if g.Round.Phase != PhaseBidding {
		return Game{}, ErrWrongPhase
	}
	if seat != g.Round.CurrentSeat {
		return Game{}, ErrNotYourTurn
	}

	next := g.clone()
	r := &next.Round

	switch {
	case amount == PassBid:
		if !r.hasPassed(seat) {
			r.Passed = append(r.Passed, seat)
		}
		if r.Bid.Amount == 0 && len(r.Passed) == 4 {
			return Game{}, ErrAllPassed
		}
	case amount > r.Bid.Amount && amount >= MinBid && amount <= MaxBid:
		r.Bid = Bid{Seat: seat, Amount: amount}
		r.Passed = nil
	default:
		// Stale bid: advance the turn, record nothing.
	}

	if r.Bid.Amount > 0 && (len(r.Passed) >= 3 || r.Bid.Amount == MaxBid) {
		r.Phase = PhaseTrumpSelection
		r.CurrentSeat = r.Bid.Seat
		return next, nil
	}

	r.CurrentSeat = NextSeat(r.CurrentSeat)
	return next, nil
}
