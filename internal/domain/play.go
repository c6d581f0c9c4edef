package domain

import "errors"

var (
	ErrInvalidSuit     = errors.New("invalid trump suit")
	ErrTrumpAlreadySet = errors.New("trump already selected")
	ErrCardNotInHand   = errors.New("card not in hand")
	ErrMustFollowSuit  = errors.New("must follow the lead suit")
)

// TricksPerRound is the number of tricks in a full round.
const TricksPerRound = 13

// ChooseTrump records the winning bidder's trump choice and opens play with
// the bidder on lead.
func ChooseTrump(g Game, seat Seat, trump Suit) (Game, error) {
	if g.Round.Phase != PhaseTrumpSelection {
		return Game{}, ErrWrongPhase
	}
	if seat != g.Round.CurrentSeat {
		return Game{}, ErrNotYourTurn
	}
	if !trump.Valid() {
		return Game{}, ErrInvalidSuit
	}
	if g.Round.Trump != SuitNone {
		return Game{}, ErrTrumpAlreadySet
	}

	next := g.clone()
	next.Round.Trump = trump
	next.Round.Phase = PhasePlaying
	next.Round.CurrentSeat = g.Round.Bid.Seat
	return next, nil
}

// PlayCard applies one play by the acting seat. The card must be in the
// seat's hand and must follow the lead suit when the hand holds it. A fourth
// play resolves the trick synchronously: the winner is recorded, leads the
// next trick, and after the thirteenth trick the round is scored and
// finished before the new state is returned.
func PlayCard(g Game, seat Seat, card Card) (Game, error) {
	if g.Round.Phase != PhasePlaying {
		return Game{}, ErrWrongPhase
	}
	if seat != g.Round.CurrentSeat {
		return Game{}, ErrNotYourTurn
	}
	hand := g.HandOf(seat)
	if !HandContains(hand, card) {
		return Game{}, ErrCardNotInHand
	}
	if len(g.Round.CurrentTrick) > 0 {
		lead := g.Round.CurrentTrick[0].Card.Suit
		if card.Suit != lead && HandHasSuit(hand, lead) {
			return Game{}, ErrMustFollowSuit
		}
	}

	next := g.clone()
	next.Hands[seat-1] = RemoveCard(next.Hands[seat-1], card)
	next.Round.CurrentTrick = append(next.Round.CurrentTrick, Play{Seat: seat, Card: card})

	if len(next.Round.CurrentTrick) < 4 {
		next.Round.CurrentSeat = NextSeat(seat)
		return next, nil
	}

	winner := ResolveTrick(next.Round.CurrentTrick, next.Round.Trump)
	next.Round.CompletedTricks = append(next.Round.CompletedTricks, Trick{
		Plays:  next.Round.CurrentTrick,
		Winner: winner,
	})
	next.Round.CurrentTrick = nil
	next.Round.CurrentSeat = winner

	if len(next.Round.CompletedTricks) == TricksPerRound {
		next.Round.Phase = PhaseFinished
		next.Round.CurrentSeat = SeatNone
		next.Round.Scores = ScoreRound(next.Round.CompletedTricks, next.Round.Bid, next.Round.Scores)
	}
	return next, nil
}
