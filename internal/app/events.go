package app

import "tarneeb/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventHandDealt    EventKind = "hand_dealt"
	EventRoundStarted EventKind = "round_started"
	EventBidPlaced    EventKind = "bid_placed"
	EventRedeal       EventKind = "redeal"
	EventTrumpChosen  EventKind = "trump_chosen"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventRoundEnded   EventKind = "round_ended"
)

// Event is a domain/app event with optional targeted recipients. The app
// layer addresses seats; the hosting port maps seats to connected users.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Seat // empty means broadcast
}

type HandDealtPayload struct {
	Seat domain.Seat
	Hand []domain.Card
}

type RoundStartedPayload struct {
	Phase     domain.Phase
	FirstSeat domain.Seat
}

type BidPlacedPayload struct {
	Seat     domain.Seat
	Amount   int // domain.PassBid for a pass
	Bid      domain.Bid
	Phase    domain.Phase
	NextSeat domain.Seat
}

type TrumpChosenPayload struct {
	Seat     domain.Seat
	Trump    domain.Suit
	LeadSeat domain.Seat
}

type CardPlayedPayload struct {
	Seat     domain.Seat
	Card     domain.Card
	NextSeat domain.Seat
}

type TrickWonPayload struct {
	Winner      domain.Seat
	TrickNumber int // 1-based
}

type RoundEndedPayload struct {
	Bid     domain.Bid
	BidMade bool
	TricksA int
	TricksB int
	Scores  domain.Scores
}
