package app

import (
	"errors"
	"math/rand"
	"time"

	"tarneeb/internal/domain"
)

// Service contains Tarneeb use-cases operating on domain state. All mutation
// goes through the domain transition functions; the service's job is to feed
// them, handle the redeal edge case, and turn outcomes into events.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

// StartRound deals a fresh round carrying forward the session scores. It
// returns the new game plus a targeted hand event per seat and a broadcast
// round-started event.
func (s *Service) StartRound(carry domain.Scores) (*domain.Game, []Event) {
	game := s.deal(carry)
	return &game, dealEvents(game)
}

// PlaceBid applies a bid or pass for the seat. If all four seats pass with
// no bid on the table, the round has no continuation: the service redeals in
// place and emits a redeal event followed by the fresh deal's events.
func (s *Service) PlaceBid(game *domain.Game, seat domain.Seat, amount int) ([]Event, error) {
	next, err := domain.PlaceBid(*game, seat, amount)
	if errors.Is(err, domain.ErrAllPassed) {
		fresh := s.deal(game.Round.Scores)
		*game = fresh
		events := []Event{{Kind: EventRedeal}}
		return append(events, dealEvents(fresh)...), nil
	}
	if err != nil {
		return nil, err
	}
	*game = next

	return []Event{{
		Kind: EventBidPlaced,
		Payload: BidPlacedPayload{
			Seat:     seat,
			Amount:   amount,
			Bid:      next.Round.Bid,
			Phase:    next.Round.Phase,
			NextSeat: next.Round.CurrentSeat,
		},
	}}, nil
}

// ChooseTrump applies the winning bidder's trump selection.
func (s *Service) ChooseTrump(game *domain.Game, seat domain.Seat, trump domain.Suit) ([]Event, error) {
	next, err := domain.ChooseTrump(*game, seat, trump)
	if err != nil {
		return nil, err
	}
	*game = next

	return []Event{{
		Kind: EventTrumpChosen,
		Payload: TrumpChosenPayload{
			Seat:     seat,
			Trump:    trump,
			LeadSeat: next.Round.CurrentSeat,
		},
	}}, nil
}

// PlayCard applies one play. A completed trick adds a trick-won event; the
// thirteenth trick also ends the round with a round-ended event carrying the
// final scores.
func (s *Service) PlayCard(game *domain.Game, seat domain.Seat, card domain.Card) ([]Event, error) {
	before := game.TricksCompleted()
	next, err := domain.PlayCard(*game, seat, card)
	if err != nil {
		return nil, err
	}
	*game = next

	events := []Event{{
		Kind: EventCardPlayed,
		Payload: CardPlayedPayload{
			Seat:     seat,
			Card:     card,
			NextSeat: next.Round.CurrentSeat,
		},
	}}

	if next.TricksCompleted() > before {
		trick := next.Round.CompletedTricks[next.TricksCompleted()-1]
		events = append(events, Event{
			Kind: EventTrickWon,
			Payload: TrickWonPayload{
				Winner:      trick.Winner,
				TrickNumber: next.TricksCompleted(),
			},
		})
	}

	if next.Round.Phase == domain.PhaseFinished {
		teamA, teamB := domain.TrickCounts(next.Round.CompletedTricks)
		bid := next.Round.Bid
		made := teamA >= bid.Amount
		if domain.TeamOf(bid.Seat) == domain.TeamB {
			made = teamB >= bid.Amount
		}
		events = append(events, Event{
			Kind: EventRoundEnded,
			Payload: RoundEndedPayload{
				Bid:     bid,
				BidMade: made,
				TricksA: teamA,
				TricksB: teamB,
				Scores:  next.Round.Scores,
			},
		})
	}

	return events, nil
}

func (s *Service) deal(carry domain.Scores) domain.Game {
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	return domain.NewGame(deck, carry)
}

func dealEvents(game domain.Game) []Event {
	events := make([]Event, 0, 5)
	for seat := domain.Seat(1); seat <= 4; seat++ {
		events = append(events, Event{
			Kind: EventHandDealt,
			Payload: HandDealtPayload{
				Seat: seat,
				Hand: game.HandOf(seat),
			},
			Recipients: []domain.Seat{seat},
		})
	}
	events = append(events, Event{
		Kind: EventRoundStarted,
		Payload: RoundStartedPayload{
			Phase:     game.Round.Phase,
			FirstSeat: game.Round.CurrentSeat,
		},
	})
	return events
}
