package bot

import (
	"tarneeb/internal/domain"
)

// Brain is the interface all bot strategies implement. Brains read the game
// state but never mutate it; the returned decision is applied by the caller
// through the normal transition path.
type Brain interface {
	// Bid returns the amount to bid, or domain.PassBid to pass.
	Bid(g *domain.Game, seat domain.Seat) (int, error)
	// ChooseTrump picks the trump suit after winning the auction.
	ChooseTrump(g *domain.Game, seat domain.Seat) (domain.Suit, error)
	// PlayCard picks a legal card for the seat's turn.
	PlayCard(g *domain.Game, seat domain.Seat) (domain.Card, error)
}
