package bot

import (
	"tarneeb/internal/domain"
)

// Agent binds a bot identity to a playing strategy at a seat.
type Agent struct {
	ID       string
	Name     string
	Seat     domain.Seat
	Strategy Brain
}

// Bid asks the agent's strategy for a bid amount, or domain.PassBid.
func (a *Agent) Bid(g *domain.Game) (int, error) {
	return a.Strategy.Bid(g, a.Seat)
}

// ChooseTrump asks the agent's strategy for the trump suit.
func (a *Agent) ChooseTrump(g *domain.Game) (domain.Suit, error) {
	return a.Strategy.ChooseTrump(g, a.Seat)
}

// PlayCard asks the agent's strategy for the card to play.
func (a *Agent) PlayCard(g *domain.Game) (domain.Card, error) {
	return a.Strategy.PlayCard(g, a.Seat)
}
