package bot

import (
	"errors"

	"tarneeb/internal/bot/internal"
	"tarneeb/internal/domain"
)

var errNoPlayableCard = errors.New("no playable card found")

// HeuristicBot bids from the trick estimator and plays through the
// prioritized rule lists in rules_lead.go and rules_follow.go.
type HeuristicBot struct {
	Tuning Tuning
}

func NewHeuristicBot() *HeuristicBot {
	return &HeuristicBot{Tuning: DefaultTuning}
}

// Bid estimates the best trump's trick count and bids one more than the
// estimate when that beats the standing bid and the estimate clears the
// confidence floor. Otherwise it passes.
func (b *HeuristicBot) Bid(g *domain.Game, seat domain.Seat) (int, error) {
	hand := g.HandOf(seat)
	_, bestTricks := internal.BestTrump(hand, domain.SuitSpades)

	desired := bestTricks + 1
	if desired <= g.Round.Bid.Amount || bestTricks < b.Tuning.MinConfidenceTricks {
		return domain.PassBid, nil
	}
	return min(domain.MaxBid, max(domain.MinBid, desired)), nil
}

// ChooseTrump re-runs the estimator across all suits, defaulting to spades
// when nothing beats the zero baseline.
func (b *HeuristicBot) ChooseTrump(g *domain.Game, seat domain.Seat) (domain.Suit, error) {
	suit, _ := internal.BestTrump(g.HandOf(seat), domain.SuitSpades)
	return suit, nil
}

// PlayCard runs the leading rules on an empty trick and the following rules
// otherwise. The terminal rules always produce a card from a non-empty hand.
func (b *HeuristicBot) PlayCard(g *domain.Game, seat domain.Seat) (domain.Card, error) {
	hand := g.HandOf(seat)
	if len(hand) == 0 {
		return domain.Card{}, errNoPlayableCard
	}

	if len(g.Round.CurrentTrick) == 0 {
		ctx := newLeadContext(g, seat)
		for _, rule := range leadRules {
			if card, ok := rule.pick(ctx); ok {
				return card, nil
			}
		}
		return domain.Card{}, errNoPlayableCard
	}

	ctx := newFollowContext(g, seat, b.Tuning)
	rules := voidRules
	if len(ctx.suitCards) > 0 {
		rules = followSuitRules
	}
	for _, rule := range rules {
		if card, ok := rule.pick(ctx); ok {
			return card, nil
		}
	}
	return domain.Card{}, errNoPlayableCard
}

// BasicBot is the lobby-filler brain: it never bids and always plays the
// lowest legal card.
type BasicBot struct{}

func (b *BasicBot) Bid(g *domain.Game, seat domain.Seat) (int, error) {
	return domain.PassBid, nil
}

func (b *BasicBot) ChooseTrump(g *domain.Game, seat domain.Seat) (domain.Suit, error) {
	suit, _ := internal.BestTrump(g.HandOf(seat), domain.SuitSpades)
	return suit, nil
}

func (b *BasicBot) PlayCard(g *domain.Game, seat domain.Seat) (domain.Card, error) {
	hand := g.HandOf(seat)
	if len(hand) == 0 {
		return domain.Card{}, errNoPlayableCard
	}
	legal := hand
	if len(g.Round.CurrentTrick) > 0 {
		lead := g.Round.CurrentTrick[0].Card.Suit
		if suited := cardsOfSuit(hand, lead); len(suited) > 0 {
			legal = suited
		}
	}
	return lowestCard(legal), nil
}
