package bot

import (
	"tarneeb/internal/domain"
)

// leadContext is the read-only state a leading rule decides from.
type leadContext struct {
	hand      []domain.Card
	trump     domain.Suit
	aceFallen [4]bool
}

func newLeadContext(g *domain.Game, seat domain.Seat) leadContext {
	ctx := leadContext{
		hand:  g.HandOf(seat),
		trump: g.Round.Trump,
	}
	for _, trick := range g.Round.CompletedTricks {
		for _, p := range trick.Plays {
			if p.Card.Rank == domain.RankAce {
				ctx.aceFallen[p.Card.Suit] = true
			}
		}
	}
	return ctx
}

// leadRule is one step of the leading pipeline. Rules run in order; the
// first to produce a card decides the play.
type leadRule struct {
	name string
	pick func(ctx leadContext) (domain.Card, bool)
}

var leadRules = []leadRule{
	{"LeadNonTrumpAce", leadNonTrumpAce},
	{"LeadSafeKing", leadSafeKing},
	{"LeadMiddleOfLongestSuit", leadMiddleOfLongestSuit},
	{"LeadLowestNonTrump", leadLowestNonTrump},
	{"LeadAnyCard", leadAnyCard},
}

// leadNonTrumpAce cashes a sure winner outside trump.
func leadNonTrumpAce(ctx leadContext) (domain.Card, bool) {
	for _, c := range ctx.hand {
		if c.Rank == domain.RankAce && c.Suit != ctx.trump {
			return c, true
		}
	}
	return domain.Card{}, false
}

// leadSafeKing leads a non-trump king whose ace already fell in an earlier
// trick, making the king the top remaining card of its suit.
func leadSafeKing(ctx leadContext) (domain.Card, bool) {
	for _, c := range ctx.hand {
		if c.Rank == domain.RankKing && c.Suit != ctx.trump && ctx.aceFallen[c.Suit] {
			return c, true
		}
	}
	return domain.Card{}, false
}

// leadMiddleOfLongestSuit leads the middle card of the longest non-trump
// suit, probing the suit without spending its top cards.
func leadMiddleOfLongestSuit(ctx leadContext) (domain.Card, bool) {
	var longest []domain.Card
	for _, suit := range domain.Suits {
		if suit == ctx.trump {
			continue
		}
		if cards := cardsOfSuit(ctx.hand, suit); len(cards) > len(longest) {
			longest = cards
		}
	}
	if len(longest) == 0 {
		return domain.Card{}, false
	}
	sorted := sortedByRank(longest)
	return sorted[len(sorted)/2], true
}

func leadLowestNonTrump(ctx leadContext) (domain.Card, bool) {
	var nonTrump []domain.Card
	for _, c := range ctx.hand {
		if c.Suit != ctx.trump {
			nonTrump = append(nonTrump, c)
		}
	}
	if len(nonTrump) == 0 {
		return domain.Card{}, false
	}
	return lowestCard(nonTrump), true
}

func leadAnyCard(ctx leadContext) (domain.Card, bool) {
	if len(ctx.hand) == 0 {
		return domain.Card{}, false
	}
	return lowestCard(ctx.hand), true
}
