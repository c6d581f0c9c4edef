package bot

import (
	"sort"

	"tarneeb/internal/domain"
)

// followContext is the read-only state a following rule decides from. The
// current winner is computed over the partial trick with the same priority
// used for full resolution.
type followContext struct {
	hand           []domain.Card
	trump          domain.Suit
	leadSuit       domain.Suit
	suitCards      []domain.Card
	winning        domain.Play
	partnerWinning bool
	playsSoFar     int
	trickHasHonor  bool
	tuning         Tuning
}

func newFollowContext(g *domain.Game, seat domain.Seat, tuning Tuning) followContext {
	trick := g.Round.CurrentTrick
	hand := g.HandOf(seat)

	ctx := followContext{
		hand:       hand,
		trump:      g.Round.Trump,
		leadSuit:   trick[0].Card.Suit,
		playsSoFar: len(trick),
		tuning:     tuning,
	}
	ctx.suitCards = cardsOfSuit(hand, ctx.leadSuit)
	if winning, ok := domain.WinningPlay(trick, ctx.trump); ok {
		ctx.winning = winning
		ctx.partnerWinning = domain.SameTeam(winning.Seat, seat)
	}
	for _, p := range trick {
		if p.Card.Rank.IsHonor() {
			ctx.trickHasHonor = true
		}
	}
	return ctx
}

// followRule is one step of the following pipeline, same shape as leadRule.
type followRule struct {
	name string
	pick func(ctx followContext) (domain.Card, bool)
}

// followSuitRules apply when the seat holds the lead suit.
var followSuitRules = []followRule{
	{"DuckUnderPartner", duckUnderPartner},
	{"BeatEarlyTrick", beatEarlyTrick},
	{"FollowLow", followLow},
}

// voidRules apply when the seat is void in the lead suit.
var voidRules = []followRule{
	{"DiscardUnderPartner", discardUnderPartner},
	{"TrumpIn", trumpIn},
	{"DiscardLow", discardLow},
}

// duckUnderPartner keeps the partner's winner intact and saves material.
func duckUnderPartner(ctx followContext) (domain.Card, bool) {
	if !ctx.partnerWinning {
		return domain.Card{}, false
	}
	return lowestCard(ctx.suitCards), true
}

// beatEarlyTrick contests a trick only while it is cheap to do so: at most
// EarlyTrickMaxPlays cards down, with the lowest card that still wins.
func beatEarlyTrick(ctx followContext) (domain.Card, bool) {
	if ctx.playsSoFar > ctx.tuning.EarlyTrickMaxPlays {
		return domain.Card{}, false
	}
	var winners []domain.Card
	for _, c := range ctx.suitCards {
		if domain.CanBeat(c, ctx.winning.Card, ctx.trump) {
			winners = append(winners, c)
		}
	}
	if len(winners) == 0 {
		return domain.Card{}, false
	}
	return lowestCard(winners), true
}

func followLow(ctx followContext) (domain.Card, bool) {
	return lowestCard(ctx.suitCards), true
}

// discardUnderPartner throws the cheapest card when the partner already has
// the trick, preferring non-trump so trumps stay live.
func discardUnderPartner(ctx followContext) (domain.Card, bool) {
	if !ctx.partnerWinning {
		return domain.Card{}, false
	}
	return lowestDiscard(ctx.hand, ctx.trump), true
}

// trumpIn ruffs with the lowest trump that takes the trick, but only when
// the trick is worth taking: it already holds an honor, or it is nearly
// complete so no later opponent can over-trump cheaply.
func trumpIn(ctx followContext) (domain.Card, bool) {
	if !ctx.trickHasHonor && ctx.playsSoFar < 3 {
		return domain.Card{}, false
	}
	var sufficient []domain.Card
	for _, c := range ctx.hand {
		if c.Suit != ctx.trump {
			continue
		}
		if domain.CanBeat(c, ctx.winning.Card, ctx.trump) {
			sufficient = append(sufficient, c)
		}
	}
	if len(sufficient) == 0 {
		return domain.Card{}, false
	}
	return lowestCard(sufficient), true
}

func discardLow(ctx followContext) (domain.Card, bool) {
	return lowestDiscard(ctx.hand, ctx.trump), true
}

func cardsOfSuit(hand []domain.Card, suit domain.Suit) []domain.Card {
	var out []domain.Card
	for _, c := range hand {
		if c.Suit == suit {
			out = append(out, c)
		}
	}
	return out
}

func lowestCard(cards []domain.Card) domain.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if c.Rank < low.Rank {
			low = c
		}
	}
	return low
}

// lowestDiscard prefers the lowest non-trump card, falling back to the
// lowest card overall for a hand holding nothing but trump.
func lowestDiscard(hand []domain.Card, trump domain.Suit) domain.Card {
	var nonTrump []domain.Card
	for _, c := range hand {
		if c.Suit != trump {
			nonTrump = append(nonTrump, c)
		}
	}
	if len(nonTrump) > 0 {
		return lowestCard(nonTrump)
	}
	return lowestCard(hand)
}

func sortedByRank(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool { return out[i].Rank < out[j].Rank })
	return out
}
