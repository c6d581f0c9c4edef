package internal

import (
	"tarneeb/internal/domain"
)

// uncertaintyDiscount shaves the raw per-suit trick count before flooring,
// since entries like a bare king win less often than the count assumes.
const uncertaintyDiscount = 0.85

// EstimateTricks returns a heuristic count of tricks the hand can win with
// the given candidate trump, clamped to [0, 13].
//
// Per suit: a long trump holding (5+) counts its A/K/Q honors plus one trick
// per card beyond five; a medium trump holding (3-4) counts A/K; anything
// shorter counts only aces. Off-trump suits count aces, a single king when
// backed (always in 6+ card suits, only alongside an ace in 4-5 card suits),
// and length tricks from the eighth card of a long suit.
func EstimateTricks(hand []domain.Card, trump domain.Suit) int {
	var bySuit [4][]domain.Card
	for _, c := range hand {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	total := 0
	for _, suit := range domain.Suits {
		cards := bySuit[suit]
		if len(cards) == 0 {
			continue
		}

		aces, kings, topHonors := 0, 0, 0
		for _, c := range cards {
			switch c.Rank {
			case domain.RankAce:
				aces++
				topHonors++
			case domain.RankKing:
				kings++
				topHonors++
			case domain.RankQueen:
				topHonors++
			}
		}

		if suit == trump {
			switch {
			case len(cards) >= 5:
				total += min(3, topHonors) + len(cards) - 5
			case len(cards) >= 3:
				total += min(2, aces+kings)
			default:
				total += aces
			}
			continue
		}

		switch {
		case len(cards) >= 6:
			total += aces + min(kings, 1) + max(0, len(cards)-7)
		case len(cards) >= 4:
			total += aces
			if aces > 0 {
				total += min(kings, 1)
			}
		default:
			total += aces
		}
	}

	est := int(float64(total) * uncertaintyDiscount)
	return min(13, max(0, est))
}

// BestTrump evaluates every suit as candidate trump and returns the suit
// with the strictly highest estimate along with that estimate. Suits are
// tried in the engine's fixed iteration order, so an earlier suit keeps a
// tie. When no suit beats the zero baseline the fallback is returned.
func BestTrump(hand []domain.Card, fallback domain.Suit) (domain.Suit, int) {
	bestSuit, bestTricks := fallback, 0
	for _, suit := range domain.Suits {
		if tricks := EstimateTricks(hand, suit); tricks > bestTricks {
			bestSuit, bestTricks = suit, tricks
		}
	}
	return bestSuit, bestTricks
}
