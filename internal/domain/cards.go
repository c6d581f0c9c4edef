package domain

import (
	"math/rand"
	"sort"
)

// Suit identifies one of the four card suits. The constant order is the
// engine's fixed iteration order; AI tie-breaks depend on it.
type Suit int

const (
	SuitNone Suit = iota - 1
	SuitHearts
	SuitDiamonds
	SuitClubs
	SuitSpades
)

// Suits lists all suits in engine iteration order.
var Suits = [4]Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "hearts"
	case SuitDiamonds:
		return "diamonds"
	case SuitClubs:
		return "clubs"
	case SuitSpades:
		return "spades"
	default:
		return "none"
	}
}

// Valid reports whether s is one of the four playable suits.
func (s Suit) Valid() bool {
	return s >= SuitHearts && s <= SuitSpades
}

// Rank is the card rank with its comparison value built in: 2..10 for the
// number cards, then J=11, Q=12, K=13, A=14.
type Rank int

const (
	RankTwo   Rank = 2
	RankThree Rank = 3
	RankFour  Rank = 4
	RankFive  Rank = 5
	RankSix   Rank = 6
	RankSeven Rank = 7
	RankEight Rank = 8
	RankNine  Rank = 9
	RankTen   Rank = 10
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
	RankAce   Rank = 14
)

func (r Rank) String() string {
	switch r {
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	case RankAce:
		return "A"
	default:
		return map[Rank]string{
			RankTwo: "2", RankThree: "3", RankFour: "4", RankFive: "5",
			RankSix: "6", RankSeven: "7", RankEight: "8", RankNine: "9",
			RankTen: "10",
		}[r]
	}
}

// IsHonor reports whether the rank is J, Q, K or A.
func (r Rank) IsHonor() bool {
	return r >= RankJack
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}

// NewDeck returns all 52 cards in deterministic order: suits in engine
// iteration order, ranks ascending within each suit.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, s := range Suits {
		for r := RankTwo; r <= RankAce; r++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal splits a 52-card deck into 4 hands of 13 by round-robin distribution
// and sorts each hand for display. Index i holds the hand for seat i+1.
func Deal(deck []Card) [4][]Card {
	var hands [4][]Card
	for i := range hands {
		hands[i] = make([]Card, 0, 13)
	}
	for i, c := range deck {
		hands[i%4] = append(hands[i%4], c)
	}
	for i := range hands {
		SortHand(hands[i])
	}
	return hands
}

// displayOrder groups suits for human-readable hands. Cosmetic only; play
// legality never depends on hand order.
var displayOrder = [4]int{
	SuitHearts:   1,
	SuitDiamonds: 2,
	SuitClubs:    3,
	SuitSpades:   0,
}

// SortHand orders a hand by display suit priority, then ascending rank.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Suit != cards[j].Suit {
			return displayOrder[cards[i].Suit] < displayOrder[cards[j].Suit]
		}
		return cards[i].Rank < cards[j].Rank
	})
}

// HandContains reports whether the hand holds the exact card.
func HandContains(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// HandHasSuit reports whether the hand holds at least one card of the suit.
func HandHasSuit(hand []Card, s Suit) bool {
	for _, h := range hand {
		if h.Suit == s {
			return true
		}
	}
	return false
}

// RemoveCard returns a copy of the hand without the first occurrence of c.
func RemoveCard(hand []Card, c Card) []Card {
	out := make([]Card, 0, len(hand))
	removed := false
	for _, h := range hand {
		if !removed && h == c {
			removed = true
			continue
		}
		out = append(out, h)
	}
	return out
}
