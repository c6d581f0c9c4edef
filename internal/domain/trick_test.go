package domain

import "testing"

func TestResolveTrickHighestTrumpWins(t *testing.T) {
	// Lead hearts, trump spades: the ace of spades beats the lower trump and
	// every heart.
	plays := []Play{
		{Seat: 1, Card: Card{SuitHearts, RankTen}},
		{Seat: 2, Card: Card{SuitSpades, RankAce}},
		{Seat: 3, Card: Card{SuitHearts, RankKing}},
		{Seat: 4, Card: Card{SuitSpades, RankTwo}},
	}
	if winner := ResolveTrick(plays, SuitSpades); winner != 2 {
		t.Fatalf("winner = %d, want 2", winner)
	}
}

func TestResolveTrick(t *testing.T) {
	tests := []struct {
		name  string
		plays []Play
		trump Suit
		want  Seat
	}{
		{
			name: "HighestOfLeadSuitNoTrumpPlayed",
			plays: []Play{
				{Seat: 1, Card: Card{SuitClubs, RankNine}},
				{Seat: 2, Card: Card{SuitClubs, RankQueen}},
				{Seat: 3, Card: Card{SuitClubs, RankJack}},
				{Seat: 4, Card: Card{SuitClubs, RankTwo}},
			},
			trump: SuitHearts,
			want:  2,
		},
		{
			name: "OffSuitHighCardCannotWin",
			plays: []Play{
				{Seat: 3, Card: Card{SuitDiamonds, RankFour}},
				{Seat: 4, Card: Card{SuitHearts, RankAce}},
				{Seat: 1, Card: Card{SuitDiamonds, RankSix}},
				{Seat: 2, Card: Card{SuitHearts, RankKing}},
			},
			trump: SuitSpades,
			want:  1,
		},
		{
			name: "LowTrumpBeatsLeadAce",
			plays: []Play{
				{Seat: 2, Card: Card{SuitHearts, RankAce}},
				{Seat: 3, Card: Card{SuitClubs, RankTwo}},
				{Seat: 4, Card: Card{SuitHearts, RankThree}},
				{Seat: 1, Card: Card{SuitHearts, RankFour}},
			},
			trump: SuitClubs,
			want:  3,
		},
		{
			name: "TrumpLedHighestTrumpWins",
			plays: []Play{
				{Seat: 4, Card: Card{SuitSpades, RankNine}},
				{Seat: 1, Card: Card{SuitSpades, RankKing}},
				{Seat: 2, Card: Card{SuitSpades, RankThree}},
				{Seat: 3, Card: Card{SuitSpades, RankAce}},
			},
			trump: SuitSpades,
			want:  3,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := ResolveTrick(test.plays, test.trump)
			if got != test.want {
				t.Fatalf("ResolveTrick() = %d, want %d", got, test.want)
			}
			// Resolution is idempotent.
			if again := ResolveTrick(test.plays, test.trump); again != got {
				t.Fatalf("second resolution = %d, first was %d", again, got)
			}
		})
	}
}

func TestWinningPlayOnPartialTrick(t *testing.T) {
	plays := []Play{
		{Seat: 1, Card: Card{SuitHearts, RankTen}},
		{Seat: 2, Card: Card{SuitHearts, RankQueen}},
	}

	winning, ok := WinningPlay(plays, SuitSpades)
	if !ok {
		t.Fatal("expected a winning play")
	}
	if winning.Seat != 2 {
		t.Fatalf("winning seat = %d, want 2", winning.Seat)
	}

	if _, ok := WinningPlay(nil, SuitSpades); ok {
		t.Fatal("empty trick should have no winning play")
	}
}

func TestCanBeat(t *testing.T) {
	trump := SuitSpades

	tests := []struct {
		name    string
		card    Card
		winning Card
		want    bool
	}{
		{"TrumpOverNonTrump", Card{SuitSpades, RankTwo}, Card{SuitHearts, RankAce}, true},
		{"HigherTrumpOverTrump", Card{SuitSpades, RankKing}, Card{SuitSpades, RankQueen}, true},
		{"LowerTrumpLoses", Card{SuitSpades, RankThree}, Card{SuitSpades, RankJack}, false},
		{"HigherSameSuit", Card{SuitHearts, RankKing}, Card{SuitHearts, RankTen}, true},
		{"OffSuitNeverWins", Card{SuitClubs, RankAce}, Card{SuitHearts, RankTwo}, false},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := CanBeat(test.card, test.winning, trump); got != test.want {
				t.Fatalf("CanBeat(%v, %v) = %t, want %t", test.card, test.winning, got, test.want)
			}
		})
	}
}
