package domain

import "testing"

// tricksWonBy builds a completed-trick list with the given number of wins
// for team A; the rest go to team B. Play contents are irrelevant to scoring.
func tricksWonBy(teamA int) []Trick {
	tricks := make([]Trick, 0, TricksPerRound)
	for i := 0; i < teamA; i++ {
		tricks = append(tricks, Trick{Winner: 1})
	}
	for i := teamA; i < TricksPerRound; i++ {
		tricks = append(tricks, Trick{Winner: 2})
	}
	return tricks
}

func TestScoreRound(t *testing.T) {
	tests := []struct {
		name   string
		bid    Bid
		teamA  int
		carry  Scores
		want   Scores
	}{
		{
			name:  "MadeBidBothTeamsScoreTricks",
			bid:   Bid{Seat: 1, Amount: 7},
			teamA: 8,
			want:  Scores{TeamA: 8, TeamB: 5},
		},
		{
			name:  "ExactBidIsMade",
			bid:   Bid{Seat: 3, Amount: 9},
			teamA: 9,
			want:  Scores{TeamA: 9, TeamB: 4},
		},
		{
			name:  "FailedBidCostsFullAmount",
			bid:   Bid{Seat: 1, Amount: 9},
			teamA: 7,
			want:  Scores{TeamA: -9, TeamB: 6},
		},
		{
			name:  "FailedBidByTeamB",
			bid:   Bid{Seat: 2, Amount: 10},
			teamA: 5,
			want:  Scores{TeamA: 5, TeamB: -10},
		},
		{
			name:  "CarryAccumulates",
			bid:   Bid{Seat: 1, Amount: 7},
			teamA: 6,
			carry: Scores{TeamA: 12, TeamB: 3},
			want:  Scores{TeamA: 5, TeamB: 10},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			got := ScoreRound(tricksWonBy(test.teamA), test.bid, test.carry)
			if got != test.want {
				t.Fatalf("ScoreRound() = %+v, want %+v", got, test.want)
			}
		})
	}
}

func TestTrickCounts(t *testing.T) {
	tricks := []Trick{{Winner: 1}, {Winner: 3}, {Winner: 2}, {Winner: 4}, {Winner: 1}}
	teamA, teamB := TrickCounts(tricks)
	if teamA != 3 || teamB != 2 {
		t.Fatalf("TrickCounts() = %d/%d, want 3/2", teamA, teamB)
	}
}

func TestTeamOf(t *testing.T) {
	for _, seat := range []Seat{1, 3} {
		if TeamOf(seat) != TeamA {
			t.Fatalf("seat %d should be team A", seat)
		}
	}
	for _, seat := range []Seat{2, 4} {
		if TeamOf(seat) != TeamB {
			t.Fatalf("seat %d should be team B", seat)
		}
	}
	if !SameTeam(1, 3) || SameTeam(1, 2) {
		t.Fatal("SameTeam partner logic broken")
	}
}
