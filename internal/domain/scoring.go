package domain

// TrickCounts tallies completed tricks per team.
func TrickCounts(tricks []Trick) (teamA, teamB int) {
	for _, t := range tricks {
		if TeamOf(t.Winner) == TeamA {
			teamA++
		} else {
			teamB++
		}
	}
	return teamA, teamB
}

// ScoreRound applies Tarneeb's round scoring to the carried totals. A made
// bid scores both teams their trick counts. A failed bid costs the bidding
// team the full bid amount (not the shortfall) while the defenders still
// score their tricks.
func ScoreRound(tricks []Trick, bid Bid, carry Scores) Scores {
	teamA, teamB := TrickCounts(tricks)
	out := carry

	switch TeamOf(bid.Seat) {
	case TeamA:
		if teamA >= bid.Amount {
			out.TeamA += teamA
			out.TeamB += teamB
		} else {
			out.TeamA -= bid.Amount
			out.TeamB += teamB
		}
	case TeamB:
		if teamB >= bid.Amount {
			out.TeamB += teamB
			out.TeamA += teamA
		} else {
			out.TeamB -= bid.Amount
			out.TeamA += teamA
		}
	}
	return out
}
