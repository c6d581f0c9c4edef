package domain

// WinningPlay returns the play currently winning the (possibly partial)
// trick under the given trump. The first play sets the lead suit. Priority:
// any trump beats any non-trump; among trumps, higher rank wins; among
// non-trumps only lead-suit cards are eligible, higher rank winning.
func WinningPlay(plays []Play, trump Suit) (Play, bool) {
	if len(plays) == 0 {
		return Play{}, false
	}
	lead := plays[0].Card.Suit
	winner := plays[0]
	for _, p := range plays[1:] {
		if beats(p.Card, winner.Card, lead, trump) {
			winner = p
		}
	}
	return winner, true
}

// ResolveTrick returns the winning seat of a complete 4-play trick. The
// deck invariant makes ties impossible, so exactly one seat wins.
func ResolveTrick(plays []Play, trump Suit) Seat {
	w, _ := WinningPlay(plays, trump)
	return w.Seat
}

// CanBeat reports whether playing c would take the trick from the current
// winning card.
func CanBeat(c, winning Card, trump Suit) bool {
	if c.Suit == trump && winning.Suit != trump {
		return true
	}
	if c.Suit == trump && winning.Suit == trump {
		return c.Rank > winning.Rank
	}
	if c.Suit == winning.Suit && c.Suit != trump {
		return c.Rank > winning.Rank
	}
	return false
}

func beats(c, winning Card, lead, trump Suit) bool {
	switch {
	case c.Suit == trump && winning.Suit != trump:
		return true
	case c.Suit == trump && winning.Suit == trump:
		return c.Rank > winning.Rank
	case c.Suit == lead && winning.Suit == lead && c.Suit != trump && winning.Suit != trump:
		return c.Rank > winning.Rank
	default:
		return false
	}
}
