package bot

import (
	"testing"

	"tarneeb/internal/domain"
)

// gameWithHand builds a playing-phase game holding the given hand at the
// seat, with the trick and trump configured by the caller.
func gameWithHand(seat domain.Seat, hand []domain.Card) *domain.Game {
	g := &domain.Game{
		Round: domain.Round{
			Phase:       domain.PhasePlaying,
			CurrentSeat: seat,
			Trump:       domain.SuitSpades,
		},
	}
	g.Hands[seat-1] = hand
	return g
}

func TestHeuristicBotBidsAboveEstimate(t *testing.T) {
	// Seven near-certain trump tricks: estimate clears the confidence floor
	// and the bot bids one over it.
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankAce},
		{Suit: domain.SuitSpades, Rank: domain.RankKing},
		{Suit: domain.SuitSpades, Rank: domain.RankQueen},
		{Suit: domain.SuitSpades, Rank: domain.RankJack},
		{Suit: domain.SuitSpades, Rank: domain.RankTen},
		{Suit: domain.SuitSpades, Rank: domain.RankNine},
		{Suit: domain.SuitSpades, Rank: domain.RankEight},
		{Suit: domain.SuitSpades, Rank: domain.RankSeven},
		{Suit: domain.SuitSpades, Rank: domain.RankSix},
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitDiamonds, Rank: domain.RankAce},
		{Suit: domain.SuitClubs, Rank: domain.RankAce},
		{Suit: domain.SuitClubs, Rank: domain.RankTwo},
	}
	g := &domain.Game{Round: domain.Round{Phase: domain.PhaseBidding, CurrentSeat: 1}}
	g.Hands[0] = hand

	b := NewHeuristicBot()
	amount, err := b.Bid(g, 1)
	if err != nil {
		t.Fatalf("Bid: %v", err)
	}
	if amount < domain.MinBid || amount > domain.MaxBid {
		t.Fatalf("bid %d outside [%d, %d]", amount, domain.MinBid, domain.MaxBid)
	}
	if amount == domain.PassBid {
		t.Fatal("strong hand passed")
	}
}

func TestHeuristicBotPassesOnWeakHand(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankTwo},
		{Suit: domain.SuitHearts, Rank: domain.RankThree},
		{Suit: domain.SuitDiamonds, Rank: domain.RankFour},
		{Suit: domain.SuitClubs, Rank: domain.RankFive},
		{Suit: domain.SuitSpades, Rank: domain.RankSix},
	}
	g := &domain.Game{Round: domain.Round{Phase: domain.PhaseBidding, CurrentSeat: 2}}
	g.Hands[1] = hand

	amount, err := NewHeuristicBot().Bid(g, 2)
	if err != nil {
		t.Fatalf("Bid: %v", err)
	}
	if amount != domain.PassBid {
		t.Fatalf("weak hand bid %d, want pass", amount)
	}
}

func TestHeuristicBotPassesWhenOutbid(t *testing.T) {
	hand := suitRun(domain.SuitSpades, domain.RankEight, 6)
	g := &domain.Game{Round: domain.Round{
		Phase:       domain.PhaseBidding,
		CurrentSeat: 1,
		Bid:         domain.Bid{Seat: 3, Amount: domain.MaxBid},
	}}
	g.Hands[0] = hand

	amount, err := NewHeuristicBot().Bid(g, 1)
	if err != nil {
		t.Fatalf("Bid: %v", err)
	}
	if amount != domain.PassBid {
		t.Fatalf("bid %d against a maximum standing bid, want pass", amount)
	}
}

func TestHeuristicBotLeadsNonTrumpAce(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitClubs, Rank: domain.RankFive},
	}
	g := gameWithHand(1, hand)

	card, err := NewHeuristicBot().PlayCard(g, 1)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankAce}) {
		t.Fatalf("lead %v, want the hearts ace (trump ace is held back)", card)
	}
}

func TestHeuristicBotLeadsSafeKing(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitClubs, Rank: domain.RankFive},
	}
	g := gameWithHand(1, hand)
	// The hearts ace already fell, so the king is the top remaining heart.
	g.Round.CompletedTricks = []domain.Trick{{
		Plays: []domain.Play{
			{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankAce}},
			{Seat: 3, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTwo}},
			{Seat: 4, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankThree}},
			{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankFour}},
		},
		Winner: 2,
	}}

	card, err := NewHeuristicBot().PlayCard(g, 1)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankKing}) {
		t.Fatalf("lead %v, want the now-safe hearts king", card)
	}
}

func TestHeuristicBotLeadsMiddleOfLongestSuit(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankTwo},
		{Suit: domain.SuitHearts, Rank: domain.RankFive},
		{Suit: domain.SuitHearts, Rank: domain.RankNine},
		{Suit: domain.SuitHearts, Rank: domain.RankQueen},
		{Suit: domain.SuitHearts, Rank: domain.RankKing},
		{Suit: domain.SuitClubs, Rank: domain.RankThree},
	}
	g := gameWithHand(1, hand)

	card, err := NewHeuristicBot().PlayCard(g, 1)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	// Five hearts sorted ascending: the middle is the nine.
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankNine}) {
		t.Fatalf("lead %v, want the middle heart (nine)", card)
	}
}

func TestHeuristicBotDucksUnderWinningPartner(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankFour},
	}
	g := gameWithHand(3, hand)
	// Partner seat 1 is winning the heart trick.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankKing}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTwo}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 3)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankFour}) {
		t.Fatalf("played %v under a winning partner, want the low heart", card)
	}
}

func TestHeuristicBotBeatsEarlyTrickCheaply(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankJack},
		{Suit: domain.SuitHearts, Rank: domain.RankTwo},
	}
	g := gameWithHand(3, hand)
	// Opponent seat 2 winning with the ten, one play so far from seat 2's
	// perspective... two plays, still early.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankThree}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTen}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 3)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	// Jack is the lowest card that beats the ten.
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankJack}) {
		t.Fatalf("played %v, want the jack (cheapest winner)", card)
	}
}

func TestHeuristicBotFollowsLowOnLateTrick(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankTwo},
	}
	g := gameWithHand(4, hand)
	// Three plays down: too late to contest per the default tuning.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankThree}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTen}},
		{Seat: 3, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankFour}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 4)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTwo}) {
		t.Fatalf("played %v on a late trick, want the low heart", card)
	}
}

func TestHeuristicBotTrumpsInOnHonorTrick(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankFive},
		{Suit: domain.SuitSpades, Rank: domain.RankNine},
		{Suit: domain.SuitClubs, Rank: domain.RankTwo},
	}
	g := gameWithHand(3, hand)
	// Void in hearts; the opposing king makes the trick worth ruffing with
	// the smallest sufficient trump.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankSix}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankKing}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 3)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitSpades, Rank: domain.RankFive}) {
		t.Fatalf("played %v, want the five of trumps", card)
	}
}

func TestHeuristicBotDiscardsInsteadOfWastingTrump(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankFive},
		{Suit: domain.SuitClubs, Rank: domain.RankTwo},
	}
	g := gameWithHand(3, hand)
	// No honor in the trick and only two plays: not worth a trump.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankSix}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankNine}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 3)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitClubs, Rank: domain.RankTwo}) {
		t.Fatalf("played %v, want the low club discard", card)
	}
}

func TestHeuristicBotOverTrumpsMinimally(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankQueen},
		{Suit: domain.SuitSpades, Rank: domain.RankSeven},
		{Suit: domain.SuitClubs, Rank: domain.RankNine},
	}
	g := gameWithHand(4, hand)
	// An opponent already trumped with the five; three plays down makes the
	// trick contestable, and the seven over-trumps at minimal cost.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankFour}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankEight}},
		{Seat: 3, Card: domain.Card{Suit: domain.SuitSpades, Rank: domain.RankFive}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 4)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitSpades, Rank: domain.RankSeven}) {
		t.Fatalf("played %v, want the seven of trumps", card)
	}
}

func TestHeuristicBotDiscardsUnderWinningPartnerWhenVoid(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitSpades, Rank: domain.RankAce},
		{Suit: domain.SuitClubs, Rank: domain.RankThree},
	}
	g := gameWithHand(3, hand)
	// Partner seat 1 has the trick; keep the trump ace.
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankAce}},
		{Seat: 2, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankTen}},
	}

	card, err := NewHeuristicBot().PlayCard(g, 3)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitClubs, Rank: domain.RankThree}) {
		t.Fatalf("played %v, want the club discard", card)
	}
}

func TestBasicBotPlaysLowestLegal(t *testing.T) {
	hand := []domain.Card{
		{Suit: domain.SuitHearts, Rank: domain.RankAce},
		{Suit: domain.SuitHearts, Rank: domain.RankFour},
		{Suit: domain.SuitClubs, Rank: domain.RankTwo},
	}
	g := gameWithHand(2, hand)
	g.Round.CurrentTrick = []domain.Play{
		{Seat: 1, Card: domain.Card{Suit: domain.SuitHearts, Rank: domain.RankNine}},
	}

	b := &BasicBot{}
	card, err := b.PlayCard(g, 2)
	if err != nil {
		t.Fatalf("PlayCard: %v", err)
	}
	if card != (domain.Card{Suit: domain.SuitHearts, Rank: domain.RankFour}) {
		t.Fatalf("played %v, want the lowest heart", card)
	}

	if amount, _ := b.Bid(g, 2); amount != domain.PassBid {
		t.Fatalf("BasicBot bid %d, want pass", amount)
	}
}

func TestNewBrainLevels(t *testing.T) {
	if _, err := NewBrain(BotLevelBasic); err != nil {
		t.Fatalf("basic: %v", err)
	}
	if _, err := NewBrain(BotLevelHeuristic); err != nil {
		t.Fatalf("heuristic: %v", err)
	}
	if _, err := NewBrain(BotLevel(99)); err == nil {
		t.Fatal("unknown level should fail")
	}

	if LevelFromDifficulty("easy") != BotLevelBasic {
		t.Fatal("easy should map to the basic brain")
	}
	if LevelFromDifficulty("hard") != BotLevelHeuristic {
		t.Fatal("hard should map to the heuristic brain")
	}
}

// suitRun builds n consecutive cards of one suit starting at the given rank.
func suitRun(s domain.Suit, from domain.Rank, n int) []domain.Card {
	cards := make([]domain.Card, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, domain.Card{Suit: s, Rank: from + domain.Rank(i)})
	}
	return cards
}
