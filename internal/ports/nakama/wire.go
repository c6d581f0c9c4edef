package nakama

import (
	"encoding/json"
	"fmt"

	"tarneeb/internal/app"
	"tarneeb/internal/domain"
)

// The wire format is plain JSON keyed by opcode. Suits travel as lowercase
// names and ranks as their numeric values 2..14.

type wireCard struct {
	Suit string `json:"suit"`
	Rank int    `json:"rank"`
}

var suitByName = map[string]domain.Suit{
	"hearts":   domain.SuitHearts,
	"diamonds": domain.SuitDiamonds,
	"clubs":    domain.SuitClubs,
	"spades":   domain.SuitSpades,
}

func toWireCard(c domain.Card) wireCard {
	return wireCard{Suit: c.Suit.String(), Rank: int(c.Rank)}
}

func toWireCards(cards []domain.Card) []wireCard {
	out := make([]wireCard, len(cards))
	for i, c := range cards {
		out[i] = toWireCard(c)
	}
	return out
}

func parseWireCard(wc wireCard) (domain.Card, error) {
	suit, ok := suitByName[wc.Suit]
	if !ok {
		return domain.Card{}, fmt.Errorf("unknown suit %q", wc.Suit)
	}
	if wc.Rank < int(domain.RankTwo) || wc.Rank > int(domain.RankAce) {
		return domain.Card{}, fmt.Errorf("rank %d out of range", wc.Rank)
	}
	return domain.Card{Suit: suit, Rank: domain.Rank(wc.Rank)}, nil
}

func parseSuit(name string) (domain.Suit, error) {
	suit, ok := suitByName[name]
	if !ok {
		return domain.SuitNone, fmt.Errorf("unknown suit %q", name)
	}
	return suit, nil
}

// Client requests.

type placeBidRequest struct {
	Amount int `json:"amount"` // 0 to pass
}

type chooseTrumpRequest struct {
	Suit string `json:"suit"`
}

type playCardRequest struct {
	Card wireCard `json:"card"`
}

// Server events.

type wirePlay struct {
	Seat int      `json:"seat"`
	Card wireCard `json:"card"`
}

type wireTrick struct {
	Plays  []wirePlay `json:"plays"`
	Winner int        `json:"winner"`
}

type wireBid struct {
	Seat   int `json:"seat"`
	Amount int `json:"amount"`
}

type wireScores struct {
	TeamA int `json:"teamA"`
	TeamB int `json:"teamB"`
}

// roundStateView is the authoritative round snapshot pushed to clients.
// Hands are excluded; each seat receives its own hand privately.
type roundStateView struct {
	Phase           string      `json:"phase"`
	CurrentSeat     int         `json:"current_seat"`
	Bid             wireBid     `json:"bid"`
	PassSet         []int       `json:"pass_set"`
	Trump           *string     `json:"trump"`
	CurrentTrick    []wirePlay  `json:"current_trick"`
	CompletedTricks []wireTrick `json:"completed_tricks"`
	Scores          wireScores  `json:"scores"`
}

type playerView struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
}

type matchSnapshot struct {
	Players []playerView    `json:"players"`
	Round   *roundStateView `json:"round"` // nil while in the lobby
}

type handDealtEvent struct {
	Seat int        `json:"seat"`
	Hand []wireCard `json:"hand"`
}

type roundStartedEvent struct {
	Phase     string `json:"phase"`
	FirstSeat int    `json:"first_seat"`
}

type bidPlacedEvent struct {
	Seat     int     `json:"seat"`
	Amount   int     `json:"amount"`
	Bid      wireBid `json:"bid"`
	Phase    string  `json:"phase"`
	NextSeat int     `json:"next_seat"`
}

type trumpChosenEvent struct {
	Seat     int    `json:"seat"`
	Trump    string `json:"trump"`
	LeadSeat int    `json:"lead_seat"`
}

type cardPlayedEvent struct {
	Seat     int      `json:"seat"`
	Card     wireCard `json:"card"`
	NextSeat int      `json:"next_seat"`
}

type trickWonEvent struct {
	Winner      int `json:"winner"`
	TrickNumber int `json:"trick_number"`
}

type roundEndedEvent struct {
	Bid     wireBid    `json:"bid"`
	BidMade bool       `json:"bid_made"`
	TricksA int        `json:"tricksA"`
	TricksB int        `json:"tricksB"`
	Scores  wireScores `json:"scores"`
}

type gameErrorEvent struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func toRoundStateView(g *domain.Game) *roundStateView {
	if g == nil {
		return nil
	}
	r := g.Round

	view := &roundStateView{
		Phase:       string(r.Phase),
		CurrentSeat: int(r.CurrentSeat),
		Bid:         wireBid{Seat: int(r.Bid.Seat), Amount: r.Bid.Amount},
		PassSet:     make([]int, 0, len(r.Passed)),
		Scores:      wireScores{TeamA: r.Scores.TeamA, TeamB: r.Scores.TeamB},
	}
	for _, s := range r.Passed {
		view.PassSet = append(view.PassSet, int(s))
	}
	if r.Trump != domain.SuitNone {
		name := r.Trump.String()
		view.Trump = &name
	}
	for _, p := range r.CurrentTrick {
		view.CurrentTrick = append(view.CurrentTrick, toWirePlay(p))
	}
	for _, t := range r.CompletedTricks {
		wt := wireTrick{Winner: int(t.Winner)}
		for _, p := range t.Plays {
			wt.Plays = append(wt.Plays, toWirePlay(p))
		}
		view.CompletedTricks = append(view.CompletedTricks, wt)
	}
	return view
}

func toWirePlay(p domain.Play) wirePlay {
	return wirePlay{Seat: int(p.Seat), Card: toWireCard(p.Card)}
}

// eventToMessage converts an app event to its opcode and JSON payload.
func eventToMessage(ev app.Event) (int64, []byte, error) {
	var (
		opCode  int64
		payload any
	)

	switch ev.Kind {
	case app.EventHandDealt:
		p := ev.Payload.(app.HandDealtPayload)
		opCode = OpHandDealt
		payload = handDealtEvent{Seat: int(p.Seat), Hand: toWireCards(p.Hand)}
	case app.EventRoundStarted:
		p := ev.Payload.(app.RoundStartedPayload)
		opCode = OpRoundStarted
		payload = roundStartedEvent{Phase: string(p.Phase), FirstSeat: int(p.FirstSeat)}
	case app.EventBidPlaced:
		p := ev.Payload.(app.BidPlacedPayload)
		opCode = OpBidPlaced
		payload = bidPlacedEvent{
			Seat:     int(p.Seat),
			Amount:   p.Amount,
			Bid:      wireBid{Seat: int(p.Bid.Seat), Amount: p.Bid.Amount},
			Phase:    string(p.Phase),
			NextSeat: int(p.NextSeat),
		}
	case app.EventRedeal:
		opCode = OpRedeal
		payload = struct{}{}
	case app.EventTrumpChosen:
		p := ev.Payload.(app.TrumpChosenPayload)
		opCode = OpTrumpChosen
		payload = trumpChosenEvent{
			Seat:     int(p.Seat),
			Trump:    p.Trump.String(),
			LeadSeat: int(p.LeadSeat),
		}
	case app.EventCardPlayed:
		p := ev.Payload.(app.CardPlayedPayload)
		opCode = OpCardPlayed
		payload = cardPlayedEvent{
			Seat:     int(p.Seat),
			Card:     toWireCard(p.Card),
			NextSeat: int(p.NextSeat),
		}
	case app.EventTrickWon:
		p := ev.Payload.(app.TrickWonPayload)
		opCode = OpTrickWon
		payload = trickWonEvent{Winner: int(p.Winner), TrickNumber: p.TrickNumber}
	case app.EventRoundEnded:
		p := ev.Payload.(app.RoundEndedPayload)
		opCode = OpRoundEnded
		payload = roundEndedEvent{
			Bid:     wireBid{Seat: int(p.Bid.Seat), Amount: p.Bid.Amount},
			BidMade: p.BidMade,
			TricksA: p.TricksA,
			TricksB: p.TricksB,
			Scores:  wireScores{TeamA: p.Scores.TeamA, TeamB: p.Scores.TeamB},
		}
	default:
		return 0, nil, fmt.Errorf("unknown event kind: %s", ev.Kind)
	}

	bytes, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	return opCode, bytes, nil
}
