package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"tarneeb/internal/app"
	"tarneeb/internal/bot"
	"tarneeb/internal/config"
	"tarneeb/internal/domain"
	"tarneeb/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// matchLabel is the indexed JSON label used for match listing queries.
type matchLabel struct {
	Game    string `json:"game"`
	Phase   string `json:"phase"` // "lobby" or "playing"
	Open    int    `json:"open"`
	Code    string `json:"code"`
	Private bool   `json:"private"`
}

// MatchState holds the authoritative runtime state for the Nakama match
// handler. Seats index 0..3 map to domain seats 1..4.
type MatchState struct {
	Seats     [4]string                   `json:"seats"`      // user IDs, empty string means open
	OwnerSeat int                         `json:"owner_seat"` // seat index of the match owner, -1 when none
	RoomCode  string                      `json:"room_code"`
	Private   bool                        `json:"private"`
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"`
	App       *app.Service                `json:"-"`
	Game      *domain.Game                `json:"-"` // nil while in the lobby
	Scores    domain.Scores               `json:"scores"` // carried across rounds

	BotsEnabled      bool  `json:"bots_enabled"`
	BotMinDelay      int   `json:"bot_min_delay"`
	BotMaxDelay      int   `json:"bot_max_delay"`
	BotAutoFillDelay int   `json:"bot_auto_fill_delay"`
	TrickSettle      int   `json:"trick_settle"`
	BotWaitUntil     int64 `json:"bot_wait_until"`
	SettleUntil      int64 `json:"settle_until"` // pause after a trick resolves
	LobbyWaitStart   int64 `json:"lobby_wait_start"`

	Bots map[string]*bot.Agent `json:"-"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !ms.isBotUser(seat) {
			count++
		}
	}
	return count
}

// isBotUser covers both pool identities and synthetic fallback bots that
// only exist in this match's agent map.
func (ms *MatchState) isBotUser(userID string) bool {
	if _, ok := ms.Bots[userID]; ok {
		return true
	}
	return bot.IsBot(userID)
}

// seatOf returns the domain seat for a user id, or domain.SeatNone.
func (ms *MatchState) seatOf(userID string) domain.Seat {
	for i, id := range ms.Seats {
		if id != "" && id == userID {
			return domain.Seat(i + 1)
		}
	}
	return domain.SeatNone
}

// isHumanSeat reports whether the seat index belongs to a human player.
func (ms *MatchState) isHumanSeat(seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(ms.Seats) {
		return false
	}
	userID := ms.Seats[seatIndex]
	return userID != "" && !ms.isBotUser(userID)
}

// findFirstHumanSeat returns the first seat index with a human occupant or
// -1 if none exist.
func (ms *MatchState) findFirstHumanSeat() int {
	for i, userID := range ms.Seats {
		if userID != "" && !ms.isBotUser(userID) {
			return i
		}
	}
	return -1
}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

type matchHandler struct{}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		Tick:             time.Now().Unix(),
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		OwnerSeat:        -1,
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      cfg.BotsEnabled,
		BotMinDelay:      cfg.BotMinDelaySeconds,
		BotMaxDelay:      cfg.BotMaxDelaySeconds,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
		TrickSettle:      cfg.TrickSettleSeconds,
	}

	if code, ok := params["code"].(string); ok {
		state.RoomCode = code
	}
	if private, ok := params["private"].(bool); ok {
		state.Private = private
	}

	// Environment overrides for deployments without a config file.
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["tarneeb_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["tarneeb_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["tarneeb_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["tarneeb_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}

	labelBytes, err := json.Marshal(mh.labelFor(state))
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace before the
	// round starts.
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if matchState.isBotUser(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		assigned := false
		for i, seatUserID := range matchState.Seats {
			if seatUserID == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserID := range matchState.Seats {
				if matchState.isBotUser(seatUserID) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserID, p.GetUserId(), i)
					delete(matchState.Bots, seatUserID)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat was available.", p.GetUserId())
			continue
		}

		// A player rejoining mid-round needs their hand back.
		if matchState.Game != nil {
			if seat := matchState.seatOf(p.GetUserId()); seat != domain.SeatNone {
				mh.sendHand(matchState, dispatcher, logger, seat)
			}
		}
	}

	if !matchState.isHumanSeat(matchState.OwnerSeat) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave frees seats and hands ownership to the next human. A match
// with no humans left terminates.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserID := range matchState.Seats {
			if seatUserID == p.GetUserId() {
				// Mid-round, the seat keeps its cards: a bot takes over so
				// the round can finish. In the lobby the seat just frees.
				if matchState.Game != nil && matchState.BotsEnabled {
					mh.fillSeatWithBot(matchState, i, logger)
				} else {
					matchState.Seats[i] = ""
				}
				break
			}
		}
	}

	if !matchState.isHumanSeat(matchState.OwnerSeat) {
		matchState.OwnerSeat = matchState.findFirstHumanSeat()
	}

	if matchState.findFirstHumanSeat() == -1 {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastSnapshot(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartRound:
			mh.handleStartRound(matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(matchState, dispatcher, logger, msg)
		case OpChooseTrump:
			mh.handleChooseTrump(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

// processBots fills empty lobby seats after a grace period and acts for bot
// seats whose turn it is, with a randomized thinking delay.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		if state.GetHumanPlayerCount() >= 1 && state.GetOpenSeatsCount() > 0 {
			if state.LobbyWaitStart == 0 {
				state.LobbyWaitStart = state.Tick
			}
			if state.Tick-state.LobbyWaitStart >= int64(state.BotAutoFillDelay) {
				mh.fillOpenSeatsWithBots(state, dispatcher, logger)
				state.LobbyWaitStart = 0
			}
		} else {
			state.LobbyWaitStart = 0
		}
		return
	}

	// Let clients display the resolved trick before play continues.
	if state.Tick < state.SettleUntil {
		return
	}

	seat := state.Game.Round.CurrentSeat
	if seat == domain.SeatNone {
		return
	}
	userID := state.Seats[seat-1]
	if !state.isBotUser(userID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if state.BotMaxDelay > state.BotMinDelay {
			delay += rand.Intn(state.BotMaxDelay - state.BotMinDelay + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		return
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[userID]
	if !exists {
		agent = mh.newAgentForSeat(userID, seat, logger)
		if agent == nil {
			return
		}
		state.Bots[userID] = agent
	}

	var (
		events []app.Event
		err    error
	)
	switch state.Game.Round.Phase {
	case domain.PhaseBidding:
		var amount int
		if amount, err = agent.Bid(state.Game); err == nil {
			events, err = state.App.PlaceBid(state.Game, seat, amount)
		}
	case domain.PhaseTrumpSelection:
		var trump domain.Suit
		if trump, err = agent.ChooseTrump(state.Game); err == nil {
			events, err = state.App.ChooseTrump(state.Game, seat, trump)
		}
	case domain.PhasePlaying:
		var card domain.Card
		if card, err = agent.PlayCard(state.Game); err == nil {
			events, err = state.App.PlayCard(state.Game, seat, card)
		}
	default:
		return
	}
	if err != nil {
		logger.Error("processBots: Bot %s (seat %d) failed to act: %v", userID, seat, err)
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleStartRound(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	if senderSeat == domain.SeatNone || int(senderSeat)-1 != state.OwnerSeat {
		logger.Warn("StartRound: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Game != nil {
		logger.Warn("StartRound: Round already in progress.")
		return
	}

	if state.GetOpenSeatsCount() > 0 {
		if !state.BotsEnabled {
			mh.sendError(state, dispatcher, logger, senderID, 400, "not enough players")
			return
		}
		mh.fillOpenSeatsWithBots(state, dispatcher, logger)
	}

	game, events := state.App.StartRound(state.Scores)
	state.Game = game
	state.SettleUntil = 0
	state.BotWaitUntil = 0

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)

	logger.Info("StartRound: Round started (carry scores %d/%d).", state.Scores.TeamA, state.Scores.TeamB)
}

func (mh *matchHandler) handlePlaceBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat := state.seatOf(senderID)
	if state.Game == nil || seat == domain.SeatNone {
		return
	}

	var request placeBidRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlaceBid: Invalid request from %s: %v", senderID, err)
		return
	}

	events, err := state.App.PlaceBid(state.Game, seat, request.Amount)
	if err != nil {
		logger.Warn("handlePlaceBid: User %s (seat %d) rejected: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handleChooseTrump(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat := state.seatOf(senderID)
	if state.Game == nil || seat == domain.SeatNone {
		return
	}

	var request chooseTrumpRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handleChooseTrump: Invalid request from %s: %v", senderID, err)
		return
	}
	trump, err := parseSuit(request.Suit)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	events, err := state.App.ChooseTrump(state.Game, seat, trump)
	if err != nil {
		logger.Warn("handleChooseTrump: User %s (seat %d) rejected: %v", senderID, seat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat := state.seatOf(senderID)
	if state.Game == nil || seat == domain.SeatNone {
		return
	}

	var request playCardRequest
	if err := json.Unmarshal(msg.GetData(), &request); err != nil {
		logger.Warn("handlePlayCard: Invalid request from %s: %v", senderID, err)
		return
	}
	card, err := parseWireCard(request.Card)
	if err != nil {
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	events, err := state.App.PlayCard(state.Game, seat, card)
	if err != nil {
		logger.Warn("handlePlayCard: User %s (seat %d) rejected playing %s: %v", senderID, seat, card, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}

	mh.dispatchEvents(state, dispatcher, logger, events)
}

// dispatchEvents converts app events to wire messages and sends them, and
// applies their side effects on match state: the settle pause after a trick
// and the return to the lobby after a finished round.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		opCode, bytes, err := eventToMessage(ev)
		if err != nil {
			logger.Error("dispatchEvents: %v", err)
			continue
		}

		var recipients []runtime.Presence
		if len(ev.Recipients) > 0 {
			for _, seat := range ev.Recipients {
				if seat < 1 || seat > 4 {
					continue
				}
				if p, ok := state.Presences[state.Seats[seat-1]]; ok {
					recipients = append(recipients, p)
				}
			}
			// Targeted events with no connected recipient (bot seats) must
			// not leak to everyone else.
			if len(recipients) == 0 {
				continue
			}
		}

		dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)

		switch ev.Kind {
		case app.EventTrickWon:
			state.SettleUntil = state.Tick + int64(state.TrickSettle)
		case app.EventRoundEnded:
			p := ev.Payload.(app.RoundEndedPayload)
			state.Scores = p.Scores
			state.Game = nil
			state.SettleUntil = 0
			state.BotWaitUntil = 0
			mh.updateLabel(state, dispatcher, logger)
		}
	}
}

// sendHand sends a seat's current hand privately to its presence.
func (mh *matchHandler) sendHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat domain.Seat) {
	p, ok := state.Presences[state.Seats[seat-1]]
	if !ok {
		return
	}
	bytes, err := json.Marshal(handDealtEvent{
		Seat: int(seat),
		Hand: toWireCards(state.Game.HandOf(seat)),
	})
	if err != nil {
		logger.Error("sendHand: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpHandDealt, bytes, []runtime.Presence{p}, nil, true)
}

// sendError sends a gameErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(gameErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("sendError: Failed to marshal: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		return
	}
	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) fillOpenSeatsWithBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	added := false
	for i, seat := range state.Seats {
		if seat == "" {
			mh.fillSeatWithBot(state, i, logger)
			added = true
		}
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastSnapshot(state, dispatcher, logger)
	}
}

func (mh *matchHandler) fillSeatWithBot(state *MatchState, seatIndex int, logger runtime.Logger) {
	identity := bot.GetBotIdentity(seatIndex)
	state.Seats[seatIndex] = identity.UserID

	agent := mh.newAgentForSeat(identity.UserID, domain.Seat(seatIndex+1), logger)
	if agent != nil {
		state.Bots[identity.UserID] = agent
	}
	logger.Info("Added bot %s to seat %d", identity.DisplayName, seatIndex)
}

func (mh *matchHandler) newAgentForSeat(userID string, seat domain.Seat, logger runtime.Logger) *bot.Agent {
	difficulty := ""
	name := bot.GetBotDisplayName(userID)
	if identity, ok := bot.GetBotConfig(userID); ok {
		difficulty = identity.Difficulty
		name = identity.DisplayName
	}

	brain, err := bot.NewBrain(bot.LevelFromDifficulty(difficulty))
	if err != nil {
		logger.Error("Failed to create brain for %s: %v", userID, err)
		return nil
	}
	return &bot.Agent{ID: userID, Name: name, Seat: seat, Strategy: brain}
}

// broadcastSnapshot pushes the full lobby and round view to all presences.
func (mh *matchHandler) broadcastSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	bytes, err := json.Marshal(matchSnapshot{
		Players: mh.playerViews(state),
		Round:   toRoundStateView(state.Game),
	})
	if err != nil {
		logger.Error("broadcastSnapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchSnapshot, bytes, nil, nil, true)
}

func (mh *matchHandler) playerViews(state *MatchState) []playerView {
	var views []playerView
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		displayName := userID
		if p, exists := state.Presences[userID]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userID); name != "" {
			displayName = name
		}

		views = append(views, playerView{
			UserID:      userID,
			DisplayName: displayName,
			Seat:        i + 1,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       state.isBotUser(userID),
		})
	}
	return views
}

func (mh *matchHandler) labelFor(state *MatchState) matchLabel {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}
	return matchLabel{
		Game:    "tarneeb",
		Phase:   phase,
		Open:    state.GetOpenSeatsCount(),
		Code:    state.RoomCode,
		Private: state.Private,
	}
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	labelBytes, err := json.Marshal(mh.labelFor(state))
	if err != nil {
		logger.Error("updateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("updateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

// MatchSignal answers out-of-band queries. SignalListSeats returns the
// occupant list so the room-store adapter can serve lobby listings.
func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, ""
	}

	if data == SignalListSeats {
		players := make([]ports.Player, 0, 4)
		for _, v := range mh.playerViews(matchState) {
			players = append(players, ports.Player{
				UserID:      v.UserID,
				DisplayName: v.DisplayName,
				Seat:        v.Seat,
				IsBot:       v.IsBot,
			})
		}
		bytes, err := json.Marshal(players)
		if err != nil {
			logger.Error("MatchSignal: %v", err)
			return matchState, ""
		}
		return matchState, string(bytes)
	}

	return matchState, ""
}
