package nakama

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"tarneeb/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

var ErrRoomNotFound = errors.New("room not found")

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// RoomAdapter implements ports.RoomStore on top of Nakama's authoritative
// match registry. Rooms are matches; join codes live in the match label.
type RoomAdapter struct {
	nk runtime.NakamaModule
}

func NewRoomAdapter(nk runtime.NakamaModule) *RoomAdapter {
	return &RoomAdapter{nk: nk}
}

func (a *RoomAdapter) CreateRoom(ctx context.Context) (ports.RoomHandle, error) {
	code := newRoomCode()
	matchID, err := a.nk.MatchCreate(ctx, MatchNameTarneeb, map[string]interface{}{
		"code":    code,
		"private": true,
	})
	if err != nil {
		return ports.RoomHandle{}, fmt.Errorf("create room: %w", err)
	}
	return ports.RoomHandle{RoomID: matchID, Code: code, IsNew: true}, nil
}

func (a *RoomAdapter) JoinRoom(ctx context.Context, code string) (ports.RoomHandle, error) {
	query := fmt.Sprintf("+label.game:tarneeb +label.code:%s", code)
	minSize, maxSize := 0, 4
	matches, err := a.nk.MatchList(ctx, 1, true, "", &minSize, &maxSize, query)
	if err != nil {
		return ports.RoomHandle{}, fmt.Errorf("join room: %w", err)
	}
	if len(matches) == 0 {
		return ports.RoomHandle{}, ErrRoomNotFound
	}
	return ports.RoomHandle{RoomID: matches[0].MatchId, Code: code}, nil
}

func (a *RoomAdapter) QuickMatch(ctx context.Context) (ports.RoomHandle, error) {
	query := "+label.game:tarneeb +label.phase:lobby +label.open:>=1 +label.private:F"
	minSize, maxSize := 0, 3
	matches, err := a.nk.MatchList(ctx, 10, true, "", &minSize, &maxSize, query)
	if err != nil {
		return ports.RoomHandle{}, fmt.Errorf("quick match: %w", err)
	}
	if len(matches) > 0 {
		return ports.RoomHandle{RoomID: matches[0].MatchId}, nil
	}

	matchID, err := a.nk.MatchCreate(ctx, MatchNameTarneeb, map[string]interface{}{})
	if err != nil {
		return ports.RoomHandle{}, fmt.Errorf("quick match create: %w", err)
	}
	return ports.RoomHandle{RoomID: matchID, IsNew: true}, nil
}

func (a *RoomAdapter) ListSeats(ctx context.Context, roomID string) ([]ports.Player, error) {
	data, err := a.nk.MatchSignal(ctx, roomID, SignalListSeats)
	if err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	var players []ports.Player
	if err := json.Unmarshal([]byte(data), &players); err != nil {
		return nil, fmt.Errorf("list seats: %w", err)
	}
	return players, nil
}

func newRoomCode() string {
	code := make([]byte, 6)
	for i := range code {
		code[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(code)
}
