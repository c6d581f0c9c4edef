package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"tarneeb/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// JoinRoomRequest is the payload for the join_room RPC.
type JoinRoomRequest struct {
	Code string `json:"code"`
}

// RoomResponse is the payload returned by the room RPCs.
type RoomResponse struct {
	MatchID string `json:"match_id"`
	Code    string `json:"code,omitempty"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	if err := initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch); err != nil {
		return err
	}
	if err := initializer.RegisterRpc(RpcCreateRoom, rpcCreateRoom); err != nil {
		return err
	}
	return initializer.RegisterRpc(RpcJoinRoom, rpcJoinRoom)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	handle, err := NewRoomAdapter(nk).QuickMatch(ctx)
	if err != nil {
		logger.Error("rpcQuickMatch: %v", err)
		return "", err
	}
	return marshalRoomResponse(handle)
}

func rpcCreateRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	handle, err := NewRoomAdapter(nk).CreateRoom(ctx)
	if err != nil {
		logger.Error("rpcCreateRoom: %v", err)
		return "", err
	}
	return marshalRoomResponse(handle)
}

func rpcJoinRoom(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var request JoinRoomRequest
	if err := json.Unmarshal([]byte(payload), &request); err != nil {
		return "", runtime.NewError("invalid payload", 3) // INVALID_ARGUMENT
	}
	if request.Code == "" {
		return "", runtime.NewError("code is required", 3)
	}

	handle, err := NewRoomAdapter(nk).JoinRoom(ctx, request.Code)
	if errors.Is(err, ErrRoomNotFound) {
		return "", runtime.NewError("room not found", 5) // NOT_FOUND
	}
	if err != nil {
		logger.Error("rpcJoinRoom: %v", err)
		return "", err
	}
	return marshalRoomResponse(handle)
}

func marshalRoomResponse(handle ports.RoomHandle) (string, error) {
	b, err := json.Marshal(RoomResponse{
		MatchID: handle.RoomID,
		Code:    handle.Code,
		IsNew:   handle.IsNew,
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
