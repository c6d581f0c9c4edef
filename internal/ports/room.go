package ports

import "context"

// Player describes one occupied seat as seen by lobby listings.
type Player struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Seat        int    `json:"seat"` // 1..4
	IsBot       bool   `json:"is_bot"`
}

// RoomHandle identifies a room a player was placed into.
type RoomHandle struct {
	RoomID string `json:"room_id"`
	Code   string `json:"code"`
	IsNew  bool   `json:"is_new"`
}

// RoomStore is the session collaborator the game depends on: creating and
// finding rooms and inspecting their seats. The engine never talks to the
// backing service directly.
type RoomStore interface {
	// CreateRoom opens a fresh room and returns its handle, including the
	// short join code other players use.
	CreateRoom(ctx context.Context) (RoomHandle, error)
	// JoinRoom resolves a join code to an open room.
	JoinRoom(ctx context.Context, code string) (RoomHandle, error)
	// QuickMatch finds any open room, creating one when none exist.
	QuickMatch(ctx context.Context) (RoomHandle, error)
	// ListSeats returns the current occupants of a room.
	ListSeats(ctx context.Context, roomID string) ([]Player, error)
}
