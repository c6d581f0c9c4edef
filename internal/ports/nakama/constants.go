package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create an
	// open match.
	RpcQuickMatch = "quick_match"

	// RpcCreateRoom creates a private match and returns its join code.
	RpcCreateRoom = "create_room"

	// RpcJoinRoom resolves a join code to a match id.
	RpcJoinRoom = "join_room"

	// MatchNameTarneeb is the authoritative match handler name registered
	// with Nakama.
	MatchNameTarneeb = "tarneeb_match"

	// SignalListSeats asks a running match for its seat list.
	SignalListSeats = "list_seats"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound  int64 = 1
	OpPlaceBid    int64 = 2
	OpChooseTrump int64 = 3
	OpPlayCard    int64 = 4

	// Server -> Client events
	OpMatchSnapshot int64 = 101
	OpHandDealt     int64 = 102 // send privately
	OpRoundStarted  int64 = 103
	OpBidPlaced     int64 = 104
	OpRedeal        int64 = 105
	OpTrumpChosen   int64 = 106
	OpCardPlayed    int64 = 107
	OpTrickWon      int64 = 108
	OpRoundEnded    int64 = 109
	OpGameError     int64 = 110
)
