package app

// PlayersPerMatch is the fixed seat count. Tarneeb is always four-handed;
// missing humans are filled with bots rather than playing short.
const PlayersPerMatch = 4
