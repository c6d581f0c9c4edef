package bot

import (
	"fmt"
)

// BotLevel selects a strategy tier.
type BotLevel int

const (
	BotLevelBasic BotLevel = iota
	BotLevelHeuristic
)

// NewBrain creates a new AI brain for the specified level.
func NewBrain(level BotLevel) (Brain, error) {
	switch level {
	case BotLevelBasic:
		return &BasicBot{}, nil
	case BotLevelHeuristic:
		return NewHeuristicBot(), nil
	default:
		return nil, fmt.Errorf("unknown bot level: %d", level)
	}
}

// LevelFromDifficulty maps an identity difficulty string to a strategy
// level. Unknown values get the heuristic brain.
func LevelFromDifficulty(difficulty string) BotLevel {
	if difficulty == "easy" {
		return BotLevelBasic
	}
	return BotLevelHeuristic
}
