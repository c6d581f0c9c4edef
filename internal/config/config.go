package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

type GameConfig struct {
	// BotsEnabled turns bot auto-fill off entirely for local testing.
	BotsEnabled bool `json:"bots_enabled"`
	// BotAutoFillDelaySeconds is how long a lobby waits for humans before
	// empty seats are filled with bots.
	BotAutoFillDelaySeconds int `json:"bot_auto_fill_delay_seconds"`
	// BotMinDelaySeconds / BotMaxDelaySeconds bound the artificial thinking
	// pause before a bot acts.
	BotMinDelaySeconds int `json:"bot_min_delay_seconds"`
	BotMaxDelaySeconds int `json:"bot_max_delay_seconds"`
	// TrickSettleSeconds is the pause after a trick resolves before the
	// winner's lead, so clients can show the completed trick.
	TrickSettleSeconds int `json:"trick_settle_seconds"`
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// LoadGameConfig loads the game configuration from the given path.
func LoadGameConfig(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read game config: %w", err)
			return
		}

		var c GameConfig
		if err := json.Unmarshal(data, &c); err != nil {
			loadErr = fmt.Errorf("failed to unmarshal game config: %w", err)
			return
		}
		cfg = &c
	})
	return loadErr
}

// GetGameConfig returns the global game configuration, falling back to
// defaults when no file was loaded.
func GetGameConfig() GameConfig {
	if cfg == nil {
		return defaultConfig()
	}
	return *cfg
}

func defaultConfig() GameConfig {
	return GameConfig{
		BotsEnabled:             true,
		BotAutoFillDelaySeconds: 5,
		BotMinDelaySeconds:      1,
		BotMaxDelaySeconds:      3,
		TrickSettleSeconds:      3,
	}
}
