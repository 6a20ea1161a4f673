package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// AIChoice selects which strategy the bot seats receive.
type AIChoice string

const (
	AIHal   AIChoice = "HAL"
	AIGem   AIChoice = "GEM"
	AIGpt52 AIChoice = "GPT52"
	// AIMixed deals the three strategies out as a shuffled distinct assignment.
	AIMixed AIChoice = "MIXED"
)

// PassSequence names one of the two supported pass-direction cycles.
// The letters follow the score-table notation: D(estra)=right,
// S(inistra)=left, C(entro)=across, -=hold.
type PassSequence string

const (
	SequenceDSC  PassSequence = "DSC-" // right, left, across, none
	SequenceDSnC PassSequence = "DS-C" // right, left, none, across
)

// GameConfig is the immutable per-game configuration. Values outside the
// enumerated choice sets are clamped by Normalize rather than rejected.
type GameConfig struct {
	PlayerName   string       `json:"player_name"`
	AIType       AIChoice     `json:"ai_type"`
	MaxRounds    int          `json:"max_rounds"`
	MaxScore     int          `json:"max_score"`
	PassSequence PassSequence `json:"pass_sequence"`
}

// Default returns the configuration the original table runs with.
func Default() GameConfig {
	return GameConfig{
		PlayerName:   "Charlie Bartom",
		AIType:       AIHal,
		MaxRounds:    8,
		MaxScore:     100,
		PassSequence: SequenceDSC,
	}
}

// Normalize clamps every field to its enumerated choice set. The boundary
// only ever offers these values, so anything else is treated as "unset".
func (c GameConfig) Normalize() GameConfig {
	def := Default()
	if c.PlayerName == "" {
		c.PlayerName = def.PlayerName
	}
	switch c.AIType {
	case AIHal, AIGem, AIGpt52, AIMixed:
	default:
		c.AIType = def.AIType
	}
	switch c.MaxRounds {
	case 4, 8, 12:
	default:
		c.MaxRounds = def.MaxRounds
	}
	switch c.MaxScore {
	case 50, 100:
	default:
		c.MaxScore = def.MaxScore
	}
	switch c.PassSequence {
	case SequenceDSC, SequenceDSnC:
	default:
		c.PassSequence = def.PassSequence
	}
	return c
}

var (
	cfg      *GameConfig
	loadOnce sync.Once
	loadErr  error
)

// Load reads the game configuration from the given path once per process.
func Load(path string) error {
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
		c = c.Normalize()
		cfg = &c
	})
	return loadErr
}

// Get returns the loaded configuration, or the default when none was loaded.
func Get() GameConfig {
	if cfg == nil {
		return Default()
	}
	return *cfg
}
