package rules

import (
	"encoding/json"
	"os"
)

// MixedGameVariant is one entry in a rotation sequence.
type MixedGameVariant struct {
	Variant          string `json:"variant"`
	BettingStructure string `json:"bettingStructure"`
	Letter           string `json:"letter,omitempty"`
}

// MixedGameConfig describes a rotation like HORSE or an 8-Game Mix. This is
// consumed by a platform/bot layer, not the core interpreter.
type MixedGameConfig struct {
	Name              string                 `json:"name"`
	DisplayName       string                 `json:"displayName"`
	Category          string                 `json:"category"`
	Rotation          []MixedGameVariant     `json:"rotation"`
	RotationType      string                 `json:"rotationType"`
	MinPlayers        int                    `json:"minPlayers"`
	MaxPlayers        int                    `json:"maxPlayers"`
	BettingStructures []BettingStructureName `json:"bettingStructures"`
}

// LoadMixedGame reads a mixed-game rotation file.
func LoadMixedGame(path string) (*MixedGameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	cfg := MixedGameConfig{
		Category:     "Mixed",
		RotationType: "orbit",
		MinPlayers:   2,
		MaxPlayers:   9,
		BettingStructures: []BettingStructureName{LimitName},
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	if len(cfg.Rotation) == 0 {
		return nil, &ConfigError{Path: path, Reason: "rotation must not be empty"}
	}
	return &cfg, nil
}
