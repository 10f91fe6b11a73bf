// Package rules is the declarative variant loader: it parses a JSON variant
// description into a GameRules value, validates it, and hands the gameplay
// interpreter a script it never needs to special-case per variant.
package rules

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigError reports a malformed variant/mixed-game/evaluation-type file.
// Fatal to that variant; propagated to the caller.
type ConfigError struct {
	Path   string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("rules: %s", e.Reason)
	}
	return fmt.Sprintf("rules: %s: %s", e.Path, e.Reason)
}

// BettingStructureName is one of the three declared betting structures, as
// they appear in variant JSON.
type BettingStructureName string

const (
	LimitName    BettingStructureName = "Limit"
	NoLimitName  BettingStructureName = "No Limit"
	PotLimitName BettingStructureName = "Pot Limit"
)

func validStructure(s BettingStructureName) bool {
	switch s {
	case LimitName, NoLimitName, PotLimitName:
		return true
	}
	return false
}

// CardRule selects how a stud bring-in's forced bettor is determined.
type CardRule string

const (
	LowCard        CardRule = "low card"
	LowCardAceLow  CardRule = "low card al"
	HighCard       CardRule = "high card"
	HighCardAceHi  CardRule = "high card ah"
	HighCardAceHiWild CardRule = "high card ah wild"
)

// DeckSpec names the deck a variant is dealt from.
type DeckSpec struct {
	Type  string `json:"type"`
	Cards int    `json:"cards"`
}

// PlayerCounts bounds the number of seats a variant supports.
type PlayerCounts struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BettingOrder names the acting-order mode for the first and subsequent
// betting rounds.
type BettingOrder struct {
	Initial    string `json:"initial,omitempty"`    // after_big_blind | dealer
	Subsequent string `json:"subsequent,omitempty"` // left_of_dealer | last_actor
}

// DealCard describes one batch of cards within a Deal step.
type DealCard struct {
	Number int    `json:"number"`
	State  string `json:"state"` // "face down" | "face up"
	Subset string `json:"subset,omitempty"`
}

// Step is a GameplayStep tagged variant. Exactly one of the
// pointer fields is non-nil after parsing; Kind reports which.
type Step struct {
	Name string `json:"name"`

	Bet              *BetStep              `json:"bet,omitempty"`
	Deal             *DealStep             `json:"deal,omitempty"`
	Draw             *DrawStep             `json:"draw,omitempty"`
	Discard          *DiscardStep          `json:"discard,omitempty"`
	Expose           *ExposeStep           `json:"expose,omitempty"`
	Pass             *PassStep             `json:"pass,omitempty"`
	Declare          *DeclareStep          `json:"declare,omitempty"`
	ReplaceCommunity *ReplaceCommunityStep `json:"replaceCommunity,omitempty"`
	Showdown         *ShowdownStep         `json:"showdown,omitempty"`
	Grouped          *GroupedStep          `json:"grouped,omitempty"`
}

// Kind names which variant of Step is populated.
func (s Step) Kind() string {
	switch {
	case s.Bet != nil:
		return "bet"
	case s.Deal != nil:
		return "deal"
	case s.Draw != nil:
		return "draw"
	case s.Discard != nil:
		return "discard"
	case s.Expose != nil:
		return "expose"
	case s.Pass != nil:
		return "pass"
	case s.Declare != nil:
		return "declare"
	case s.ReplaceCommunity != nil:
		return "replaceCommunity"
	case s.Showdown != nil:
		return "showdown"
	case s.Grouped != nil:
		return "grouped"
	default:
		return ""
	}
}

type BetStep struct {
	Type     string   `json:"type"`               // blinds | antes | bring_in | small | big | pot_limit | no_limit
	CardRule CardRule `json:"cardRule,omitempty"` // bring_in only: how the forced bettor is chosen
}

type DealStep struct {
	Location string     `json:"location"` // player | community | private_subset
	Cards    []DealCard `json:"cards"`
}

type DrawStep struct {
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	StateAfter  string `json:"stateAfter,omitempty"`
}

type DiscardStep struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ExposeStep struct {
	Cards int `json:"cards"`
}

type PassStep struct {
	ToNeighbor string `json:"toNeighbor"` // e.g. "left"
}

type DeclareStep struct {
	Kind string `json:"kind"` // e.g. "hi_lo"
}

// ReplaceCommunityStep's Order/StartingFrom describe the acting order
// players take their replacement turn in, the same shape a bet step's
// betting order takes ("clockwise" from "left_of_dealer") -- not which
// board cards get replaced; the acting player freely names those via the
// step's CardIndexes payload.
type ReplaceCommunityStep struct {
	Count        int    `json:"count"`
	Order        string `json:"order,omitempty"`
	StartingFrom string `json:"startingFrom,omitempty"`
}

type ShowdownStep struct {
	Type string `json:"type,omitempty"`
}

type GroupedStep struct {
	Actions []Step `json:"actions"`
}

// HandRule selects cards for one "board" of a showdown and names the
// evaluation type used to rank it.
type HandRule struct {
	Name           string `json:"name,omitempty"`
	HoleCards      int    `json:"holeCards,omitempty"`
	CommunityCards int    `json:"communityCards,omitempty"`
	Subset         string `json:"subset,omitempty"`
	SubsetCards    int    `json:"subsetCards,omitempty"`
	AnyCards       int    `json:"anyCards,omitempty"`
	EvaluationType string `json:"evaluationType"`
}

// ShowdownSpec describes how the final hands are formed and ranked.
// Multiple BestHand rules express split-pot games.
type ShowdownSpec struct {
	Order          string     `json:"order,omitempty"`
	StartingFrom   string     `json:"startingFrom,omitempty"`
	CardsRequired  string     `json:"cardsRequired,omitempty"`
	BestHand       []HandRule `json:"best_hand"`
}

// GameRules is the parsed, validated, immutable-thereafter description of
// one variant.
type GameRules struct {
	GameName          string                 `json:"game"`
	Players           PlayerCounts           `json:"players"`
	Deck              DeckSpec               `json:"deck"`
	BettingStructures []BettingStructureName `json:"bettingStructures"`
	BettingOrder      BettingOrder           `json:"bettingOrder,omitempty"`
	GamePlay          []Step                 `json:"gamePlay"`
	Showdown          ShowdownSpec           `json:"showdown"`
}

// LoadVariant reads and validates a variant configuration file.
func LoadVariant(path string, knownEvalTypes map[string]bool) (*GameRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	var rules GameRules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	if err := rules.validate(knownEvalTypes); err != nil {
		return nil, &ConfigError{Path: path, Reason: err.Error()}
	}
	return &rules, nil
}

// validate enforces the load-time checks.
func (r *GameRules) validate(knownEvalTypes map[string]bool) error {
	if r.Players.Min < 2 {
		return fmt.Errorf("min_players must be >= 2, got %d", r.Players.Min)
	}
	if r.Players.Min > r.Players.Max {
		return fmt.Errorf("min_players %d exceeds max_players %d", r.Players.Min, r.Players.Max)
	}
	for _, s := range r.BettingStructures {
		if !validStructure(s) {
			return fmt.Errorf("unknown betting structure %q", s)
		}
	}
	if len(r.GamePlay) == 0 {
		return fmt.Errorf("gamePlay must not be empty")
	}
	first := r.GamePlay[0]
	if first.Bet == nil {
		return fmt.Errorf("first gameplay step must be a bet step")
	}
	switch first.Bet.Type {
	case "blinds", "antes", "bring_in":
	default:
		return fmt.Errorf("first betting step must be blinds, antes, or bring_in, got %q", first.Bet.Type)
	}

	dealtPlayer, dealtCommunity := 0, 0
	for _, step := range r.GamePlay {
		if step.Deal == nil {
			continue
		}
		for _, c := range step.Deal.Cards {
			switch step.Deal.Location {
			case "player":
				dealtPlayer += c.Number
			case "community", "private_subset":
				dealtCommunity += c.Number
			}
		}
	}
	total := dealtPlayer*r.Players.Max + dealtCommunity
	if r.Deck.Cards > 0 && total > r.Deck.Cards {
		return fmt.Errorf("gameplay script demands %d cards at max players, deck only has %d", total, r.Deck.Cards)
	}

	if knownEvalTypes != nil {
		for i, hr := range r.Showdown.BestHand {
			if !knownEvalTypes[hr.EvaluationType] {
				return fmt.Errorf("showdown.best_hand[%d]: unknown evaluation type %q", i, hr.EvaluationType)
			}
			need := hr.HoleCards + hr.CommunityCards + hr.SubsetCards
			if need > dealtPlayer+dealtCommunity && hr.AnyCards == 0 {
				return fmt.Errorf("showdown.best_hand[%d]: requires %d cards but script only deals %d", i, need, dealtPlayer+dealtCommunity)
			}
		}
	}
	return nil
}
