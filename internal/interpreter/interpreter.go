// Package interpreter is the gameplay interpreter: it holds (rules,
// step_index, sub_state) and drives a single hand through its scripted
// sequence of steps, dispatching player actions through internal/betting
// and internal/pot and deferring final ranking to internal/showdown.
// Nothing here is hold'em-specific: every decision (who acts, what's
// legal, what the board looks like) comes from the GameRules script
// instead of being hard-coded per street.
package interpreter

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/generic-poker/internal/betting"
	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/deck"
	"github.com/lox/generic-poker/internal/evaluator"
	"github.com/lox/generic-poker/internal/handcards"
	"github.com/lox/generic-poker/internal/pot"
	"github.com/lox/generic-poker/internal/rules"
	"github.com/lox/generic-poker/internal/showdown"
	"github.com/lox/generic-poker/internal/table"
)

// Mode names the sub-protocol the interpreter is currently running, per
// step-entry conversion.
type Mode int

const (
	ModeIdle Mode = iota
	ModeBetting
	ModeDealing
	ModeDrawing
	ModeShowdown
	ModeComplete
)

// ActionResult is the value-returning outcome of every player_action call:
// ordinary illegalities are values, never panics.
type ActionResult struct {
	OK          bool
	AdvanceStep bool
	Reason      string
}

// PlayerAction names the kind of action a caller submits to player_action.
type PlayerAction string

const (
	ActFold             PlayerAction = "fold"
	ActCheck            PlayerAction = "check"
	ActCall             PlayerAction = "call"
	ActBet              PlayerAction = "bet"
	ActRaise            PlayerAction = "raise"
	ActAllIn            PlayerAction = "allin"
	ActDiscard          PlayerAction = "discard"
	ActDraw             PlayerAction = "draw"
	ActExpose           PlayerAction = "expose"
	ActPass             PlayerAction = "pass"
	ActDeclare          PlayerAction = "declare"
	ActReplaceCommunity PlayerAction = "replace_community"
)

// Payload carries the data a given PlayerAction needs: an amount for
// betting actions, card indexes for discard/draw/expose/replace, or a
// declaration string for Declare{kind}.
type Payload struct {
	Amount      int
	CardIndexes []int
	Declaration string
}

// LegalAction mirrors `(PlayerAction, min, max)` tuple.
type LegalAction struct {
	Action PlayerAction
	Min    int
	Max    int
}

// seatState is the interpreter's per-player bookkeeping for the hand.
type seatState struct {
	PlayerID string
	Stack    int
	Folded   bool
	AllIn    bool
	SatOut   bool
}

// drawState tracks per-player completion within one DRAWING-family step.
type drawState struct {
	completed map[string]bool
	order     []string
	cursor    int
}

// GameInstance owns one hand's worth of live state: table, deck, pot
// ledger, per-player hands, and the step cursor. It is created by the
// platform layer, reused across hands (StartHand starts the next one), and
// destroyed when the table closes.
type GameInstance struct {
	Rules    *rules.GameRules
	Table    *table.Table
	Registry *evaluator.Registry
	Logger   *log.Logger

	deckSpec deck.Options
	smallBet int
	bigBet   int
	d        *deck.Deck
	ledger   *pot.Ledger
	hands    map[string]*handcards.Hand
	communityHand *handcards.Hand

	seats map[string]*seatState
	order []string // acting order of the current (or most recent) betting round

	stepIndex int
	mode      Mode
	round     *betting.Round
	draw      *drawState

	lastActorID       string
	currentIdx        int  // index into `order` of the current actor
	bringInJustPosted bool // set by postBringIn; consumed by the next bet step's entry

	handID       string
	results      *showdown.HandResults
	declarations map[string]string // playerID -> declared kind ("hi"/"lo"/"hi_lo"), set by ActDeclare
}

// New creates a game instance over an already-seated table.
func New(r *rules.GameRules, t *table.Table, registry *evaluator.Registry, deckSpec deck.Options, logger *log.Logger) *GameInstance {
	if logger == nil {
		logger = log.Default()
	}
	return &GameInstance{
		Rules:    r,
		Table:    t,
		Registry: registry,
		Logger:   logger,
		deckSpec: deckSpec,
		smallBet: 1,
		bigBet:   2,
		hands:    make(map[string]*handcards.Hand),
		mode:     ModeIdle,
	}
}

// SetStakes configures the small/big bet units used to size blinds, antes,
// bring-ins, and limit/no-limit rounds. Defaults to 1/2 when never called.
func (g *GameInstance) SetStakes(smallBet, bigBet int) {
	g.smallBet = smallBet
	g.bigBet = bigBet
}

// StartHand deals a fresh deck, assigns positions, and runs the script
// until the first state requiring external input.
func (g *GameInstance) StartHand(handID string) error {
	g.handID = handID
	g.d = deck.New(g.deckSpec)
	g.d.Shuffle(int64(len(handID)) + 1)
	g.ledger = pot.New()
	g.hands = make(map[string]*handcards.Hand)
	g.communityHand = handcards.New()
	g.results = nil
	g.declarations = make(map[string]string)

	live := g.Table.LivePlayers()
	g.seats = make(map[string]*seatState, len(live))
	for _, id := range live {
		g.seats[id] = &seatState{PlayerID: id, Stack: g.stackOf(id)}
		g.hands[id] = handcards.New()
	}
	g.order = g.Table.FromButton()
	g.stepIndex = 0
	g.mode = ModeIdle
	return g.enterStep()
}

func (g *GameInstance) stackOf(playerID string) int {
	for _, seat := range g.Table.Seats {
		if seat.PlayerID == playerID {
			return seat.Stack
		}
	}
	return 0
}

// CurrentPlayer returns the player id whose turn it is, or "" if none
// (dealing/showdown/complete modes, or a drawing step between prompts).
func (g *GameInstance) CurrentPlayer() string {
	switch g.mode {
	case ModeBetting:
		if g.currentIdx >= 0 && g.currentIdx < len(g.order) {
			return g.order[g.currentIdx]
		}
	case ModeDrawing:
		if g.draw != nil && g.draw.cursor < len(g.draw.order) {
			return g.draw.order[g.draw.cursor]
		}
	}
	return ""
}

// liveSeats returns player ids still in the hand (not folded, not sat out).
func (g *GameInstance) liveSeats() []string {
	var ids []string
	for _, id := range g.order {
		s := g.seats[id]
		if s != nil && !s.Folded && !s.SatOut {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *GameInstance) notAllIn(ids []string) []string {
	var out []string
	for _, id := range ids {
		if !g.seats[id].AllIn {
			out = append(out, id)
		}
	}
	return out
}

func (g *GameInstance) currentStep() rules.Step {
	return g.Rules.GamePlay[g.stepIndex]
}

// ValidActions computes the legal action set for playerID at the current
// state, `valid_actions`.
func (g *GameInstance) ValidActions(playerID string) []LegalAction {
	if g.CurrentPlayer() != playerID {
		return nil
	}
	switch g.mode {
	case ModeBetting:
		return g.bettingLegalActions(playerID)
	case ModeDrawing:
		return g.drawingLegalActions()
	}
	return nil
}

func (g *GameInstance) bettingLegalActions(playerID string) []LegalAction {
	stack := g.seats[playerID].Stack
	limitUnit := g.limitUnitForStep()
	las := g.round.LegalActions(playerID, stack, limitUnit)
	out := make([]LegalAction, 0, len(las))
	for _, la := range las {
		out = append(out, LegalAction{Action: toPlayerAction(la.Action), Min: la.MinTo, Max: la.MaxTo})
	}
	return out
}

func toPlayerAction(a betting.Action) PlayerAction {
	switch a {
	case betting.Fold:
		return ActFold
	case betting.Check:
		return ActCheck
	case betting.Call:
		return ActCall
	case betting.Bet:
		return ActBet
	case betting.Raise:
		return ActRaise
	case betting.AllIn:
		return ActAllIn
	default:
		return ""
	}
}

func (g *GameInstance) limitUnitForStep() int {
	step := g.currentStep()
	if step.Bet == nil {
		return 0
	}
	switch step.Bet.Type {
	case "small":
		return g.round.SmallBet
	case "big":
		return g.round.BigBet
	}
	return 0
}

func (g *GameInstance) drawingLegalActions() []LegalAction {
	step := g.currentStep()
	switch {
	case step.Discard != nil:
		return []LegalAction{{Action: ActDiscard, Min: step.Discard.Min, Max: step.Discard.Max}}
	case step.Draw != nil:
		return []LegalAction{{Action: ActDraw, Min: step.Draw.Min, Max: step.Draw.Max}}
	case step.Expose != nil:
		return []LegalAction{{Action: ActExpose, Min: step.Expose.Cards, Max: step.Expose.Cards}}
	case step.Pass != nil:
		return []LegalAction{{Action: ActPass}}
	case step.Declare != nil:
		return []LegalAction{{Action: ActDeclare}}
	case step.ReplaceCommunity != nil:
		return []LegalAction{{Action: ActReplaceCommunity, Min: 0, Max: step.ReplaceCommunity.Count}}
	}
	return nil
}

// Hand returns a player's hand (hole cards + subsets).
func (g *GameInstance) Hand(playerID string) *handcards.Hand { return g.hands[playerID] }

// Community returns the shared community-card hand.
func (g *GameInstance) Community() *handcards.Hand { return g.communityHand }

// HandResults returns the resolved showdown, valid only once Mode() ==
// ModeComplete.
func (g *GameInstance) HandResults() (*showdown.HandResults, error) {
	if g.mode != ModeComplete {
		return nil, fmt.Errorf("interpreter: hand not complete")
	}
	return g.results, nil
}

// Mode exposes the current sub-protocol for display/debugging.
func (g *GameInstance) Mode() Mode { return g.mode }

// Cards exposes a player's raw card slice for callers building displays.
func (g *GameInstance) Cards(playerID string) []card.Card {
	if h := g.hands[playerID]; h != nil {
		return h.Cards()
	}
	return nil
}
