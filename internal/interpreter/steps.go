package interpreter

import (
	"fmt"

	"github.com/lox/generic-poker/internal/rules"
	"github.com/lox/generic-poker/internal/showdown"
)

// enterStep converts into the current step's mode and runs auto-advance until a state
// needing external input is reached, or the script ends.
func (g *GameInstance) enterStep() error {
	for {
		if g.stepIndex >= len(g.Rules.GamePlay) {
			g.mode = ModeComplete
			return nil
		}
		if len(g.liveSeats()) <= 1 {
			return g.resolveByFold()
		}
		step := g.currentStep()
		g.Logger.Debug("entering step", "hand_id", g.handID, "index", g.stepIndex, "kind", step.Kind(), "name", step.Name)
		switch step.Kind() {
		case "bet":
			if g.enterBetting(step.Bet) {
				return nil
			}
		case "deal":
			g.performDeal(step.Deal)
		case "draw", "discard", "expose", "pass", "declare", "replaceCommunity":
			if g.enterDrawing() {
				return nil
			}
		case "showdown":
			return g.runShowdown(step.Showdown)
		case "grouped":
			for _, sub := range step.Grouped.Actions {
				g.performSubStep(sub)
			}
		default:
			return fmt.Errorf("interpreter: unknown step kind at index %d", g.stepIndex)
		}
		g.stepIndex++
	}
}

func (g *GameInstance) performSubStep(s rules.Step) {
	switch s.Kind() {
	case "deal":
		g.performDeal(s.Deal)
	}
}

// enterBetting sets up a betting round. Forced-bet steps (blinds, antes,
// bring_in) are mechanical and auto-advance; true BETTING steps return
// true to pause for player input.
func (g *GameInstance) enterBetting(bet *rules.BetStep) bool {
	structure := g.resolveStructure()
	smallBet, bigBet := g.resolveLimitUnits()
	maxRaises := 0
	if structure == "Limit" {
		maxRaises = 3
	}
	// A betting step immediately following a bring_in continues that same
	// round (the bring-in's forced commitment is the first wager of this
	// round, not a separate one) rather than starting a fresh Round that
	// would silently drop it.
	if !g.bringInJustPosted {
		g.round = newRoundFor(structure, smallBet, bigBet, maxRaises)
	}

	switch bet.Type {
	case "blinds":
		g.postBlinds()
		g.order = g.toIDs(g.Table.FirstToActPreflop())
		g.currentIdx = 0
		g.advanceToNextActor()
		return len(g.liveSeats()) > 0 && g.mode == ModeBetting
	case "antes":
		g.postAntes()
		return false
	case "bring_in":
		g.postBringIn()
		return false
	default:
		// small / big / pot_limit / no_limit: an ordinary betting round.
		if g.bringInJustPosted {
			g.order = rotateAfter(g.Table.LivePlayers(), g.lastActorID)
			g.bringInJustPosted = false
		} else {
			g.order = g.actingOrderForRound()
		}
		g.currentIdx = 0
		g.mode = ModeBetting
		g.advanceToNextActor()
		return g.mode == ModeBetting
	}
}

func (g *GameInstance) resolveStructure() string {
	if len(g.Rules.BettingStructures) > 0 {
		return string(g.Rules.BettingStructures[0])
	}
	return "No Limit"
}

func (g *GameInstance) resolveLimitUnits() (small, big int) {
	return g.smallBet, g.bigBet
}

// advanceToNextActor skips folded/all-in seats and pauses when the round
// is betting-complete or only one seat remains; preflop passes through
// the big-blind-option rule by leaving that seat's HasActed unset.
func (g *GameInstance) advanceToNextActor() {
	live := g.liveSeats()
	if len(live) <= 1 {
		// Folds took the round down to a single survivor: settle it now
		// rather than waiting on an action that player has no reason to
		// make. enterStep's own liveSeats<=1 check resolves the hand by
		// fold once the script reaches the next step.
		g.closeBettingRound()
		return
	}
	allIn := make(map[string]bool)
	for _, id := range live {
		allIn[id] = g.seats[id].AllIn
	}
	if g.round.IsComplete(live, allIn) {
		g.closeBettingRound()
		return
	}
	for range g.order {
		g.currentIdx %= len(g.order)
		id := g.order[g.currentIdx]
		s := g.seats[id]
		if s.Folded || s.AllIn {
			g.currentIdx++
			continue
		}
		g.mode = ModeBetting
		return
	}
	g.closeBettingRound()
}

func (g *GameInstance) closeBettingRound() {
	live := g.liveSeats()
	// Fold into the ledger every seat that committed this round, folded
	// players included: a player who posted chips before folding leaves
	// them in the pot, and omitting them here would make the chips vanish
	// from both the pot and the contribution ledger.
	for id := range g.seats {
		c := g.round.Commit(id)
		if c > 0 {
			g.ledger.Contribute(id, c, g.seats[id].AllIn)
		}
	}
	if len(live) > 0 {
		if back := g.ledger.ReturnUncalled(g.round.LastAggressor, live); back > 0 {
			g.seats[g.round.LastAggressor].Stack += back
		}
	}
	g.ledger.SettleRound(live, g.foldedSeats())
	g.lastActorID = g.round.LastAggressor
	g.mode = ModeIdle
}

func (g *GameInstance) foldedSeats() []string {
	var ids []string
	for id, s := range g.seats {
		if s.Folded {
			ids = append(ids, id)
		}
	}
	return ids
}

func (g *GameInstance) actingOrderForRound() []string {
	if g.Rules.BettingOrder.Subsequent == "last_actor" && g.lastActorID != "" {
		return rotateAfter(g.Table.LivePlayers(), g.lastActorID)
	}
	return g.toIDs(g.Table.FromLeftOfDealer())
}

// toIDs converts a slice of table seat indexes into player ids.
func (g *GameInstance) toIDs(seats []int) []string {
	ids := make([]string, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, g.Table.PlayerID(s))
	}
	return ids
}

func rotateAfter(ids []string, after string) []string {
	idx := -1
	for i, id := range ids {
		if id == after {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ids
	}
	out := make([]string, 0, len(ids))
	for i := 1; i <= len(ids); i++ {
		out = append(out, ids[(idx+i)%len(ids)])
	}
	return out
}

// enterDrawing sets up a DRAWING-family step's players_completed tracking.
// A replaceCommunity step's Order/StartingFrom fields name an acting order
// the same way a bet step's bettingOrder does; every other DRAWING-family
// step uses plain live-player order.
func (g *GameInstance) enterDrawing() bool {
	order := g.liveSeats()
	if rc := g.currentStep().ReplaceCommunity; rc != nil {
		order = g.replaceCommunityOrder(rc)
	}
	g.draw = &drawState{completed: make(map[string]bool), order: order}
	g.mode = ModeDrawing
	return len(order) > 0
}

// replaceCommunityOrder resolves a ReplaceCommunityStep's declared acting
// order. "clockwise" starting "left_of_dealer" (the values the loaded
// variant files use) walks the table from left of the button; anything
// else (including unset) falls back to plain live-player order.
func (g *GameInstance) replaceCommunityOrder(rc *rules.ReplaceCommunityStep) []string {
	if rc.Order != "clockwise" || rc.StartingFrom != "left_of_dealer" {
		return g.liveSeats()
	}
	live := make(map[string]bool, len(g.seats))
	for _, id := range g.liveSeats() {
		live[id] = true
	}
	var ordered []string
	for _, id := range g.toIDs(g.Table.FromLeftOfDealer()) {
		if live[id] {
			ordered = append(ordered, id)
		}
	}
	return ordered
}

func (g *GameInstance) resolveByFold() error {
	live := g.liveSeats()
	g.ledger.SettleRound(live, g.foldedSeats())
	var err error
	g.results, err = showdown.ResolveFold(g.ledger, live, g.handID)
	g.mode = ModeComplete
	return err
}

func (g *GameInstance) runShowdown(spec *rules.ShowdownStep) error {
	live := g.liveSeats()
	var err error
	g.results, err = showdown.Resolve(showdown.Input{
		Ledger:       g.ledger,
		LivePlayers:  live,
		Hands:        g.hands,
		Community:    g.communityHand,
		Spec:         &g.Rules.Showdown,
		Registry:     g.Registry,
		HandID:       g.handID,
		Declarations: g.declarations,
	})
	g.mode = ModeComplete
	return err
}
