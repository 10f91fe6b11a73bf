package interpreter

import "github.com/lox/generic-poker/internal/card"

// applyDrawingAction handles one player's submission within a DRAWING-
// family step (discard, draw, expose, pass, declare, replaceCommunity),
//: each live player submits exactly once in the
// configured order, and the step completes once players_completed
// equals the live set.
func (g *GameInstance) applyDrawingAction(playerID string, action PlayerAction, payload Payload, legal LegalAction) (ActionResult, error) {
	step := g.currentStep()
	hand := g.hands[playerID]

	switch action {
	case ActDiscard:
		if len(payload.CardIndexes) < legal.Min || len(payload.CardIndexes) > legal.Max {
			return ActionResult{OK: false, Reason: "discard count out of range"}, nil
		}
		discarded := make([]card.Card, 0, len(payload.CardIndexes))
		for _, idx := range payload.CardIndexes {
			discarded = append(discarded, hand.At(idx))
		}
		g.d.Discard(discarded...)

	case ActDraw:
		n := len(payload.CardIndexes)
		if n < legal.Min || n > legal.Max {
			return ActionResult{OK: false, Reason: "draw count out of range"}, nil
		}
		dealt, err := g.d.Deal(n)
		if err != nil {
			return ActionResult{OK: false, Reason: err.Error()}, nil
		}
		for i, idx := range payload.CardIndexes {
			hand.Set(idx, dealt[i])
		}

	case ActExpose:
		for _, idx := range payload.CardIndexes {
			hand.Expose(idx)
		}

	case ActPass:
		// Hand-passing to a neighbor is resolved by the platform layer
		// (it knows seat adjacency in player-id space); the interpreter
		// only records completion here.

	case ActDeclare:
		// Record the declared kind (e.g. "hi", "lo", "hi_lo"); the showdown
		// resolver restricts this player to HandRules whose Name matches
		// what they declared.
		g.declarations[playerID] = payload.Declaration

	case ActReplaceCommunity:
		rc := step.ReplaceCommunity
		n := len(payload.CardIndexes)
		if n > rc.Count {
			return ActionResult{OK: false, Reason: "replace count exceeds step limit"}, nil
		}
		discarded := make([]card.Card, 0, n)
		dealt, err := g.d.Deal(n)
		if err != nil {
			return ActionResult{OK: false, Reason: err.Error()}, nil
		}
		for i, idx := range payload.CardIndexes {
			discarded = append(discarded, g.communityHand.At(idx))
			g.communityHand.Set(idx, dealt[i])
		}
		g.d.Discard(discarded...)

	default:
		return ActionResult{OK: false, Reason: "unsupported action"}, nil
	}

	g.draw.completed[playerID] = true
	g.draw.cursor++
	if g.draw.cursor >= len(g.draw.order) {
		g.mode = ModeIdle
		g.stepIndex++
		if err := g.enterStep(); err != nil {
			return ActionResult{}, err
		}
	}
	return ActionResult{OK: true, AdvanceStep: true}, nil
}
