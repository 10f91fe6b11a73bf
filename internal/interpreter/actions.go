package interpreter

// Act is the public dispatch entry point, `player_action`.
// It checks that the caller is the current player and the action is
// legal, applies the state mutation (or returns ok=false with no mutation
// — "no partial action commits", ), and auto-advances the
// script when the resulting state has no further discretionary choice.
func (g *GameInstance) Act(playerID string, action PlayerAction, payload Payload) (ActionResult, error) {
	if g.CurrentPlayer() != playerID {
		return ActionResult{OK: false, Reason: "not your turn"}, nil
	}
	legal := g.ValidActions(playerID)
	var matched *LegalAction
	for i := range legal {
		if legal[i].Action == action {
			matched = &legal[i]
			break
		}
	}
	if matched == nil {
		return ActionResult{OK: false, Reason: "action not legal in current state"}, nil
	}

	switch g.mode {
	case ModeBetting:
		return g.applyBettingAction(playerID, action, payload, *matched)
	case ModeDrawing:
		return g.applyDrawingAction(playerID, action, payload, *matched)
	}
	return ActionResult{OK: false, Reason: "no action pending"}, nil
}

func (g *GameInstance) applyBettingAction(playerID string, action PlayerAction, payload Payload, legal LegalAction) (ActionResult, error) {
	s := g.seats[playerID]
	before := g.round.Commit(playerID)

	switch action {
	case ActFold:
		s.Folded = true
	case ActCheck:
		g.round.ApplyCheck(playerID)
	case ActCall:
		g.round.ApplyCall(playerID, s.Stack)
		s.Stack -= g.round.Commit(playerID) - before
		if s.Stack <= 0 {
			s.AllIn = true
		}
	case ActAllIn:
		// An all-in that falls short of CurrentBet is an uncalled short
		// call, not a raise: ApplyBet would reject it ("below current
		// bet"). Route it through ApplyCall so the all-in stays reachable
		// through the public action API (spec §8 scenario 4).
		if legal.Max < g.round.CurrentBet {
			g.round.ApplyCall(playerID, s.Stack)
		} else {
			to := payload.Amount
			if to < legal.Min {
				to = legal.Min
			}
			if legal.Max > 0 && to > legal.Max {
				to = legal.Max
			}
			if err := g.round.ApplyBet(playerID, to, s.Stack); err != nil {
				return ActionResult{OK: false, Reason: err.Error()}, nil
			}
		}
		s.Stack -= g.round.Commit(playerID) - before
		if s.Stack <= 0 {
			s.AllIn = true
		}
	case ActBet, ActRaise:
		to := payload.Amount
		if to < legal.Min {
			to = legal.Min
		}
		if legal.Max > 0 && to > legal.Max {
			to = legal.Max
		}
		if err := g.round.ApplyBet(playerID, to, s.Stack); err != nil {
			return ActionResult{OK: false, Reason: err.Error()}, nil
		}
		s.Stack -= g.round.Commit(playerID) - before
		if s.Stack <= 0 {
			s.AllIn = true
		}
	default:
		return ActionResult{OK: false, Reason: "unsupported action"}, nil
	}

	g.currentIdx++
	g.advanceToNextActor()
	if g.mode == ModeIdle {
		// The round closed (closeBettingRound already ran); move past this
		// bet step before resuming the script, mirroring enterStep's own
		// auto-advance increment.
		g.stepIndex++
		if err := g.enterStep(); err != nil {
			return ActionResult{}, err
		}
	}
	return ActionResult{OK: true, AdvanceStep: true}, nil
}
