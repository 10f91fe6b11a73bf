package interpreter

import (
	"github.com/lox/generic-poker/internal/betting"
	"github.com/lox/generic-poker/internal/card"
	"github.com/lox/generic-poker/internal/rules"
	"github.com/lox/generic-poker/internal/table"
)

func newRoundFor(structure string, smallBet, bigBet, maxRaises int) *betting.Round {
	var s betting.Structure
	switch structure {
	case "Limit":
		s = betting.Limit
	case "Pot Limit":
		s = betting.PotLimit
	default:
		s = betting.NoLimit
	}
	return betting.NewRound(s, smallBet, bigBet, maxRaises)
}

// performDeal deals cards Deal{location,cards} step: to
// every live player's hand ("player"), to the shared community hand
// ("community"), or into a named subset of the community hand
// ("private_subset").
func (g *GameInstance) performDeal(step *rules.DealStep) {
	for _, batch := range step.Cards {
		vis := card.FaceDown
		if batch.State == "face up" {
			vis = card.FaceUp
		}
		switch step.Location {
		case "player":
			for _, id := range g.liveSeats() {
				dealt, err := g.d.Deal(batch.Number)
				if err != nil {
					continue
				}
				for i := range dealt {
					dealt[i].Visibility = vis
				}
				idxs := g.hands[id].Add(dealt...)
				if batch.Subset != "" {
					g.hands[id].AddToSubset(batch.Subset, idxs...)
				}
			}
		case "community":
			dealt, err := g.d.Deal(batch.Number)
			if err != nil {
				continue
			}
			for i := range dealt {
				dealt[i].Visibility = vis
			}
			idxs := g.communityHand.Add(dealt...)
			if batch.Subset != "" {
				g.communityHand.AddToSubset(batch.Subset, idxs...)
			}
		case "private_subset":
			dealt, err := g.d.Deal(batch.Number)
			if err != nil {
				continue
			}
			for i := range dealt {
				dealt[i].Visibility = vis
			}
			idxs := g.communityHand.Add(dealt...)
			if batch.Subset != "" {
				g.communityHand.AddToSubset(batch.Subset, idxs...)
			}
		}
	}
}

// postBlinds posts SB/BB from seat stacks, "Forced bets".
// Under-stacked blinds post what they have and are marked all-in.
func (g *GameInstance) postBlinds() {
	positions := g.Table.Positions()
	small, bigBet := g.resolveLimitUnits()
	if small < 1 {
		small = 1
	}

	// Heads-up: the button also posts the small blind.
	headsUp := len(positions) == 2

	blind := func(seatIdx int, amount int) {
		id := g.Table.PlayerID(seatIdx)
		s, ok := g.seats[id]
		if !ok || amount == 0 {
			return
		}
		posted := g.round.PostBlind(id, amount, s.Stack)
		s.Stack -= posted
		if posted < amount {
			s.AllIn = true
		}
	}

	for seatIdx, pos := range positions {
		switch {
		case pos == table.Button && headsUp:
			blind(seatIdx, small)
		case pos == table.SmallBlind:
			blind(seatIdx, small)
		case pos == table.BigBlind:
			blind(seatIdx, bigBet)
		}
	}
}

func (g *GameInstance) postAntes() {
	for _, id := range g.liveSeats() {
		// Ante size is carried on the round as BigBet/10 by convention
		// when a variant doesn't separately configure antes; this keeps
		// the ante step mechanical and auto-advancing
		amount := g.round.BigBet / 10
		if amount <= 0 {
			continue
		}
		s := g.seats[id]
		posted := amount
		if posted > s.Stack {
			posted = s.Stack
		}
		s.Stack -= posted
		g.ledger.Contribute(id, posted, posted < amount)
	}
}

func (g *GameInstance) postBringIn() {
	live := g.liveSeats()
	if len(live) == 0 {
		return
	}

	rule := rules.HighCard
	step := g.currentStep()
	if step.Bet != nil && step.Bet.CardRule != "" {
		rule = step.Bet.CardRule
	}
	upCards := make(map[string]card.Card, len(live))
	for _, id := range live {
		exposed := g.hands[id].Exposed()
		if len(exposed) == 0 {
			continue
		}
		upCards[id] = exposed[len(exposed)-1]
	}

	id := rules.DetermineBringIn(rule, live, upCards)
	if id == "" {
		id = live[0]
	}
	// The next betting step's acting order starts left of whoever posted
	// the bring-in, regardless of the variant's configured subsequent-round
	// order — this is stud's fixed acting order, not a "last actor" policy.
	g.lastActorID = id
	g.bringInJustPosted = true

	s := g.seats[id]
	amount := g.round.SmallBet / 2
	if amount <= 0 {
		amount = 1
	}
	posted := g.round.PostBringIn(id, amount, s.Stack)
	s.Stack -= posted
	if posted < amount {
		s.AllIn = true
	}
}
