// Package betting implements the betting engine: legal action computation
// for limit, no-limit and pot-limit, min-raise/reopen logic, forced bets,
// and betting-round completion. One state machine parameterized by
// Structure handles all three sizing regimes instead of hard-coding a
// single no-limit-like structure.
package betting

import "fmt"

// Structure is a declared betting structure.
type Structure string

const (
	Limit    Structure = "Limit"
	NoLimit  Structure = "No Limit"
	PotLimit Structure = "Pot Limit"
)

// Action is a player's choice of betting action.
type Action string

const (
	Fold  Action = "fold"
	Check Action = "check"
	Call  Action = "call"
	Bet   Action = "bet"
	Raise Action = "raise"
	AllIn Action = "allin"
)

// LegalAction describes one action a player may currently take. For sized
// actions (Bet, Raise, AllIn) MinTo/MaxTo give the legal range of "total
// committed this round" the player may raise/bet to; both are 0 for
// unsized actions (Fold, Check, Call).
type LegalAction struct {
	Action Action
	MinTo  int
	MaxTo  int
}

// Error reports an illegal bet/raise size under the active structure,
// always returned as a value, never panicked.
type Error struct {
	Structure Structure
	Reason    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("betting: illegal action under %s: %s", e.Structure, e.Reason)
}

// Round holds per-round betting state.
type Round struct {
	Structure         Structure
	CurrentBet        int
	MinRaiseIncrement int
	LastAggressor     string
	Committed         map[string]int
	HasActed          map[string]bool
	Reopened          bool

	// SmallBet/BigBet are the fixed unit sizes for Limit; BigBet also
	// seeds MinRaiseIncrement for No Limit/Pot Limit rounds.
	SmallBet int
	BigBet   int

	raises   int
	maxRaise int // cap on raises this round for Limit; 0 = uncapped
}

// NewRound starts a fresh betting round. bigBet seeds the minimum raise
// increment for No Limit/Pot Limit; smallBet/bigBet are the two Limit
// units. maxRaises is the Limit cap; pass 0 for no cap (No Limit/Pot Limit ignore it).
func NewRound(structure Structure, smallBet, bigBet, maxRaises int) *Round {
	return &Round{
		Structure:         structure,
		MinRaiseIncrement: bigBet,
		LastAggressor:     "",
		Committed:         make(map[string]int),
		HasActed:          make(map[string]bool),
		SmallBet:          smallBet,
		BigBet:            bigBet,
		maxRaise:          maxRaises,
	}
}

// Commit returns how much playerID has put in this round.
func (r *Round) Commit(playerID string) int { return r.Committed[playerID] }

// ToCall is the amount playerID still owes to match CurrentBet.
func (r *Round) ToCall(playerID string) int {
	return r.CurrentBet - r.Committed[playerID]
}

// LegalActions computes the action set for a player facing the round,
// given their stack and the structure's sizing rules.
func (r *Round) LegalActions(playerID string, stack int, limitUnit int) []LegalAction {
	c := r.Committed[playerID]
	toCall := r.CurrentBet - c
	var actions []LegalAction

	if toCall > 0 {
		actions = append(actions, LegalAction{Action: Fold})
	}

	if toCall <= 0 {
		actions = append(actions, LegalAction{Action: Check})
	} else if toCall >= stack {
		actions = append(actions, LegalAction{Action: AllIn, MinTo: c + stack, MaxTo: c + stack})
		return actions
	} else {
		actions = append(actions, LegalAction{Action: Call})
	}

	// A short all-in raise does not reopen action: a player who already
	// acted this round may only call or fold against it.
	if toCall > 0 && !r.Reopened && r.HasActed[playerID] {
		return actions
	}

	remaining := stack - max(toCall, 0)
	if remaining <= 0 {
		return actions
	}

	switch r.Structure {
	case Limit:
		if r.maxRaise > 0 && r.raises >= r.maxRaise {
			break
		}
		unit := limitUnit
		if unit == 0 {
			unit = r.BigBet
		}
		to := r.CurrentBet + unit
		if to-c > stack {
			actions = append(actions, LegalAction{Action: AllIn, MinTo: c + stack, MaxTo: c + stack})
		} else {
			action := Bet
			if r.CurrentBet > 0 {
				action = Raise
			}
			actions = append(actions, LegalAction{Action: action, MinTo: to, MaxTo: to})
		}

	case NoLimit:
		minTo := r.CurrentBet + r.MinRaiseIncrement
		if r.CurrentBet == 0 && minTo < r.BigBet {
			minTo = r.BigBet
		}
		maxTo := c + stack
		if minTo > maxTo {
			actions = append(actions, LegalAction{Action: AllIn, MinTo: maxTo, MaxTo: maxTo})
		} else {
			action := Bet
			if r.CurrentBet > 0 {
				action = Raise
			}
			actions = append(actions, LegalAction{Action: action, MinTo: minTo, MaxTo: maxTo})
		}

	case PotLimit:
		// Bets and raises are capped at the player's stack here; the pot
		// cap (PotLimitMaxTo) is not applied by LegalActions, since the
		// pot size and other players' outstanding calls are not round-local
		// state.
		minTo := r.CurrentBet + r.MinRaiseIncrement
		maxTo := c + stack
		actions = append(actions, LegalAction{Action: potLimitAction(r.CurrentBet), MinTo: minInt(minTo, maxTo), MaxTo: maxTo})
	}

	return actions
}

func potLimitAction(currentBet int) Action {
	if currentBet > 0 {
		return Raise
	}
	return Bet
}

// PotLimitMaxTo computes the pot-limit cap given the pot size and the sum
// of other players' outstanding calls.
func (r *Round) PotLimitMaxTo(playerID string, potAndCalls int) int {
	c := r.Committed[playerID]
	return r.CurrentBet + potAndCalls + (r.CurrentBet - c)
}

// ApplyBet records playerID betting/raising/going all-in to a total
// commitment of `to` this round, validating structure-specific sizing and
// updating reopen state. A raise reopens action iff its increment is at
// least MinRaiseIncrement; a short all-in raise updates CurrentBet but
// does not reopen.
func (r *Round) ApplyBet(playerID string, to int, stack int) error {
	c := r.Committed[playerID]
	if to < c {
		return &Error{r.Structure, "cannot reduce commitment"}
	}
	increment := to - r.CurrentBet
	isAllIn := to == c+stack

	if to > c+stack {
		return &Error{r.Structure, "exceeds stack"}
	}
	if r.CurrentBet > 0 && increment < 0 {
		return &Error{r.Structure, "below current bet"}
	}

	if increment >= r.MinRaiseIncrement || r.CurrentBet == 0 {
		r.Reopened = true
		r.MinRaiseIncrement = increment
		if r.MinRaiseIncrement < r.BigBet && r.CurrentBet == 0 {
			r.MinRaiseIncrement = r.BigBet
		}
		for id := range r.HasActed {
			if id != playerID {
				delete(r.HasActed, id)
			}
		}
		if r.CurrentBet > 0 {
			r.raises++
		}
	} else if isAllIn {
		r.Reopened = false
	} else {
		return &Error{r.Structure, "raise below minimum increment"}
	}

	r.CurrentBet = to
	r.Committed[playerID] = to
	r.LastAggressor = playerID
	r.HasActed[playerID] = true
	return nil
}

// ApplyCall records playerID matching CurrentBet (or going all-in short of
// it, which never reopens action).
func (r *Round) ApplyCall(playerID string, stack int) {
	c := r.Committed[playerID]
	to := r.CurrentBet
	if to-c > stack {
		to = c + stack
	}
	r.Committed[playerID] = to
	r.HasActed[playerID] = true
}

// ApplyCheck records a no-cost pass.
func (r *Round) ApplyCheck(playerID string) {
	r.HasActed[playerID] = true
}

// IsComplete reports whether the round is over: every live, non-all-in
// player has acted since the last reopening and matches CurrentBet. The
// big-blind-option rule (preflop action stays open for the BB even when
// no one has raised) falls out naturally: the interpreter simply leaves
// the BB's HasActed entry unset until they actually act, rather than
// pre-marking it when the blind is posted.
func (r *Round) IsComplete(live []string, allIn map[string]bool) bool {
	for _, id := range live {
		if allIn[id] {
			continue
		}
		if r.Committed[id] != r.CurrentBet {
			return false
		}
		if !r.HasActed[id] {
			return false
		}
	}
	return true
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
