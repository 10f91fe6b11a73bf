package betting

// PostBlind commits a small or big blind from a player's stack. An
// under-stacked blind posts whatever the player has and the caller is
// expected to mark that player all-in.
// Returns the amount actually posted.
func (r *Round) PostBlind(playerID string, amount, stack int) int {
	posted := amount
	if posted > stack {
		posted = stack
	}
	r.Committed[playerID] = posted
	if posted > r.CurrentBet {
		r.CurrentBet = posted
	}
	return posted
}

// PostAnte commits an ante, which does not count toward CurrentBet and
// never opens action.
// Antes are tracked by the caller's pot ledger, not by the round.
func (r *Round) PostAnte() {}

// PostBringIn commits the stud forced first bet for the player holding the
// qualifying card, per CardRule. The bring-in sets CurrentBet to the
// bring-in amount without counting as a raise; the player may instead
// "complete" to the small-bet level, which is handled by a subsequent
// ApplyBet call to SmallBet.
func (r *Round) PostBringIn(playerID string, amount, stack int) int {
	posted := amount
	if posted > stack {
		posted = stack
	}
	r.Committed[playerID] = posted
	r.CurrentBet = posted
	r.HasActed[playerID] = true
	return posted
}
