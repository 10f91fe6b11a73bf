package rules

import "github.com/lox/generic-poker/internal/card"

// suitBringInOrder is the traditional stud bring-in suit ranking used to
// break ties between two players holding the same rank up-card: clubs
// lowest, spades highest. High-card CardRules use the same order so the
// highest suit wins ties; low-card CardRules use it so the lowest suit
// loses ties (i.e. brings in).
var suitBringInOrder = map[card.Suit]int{
	card.Clubs:    0,
	card.Diamonds: 1,
	card.Hearts:   2,
	card.Spades:   3,
}

// bringInValue scores a card for the given CardRule: lower is "more low"
// for the low-card rules, higher is "more high" for the high-card rules (the
// caller picks min or max accordingly). Ace is treated as rank 1 for the
// ace-low variants and as rank 14 otherwise.
func bringInValue(c card.Card, rule CardRule) int {
	rank := int(c.Rank)
	switch rule {
	case LowCardAceLow:
		if c.Rank == card.Ace {
			rank = 1
		}
	case HighCardAceHi, HighCardAceHiWild:
		if c.Rank == card.Ace {
			rank = int(card.Ace) + 1
		}
	case LowCard:
		// Ace stays high (14) under plain "low card": it's the worst low
		// card, never the bring-in, unless LowCardAceLow is specified.
	}
	return rank*10 + suitBringInOrder[c.Suit]
}

// DetermineBringIn picks the forced bettor among playerIDs given each
// player's single qualifying up-card. Low-card rules select the
// lowest-scoring card (ties broken toward the lowest suit); high-card rules
// select the highest (ties broken toward the highest suit). Returns "" if
// upCards is empty.
func DetermineBringIn(rule CardRule, order []string, upCards map[string]card.Card) string {
	if len(order) == 0 {
		return ""
	}
	best := ""
	bestScore := 0
	low := rule == LowCard || rule == LowCardAceLow
	for _, id := range order {
		c, ok := upCards[id]
		if !ok {
			continue
		}
		score := bringInValue(c, rule)
		switch {
		case best == "":
			best, bestScore = id, score
		case low && score < bestScore:
			best, bestScore = id, score
		case !low && score > bestScore:
			best, bestScore = id, score
		}
	}
	return best
}
