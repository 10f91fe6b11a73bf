// Package deck builds and deals card decks for a hand: shuffle, deal-n,
// and discard-pile mechanics for standard 52, short decks, and joker
// variants, with a seedable RNG so hands are reproducible in tests.
package deck

import (
	"fmt"
	"math/rand"

	"github.com/lox/generic-poker/internal/card"
)

// Spec names a deck construction. Build (and New) construct the
// corresponding set of cards.
type Spec string

const (
	Standard52 Spec = "standard52"
	Short36    Spec = "short36"    // 6..A, no wilds
	Short20    Spec = "short20"    // T..A only
	NoEightTen Spec = "40nocard"   // standard minus 8s, 9s and Ts (40 cards)
)

// Options configure joker/bug inclusion on top of a base Spec.
type Options struct {
	Spec        Spec
	Jokers      int // number of fully-wild jokers to add
	Bugs        int // number of bug jokers to add (wild only for straights/flushes/ace)
}

// Size returns the number of cards Build produces for the given options,
// without constructing the deck. Used by the rules loader to validate that
// a script's card demand fits the deck.
func Size(o Options) int {
	return len(Build(o))
}

// Build constructs an unshuffled deck for the given options.
func Build(o Options) []card.Card {
	var ranks []card.Rank
	switch o.Spec {
	case "", Standard52:
		ranks = ranksFrom(card.Two, card.Ace)
	case Short36:
		ranks = ranksFrom(card.Six, card.Ace)
	case Short20:
		ranks = ranksFrom(card.Ten, card.Ace)
	case NoEightTen:
		for r := card.Two; r <= card.Ace; r++ {
			if r == card.Eight || r == card.Nine || r == card.Ten {
				continue
			}
			ranks = append(ranks, r)
		}
	default:
		ranks = ranksFrom(card.Two, card.Ace)
	}

	cards := make([]card.Card, 0, len(ranks)*4+o.Jokers+o.Bugs)
	for _, suit := range []card.Suit{card.Spades, card.Hearts, card.Diamonds, card.Clubs} {
		for _, r := range ranks {
			cards = append(cards, card.New(r, suit))
		}
	}
	for i := 0; i < o.Jokers; i++ {
		cards = append(cards, card.NewWild(card.Joker, card.JokerSuit, card.FullyWild))
	}
	for i := 0; i < o.Bugs; i++ {
		cards = append(cards, card.NewWild(card.Joker, card.JokerSuit, card.Bug))
	}
	return cards
}

func ranksFrom(lo, hi card.Rank) []card.Rank {
	ranks := make([]card.Rank, 0, int(hi-lo)+1)
	for r := lo; r <= hi; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// Error reports deck exhaustion: a deal requested more cards than remain.
type Error struct {
	Requested int
	Remaining int
}

func (e *Error) Error() string {
	return fmt.Sprintf("deck: requested %d cards, only %d remain", e.Requested, e.Remaining)
}

// Deck is an ordered, stateful sequence of cards for one hand: cards not
// yet dealt, cards in play, and a discard pile. A card exists in exactly
// one of those places at all times.
type Deck struct {
	options Options
	cards   []card.Card // remaining, undealt
	discard []card.Card
	rng     *rand.Rand
}

// New builds a deck from the given options. It is unshuffled until
// Shuffle is called.
func New(o Options) *Deck {
	return &Deck{options: o, cards: Build(o)}
}

// Shuffle performs a reproducible Fisher-Yates permutation seeded by seed.
// The same seed always yields the same order for a given deck spec.
func (d *Deck) Shuffle(seed int64) {
	d.rng = rand.New(rand.NewSource(seed))
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.rng.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal pops the top n cards as an atomic batch: either all n are returned,
// or none are and a *Error is returned, leaving the deck untouched.
func (d *Deck) Deal(n int) ([]card.Card, error) {
	if n > len(d.cards) {
		return nil, &Error{Requested: n, Remaining: len(d.cards)}
	}
	dealt := make([]card.Card, n)
	copy(dealt, d.cards[:n])
	d.cards = d.cards[n:]
	return dealt, nil
}

// Discard moves cards to the discard pile. They do not re-enter the deck
// within the same hand.
func (d *Deck) Discard(cards ...card.Card) {
	d.discard = append(d.discard, cards...)
}

// Remaining returns the count of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// DiscardPile returns the cards discarded so far, in discard order.
func (d *Deck) DiscardPile() []card.Card {
	return d.discard
}

// Peek returns the next card without dealing it, for display purposes.
func (d *Deck) Peek() (card.Card, bool) {
	if len(d.cards) == 0 {
		return card.Card{}, false
	}
	return d.cards[0], true
}
