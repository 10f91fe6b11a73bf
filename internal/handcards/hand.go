// Package handcards holds a single player's cards for a hand: an ordered
// sequence (display order) plus named subsets ("high", "low", "exposed",
// ...) that reference cards by index. A card may belong to zero or more
// subsets at once, mirroring how stud and hi/lo variants tag the same
// physical cards for more than one showdown board.
package handcards

import "github.com/lox/generic-poker/internal/card"

// Hand is one player's cards for the current poker hand.
type Hand struct {
	cards   []card.Card
	subsets map[string][]int // subset name -> indexes into cards
}

// New returns an empty hand.
func New() *Hand {
	return &Hand{subsets: make(map[string][]int)}
}

// Add appends cards to the hand in display order and returns their indexes.
func (h *Hand) Add(cards ...card.Card) []int {
	idxs := make([]int, len(cards))
	for i, c := range cards {
		idxs[i] = len(h.cards)
		h.cards = append(h.cards, c)
	}
	return idxs
}

// Cards returns the hand's cards in display order.
func (h *Hand) Cards() []card.Card {
	return h.cards
}

// At returns the card at index i.
func (h *Hand) At(i int) card.Card {
	return h.cards[i]
}

// Set replaces the card at index i, used by replace-community and
// discard/draw steps.
func (h *Hand) Set(i int, c card.Card) {
	h.cards[i] = c
}

// Expose flips the card at index i face up in place.
func (h *Hand) Expose(i int) {
	h.cards[i] = h.cards[i].Expose()
}

// AddToSubset tags existing card indexes as members of the named subset.
func (h *Hand) AddToSubset(name string, idxs ...int) {
	h.subsets[name] = append(h.subsets[name], idxs...)
}

// Subset returns the cards tagged with name, in the order they were added.
func (h *Hand) Subset(name string) []card.Card {
	idxs := h.subsets[name]
	cards := make([]card.Card, len(idxs))
	for i, idx := range idxs {
		cards[i] = h.cards[idx]
	}
	return cards
}

// SubsetIndexes returns the raw indexes tagged with name.
func (h *Hand) SubsetIndexes(name string) []int {
	return h.subsets[name]
}

// HasSubset reports whether name has any tagged cards.
func (h *Hand) HasSubset(name string) bool {
	return len(h.subsets[name]) > 0
}

// Len returns the number of cards held.
func (h *Hand) Len() int {
	return len(h.cards)
}

// Clear empties the hand and all of its subsets.
func (h *Hand) Clear() {
	h.cards = nil
	h.subsets = make(map[string][]int)
}

// Exposed returns the subset of cards currently face up, in display order.
func (h *Hand) Exposed() []card.Card {
	var out []card.Card
	for _, c := range h.cards {
		if c.Visibility == card.FaceUp {
			out = append(out, c)
		}
	}
	return out
}
