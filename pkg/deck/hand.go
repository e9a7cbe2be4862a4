package deck

import (
	"sort"
	"strings"
)

// Hand represents a collection of cards held by a single player.
// It is a multiset: the two merged decks mean a hand can legitimately hold two
// copies of the same card, and removal only ever takes one matching instance.
type Hand []*Card

// AddCard adds a card to the hand
func (h *Hand) AddCard(card *Card) {
	*h = append(*h, card)
}

// RemoveCard removes exactly one card equal to the one specified.
// It returns false if no matching card was found.
func (h *Hand) RemoveCard(card *Card) bool {
	for i, c := range *h {
		if c.Equal(card) {
			*h = append((*h)[:i], (*h)[i+1:]...)
			return true
		}
	}

	return false
}

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card *Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// ContainsAll returns true if the hand holds every specified card with at
// least the multiplicity it appears with in cards.
func (h Hand) ContainsAll(cards []*Card) bool {
	remaining := h.Clone()
	for _, card := range cards {
		if !remaining.RemoveCard(card) {
			return false
		}
	}

	return true
}

// Sort stably reorders the hand for display.
// bySuit sorts by (suit, rank); otherwise by (rank, suit). Jokers sort last
// either way. Ordering has no effect on game legality.
func (h Hand) Sort(bySuit bool) {
	sort.SliceStable(h, func(i, j int) bool {
		a, b := h[i], h[j]
		if a.IsJoker() != b.IsJoker() {
			return b.IsJoker()
		}

		if bySuit {
			if cmp := strings.Compare(string(a.Suit), string(b.Suit)); cmp != 0 {
				return cmp < 0
			}

			return a.Rank < b.Rank
		}

		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}

		return strings.Compare(string(a.Suit), string(b.Suit)) < 0
	})
}

// Clone returns a shallow clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

func (h Hand) String() string {
	return CardsToString(h)
}
