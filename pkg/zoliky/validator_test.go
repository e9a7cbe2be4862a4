package zoliky

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zoliky-engine/pkg/deck"
)

func cards(s string) []*deck.Card {
	return deck.CardsFromString(s)
}

func TestIsValidSet(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"14h,14d,14c", true},
		{"14h,14d,14c,14s", true},
		{"5c,5d,5h", true},
		{"5c,5d,5h,5s", true},

		// jokers substitute for any missing suit
		{"5c,5d,jk", true},
		{"5c,jk,jk", true},
		{"5c,5d,5h,jk", true},
		{"5c,jk,jk,jk", true},
		{"jk,jk,jk", true},
		{"jk,jk,jk,jk", true},

		// wrong size
		{"5c,5d", false},
		{"5c,jk", false},
		{"5c,5d,5h,5s,jk", false},

		// mixed ranks
		{"5c,5d,6h", false},
		{"5c,6d,jk", false},

		// duplicate suit means two identical cards in one set
		{"5c,5c,5d", false},
		{"5c,5c,jk", false},
		{"5c,5d,5h,5h", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidSet(cards(tt.cards)), "IsValidSet(%s)", tt.cards)
	}
}

func TestIsValidSequence(t *testing.T) {
	tests := []struct {
		cards string
		want  bool
	}{
		{"2c,3c,4c", true},
		{"5h,6h,7h,8h,9h", true},

		// ace low and ace high, but no wrap-around
		{"14c,2c,3c", true},
		{"12s,13s,14s", true},
		{"13s,14s,2s", false},

		// jokers fill gaps
		{"7d,jk,9d", true},
		{"7d,jk,jk,10d", true},
		{"7d,jk,10d", false},
		{"2c,jk,3c", true}, // joker floats to an open end

		// too short
		{"2c,3c", false},
		{"2c,jk", false},

		// mixed suits
		{"2c,3d,4c", false},

		// a duplicate card can never sit in a run
		{"7d,7d,8d", false},

		// one or zero non-jokers is trivially contiguous
		{"jk,jk,2c", true},
		{"jk,jk,jk", true},

		// order of the input never matters
		{"9d,7d,jk", true},
		{"3c,14c,2c", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidSequence(cards(tt.cards)), "IsValidSequence(%s)", tt.cards)
	}
}

// every subset of a run may be replaced by jokers, as long as at least one
// real card remains
func TestIsValidSequence_jokerSubstitution(t *testing.T) {
	run := cards("5h,6h,7h,8h,9h")
	joker := deck.CardFromString("jk")

	for mask := 0; mask < 1<<len(run); mask++ {
		combo := make([]*deck.Card, len(run))
		replaced := 0
		for i, c := range run {
			if mask&(1<<i) != 0 {
				combo[i] = joker
				replaced++
			} else {
				combo[i] = c
			}
		}

		if replaced == len(run) {
			continue
		}

		assert.True(t, IsValidSequence(combo), "mask %b should be valid", mask)
	}

	// a gap with no joker left to fill it breaks the run
	assert.False(t, IsValidSequence(cards("5h,6h,8h,9h,11h")))
}

func TestCalculatePoints_sets(t *testing.T) {
	tests := []struct {
		cards string
		want  int
	}{
		{"14h,14d,14c", 30},
		{"14h,14d,14c,14s", 40},
		{"10c,10d,10h", 30},
		{"13c,13d,13h", 30},
		{"5c,5d,5h", 15},
		{"5c,5d,5h,5s", 20},
		{"2c,2d,jk", 6},

		// jokers take the rank of the set; all jokers score as aces
		{"5c,5d,jk", 15},
		{"jk,jk,jk", 30},
		{"jk,jk,jk,jk", 40},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculatePoints(cards(tt.cards)), "CalculatePoints(%s)", tt.cards)
	}
}

func TestCalculatePoints_sequences(t *testing.T) {
	tests := []struct {
		cards string
		want  int
	}{
		{"14c,2c,3c", 6},    // ace low
		{"12s,13s,14s", 31}, // ace high
		{"7d,jk,9d", 24},    // joker fills the gap
		{"5h,6h,7h", 18},

		// floating jokers extend the richer end
		{"5h,6h,jk", 18},       // 5,6,7 beats 4,5,6
		{"13h,14h,jk", 31},     // nothing above the ace, extend down to the queen
		{"2c,3c,jk", 9},        // extending up beats the low ace
		{"jk,10d,11d,12d", 40}, // extends high to the king
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculatePoints(cards(tt.cards)), "CalculatePoints(%s)", tt.cards)
	}
}

func TestCalculatePoints_invalid(t *testing.T) {
	assert.Equal(t, 0, CalculatePoints(cards("2c,3c")))
	assert.Equal(t, 0, CalculatePoints(cards("2c,3d,4c")))
	assert.Equal(t, 0, CalculatePoints(cards("5c,5d,6h")))
	assert.Equal(t, 0, CalculatePoints(nil))
}

func TestSequencePoints_allJokers(t *testing.T) {
	// no determinable range; flat 10 per card
	assert.Equal(t, 30, sequencePoints(cards("jk,jk,jk")))
}

func TestCanMeld(t *testing.T) {
	a := assert.New(t)

	// two pure sequences worth 60
	a.True(CanMeld([][]*deck.Card{
		cards("10h,11h,12h"),
		cards("10s,11s,12s"),
	}, DefaultInitialMeldPoints))

	// enough points but no pure sequence
	a.False(CanMeld([][]*deck.Card{
		cards("14h,14d,14c"),
		cards("13h,13d,13c"),
	}, DefaultInitialMeldPoints))

	// a joker taints the only sequence
	a.False(CanMeld([][]*deck.Card{
		cards("10h,jk,12h"),
		cards("14h,14d,14c"),
	}, DefaultInitialMeldPoints))

	// pure sequence but short of the minimum
	a.False(CanMeld([][]*deck.Card{
		cards("2c,3c,4c"),
	}, DefaultInitialMeldPoints))

	// a single invalid combination sinks everything
	a.False(CanMeld([][]*deck.Card{
		cards("10h,11h,12h"),
		cards("10s,11s,12s"),
		cards("2c,9d"),
	}, DefaultInitialMeldPoints))

	// the threshold is configurable
	a.True(CanMeld([][]*deck.Card{cards("10h,11h,12h")}, 30))
	a.False(CanMeld([][]*deck.Card{cards("10h,11h,12h")}, 31))

	a.False(CanMeld(nil, DefaultInitialMeldPoints))
}
