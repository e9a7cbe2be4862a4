package zoliky

import (
	"zoliky-engine/pkg/deck"
)

// Set and sequence validation plus scoring for Žolíky combinations. These are
// pure functions; the table and the initial-meld gate both build on them.

const (
	minSetSize      = 3
	maxSetSize      = 4
	minSequenceSize = 3
)

// IsValidSet returns true if the cards form a valid set: 3 or 4 cards of one
// rank with pairwise-distinct suits. Jokers stand in for any missing suit, and
// an all-joker group counts as a set.
func IsValidSet(cards []*deck.Card) bool {
	if len(cards) < minSetSize || len(cards) > maxSetSize {
		return false
	}

	nonJokers := withoutJokers(cards)
	if len(nonJokers) == 0 {
		return true
	}

	rank := nonJokers[0].Rank
	suits := make(map[deck.Suit]bool)
	for _, c := range nonJokers {
		if c.Rank != rank {
			return false
		}

		// a duplicate suit would mean two identical cards in one set
		if suits[c.Suit] {
			return false
		}
		suits[c.Suit] = true
	}

	return true
}

// IsValidSequence returns true if the cards form a valid sequence: at least 3
// same-suit cards of consecutive rank, with jokers filling any gaps. The Ace
// may run low (below 2) or high (above King); both interpretations are tried
// and either one passing makes the sequence valid.
func IsValidSequence(cards []*deck.Card) bool {
	if len(cards) < minSequenceSize {
		return false
	}

	nonJokers := withoutJokers(cards)
	if len(nonJokers) <= 1 {
		return true
	}

	suit := nonJokers[0].Suit
	for _, c := range nonJokers {
		if c.Suit != suit {
			return false
		}
	}

	if hasAce(nonJokers) {
		return checkSequence(cards, true) || checkSequence(cards, false)
	}

	return checkSequence(cards, false)
}

// checkSequence verifies contiguity under a single Ace interpretation: sorted
// non-joker values must be strictly increasing, and the internal gaps must be
// coverable by the available jokers.
func checkSequence(cards []*deck.Card, aceLow bool) bool {
	values := sortedValues(cards, aceLow)
	jokers := len(cards) - len(values)

	jokersNeeded := 0
	for i := 0; i < len(values)-1; i++ {
		// equal values mean a duplicate card, which no interpretation allows
		if values[i+1] <= values[i] {
			return false
		}

		jokersNeeded += values[i+1] - values[i] - 1
	}

	return jokersNeeded <= jokers
}

// CalculatePoints returns the point value of the combination, or 0 if it is
// neither a valid set nor a valid sequence.
//
// Sets score their rank's point value per card. Sequences score the contiguous
// range spanned by the non-jokers, with leftover jokers extending whichever
// open end is worth more (ties extend high). If both Ace interpretations
// validate, the higher-scoring one wins. An all-joker sequence has no
// determinable range and scores a flat 10 per card.
func CalculatePoints(cards []*deck.Card) int {
	if IsValidSet(cards) {
		rank := deck.Ace // all jokers score as a set of aces
		if nonJokers := withoutJokers(cards); len(nonJokers) > 0 {
			rank = nonJokers[0].Rank
		}

		perCard := rank
		if rank >= 10 {
			perCard = 10
		}

		return len(cards) * perCard
	}

	if IsValidSequence(cards) {
		return sequencePoints(cards)
	}

	return 0
}

func sequencePoints(cards []*deck.Card) int {
	nonJokers := withoutJokers(cards)
	if len(nonJokers) == 0 {
		return len(cards) * 10
	}

	best := -1
	for _, aceLow := range []bool{false, true} {
		if !checkSequence(cards, aceLow) {
			continue
		}

		if points := sequencePointsWith(cards, aceLow); points > best {
			best = points
		}
	}

	if best < 0 {
		return 0
	}

	return best
}

// sequencePointsWith scores the sequence under a fixed Ace interpretation.
// The caller has already verified validity under that interpretation.
func sequencePointsWith(cards []*deck.Card, aceLow bool) int {
	values := sortedValues(cards, aceLow)

	low, high := values[0], values[len(values)-1]
	points := 0
	for v := low; v <= high; v++ {
		points += pointValue(v)
	}

	// jokers beyond the internal gaps float to the richer open end
	span := high - low + 1
	floating := len(cards) - len(values) - (span - len(values))

	for i := 0; i < floating; i++ {
		up, down := -1, -1
		if high+1 <= deck.HighAce {
			up = pointValue(high + 1)
		}
		if low-1 >= deck.LowAce {
			down = pointValue(low - 1)
		}

		switch {
		case up >= down && up != -1:
			points += up
			high++
		case down != -1:
			points += down
			low--
		}
	}

	return points
}

// CanMeld is the initial-meld gate. Every combination must independently be a
// valid set or sequence, the combined points must reach minimumPoints, and at
// least one combination must be a sequence containing no jokers.
func CanMeld(combinations [][]*deck.Card, minimumPoints int) bool {
	totalPoints := 0
	hasPureSequence := false

	for _, combo := range combinations {
		isSet := IsValidSet(combo)
		isSequence := IsValidSequence(combo)

		if !isSet && !isSequence {
			return false
		}

		totalPoints += CalculatePoints(combo)

		if isSequence && len(withoutJokers(combo)) == len(combo) {
			hasPureSequence = true
		}
	}

	return totalPoints >= minimumPoints && hasPureSequence
}

func withoutJokers(cards []*deck.Card) []*deck.Card {
	nonJokers := make([]*deck.Card, 0, len(cards))
	for _, c := range cards {
		if !c.IsJoker() {
			nonJokers = append(nonJokers, c)
		}
	}

	return nonJokers
}

func hasAce(cards []*deck.Card) bool {
	for _, c := range cards {
		if c.Rank == deck.Ace {
			return true
		}
	}

	return false
}

// sortedValues returns the non-joker rank values in ascending order under the
// given Ace interpretation.
func sortedValues(cards []*deck.Card, aceLow bool) []int {
	values := make([]int, 0, len(cards))
	for _, c := range cards {
		if c.IsJoker() {
			continue
		}

		v := c.Rank
		if aceLow {
			v = c.AceLowRank()
		}
		values = append(values, v)
	}

	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}

	return values
}

// pointValue converts a 1..14 rank value to its score: low Ace 1, high Ace 11,
// face cards 10, everything else face value.
func pointValue(v int) int {
	switch {
	case v == deck.LowAce:
		return 1
	case v == deck.HighAce:
		return 11
	case v >= deck.Jack:
		return 10
	default:
		return v
	}
}
