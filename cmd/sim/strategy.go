package main

import (
	"errors"
	"sort"

	"zoliky-engine/pkg/deck"
	"zoliky-engine/pkg/zoliky"
)

// playTurn drives one naive but legal turn: draw, meld whatever the hand
// supports, then discard. The discard pile is only drawn from when its top
// card is known to extend a table meld, so the meld obligation is always
// satisfiable.
func playTurn(g *zoliky.Game, p *zoliky.Player) error {
	drewTop := false
	if meldIndex, ok := discardExtendsMeld(g, p); ok {
		top := g.TopDiscard()
		err := g.DrawFromDiscard(p.ID)
		switch {
		case err == nil:
			if err := g.AddToMeld(p.ID, meldIndex, top); err != nil {
				return err
			}
			drewTop = true
		case errors.Is(err, zoliky.ErrRoundRestriction):
			// pile still locked, fall through to the stock
		default:
			return err
		}
	}

	if !drewTop {
		if err := g.DrawCard(p.ID); err != nil {
			return err
		}
	}

	if err := tryMelds(g, p); err != nil {
		return err
	}
	if err := tryAddToMelds(g, p); err != nil {
		return err
	}
	if err := tryReplaceJokers(g, p); err != nil {
		return err
	}

	hand := p.Hand()
	if len(hand) == 0 {
		return nil
	}

	hand.Sort(false)
	return g.DiscardCard(p.ID, hand[len(hand)-1])
}

// discardExtendsMeld reports the first table meld the discard pile's top card
// would legally extend
func discardExtendsMeld(g *zoliky.Game, p *zoliky.Player) (int, bool) {
	top := g.TopDiscard()
	if top == nil || !p.HasMelded() {
		return 0, false
	}

	for i, meld := range g.Melds() {
		candidate := append(append([]*deck.Card{}, meld...), top)
		if zoliky.IsValidSet(candidate) || zoliky.IsValidSequence(candidate) {
			return i, true
		}
	}

	return 0, false
}

func tryMelds(g *zoliky.Game, p *zoliky.Player) error {
	combos := findCombos(p.Hand())
	if len(combos) == 0 {
		return nil
	}

	err := g.Meld(p.ID, combos)
	if errors.Is(err, zoliky.ErrInitialMeldRequirements) {
		// not enough on the table yet; hold the cards for a later turn
		return nil
	}

	return err
}

// findCombos greedily extracts pure runs and then sets from the hand. Jokers
// stay in hand; the naive policy never spends them.
func findCombos(hand deck.Hand) [][]*deck.Card {
	remaining := hand.Clone()
	combos := make([][]*deck.Card, 0)

	// pure runs first so an initial meld always carries its pure sequence
	for _, suit := range deck.Suits {
		for {
			run := extractRun(&remaining, suit)
			if run == nil {
				break
			}
			combos = append(combos, run)
		}
	}

	for {
		set := extractSet(&remaining)
		if set == nil {
			break
		}
		combos = append(combos, set)
	}

	return combos
}

// extractRun removes and returns one run of 3+ consecutive same-suit cards
func extractRun(hand *deck.Hand, suit deck.Suit) []*deck.Card {
	bySuit := make([]*deck.Card, 0)
	for _, c := range *hand {
		if !c.IsJoker() && c.Suit == suit {
			bySuit = append(bySuit, c)
		}
	}

	sort.Slice(bySuit, func(i, j int) bool {
		return bySuit[i].Rank < bySuit[j].Rank
	})

	run := make([]*deck.Card, 0)
	for _, c := range bySuit {
		n := len(run)
		if n == 0 {
			run = append(run, c)
			continue
		}

		last := run[n-1].Rank
		if c.Rank == last {
			// second copy from the other deck, skip it
			continue
		}

		if c.Rank == last+1 {
			run = append(run, c)
			continue
		}

		// streak broken; keep a finished run, otherwise start over
		if n >= 3 {
			break
		}
		run = []*deck.Card{c}
	}

	if len(run) < 3 {
		return nil
	}

	for _, c := range run {
		hand.RemoveCard(c)
	}

	return run
}

// extractSet removes and returns one set of 3-4 equal-rank, distinct-suit cards
func extractSet(hand *deck.Hand) []*deck.Card {
	byRank := make(map[int]map[deck.Suit]*deck.Card)
	for _, c := range *hand {
		if c.IsJoker() {
			continue
		}

		if byRank[c.Rank] == nil {
			byRank[c.Rank] = make(map[deck.Suit]*deck.Card)
		}
		byRank[c.Rank][c.Suit] = c
	}

	for _, suits := range byRank {
		if len(suits) < 3 {
			continue
		}

		set := make([]*deck.Card, 0, len(suits))
		for _, c := range suits {
			set = append(set, c)
		}

		for _, c := range set {
			hand.RemoveCard(c)
		}

		return set
	}

	return nil
}

func tryAddToMelds(g *zoliky.Game, p *zoliky.Player) error {
	if !p.HasMelded() {
		return nil
	}

	for progress := true; progress; {
		progress = false

		for i, meld := range g.Melds() {
			for _, card := range p.Hand() {
				candidate := append(append([]*deck.Card{}, meld...), card)
				if !zoliky.IsValidSet(candidate) && !zoliky.IsValidSequence(candidate) {
					continue
				}

				if err := g.AddToMeld(p.ID, i, card); err != nil {
					return err
				}

				progress = true
				break
			}

			// meld indices shift after a dissolution; rescan
			if progress {
				break
			}
		}
	}

	return nil
}

func tryReplaceJokers(g *zoliky.Game, p *zoliky.Player) error {
	if !p.HasMelded() {
		return nil
	}

	joker := &deck.Card{Rank: deck.Joker, Suit: deck.SuitNone}

	for progress := true; progress; {
		progress = false

		for i, meld := range g.Melds() {
			if !deck.Hand(meld).HasCard(joker) {
				continue
			}

			jokerIndex := 0
			for j, c := range meld {
				if c.IsJoker() {
					jokerIndex = j
					break
				}
			}

			for _, card := range p.Hand() {
				if card.IsJoker() {
					continue
				}

				candidate := append([]*deck.Card{}, meld...)
				candidate[jokerIndex] = card
				if !zoliky.IsValidSet(candidate) && !zoliky.IsValidSequence(candidate) {
					continue
				}

				if err := g.ReplaceJoker(p.ID, i, joker, card); err != nil {
					return err
				}

				progress = true
				break
			}

			if progress {
				break
			}
		}
	}

	return nil
}
