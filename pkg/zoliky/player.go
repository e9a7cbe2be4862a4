package zoliky

import (
	"github.com/google/uuid"

	"zoliky-engine/pkg/deck"
)

// Player is an individual seated at the table
type Player struct {
	// ID is a stable identity assigned when the game starts
	ID   string `json:"id"`
	Name string `json:"name"`

	hand      deck.Hand
	hasMelded bool
}

func newPlayer(name string) *Player {
	return &Player{
		ID:   uuid.New().String(),
		Name: name,
		hand: deck.Hand{},
	}
}

// Hand returns a shallow clone of the player's hand
func (p *Player) Hand() deck.Hand {
	return p.hand.Clone()
}

// HasMelded returns true once the player has completed their initial meld.
// The flag never reverts.
func (p *Player) HasMelded() bool {
	return p.hasMelded
}

// SortHand stably reorders the player's hand for display, by (suit, rank) when
// bySuit is set, otherwise by (rank, suit). Ordering never affects legality.
func (p *Player) SortHand(bySuit bool) {
	p.hand.Sort(bySuit)
}

func (p *Player) String() string {
	return p.Name
}
