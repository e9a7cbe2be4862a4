package deck

import (
	"errors"

	"zoliky-engine/internal/rng"
)

// DeckSize is the number of cards in the shoe (two 52-card decks plus four jokers)
const DeckSize = 108

const jokerCount = 4

// ErrInsufficientCards is an error when more cards are requested than remain
var ErrInsufficientCards = errors.New("insufficient cards remain")

// Deck is the face-down stock the game draws from
type Deck struct {
	Cards []*Card `json:"cards"`
	rnd   rng.Generator
}

// New returns a new, unshuffled 108-card stock.
// If generator is nil, a crypto-random generator is used. Pass rng.NewSeeded()
// for deterministic shuffles.
func New(generator rng.Generator) *Deck {
	if generator == nil {
		generator = rng.Crypto{}
	}

	d := &Deck{
		rnd: generator,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]*Card, 0, DeckSize)
	for i := 0; i < 2; i++ {
		for _, suit := range Suits {
			for rank := 2; rank <= Ace; rank++ {
				cards = append(cards, &Card{
					Rank: rank,
					Suit: suit,
				})
			}
		}
	}

	for i := 0; i < jokerCount; i++ {
		cards = append(cards, &Card{Rank: Joker, Suit: SuitNone})
	}

	d.Cards = cards
}

// Reset rebuilds the stock to the full, unshuffled 108 cards
func (d *Deck) Reset() {
	d.buildDeck()
}

// Shuffle will shuffle the stock in place
func (d *Deck) Shuffle() {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := d.rnd.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// Replenish shuffles the supplied cards into a fresh stock.
// The game uses this to recycle the discard pile once the stock runs dry.
func (d *Deck) Replenish(cards []*Card) {
	recycled := make([]*Card, len(cards))
	copy(recycled, cards)

	d.Cards = append(d.Cards, recycled...)
	d.Shuffle()
}

// Draw will draw the next card
// If there are no more cards, an ErrInsufficientCards is returned along with a nil card.
func (d *Deck) Draw() (*Card, error) {
	if len(d.Cards) == 0 {
		return nil, ErrInsufficientCards
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal removes and returns the top n cards.
// n = 0 returns an empty slice without error.
func (d *Deck) Deal(n int) ([]*Card, error) {
	if n < 0 || n > len(d.Cards) {
		return nil, ErrInsufficientCards
	}

	cards := d.Cards[:n]
	d.Cards = d.Cards[n:]

	return cards, nil
}

// CanDraw returns true if there are {want} cards left in the stock
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the stock
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}

// IsEmpty returns true if the stock has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.Cards) == 0
}
