package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zoliky-engine/internal/rng"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d := New(nil)
	a.Equal(DeckSize, d.CardsLeft())
	a.False(d.IsEmpty())

	// two full decks, then the four jokers on the bottom
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[0])
	a.Equal(Card{Rank: Ace, Suit: Spades}, *d.Cards[51])
	a.Equal(Card{Rank: 2, Suit: Clubs}, *d.Cards[52])

	jokers := 0
	counts := make(map[Card]int)
	for _, c := range d.Cards {
		if c.IsJoker() {
			jokers++
			continue
		}
		counts[*c]++
	}

	a.Equal(4, jokers)
	a.Len(counts, 52)
	for card, n := range counts {
		a.Equal(2, n, "expected two copies of %s", card.String())
	}
}

func TestDeck_Shuffle(t *testing.T) {
	a := assert.New(t)

	d1 := New(rng.NewSeeded(1))
	d1.Shuffle()

	d2 := New(rng.NewSeeded(1))
	d2.Shuffle()
	a.Equal(CardsToString(d1.Cards), CardsToString(d2.Cards))

	d3 := New(rng.NewSeeded(2))
	d3.Shuffle()
	a.NotEqual(CardsToString(d1.Cards), CardsToString(d3.Cards))

	a.Equal(DeckSize, d1.CardsLeft())
}

func TestDeck_Draw(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))
	a.True(d.CanDraw(DeckSize))
	a.False(d.CanDraw(DeckSize + 1))

	for i := 0; i < DeckSize; i++ {
		card, err := d.Draw()
		a.NotNil(card)
		a.NoError(err)
	}

	a.True(d.IsEmpty())
	card, err := d.Draw()
	a.Nil(card)
	a.Equal(ErrInsufficientCards, err)
}

func TestDeck_Deal(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(0))

	cards, err := d.Deal(14)
	a.NoError(err)
	a.Len(cards, 14)
	a.Equal(DeckSize-14, d.CardsLeft())

	cards, err = d.Deal(0)
	a.NoError(err)
	a.Len(cards, 0)

	cards, err = d.Deal(DeckSize)
	a.Nil(cards)
	a.Equal(ErrInsufficientCards, err)
	a.Equal(DeckSize-14, d.CardsLeft())
}

func TestDeck_Replenish(t *testing.T) {
	a := assert.New(t)

	d := New(rng.NewSeeded(1))
	d.Cards = nil
	a.True(d.IsEmpty())

	discards := CardsFromString("2c,3c,4c,jk")
	d.Replenish(discards)

	a.Equal(4, d.CardsLeft())
	// the pile itself must not be mutated
	a.Equal("2c,3c,4c,jk", CardsToString(discards))

	drawn := make([]*Card, 0, 4)
	for i := 0; i < 4; i++ {
		card, err := d.Draw()
		a.NoError(err)
		drawn = append(drawn, card)
	}

	h := Hand(drawn)
	for _, c := range discards {
		a.True(h.RemoveCard(c))
	}
}

func TestDeck_Reset(t *testing.T) {
	d := New(rng.NewSeeded(1))
	_, err := d.Deal(50)
	assert.NoError(t, err)

	d.Reset()
	assert.Equal(t, DeckSize, d.CardsLeft())
}
