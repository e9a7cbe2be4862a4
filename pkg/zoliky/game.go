package zoliky

import (
	"github.com/sirupsen/logrus"

	"zoliky-engine/internal/rng"
	"zoliky-engine/pkg/deck"
)

// Game is the Žolíky table: it owns the stock, the discard pile, the players,
// and the table melds, and it enforces every turn and meld rule.
//
// A Game is not safe for concurrent callers. Every action validates all of its
// preconditions before mutating anything; a failed action leaves the state
// untouched.
type Game struct {
	options Options
	logger  logrus.FieldLogger
	rnd     rng.Generator

	stock      *deck.Deck
	discards   []*deck.Card
	players    []*Player
	idToPlayer map[string]*Player
	melds      [][]*deck.Card

	// retired holds the cards of dissolved 4-card sets; they are out of play
	// for the rest of the hand
	retired []*deck.Card

	currentPlayerIndex int
	roundNumber        int

	// per-turn flags, reset when the turn ends
	drewFromDiscard bool
	meldedThisTurn  bool

	started bool
}

// NewGame returns a table ready for StartGame.
// A nil logger falls back to the standard logger, and a nil generator means
// crypto-random shuffles.
func NewGame(logger logrus.FieldLogger, generator rng.Generator, options Options) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if generator == nil {
		generator = rng.Crypto{}
	}

	return &Game{
		options: options.normalized(),
		logger:  logger,
		rnd:     generator,
	}
}

// StartGame begins a fresh hand with the named players, in seat order.
// The opening player receives one extra card and no initial discard is turned
// over; the opener's first discard starts the pile.
func (g *Game) StartGame(names []string) error {
	if len(names) < minPlayers || len(names) > maxPlayers {
		return PlayerCountError(len(names))
	}

	stock := deck.New(g.rnd)
	stock.Shuffle()

	players := make([]*Player, len(names))
	idToPlayer := make(map[string]*Player)
	for i, name := range names {
		p := newPlayer(name)
		players[i] = p
		idToPlayer[p.ID] = p
	}

	for i, p := range players {
		count := g.options.OtherPlayersDeal
		if i == 0 {
			count = g.options.FirstPlayerDeal
		}

		cards, err := stock.Deal(count)
		if err != nil {
			return err
		}

		for _, card := range cards {
			p.hand.AddCard(card)
		}
	}

	g.stock = stock
	g.players = players
	g.idToPlayer = idToPlayer
	g.discards = nil
	g.melds = nil
	g.retired = nil
	g.currentPlayerIndex = 0
	g.roundNumber = 1
	g.drewFromDiscard = false
	g.meldedThisTurn = false
	g.started = true

	g.logger.WithFields(logrus.Fields{
		"players": names,
		"stock":   stock.CardsLeft(),
	}).Info("game started")

	return nil
}

// DrawCard draws the top card of the stock into the current player's hand.
// An exhausted stock is first replenished from the discard pile, keeping the
// pile's top card face up; if both are empty the draw fails.
func (g *Game) DrawCard(playerID string) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if g.stock.IsEmpty() {
		if len(g.discards) <= 1 {
			return deck.ErrInsufficientCards
		}

		g.replenishStock()
	}

	card, err := g.stock.Draw()
	if err != nil {
		return err
	}

	player.hand.AddCard(card)

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"round":  g.roundNumber,
	}).Debug("drew from stock")

	return nil
}

// replenishStock shuffles everything but the top discard back into the stock
func (g *Game) replenishStock() {
	top := g.discards[len(g.discards)-1]
	g.stock.Replenish(g.discards[:len(g.discards)-1])
	g.discards = []*deck.Card{top}

	g.logger.WithField("stock", g.stock.CardsLeft()).Info("replenished stock from discard pile")
}

// DrawFromDiscard takes the top card of the discard pile into the current
// player's hand. The pile is locked until the configured round (round 4 by
// default), and taking from it obligates the player to meld this turn.
func (g *Game) DrawFromDiscard(playerID string) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if g.roundNumber < g.options.DiscardDrawRound {
		return ErrRoundRestriction
	}

	if len(g.discards) == 0 {
		return ErrDiscardPileEmpty
	}

	card := g.discards[len(g.discards)-1]
	g.discards = g.discards[:len(g.discards)-1]
	player.hand.AddCard(card)
	g.drewFromDiscard = true

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
		"round":  g.roundNumber,
	}).Debug("drew from discard pile")

	return nil
}

// DiscardCard discards a card from the current player's hand and ends the
// turn. A player who drew from the discard pile this turn must have completed
// a meld action before discarding.
func (g *Game) DiscardCard(playerID string, card *deck.Card) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if card == nil || !player.hand.HasCard(card) {
		return ErrCardNotInHand
	}

	if g.drewFromDiscard && !g.meldedThisTurn {
		return ErrMustMeldBeforeDiscard
	}

	player.hand.RemoveCard(card)
	g.discards = append(g.discards, card)
	g.drewFromDiscard = false
	g.meldedThisTurn = false

	g.currentPlayerIndex = (g.currentPlayerIndex + 1) % len(g.players)
	if g.currentPlayerIndex == 0 {
		g.roundNumber++
	}

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
		"round":  g.roundNumber,
	}).Debug("discarded and ended turn")

	return nil
}

// Meld lays one or more combinations from the current player's hand onto the
// table. A player's first meld must clear the initial-meld gate (the point
// minimum plus a pure sequence); afterwards each combination only needs to be
// a valid set or sequence on its own. The call is all-or-nothing.
func (g *Game) Meld(playerID string, combinations [][]*deck.Card) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if len(combinations) == 0 {
		return ErrInvalidMeld
	}

	allCards := make([]*deck.Card, 0)
	for _, combo := range combinations {
		allCards = append(allCards, combo...)
	}

	if !player.hand.ContainsAll(allCards) {
		return ErrCardNotInHand
	}

	if !player.hasMelded {
		if !CanMeld(combinations, g.options.InitialMeldPoints) {
			return ErrInitialMeldRequirements
		}
	} else {
		for _, combo := range combinations {
			if !IsValidSet(combo) && !IsValidSequence(combo) {
				return ErrInvalidMeld
			}
		}
	}

	for _, card := range allCards {
		player.hand.RemoveCard(card)
	}

	for _, combo := range combinations {
		meld := make([]*deck.Card, len(combo))
		copy(meld, combo)
		g.melds = append(g.melds, meld)
	}

	player.hasMelded = true
	g.meldedThisTurn = true
	g.dissolveFullSets()

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"melds":  len(combinations),
		"round":  g.roundNumber,
	}).Debug("melded")

	return nil
}

// AddToMeld moves one card from the current player's hand onto an existing
// table meld, provided the extended meld still validates.
func (g *Game) AddToMeld(playerID string, meldIndex int, card *deck.Card) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if !player.hasMelded {
		return ErrMustMeldFirst
	}

	if meldIndex < 0 || meldIndex >= len(g.melds) {
		return ErrInvalidMeldIndex
	}

	if card == nil || !player.hand.HasCard(card) {
		return ErrCardNotInHand
	}

	meld := g.melds[meldIndex]
	candidate := make([]*deck.Card, len(meld), len(meld)+1)
	copy(candidate, meld)
	candidate = append(candidate, card)

	if !IsValidSet(candidate) && !IsValidSequence(candidate) {
		return ErrInvalidMeld
	}

	player.hand.RemoveCard(card)
	g.melds[meldIndex] = candidate
	g.meldedThisTurn = true
	g.dissolveFullSets()

	g.logger.WithFields(logrus.Fields{
		"player": player.Name,
		"card":   card.String(),
		"meld":   meldIndex,
	}).Debug("added card to meld")

	return nil
}

// ReplaceJoker swaps a joker in a table meld for the real card it stands in
// for. The replacement takes the joker's slot and the liberated joker moves
// into the player's hand as a free wild card.
func (g *Game) ReplaceJoker(playerID string, meldIndex int, jokerCard, replacementCard *deck.Card) error {
	player, err := g.validateTurn(playerID)
	if err != nil {
		return err
	}

	if !player.hasMelded {
		return ErrMustMeldFirst
	}

	if meldIndex < 0 || meldIndex >= len(g.melds) {
		return ErrInvalidMeldIndex
	}

	meld := g.melds[meldIndex]

	jokerIndex := -1
	if jokerCard != nil {
		for i, c := range meld {
			if c.Equal(jokerCard) {
				jokerIndex = i
				break
			}
		}
	}
	if jokerIndex == -1 {
		return ErrJokerNotInMeld
	}

	if !jokerCard.IsJoker() {
		return ErrNotAJoker
	}

	if replacementCard == nil || !player.hand.HasCard(replacementCard) {
		return ErrCardNotInHand
	}

	candidate := make([]*deck.Card, len(meld))
	copy(candidate, meld)
	candidate[jokerIndex] = replacementCard

	if !IsValidSet(candidate) && !IsValidSequence(candidate) {
		return ErrInvalidMeld
	}

	liberated := meld[jokerIndex]
	player.hand.RemoveCard(replacementCard)
	meld[jokerIndex] = replacementCard
	player.hand.AddCard(liberated)
	g.meldedThisTurn = true

	g.logger.WithFields(logrus.Fields{
		"player":      player.Name,
		"meld":        meldIndex,
		"replacement": replacementCard.String(),
	}).Debug("replaced joker")

	return nil
}

// dissolveFullSets removes every 4-card set from the table; its cards leave
// play entirely. Completed sets never persist between operations.
func (g *Game) dissolveFullSets() {
	remaining := g.melds[:0]
	for _, meld := range g.melds {
		if len(meld) == maxSetSize && IsValidSet(meld) {
			g.retired = append(g.retired, meld...)
			g.logger.WithField("meld", deck.CardsToString(meld)).Info("dissolved completed set")
			continue
		}

		remaining = append(remaining, meld)
	}

	g.melds = remaining
}

func (g *Game) validateTurn(playerID string) (*Player, error) {
	if !g.started {
		return nil, ErrGameNotStarted
	}

	player := g.players[g.currentPlayerIndex]
	if player.ID != playerID {
		return nil, ErrNotPlayersTurn
	}

	return player, nil
}

// CurrentPlayer returns the player whose turn it is, or nil before StartGame
func (g *Game) CurrentPlayer() *Player {
	if !g.started {
		return nil
	}

	return g.players[g.currentPlayerIndex]
}

// Players returns the seated players in order
func (g *Game) Players() []*Player {
	return append([]*Player{}, g.players...)
}

// Player returns the player with the given id
func (g *Game) Player(playerID string) (*Player, bool) {
	p, ok := g.idToPlayer[playerID]
	return p, ok
}

// RoundNumber returns the current round. The round starts at 1 and increments
// each time the turn wraps back to the opening player.
func (g *Game) RoundNumber() int {
	return g.roundNumber
}

// StockSize returns the number of cards left in the stock
func (g *Game) StockSize() int {
	if g.stock == nil {
		return 0
	}

	return g.stock.CardsLeft()
}

// TopDiscard returns the visible top of the discard pile, or nil if it is empty
func (g *Game) TopDiscard() *deck.Card {
	if len(g.discards) == 0 {
		return nil
	}

	return g.discards[len(g.discards)-1]
}

// DiscardSize returns the number of cards in the discard pile
func (g *Game) DiscardSize() int {
	return len(g.discards)
}

// Retired returns the cards of dissolved sets; they are out of play but still
// accounted for
func (g *Game) Retired() []*deck.Card {
	return append([]*deck.Card{}, g.retired...)
}

// Melds returns a defensive copy of the table melds
func (g *Game) Melds() [][]*deck.Card {
	melds := make([][]*deck.Card, len(g.melds))
	for i, meld := range g.melds {
		melds[i] = append([]*deck.Card{}, meld...)
	}

	return melds
}
