package zoliky

import (
	"zoliky-engine/pkg/deck"
)

// GameState is a snapshot of the table.
// This is safe for all players to see.
type GameState struct {
	Players      []*GameStatePlayer `json:"players"`
	Melds        [][]*deck.Card     `json:"melds"`
	CardsInStock int                `json:"cardsInStock"`
	TopDiscard   *deck.Card         `json:"topDiscard"`
	DiscardSize  int                `json:"discardSize"`
	CardsRetired int                `json:"cardsRetired"`
	RoundNumber  int                `json:"roundNumber"`
	CurrentTurn  string             `json:"currentTurn"`
}

// GameStatePlayer is the public state of an individual player.
// This is safe for all players to see.
type GameStatePlayer struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	CardsInHand int    `json:"cardsInHand"`
	HasMelded   bool   `json:"hasMelded"`
}

// PlayerState extends the public snapshot with data only the intended player
// may see.
type PlayerState struct {
	GameState *GameState `json:"gameState"`
	Hand      deck.Hand  `json:"hand"`
	HasMelded bool       `json:"hasMelded"`
}

// GetGameState returns the public snapshot of the table
func (g *Game) GetGameState() *GameState {
	players := make([]*GameStatePlayer, len(g.players))
	for i, p := range g.players {
		players[i] = &GameStatePlayer{
			PlayerID:    p.ID,
			Name:        p.Name,
			CardsInHand: len(p.hand),
			HasMelded:   p.hasMelded,
		}
	}

	var currentTurn string
	if g.started {
		currentTurn = g.players[g.currentPlayerIndex].ID
	}

	return &GameState{
		Players:      players,
		Melds:        g.Melds(),
		CardsInStock: g.StockSize(),
		TopDiscard:   g.TopDiscard(),
		DiscardSize:  len(g.discards),
		CardsRetired: len(g.retired),
		RoundNumber:  g.roundNumber,
		CurrentTurn:  currentTurn,
	}
}

// GetPlayerState returns the snapshot for the given player, including their
// private hand
func (g *Game) GetPlayerState(playerID string) (*PlayerState, bool) {
	player, ok := g.idToPlayer[playerID]
	if !ok {
		return nil, false
	}

	return &PlayerState{
		GameState: g.GetGameState(),
		Hand:      player.Hand(),
		HasMelded: player.hasMelded,
	}, true
}
