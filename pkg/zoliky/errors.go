package zoliky

import (
	"errors"
	"fmt"
)

// ErrGameNotStarted is an error when an action is attempted before StartGame
var ErrGameNotStarted = errors.New("the game has not started")

// ErrNotPlayersTurn is returned when it's not the player's turn
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrCardNotInHand happens when the player references a card they don't hold
var ErrCardNotInHand = errors.New("card is not in player's hand")

// ErrInvalidMeld happens when a combination is neither a valid set nor a valid sequence
var ErrInvalidMeld = errors.New("combination is not a valid set or sequence")

// ErrInvalidMeldIndex happens when a referenced table meld does not exist
var ErrInvalidMeldIndex = errors.New("no meld exists at that index")

// ErrInitialMeldRequirements happens when the first meld misses the point
// threshold or lacks a pure sequence
var ErrInitialMeldRequirements = errors.New("initial meld requires the point minimum and a pure sequence")

// ErrMustMeldFirst prevents meld-dependent actions before the player's initial meld
var ErrMustMeldFirst = errors.New("player must complete their initial meld first")

// ErrMustMeldBeforeDiscard enforces the obligation taken on by drawing from the
// discard pile: the player must meld before ending the turn
var ErrMustMeldBeforeDiscard = errors.New("player must meld before discarding after drawing from the discard pile")

// ErrRoundRestriction blocks drawing from the discard pile before the unlocked round
var ErrRoundRestriction = errors.New("the discard pile is locked until a later round")

// ErrDiscardPileEmpty happens when the discard pile has no card to take
var ErrDiscardPileEmpty = errors.New("the discard pile is empty")

// ErrNotAJoker happens when a joker replacement targets a standard card
var ErrNotAJoker = errors.New("the card is not a joker")

// ErrJokerNotInMeld happens when the referenced joker is not part of the meld
var ErrJokerNotInMeld = errors.New("the joker is not in the meld")

// PlayerCountError is an error on the number of players in the game
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected %d–%d players, got %d", minPlayers, maxPlayers, int(p))
}
