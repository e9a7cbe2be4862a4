package zoliky

const (
	minPlayers = 2
	maxPlayers = 4
)

// defaults for the house rules
const (
	DefaultInitialMeldPoints = 42
	DefaultDiscardDrawRound  = 4
	DefaultFirstPlayerDeal   = 14
	DefaultOtherPlayersDeal  = 13
)

// Options configures the house rules for a game
type Options struct {
	// InitialMeldPoints is the combined point minimum for a player's first meld
	InitialMeldPoints int

	// DiscardDrawRound is the first round in which the discard pile may be drawn from
	DiscardDrawRound int

	// FirstPlayerDeal is the number of cards dealt to the player who opens
	FirstPlayerDeal int

	// OtherPlayersDeal is the number of cards dealt to every other player
	OtherPlayersDeal int
}

// DefaultOptions returns the standard Žolíky rules
func DefaultOptions() Options {
	return Options{
		InitialMeldPoints: DefaultInitialMeldPoints,
		DiscardDrawRound:  DefaultDiscardDrawRound,
		FirstPlayerDeal:   DefaultFirstPlayerDeal,
		OtherPlayersDeal:  DefaultOtherPlayersDeal,
	}
}

// normalized upgrades zero values to the defaults
func (o Options) normalized() Options {
	defaults := DefaultOptions()
	if o.InitialMeldPoints <= 0 {
		o.InitialMeldPoints = defaults.InitialMeldPoints
	}
	if o.DiscardDrawRound <= 0 {
		o.DiscardDrawRound = defaults.DiscardDrawRound
	}
	if o.FirstPlayerDeal <= 0 {
		o.FirstPlayerDeal = defaults.FirstPlayerDeal
	}
	if o.OtherPlayersDeal <= 0 {
		o.OtherPlayersDeal = defaults.OtherPlayersDeal
	}

	return o
}
