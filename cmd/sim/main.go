package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"

	"zoliky-engine/internal/config"
	"zoliky-engine/internal/rng"
	"zoliky-engine/internal/util"
	"zoliky-engine/pkg/zoliky"
)

// Version is the simulator version
var Version = "v0.0.0-dev"

var seedFlag = flag.Int64("seed", 0, "override the shuffle seed (0 uses the configured seed)")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	seed := cfg.Seed
	if *seedFlag != 0 {
		seed = *seedFlag
	}

	var generator rng.Generator = rng.Crypto{}
	if seed != 0 {
		generator = rng.NewSeeded(seed)
	}

	names := cfg.PlayerNames
	if len(names) == 0 {
		for i := 0; i < cfg.PlayerCount; i++ {
			names = append(names, util.RandomPlayerName())
		}
	}

	options := zoliky.Options{
		InitialMeldPoints: cfg.Rules.InitialMeldPoints,
		DiscardDrawRound:  cfg.Rules.DiscardDrawRound,
	}

	game := zoliky.NewGame(logrus.StandardLogger(), generator, options)
	if err := game.StartGame(names); err != nil {
		logrus.WithError(err).Fatal("could not start game")
	}

	logrus.WithFields(logrus.Fields{
		"version": Version,
		"players": strings.Join(names, ", "),
		"seed":    seed,
	}).Info("simulation starting")

	winner, turns := run(game, cfg.MaxTurns)
	render(game, winner, turns)
}

// run plays naive legal turns until a hand empties or the cap is reached.
// It returns the winner (or nil on a capped game) and the turns played.
func run(game *zoliky.Game, maxTurns int) (*zoliky.Player, int) {
	for turn := 1; turn <= maxTurns; turn++ {
		player := game.CurrentPlayer()

		if err := playTurn(game, player); err != nil {
			logrus.WithError(err).WithField("player", player.Name).Fatal("simulated turn failed")
		}

		if len(player.Hand()) == 0 {
			return player, turn
		}
	}

	return nil, maxTurns
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}

func render(game *zoliky.Game, winner *zoliky.Player, turns int) {
	state := game.GetGameState()

	data := pterm.TableData{{"Player", "Cards", "Melded"}}
	for _, p := range state.Players {
		data = append(data, []string{p.Name, fmt.Sprintf("%d", p.CardsInHand), fmt.Sprintf("%t", p.HasMelded)})
	}

	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()

	summary := fmt.Sprintf("round %d, %d turns, %d cards in stock, %d melds on the table",
		state.RoundNumber, turns, state.CardsInStock, len(state.Melds))
	if winner != nil {
		pterm.Success.Printfln("%s went out (%s)", winner.Name, summary)
		return
	}

	pterm.Info.Printfln("turn cap reached (%s)", summary)
}
