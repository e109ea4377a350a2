package main

import (
	"os"

	"github.com/lox/beggar/cmd/beggar/shared"
	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/display"
	"github.com/lox/beggar/internal/game"
	"github.com/lox/beggar/internal/randutil"
	"github.com/lox/beggar/internal/shuffle"
)

// SingleCmd plays one game with a shuffled standard deck
type SingleCmd struct {
	Players  int   `arg:"" help:"Number of players (2-52)"`
	Seed     int64 `default:"-1" help:"Shuffle seed; negative seeds use the clock"`
	Quiet    bool  `short:"q" help:"Only print the deck and the turn count"`
	NoColor  bool  `help:"Disable coloured output"`
	MaxTurns int   `help:"Abort the game after this many turns (default 1000000)"`
}

func (c *SingleCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	if err := game.ValidatePlayers(c.Players); err != nil {
		return err
	}

	rng, seed := randutil.FromSeed(c.Seed)
	logger.Debug("Shuffling deck", "seed", seed)
	cards := shuffle.DeckWith(rng, deck.Standard())

	printer := display.NewPrinter(os.Stdout, shared.SetupRenderer(os.Stdout, c.NoColor), !c.Quiet)
	engine := game.NewEngine(game.Config{
		MaxTurns: c.MaxTurns,
		Monitor:  printer,
		Logger:   logger,
	})

	_, err := engine.Play(c.Players, cards)
	return err
}
