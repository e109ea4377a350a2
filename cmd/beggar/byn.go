package main

import (
	"fmt"
	"io"

	"github.com/lox/beggar/cmd/beggar/shared"
	"github.com/lox/beggar/internal/config"
	"github.com/lox/beggar/internal/fileutil"
	"github.com/lox/beggar/internal/game"
	"github.com/lox/beggar/internal/statistics"
)

// BynCmd writes shortest, longest and average game lengths for every player
// count from 2 up to MaxPlayers.
type BynCmd struct {
	MaxPlayers int    `arg:"" help:"Largest player count to simulate (2-52)"`
	Trials     int    `arg:"" help:"Games per player count (at least 100)"`
	Output     string `help:"Report file (default statistics.txt)"`
	Seed       int64  `default:"-1" help:"Seed for reproducible reports; negative seeds use the clock"`
	Workers    int    `help:"Player counts to simulate concurrently (default 1)"`
	MaxTurns   int    `help:"Turn ceiling per game (default 1000000)"`
	Config     string `type:"path" help:"Optional HCL configuration file"`
}

func (c *BynCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return err
		}
	}
	c.apply(cfg)
	if err := cfg.ValidateSimulation(); err != nil {
		return err
	}
	sim := cfg.Simulation

	ctx, stop := shared.SetupSignalHandler(logger)
	defer stop()

	opts := []statistics.Option{
		statistics.WithLogger(logger),
		statistics.WithWorkers(sim.Workers),
		statistics.WithMaxTurns(sim.MaxTurns),
	}
	if sim.Seed != nil {
		opts = append(opts, statistics.WithSeed(*sim.Seed))
	}
	runner := statistics.NewRunner(opts...)

	rows, err := runner.RunRange(ctx, game.MinPlayers, sim.MaxPlayers, sim.Trials)
	if err != nil {
		return err
	}

	err = fileutil.WriteAtomic(sim.Output, 0o644, func(w io.Writer) error {
		return statistics.WriteReport(w, rows)
	})
	if err != nil {
		return err
	}

	logger.Info("Statistics complete", "rows", len(rows), "seed", runner.Seed(), "output", sim.Output)
	fmt.Printf("Results written to %s\n", sim.Output)
	return nil
}

// apply overlays command line values on the file configuration
func (c *BynCmd) apply(cfg *config.Config) {
	cfg.Simulation.MaxPlayers = c.MaxPlayers
	cfg.Simulation.Trials = c.Trials
	if c.Output != "" {
		cfg.Simulation.Output = c.Output
	}
	if c.Seed >= 0 {
		seed := c.Seed
		cfg.Simulation.Seed = &seed
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.MaxTurns != 0 {
		cfg.Simulation.MaxTurns = c.MaxTurns
	}
}
