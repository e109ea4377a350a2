package main

import (
	"fmt"
	"io"

	"github.com/lox/beggar/cmd/beggar/shared"
	"github.com/lox/beggar/internal/config"
	"github.com/lox/beggar/internal/fileutil"
	"github.com/lox/beggar/internal/randutil"
	"github.com/lox/beggar/internal/shuffle"
)

// QualityCmd tabulates average riffle quality against the number of riffles
type QualityCmd struct {
	Length     int    `help:"Length of the array to shuffle (default 50)"`
	MaxRiffles int    `help:"Largest riffle count to measure (default 15)"`
	Trials     int    `help:"Trials averaged per riffle count (default 30)"`
	Seed       int64  `default:"-1" help:"Seed for reproducible output; negative seeds use the clock"`
	Output     string `help:"Output file (default quality.txt)"`
	Config     string `type:"path" help:"Optional HCL configuration file"`
}

func (c *QualityCmd) Run(cli *CLI) error {
	logger := shared.SetupLogger(cli.Debug)

	cfg := config.Default()
	if c.Config != "" {
		var err error
		if cfg, err = config.Load(c.Config); err != nil {
			return err
		}
	}
	c.apply(cfg)
	if err := cfg.ValidateQuality(); err != nil {
		return err
	}
	q := cfg.Quality

	seed := int64(-1)
	if q.Seed != nil {
		seed = *q.Seed
	}
	rng, seed := randutil.FromSeed(seed)

	points := shuffle.QualitySweep(rng, q.Length, q.MaxRiffles, q.Trials)
	err := fileutil.WriteAtomic(q.Output, 0o644, func(w io.Writer) error {
		if _, err := fmt.Fprintln(w, "N\tAvg. Quality"); err != nil {
			return err
		}
		for _, p := range points {
			if _, err := fmt.Fprintf(w, "%d\t%.4f\n", p.Riffles, p.Quality); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Quality sweep complete", "length", q.Length, "trials", q.Trials, "seed", seed, "output", q.Output)
	fmt.Printf("Results written to %s\n", q.Output)
	return nil
}

func (c *QualityCmd) apply(cfg *config.Config) {
	if c.Length != 0 {
		cfg.Quality.Length = c.Length
	}
	if c.MaxRiffles != 0 {
		cfg.Quality.MaxRiffles = c.MaxRiffles
	}
	if c.Trials != 0 {
		cfg.Quality.Trials = c.Trials
	}
	if c.Seed >= 0 {
		seed := c.Seed
		cfg.Quality.Seed = &seed
	}
	if c.Output != "" {
		cfg.Quality.Output = c.Output
	}
}
