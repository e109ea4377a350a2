// Package config loads optional HCL settings for batch runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/beggar/internal/game"
	"github.com/lox/beggar/internal/statistics"
)

// Config is the complete configuration
type Config struct {
	Simulation SimulationSettings
	Quality    QualitySettings
}

// file mirrors Config with optional blocks
type file struct {
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Quality    *QualitySettings    `hcl:"quality,block"`
}

// SimulationSettings controls the statistics report. MaxPlayers and Trials
// are required command line arguments and cannot be set from a file.
type SimulationSettings struct {
	MaxPlayers int
	Trials     int
	Seed       *int64 `hcl:"seed,optional"`
	Workers    int    `hcl:"workers,optional"`
	MaxTurns   int    `hcl:"max_turns,optional"`
	Output     string `hcl:"output,optional"`
}

// QualitySettings controls the riffle quality sweep
type QualitySettings struct {
	Length     int    `hcl:"length,optional"`
	MaxRiffles int    `hcl:"max_riffles,optional"`
	Trials     int    `hcl:"trials,optional"`
	Seed       *int64 `hcl:"seed,optional"`
	Output     string `hcl:"output,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads filename. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(hclFile.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	var c Config
	if raw.Simulation != nil {
		c.Simulation = *raw.Simulation
	}
	if raw.Quality != nil {
		c.Quality = *raw.Quality
	}
	c.applyDefaults()
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Simulation.MaxPlayers == 0 {
		c.Simulation.MaxPlayers = game.MaxPlayers
	}
	if c.Simulation.Trials == 0 {
		c.Simulation.Trials = statistics.MinTrials
	}
	if c.Simulation.Workers == 0 {
		c.Simulation.Workers = 1
	}
	if c.Simulation.MaxTurns == 0 {
		c.Simulation.MaxTurns = game.DefaultMaxTurns
	}
	if c.Simulation.Output == "" {
		c.Simulation.Output = "statistics.txt"
	}

	if c.Quality.Length == 0 {
		c.Quality.Length = 50
	}
	if c.Quality.MaxRiffles == 0 {
		c.Quality.MaxRiffles = 15
	}
	if c.Quality.Trials == 0 {
		c.Quality.Trials = 30
	}
	if c.Quality.Output == "" {
		c.Quality.Output = "quality.txt"
	}
}

// Validate checks every setting is in range
func (c *Config) Validate() error {
	if err := c.ValidateSimulation(); err != nil {
		return err
	}
	return c.ValidateQuality()
}

// ValidateSimulation checks the statistics report settings
func (c *Config) ValidateSimulation() error {
	s := c.Simulation
	if err := game.ValidatePlayers(s.MaxPlayers); err != nil {
		return err
	}
	if s.Trials < statistics.MinTrials {
		return &game.ConfigError{
			Field:  "trial count",
			Value:  s.Trials,
			Reason: fmt.Sprintf("must be at least %d", statistics.MinTrials),
		}
	}
	if s.Workers < 1 {
		return &game.ConfigError{Field: "workers", Value: s.Workers, Reason: "must be positive"}
	}
	if s.MaxTurns < 1 {
		return &game.ConfigError{Field: "max turns", Value: s.MaxTurns, Reason: "must be positive"}
	}
	return nil
}

// ValidateQuality checks the riffle quality sweep settings
func (c *Config) ValidateQuality() error {
	q := c.Quality
	if q.Length < 2 {
		return &game.ConfigError{Field: "quality length", Value: q.Length, Reason: "must be at least 2"}
	}
	if q.MaxRiffles < 1 {
		return &game.ConfigError{Field: "max riffles", Value: q.MaxRiffles, Reason: "must be positive"}
	}
	if q.Trials < 1 {
		return &game.ConfigError{Field: "quality trials", Value: q.Trials, Reason: "must be positive"}
	}
	return nil
}
