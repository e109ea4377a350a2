package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/beggar/internal/randutil"
	"github.com/lox/beggar/internal/shuffle"
)

// ShuffleCmd riffles the given values and verifies nothing was lost
type ShuffleCmd struct {
	Values  []string `arg:"" optional:"" help:"Values to shuffle (default 1..20)"`
	Riffles int      `default:"5" help:"Number of riffles"`
	Seed    int64    `default:"-1" help:"Seed; negative seeds use the clock"`
}

func (c *ShuffleCmd) Run() error {
	values := c.Values
	if len(values) == 0 {
		for i := 1; i <= 20; i++ {
			values = append(values, strconv.Itoa(i))
		}
	}

	rng, _ := randutil.FromSeed(c.Seed)
	shuffled := shuffle.Riffle(rng, values, c.Riffles)

	result := "FAIL"
	if shuffle.Check(values, shuffled) {
		result = "PASS"
	}
	fmt.Printf("Check shuffled array: %s\n", result)
	fmt.Printf("Shuffled: %s\n", strings.Join(shuffled, " "))
	return nil
}
