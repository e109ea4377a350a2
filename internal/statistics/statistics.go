// Package statistics runs repeated Beggar-My-Neighbour games and summarises
// their lengths.
package statistics

import (
	"fmt"
	"math"
	"time"
)

// MinTrials is the smallest batch the command line accepts for a report
const MinTrials = 100

// GameStats summarises game lengths, in turns, for one player count
type GameStats struct {
	Players  int
	Trials   int
	Shortest int
	Longest  int
	Average  float64
	StdDev   float64 // sample standard deviation; not part of the report
	Elapsed  time.Duration
}

// Accumulator folds game lengths into running min, max, sum and sum of
// squares
type Accumulator struct {
	Games    int
	Shortest int
	Longest  int
	Sum      int64
	SumSq    float64 // sum of squares for variance calculation
}

// Add incorporates one game's length
func (a *Accumulator) Add(turns int) {
	if a.Games == 0 || turns < a.Shortest {
		a.Shortest = turns
	}
	if turns > a.Longest {
		a.Longest = turns
	}
	a.Sum += int64(turns)
	a.SumSq += float64(turns) * float64(turns)
	a.Games++
}

// Merge folds another accumulator into a
func (a *Accumulator) Merge(b Accumulator) {
	if b.Games == 0 {
		return
	}
	if a.Games == 0 || b.Shortest < a.Shortest {
		a.Shortest = b.Shortest
	}
	if b.Longest > a.Longest {
		a.Longest = b.Longest
	}
	a.Sum += b.Sum
	a.SumSq += b.SumSq
	a.Games += b.Games
}

// Mean returns the average game length, or 0 before any game is added
func (a *Accumulator) Mean() float64 {
	if a.Games == 0 {
		return 0
	}
	return float64(a.Sum) / float64(a.Games)
}

// Variance returns the sample variance of game lengths
func (a *Accumulator) Variance() float64 {
	if a.Games < 2 {
		return 0
	}
	mean := a.Mean()
	v := (a.SumSq - float64(a.Games)*mean*mean) / float64(a.Games-1)
	// rounding can push identical lengths slightly negative
	return math.Max(v, 0)
}

// StdDev returns the sample standard deviation of game lengths
func (a *Accumulator) StdDev() float64 {
	return math.Sqrt(a.Variance())
}

// StdError returns the standard error of the mean
func (a *Accumulator) StdError() float64 {
	if a.Games == 0 {
		return 0
	}
	return a.StdDev() / math.Sqrt(float64(a.Games))
}

// Validate checks the accumulator is internally consistent
func (a *Accumulator) Validate() error {
	if a.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", a.Games)
	}
	if a.Shortest > a.Longest {
		return fmt.Errorf("shortest game (%d) exceeds longest (%d)", a.Shortest, a.Longest)
	}
	mean := a.Mean()
	if mean < float64(a.Shortest) || mean > float64(a.Longest) || math.IsNaN(mean) {
		return fmt.Errorf("average %.2f outside [%d, %d]", mean, a.Shortest, a.Longest)
	}
	return nil
}

// Stats converts the accumulator into a report row
func (a *Accumulator) Stats(players int) GameStats {
	return GameStats{
		Players:  players,
		Trials:   a.Games,
		Shortest: a.Shortest,
		Longest:  a.Longest,
		Average:  a.Mean(),
		StdDev:   a.StdDev(),
	}
}
