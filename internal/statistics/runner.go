package statistics

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/game"
	"github.com/lox/beggar/internal/randutil"
	"github.com/lox/beggar/internal/runid"
	"github.com/lox/beggar/internal/shuffle"
)

// GameRunner plays one game on a shuffled deck and returns its length
type GameRunner func(players int, cards []deck.Rank) (int, error)

// Runner plays batches of games with freshly shuffled decks
type Runner struct {
	play     GameRunner
	maxTurns int
	seed     int64
	workers  int
	clock    quartz.Clock
	logger   *log.Logger
	runID    string
}

// Option configures a Runner
type Option func(*Runner)

// WithGameRunner replaces the game engine, mainly for tests
func WithGameRunner(play GameRunner) Option {
	return func(r *Runner) { r.play = play }
}

// WithSeed makes every batch reproducible. Negative seeds draw from the clock.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

// WithWorkers sets how many player counts RunRange plays at once
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithMaxTurns sets the turn ceiling of the default game engine
func WithMaxTurns(n int) Option {
	return func(r *Runner) { r.maxTurns = n }
}

// WithClock sets the clock used to time batches
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) { r.clock = clock }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(r *Runner) { r.logger = logger }
}

// NewRunner creates a runner. By default it plays sequentially with the
// standard engine and a clock-derived seed.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		seed:    -1,
		workers: 1,
		clock:   quartz.NewReal(),
		logger:  log.New(io.Discard),
		runID:   runid.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.seed < 0 {
		r.seed = randutil.TimeSeed()
	}
	r.logger = r.logger.With("run", r.runID)
	if r.play == nil {
		engine := game.NewEngine(game.Config{MaxTurns: r.maxTurns, Logger: r.logger})
		r.play = func(players int, cards []deck.Rank) (int, error) {
			res, err := engine.Play(players, cards)
			return res.Turns, err
		}
	}
	return r
}

// Seed returns the seed the runner derives every shuffle from
func (r *Runner) Seed() int64 {
	return r.seed
}

// RunID identifies this runner in logs
func (r *Runner) RunID() string {
	return r.runID
}

// Run plays trials games with the given number of players, each on an
// independently shuffled standard deck.
func (r *Runner) Run(ctx context.Context, players, trials int) (GameStats, error) {
	if err := game.ValidatePlayers(players); err != nil {
		return GameStats{}, err
	}
	if trials <= 0 {
		return GameStats{}, &game.ConfigError{Field: "trial count", Value: trials, Reason: "must be positive"}
	}

	rng := randutil.New(r.seed + int64(players))
	start := r.clock.Now()
	var acc Accumulator
	for trial := range trials {
		if err := ctx.Err(); err != nil {
			return GameStats{}, err
		}
		cards := shuffle.DeckWith(rng, deck.Standard())
		turns, err := r.play(players, cards)
		if err != nil {
			return GameStats{}, fmt.Errorf("players %d trial %d: %w", players, trial+1, err)
		}
		acc.Add(turns)
	}
	if err := acc.Validate(); err != nil {
		return GameStats{}, fmt.Errorf("statistics validation failed: %w", err)
	}

	stats := acc.Stats(players)
	stats.Elapsed = r.clock.Since(start)

	r.logger.Debug("Batch complete",
		"players", players,
		"trials", trials,
		"shortest", stats.Shortest,
		"longest", stats.Longest,
		"average", fmt.Sprintf("%.2f", stats.Average),
		"stddev", fmt.Sprintf("%.2f", stats.StdDev),
		"stderr", fmt.Sprintf("%.2f", acc.StdError()),
		"elapsed", stats.Elapsed)
	return stats, nil
}

// RunRange runs a batch for every player count in [minPlayers, maxPlayers]
// and returns the rows in ascending player order. Each player count gets
// its own generator, so results do not depend on the worker count.
func (r *Runner) RunRange(ctx context.Context, minPlayers, maxPlayers, trials int) ([]GameStats, error) {
	if err := game.ValidatePlayers(minPlayers); err != nil {
		return nil, err
	}
	if err := game.ValidatePlayers(maxPlayers); err != nil {
		return nil, err
	}
	if minPlayers > maxPlayers {
		return nil, &game.ConfigError{
			Field:  "player range",
			Value:  minPlayers,
			Reason: fmt.Sprintf("exceeds maximum %d", maxPlayers),
		}
	}

	r.logger.Info("Running statistics",
		"min_players", minPlayers,
		"max_players", maxPlayers,
		"trials", trials,
		"workers", r.workers,
		"seed", r.seed)

	rows := make([]GameStats, maxPlayers-minPlayers+1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for players := minPlayers; players <= maxPlayers; players++ {
		g.Go(func() error {
			stats, err := r.Run(ctx, players, trials)
			if err != nil {
				return err
			}
			rows[players-minPlayers] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return rows, nil
}

// RunStatistics plays trials games with a fresh random shuffle each time
func RunStatistics(players, trials int) (GameStats, error) {
	return NewRunner().Run(context.Background(), players, trials)
}
