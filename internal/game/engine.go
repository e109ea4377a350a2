package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/beggar/internal/deck"
)

// DefaultMaxTurns is the turn ceiling used when Config.MaxTurns is zero.
// Random deals finish in a few thousand turns; the ceiling only guards
// against a looping deal.
const DefaultMaxTurns = 1_000_000

// Reason explains why a game stopped
type Reason string

const (
	ReasonConsolidated Reason = "consolidated"
	ReasonSelfPenalty  Reason = "self-penalty"
)

// Result is the outcome of a completed game
type Result struct {
	Turns      int // turns with an active player; the game's length
	RawTurns   int // all turns, including skipped players
	FalseTurns int
	Winner     int
	Reason     Reason
}

// Config configures an Engine
type Config struct {
	MaxTurns int
	Monitor  Monitor
	Logger   *log.Logger
}

// Engine plays complete games. It holds no per-game state and may be shared
// by goroutines as long as the Monitor is safe for concurrent use.
type Engine struct {
	maxTurns int
	monitor  Monitor
	logger   *log.Logger
}

// NewEngine creates an engine, filling in defaults for zero config values
func NewEngine(cfg Config) *Engine {
	e := &Engine{
		maxTurns: cfg.MaxTurns,
		monitor:  cfg.Monitor,
		logger:   cfg.Logger,
	}
	if e.maxTurns <= 0 {
		e.maxTurns = DefaultMaxTurns
	}
	if e.monitor == nil {
		e.monitor = NopMonitor{}
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Play deals cards to players and plays until the game is done
func (e *Engine) Play(players int, cards []deck.Rank) (Result, error) {
	s, err := NewState(players, cards)
	if err != nil {
		return Result{}, err
	}
	if _, ok := e.monitor.(NopMonitor); !ok {
		s.OnTurn = e.monitor.OnTurn
	}

	e.monitor.OnGameStart(players, cards)

	for !s.Done() {
		if s.Turn >= e.maxTurns {
			e.logger.Warn("Game hit turn limit", "players", players, "turns", s.Turn, "deck", deck.Format(cards))
			return Result{}, fmt.Errorf("%w: %d turns with %d players", ErrTurnLimit, s.Turn, players)
		}
		s.Step()
	}

	result := Result{
		Turns:      s.Score(),
		RawTurns:   s.Turn,
		FalseTurns: s.FalseTurns,
		Winner:     s.Winner(),
		Reason:     ReasonConsolidated,
	}
	if s.Stopped() {
		result.Reason = ReasonSelfPenalty
	}

	e.logger.Debug("Game complete",
		"players", players,
		"turns", result.Turns,
		"raw_turns", result.RawTurns,
		"winner", result.Winner,
		"reason", result.Reason)
	e.monitor.OnGameComplete(result)

	return result, nil
}

// Play runs a game with the default engine and returns its length in turns
func Play(players int, cards []deck.Rank) (int, error) {
	result, err := NewEngine(Config{}).Play(players, cards)
	if err != nil {
		return 0, err
	}
	return result.Turns, nil
}
