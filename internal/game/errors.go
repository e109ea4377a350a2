package game

import (
	"errors"
	"fmt"
)

const (
	// MinPlayers is the smallest table that can play
	MinPlayers = 2

	// MaxPlayers is the largest table: one card each
	MaxPlayers = 52
)

// ErrTurnLimit is returned when a game exceeds its configured turn ceiling
var ErrTurnLimit = errors.New("turn limit exceeded")

// ConfigError reports a game or statistics setup outside the supported range
type ConfigError struct {
	Field  string
	Value  int
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// ValidatePlayers checks n is within [MinPlayers, MaxPlayers]
func ValidatePlayers(n int) error {
	if n < MinPlayers || n > MaxPlayers {
		return &ConfigError{
			Field:  "player count",
			Value:  n,
			Reason: fmt.Sprintf("must be between %d and %d", MinPlayers, MaxPlayers),
		}
	}
	return nil
}
