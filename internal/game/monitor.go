package game

import "github.com/lox/beggar/internal/deck"

// Monitor observes a game as the engine plays it
type Monitor interface {
	// OnGameStart is called once with the dealt deck, before the first turn
	OnGameStart(players int, cards []deck.Rank)

	// OnTurn is called before each turn in which a player lays cards
	OnTurn(view TurnView)

	// OnGameComplete is called once the game has stopped
	OnGameComplete(result Result)
}

// NopMonitor ignores every event
type NopMonitor struct{}

func (NopMonitor) OnGameStart(int, []deck.Rank) {}
func (NopMonitor) OnTurn(TurnView)              {}
func (NopMonitor) OnGameComplete(Result)        {}
