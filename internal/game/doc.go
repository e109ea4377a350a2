// Package game implements the Beggar-My-Neighbour rules: the per-turn
// resolver and the engine that drives a full game to completion.
//
// # Turns
//
// A turn is resolved by the Turn state machine. The top of the pile decides
// whether the player owes a penalty (Jack=1, Queen=2, King=3, Ace=4 cards) or
// just lays a single card:
//
//	AwaitingPlay -> PenaltyCheck -> AwaitingPlay (still paying)
//	                             -> Resolved     (no penalty owed, or a penalty card was laid)
//	                             -> Forfeited    (penalty paid in full, or ran out of cards)
//
// A forfeited turn hands the whole pile to the player who laid the penalty
// card. TakeTurn wraps the machine behind the reward-returning contract.
//
// # Games
//
// State holds every hand, the pile, the pending penalty player and the turn
// counters. State.Step advances exactly one turn so tests can drive a game
// card by card. Engine loops Step until one player holds the whole deck, or
// until the only player left would be paying a penalty to themself:
//
//	cards := shuffle.Deck(deck.Standard(), 42)
//	result, err := game.NewEngine(game.Config{}).Play(3, cards)
//
// Turns taken by players who are already out are not counted in
// Result.Turns.
package game
