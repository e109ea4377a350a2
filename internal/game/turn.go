package game

import (
	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/hand"
)

// Penalty describes what the player about to act owes
type Penalty struct {
	Count  int  // cards to lay
	Paying bool // true when the pile is topped by a penalty card
}

// PenaltyFor reads the penalty from the top of the pile. An empty pile or a
// plain card means lay one card with nothing owed.
func PenaltyFor(pile *hand.Hand) Penalty {
	top, err := pile.PeekBack()
	if err != nil || !top.IsPenalty() {
		return Penalty{Count: 1}
	}
	return Penalty{Count: top.PenaltySize(), Paying: true}
}

// Phase is a state of the turn machine
type Phase int

const (
	PhaseAwaitingPlay Phase = iota
	PhasePenaltyCheck
	PhaseResolved
	PhaseForfeited
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlay:
		return "awaiting-play"
	case PhasePenaltyCheck:
		return "penalty-check"
	case PhaseResolved:
		return "resolved"
	case PhaseForfeited:
		return "forfeited"
	default:
		return "unknown"
	}
}

// Turn resolves one player's turn against the pile
type Turn struct {
	player  *hand.Hand
	pile    *hand.Hand
	penalty Penalty
	played  int
	last    deck.Rank
	phase   Phase
}

// NewTurn prepares a turn. A player with no cards resolves immediately
// without touching the pile.
func NewTurn(player, pile *hand.Hand) *Turn {
	t := &Turn{
		player:  player,
		pile:    pile,
		penalty: PenaltyFor(pile),
	}
	if player.IsEmpty() {
		t.phase = PhaseResolved
	}
	return t
}

// Penalty returns what the player owed when the turn started
func (t *Turn) Penalty() Penalty { return t.penalty }

// Played returns how many cards the player has laid so far
func (t *Turn) Played() int { return t.played }

// Phase returns the current state
func (t *Turn) Phase() Phase { return t.phase }

// Done reports whether the turn reached a terminal phase
func (t *Turn) Done() bool {
	return t.phase == PhaseResolved || t.phase == PhaseForfeited
}

// Step performs one transition and returns the new phase. Stepping a
// finished turn is a no-op.
func (t *Turn) Step() Phase {
	switch t.phase {
	case PhaseAwaitingPlay:
		if t.player.IsEmpty() {
			// Ran out while paying: the pile is lost.
			t.phase = PhaseForfeited
			break
		}
		card, _ := t.player.PopFront()
		t.pile.PushBack(card)
		t.last = card
		t.played++
		t.phase = PhasePenaltyCheck

	case PhasePenaltyCheck:
		switch {
		case !t.penalty.Paying, t.last.IsPenalty():
			t.phase = PhaseResolved
		case t.played >= t.penalty.Count:
			t.phase = PhaseForfeited
		default:
			t.phase = PhaseAwaitingPlay
		}
	}
	return t.phase
}

// Resolve runs the turn to completion. A forfeited turn drains the pile into
// the returned reward; otherwise the reward is empty.
func (t *Turn) Resolve() *hand.Hand {
	for !t.Done() {
		t.Step()
	}
	reward := hand.New()
	if t.phase == PhaseForfeited {
		t.pile.DrainInto(reward)
	}
	return reward
}

// TakeTurn plays one turn for player and returns the cards owed to the
// pending penalty player, if any.
func TakeTurn(player, pile *hand.Hand) *hand.Hand {
	return NewTurn(player, pile).Resolve()
}
