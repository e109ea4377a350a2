package game

import (
	"fmt"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/hand"
)

// NoPlayer marks the absence of a pending penalty player or a winner
const NoPlayer = -1

// StepKind classifies what happened on a turn
type StepKind int

const (
	// StepPlayed means the player laid at least one card
	StepPlayed StepKind = iota
	// StepSkipped means the player was already out; it counts as a false turn
	StepSkipped
	// StepSelfPenalty means the player was owed their own penalty and the game stopped
	StepSelfPenalty
)

func (k StepKind) String() string {
	switch k {
	case StepPlayed:
		return "played"
	case StepSkipped:
		return "skipped"
	case StepSelfPenalty:
		return "self-penalty"
	default:
		return "unknown"
	}
}

// StepResult summarises one call to State.Step
type StepResult struct {
	Turn      int
	Player    int
	Kind      StepKind
	Penalty   Penalty
	Phase     Phase
	Played    int
	Collector int // player who received the pile, or NoPlayer
	Collected int // cards received by Collector
}

// TurnView is a snapshot taken just before a player acts
type TurnView struct {
	Turn    int
	Player  int
	Penalty Penalty
	Pile    []deck.Rank
	Hands   [][]deck.Rank
}

// State is the full state of one game
type State struct {
	Hands      []*hand.Hand
	Pile       *hand.Hand
	Pending    int // player owed the pile if the current payer fails, or NoPlayer
	Turn       int // turns taken, including skipped players
	FalseTurns int // turns skipped because the player was out

	// OnTurn, when set, is called with a snapshot before each resolved turn
	OnTurn func(TurnView)

	stopped bool
}

// NewState validates the setup and deals cards round-robin starting with
// player 0.
func NewState(players int, cards []deck.Rank) (*State, error) {
	if err := ValidatePlayers(players); err != nil {
		return nil, err
	}
	if err := deck.Validate(cards); err != nil {
		return nil, &ConfigError{Field: "deck", Value: len(cards), Err: err}
	}

	s := &State{
		Hands:   make([]*hand.Hand, players),
		Pile:    hand.New(),
		Pending: NoPlayer,
	}
	for i := range s.Hands {
		s.Hands[i] = hand.New()
	}
	for i, c := range cards {
		s.Hands[i%players].PushBack(c)
	}
	return s, nil
}

// Step advances the game by one turn
func (s *State) Step() StepResult {
	current := s.Turn % len(s.Hands)
	s.Turn++

	res := StepResult{Turn: s.Turn, Player: current, Collector: NoPlayer}

	if s.Pending == current {
		// Everyone else is out; the player would pay their own penalty.
		s.stopped = true
		res.Kind = StepSelfPenalty
		return res
	}

	player := s.Hands[current]
	if player.IsEmpty() {
		s.FalseTurns++
		res.Kind = StepSkipped
		return res
	}

	turn := NewTurn(player, s.Pile)
	res.Penalty = turn.Penalty()
	if s.OnTurn != nil {
		s.OnTurn(s.view(current, res.Penalty))
	}

	reward := turn.Resolve()
	res.Phase = turn.Phase()
	res.Played = turn.Played()

	if !reward.IsEmpty() {
		if s.Pending == NoPlayer {
			panic(fmt.Sprintf("game: turn %d forfeited %d cards with no pending player", s.Turn, reward.Len()))
		}
		res.Collector = s.Pending
		res.Collected = reward.Len()
		reward.DrainInto(s.Hands[s.Pending])
		s.Pending = NoPlayer
		return res
	}

	if top, err := s.Pile.PeekBack(); err == nil && top.IsPenalty() {
		s.Pending = current
	}
	return res
}

// Finished reports whether one player holds the entire deck
func (s *State) Finished() bool {
	empty, holder := 0, NoPlayer
	for i, h := range s.Hands {
		if h.IsEmpty() {
			empty++
		} else {
			holder = i
		}
	}
	return empty == len(s.Hands)-1 && holder != NoPlayer && s.Hands[holder].Len() == deck.Size
}

// Done reports whether the game loop should stop
func (s *State) Done() bool {
	return s.stopped || s.Finished()
}

// Stopped reports whether the game ended on the self-penalty guard
func (s *State) Stopped() bool {
	return s.stopped
}

// Winner returns the player holding (or owed) every card once the game is
// done, or NoPlayer while it is still running.
func (s *State) Winner() int {
	if s.stopped {
		return s.Pending
	}
	if !s.Finished() {
		return NoPlayer
	}
	for i, h := range s.Hands {
		if !h.IsEmpty() {
			return i
		}
	}
	return NoPlayer
}

// Score is the number of turns in which an active player took part
func (s *State) Score() int {
	return s.Turn - s.FalseTurns
}

// CardCount returns the cards held across all hands and the pile. It is
// always deck.Size for a State built by NewState.
func (s *State) CardCount() int {
	n := s.Pile.Len()
	for _, h := range s.Hands {
		n += h.Len()
	}
	return n
}

func (s *State) view(current int, p Penalty) TurnView {
	v := TurnView{
		Turn:    s.Turn,
		Player:  current,
		Penalty: p,
		Pile:    s.Pile.Cards(),
		Hands:   make([][]deck.Rank, len(s.Hands)),
	}
	for i, h := range s.Hands {
		v.Hands[i] = h.Cards()
	}
	return v
}
