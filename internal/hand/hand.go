// Package hand provides the FIFO card container used for player hands and
// the shared pile.
package hand

import (
	"errors"

	"github.com/lox/beggar/internal/deck"
)

// ErrEmptyHand is returned when peeking or popping an empty hand
var ErrEmptyHand = errors.New("hand is empty")

const minCapacity = 8

// Hand is an ordered queue of card ranks. Cards are pushed on the back and
// popped from the front. It is backed by a ring buffer so steady-state play
// does not allocate.
//
// A Hand is not safe for concurrent use.
type Hand struct {
	buf  []deck.Rank
	head int
	size int
}

// New returns an empty hand
func New() *Hand {
	return &Hand{}
}

// From returns a hand holding cards, front first
func From(cards ...deck.Rank) *Hand {
	h := &Hand{buf: make([]deck.Rank, max(len(cards), minCapacity))}
	copy(h.buf, cards)
	h.size = len(cards)
	return h
}

// Len returns the number of cards held
func (h *Hand) Len() int {
	return h.size
}

// IsEmpty returns true if the hand holds no cards
func (h *Hand) IsEmpty() bool {
	return h.size == 0
}

// PushBack appends a card to the back of the hand
func (h *Hand) PushBack(r deck.Rank) {
	if h.size == len(h.buf) {
		h.grow()
	}
	h.buf[(h.head+h.size)%len(h.buf)] = r
	h.size++
}

// PopFront removes and returns the front card
func (h *Hand) PopFront() (deck.Rank, error) {
	if h.size == 0 {
		return 0, ErrEmptyHand
	}
	r := h.buf[h.head]
	h.head = (h.head + 1) % len(h.buf)
	h.size--
	if h.size == 0 {
		h.head = 0
	}
	return r, nil
}

// PeekFront returns the front card without removing it
func (h *Hand) PeekFront() (deck.Rank, error) {
	if h.size == 0 {
		return 0, ErrEmptyHand
	}
	return h.buf[h.head], nil
}

// PeekBack returns the most recently pushed card without removing it
func (h *Hand) PeekBack() (deck.Rank, error) {
	if h.size == 0 {
		return 0, ErrEmptyHand
	}
	return h.buf[(h.head+h.size-1)%len(h.buf)], nil
}

// Clear discards every card, keeping the allocated buffer
func (h *Hand) Clear() {
	h.head = 0
	h.size = 0
}

// DrainInto moves every card to the back of dst in order, leaving h empty.
// Draining a hand into itself is a no-op.
func (h *Hand) DrainInto(dst *Hand) {
	if dst == h {
		return
	}
	for i := 0; i < h.size; i++ {
		dst.PushBack(h.buf[(h.head+i)%len(h.buf)])
	}
	h.Clear()
}

// Cards returns a copy of the hand's contents, front first
func (h *Hand) Cards() []deck.Rank {
	out := make([]deck.Rank, h.size)
	for i := range out {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}

// String renders the hand front to back as numeric ranks
func (h *Hand) String() string {
	return deck.Format(h.Cards())
}

func (h *Hand) grow() {
	next := make([]deck.Rank, max(2*len(h.buf), minCapacity))
	for i := 0; i < h.size; i++ {
		next[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	h.buf = next
	h.head = 0
}
