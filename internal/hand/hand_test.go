package hand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/beggar/internal/deck"
)

func TestEmptyHand(t *testing.T) {
	t.Parallel()
	h := New()

	assert.True(t, h.IsEmpty())
	assert.Equal(t, 0, h.Len())

	_, err := h.PopFront()
	assert.ErrorIs(t, err, ErrEmptyHand)
	_, err = h.PeekFront()
	assert.ErrorIs(t, err, ErrEmptyHand)
	_, err = h.PeekBack()
	assert.ErrorIs(t, err, ErrEmptyHand)
	assert.Empty(t, h.Cards())
	assert.Equal(t, "", h.String())
}

func TestFIFOOrder(t *testing.T) {
	t.Parallel()
	h := New()
	h.PushBack(deck.Two)
	h.PushBack(deck.Jack)
	h.PushBack(deck.Ace)

	front, err := h.PeekFront()
	require.NoError(t, err)
	assert.Equal(t, deck.Two, front)

	back, err := h.PeekBack()
	require.NoError(t, err)
	assert.Equal(t, deck.Ace, back)

	for _, want := range []deck.Rank{deck.Two, deck.Jack, deck.Ace} {
		got, err := h.PopFront()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.True(t, h.IsEmpty())
}

func TestWrapAroundAndGrow(t *testing.T) {
	t.Parallel()
	h := New()
	var want []deck.Rank

	// Interleave pushes and pops so head walks around the buffer while it grows.
	next := deck.Two
	for i := 0; i < 200; i++ {
		h.PushBack(next)
		want = append(want, next)
		next++
		if next > deck.Ace {
			next = deck.Two
		}
		if i%3 == 0 {
			got, err := h.PopFront()
			require.NoError(t, err)
			assert.Equal(t, want[0], got)
			want = want[1:]
		}
	}

	assert.Equal(t, len(want), h.Len())
	assert.Equal(t, want, h.Cards())

	back, err := h.PeekBack()
	require.NoError(t, err)
	assert.Equal(t, want[len(want)-1], back)
}

func TestClear(t *testing.T) {
	t.Parallel()
	h := From(deck.Three, deck.Four)
	h.Clear()
	assert.True(t, h.IsEmpty())
	h.PushBack(deck.King)
	assert.Equal(t, []deck.Rank{deck.King}, h.Cards())
}

func TestDrainInto(t *testing.T) {
	t.Parallel()
	pile := From(deck.Five, deck.Queen, deck.Nine)
	player := From(deck.Two)

	pile.DrainInto(player)

	assert.True(t, pile.IsEmpty())
	assert.Equal(t, []deck.Rank{deck.Two, deck.Five, deck.Queen, deck.Nine}, player.Cards())

	// Self-drain must not lose cards
	player.DrainInto(player)
	assert.Equal(t, 4, player.Len())
}

func TestFromCopiesInput(t *testing.T) {
	t.Parallel()
	cards := []deck.Rank{deck.Ten, deck.Ace}
	h := From(cards...)
	cards[0] = deck.Two

	assert.Equal(t, "10 14", h.String())
}
