package shuffle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/randutil"
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestRifflePreservesElements(t *testing.T) {
	t.Parallel()
	rng := randutil.New(42)

	for _, length := range []int{0, 1, 2, 3, 7, 20, 52, 101} {
		for _, n := range []int{0, 1, 2, 5, 15} {
			t.Run(fmt.Sprintf("len=%d/riffles=%d", length, n), func(t *testing.T) {
				original := sequence(length)
				shuffled := Riffle(rng, original, n)
				assert.Len(t, shuffled, length)
				assert.True(t, Check(original, shuffled))
				assert.Equal(t, sequence(length), original, "input must not be mutated")
			})
		}
	}
}

func TestRiffleOnceKeepsHalvesInOrder(t *testing.T) {
	t.Parallel()
	rng := randutil.New(7)
	original := sequence(21)

	out := RiffleOnce(rng, original)

	// Left half is 0..9 and right half 10..20; a riffle interleaves them but
	// never reorders within a half.
	lastLeft, lastRight := -1, 9
	for _, v := range out {
		if v < 10 {
			assert.Greater(t, v, lastLeft)
			lastLeft = v
		} else {
			assert.Greater(t, v, lastRight)
			lastRight = v
		}
	}
}

func TestRiffleStrings(t *testing.T) {
	t.Parallel()
	greek := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa", "lambda", "mu"}
	out := Riffle(randutil.New(3), greek, 3)
	assert.True(t, Check(greek, out))
}

func TestRiffleDeterministicForSeed(t *testing.T) {
	t.Parallel()
	a := Riffle(randutil.New(99), sequence(52), 7)
	b := Riffle(randutil.New(99), sequence(52), 7)
	assert.Equal(t, a, b)
}

func TestDeckSeeded(t *testing.T) {
	t.Parallel()
	cards := deck.Standard()

	a := Deck(cards, 10)
	b := Deck(cards, 10)
	c := Deck(cards, 11)

	assert.Equal(t, a, b, "same seed must give the same permutation")
	assert.NotEqual(t, a, c)
	require.NoError(t, deck.Validate(a))
	assert.Equal(t, deck.Standard(), cards, "input must not be mutated")
}

func TestDeckUnseeded(t *testing.T) {
	t.Parallel()
	out := Deck(deck.Standard(), -1)
	require.NoError(t, deck.Validate(out))
	assert.True(t, Check(deck.Standard(), out))
}
