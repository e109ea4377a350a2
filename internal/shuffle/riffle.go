// Package shuffle implements riffle shuffling, full deck shuffles and the
// measurements used to judge how well a sequence is mixed.
package shuffle

import (
	rand "math/rand/v2"

	"github.com/lox/beggar/internal/deck"
	"github.com/lox/beggar/internal/randutil"
)

// RiffleOnce performs a single riffle of s and returns the result in a new
// slice. The left half is s[:n/2] and the right half the remainder; each
// output card is drawn from the left or right half with equal probability
// until one half runs out, then the rest of the other half follows in order.
func RiffleOnce[T any](rng *rand.Rand, s []T) []T {
	out := make([]T, 0, len(s))
	half := len(s) / 2
	left, right := s[:half], s[half:]

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if rng.IntN(2) == 1 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// Riffle applies RiffleOnce n times. n <= 0 returns an unshuffled copy.
func Riffle[T any](rng *rand.Rand, s []T, n int) []T {
	if n <= 0 {
		return append([]T(nil), s...)
	}
	out := s
	for range n {
		out = RiffleOnce(rng, out)
	}
	return out
}

// Deck returns a uniformly random permutation of cards using Fisher-Yates.
// A non-negative seed always yields the same permutation; a negative seed
// draws one from the clock. The input slice is left untouched.
func Deck(cards []deck.Rank, seed int64) []deck.Rank {
	rng, _ := randutil.FromSeed(seed)
	return DeckWith(rng, cards)
}

// DeckWith shuffles a copy of cards with the supplied generator
func DeckWith(rng *rand.Rand, cards []deck.Rank) []deck.Rank {
	out := append([]deck.Rank(nil), cards...)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
