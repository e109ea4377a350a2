package shuffle

import (
	"cmp"
	rand "math/rand/v2"
)

// Quality returns the fraction of adjacent pairs in s where the second item
// is strictly greater than the first. A well mixed sequence of distinct values
// scores close to 0.5; a sorted one scores 1. Sequences shorter than two
// have no pairs and score 0.
func Quality[T cmp.Ordered](s []T) float64 {
	if len(s) < 2 {
		return 0
	}
	ascending := 0
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			ascending++
		}
	}
	return float64(ascending) / float64(len(s)-1)
}

// Check reports whether shuffled is a permutation of original: every value
// appears in both with the same multiplicity.
func Check[T comparable](original, shuffled []T) bool {
	if len(original) != len(shuffled) {
		return false
	}
	counts := make(map[T]int, len(original))
	for _, v := range original {
		counts[v]++
	}
	for _, v := range shuffled {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

// AverageQuality riffles the sequence 0..length-1 the given number of times
// and averages Quality over trials. Every trial starts from sorted input.
func AverageQuality(rng *rand.Rand, length, riffles, trials int) float64 {
	if trials <= 0 {
		return 0
	}
	numbers := make([]int, length)
	for i := range numbers {
		numbers[i] = i
	}

	total := 0.0
	for range trials {
		total += Quality(Riffle(rng, numbers, riffles))
	}
	return total / float64(trials)
}

// QualityPoint is the average quality measured after Riffles riffles
type QualityPoint struct {
	Riffles int
	Quality float64
}

// QualitySweep measures AverageQuality for 1..maxRiffles riffles
func QualitySweep(rng *rand.Rand, length, maxRiffles, trials int) []QualityPoint {
	points := make([]QualityPoint, 0, max(maxRiffles, 0))
	for n := 1; n <= maxRiffles; n++ {
		points = append(points, QualityPoint{
			Riffles: n,
			Quality: AverageQuality(rng, length, n, trials),
		})
	}
	return points
}
