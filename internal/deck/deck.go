package deck

import (
	"fmt"
	"strings"
)

const (
	// Size is the number of cards in a standard deck
	Size = 52

	// Copies is how many times each rank appears in a standard deck
	Copies = 4
)

// Standard returns a fresh, unshuffled 52-card deck: four of each rank from
// Two to Ace, in ascending order.
func Standard() []Rank {
	cards := make([]Rank, 0, Size)
	for r := Two; r <= Ace; r++ {
		for range Copies {
			cards = append(cards, r)
		}
	}
	return cards
}

// Validate checks that cards is a permutation of the standard deck.
func Validate(cards []Rank) error {
	if len(cards) != Size {
		return fmt.Errorf("deck has %d cards, want %d", len(cards), Size)
	}

	var counts [Ace + 1]int
	for i, c := range cards {
		if !c.IsValid() {
			return fmt.Errorf("card %d has invalid rank %d", i, int(c))
		}
		counts[c]++
	}
	for r := Two; r <= Ace; r++ {
		if counts[r] != Copies {
			return fmt.Errorf("rank %s appears %d times, want %d", r, counts[r], Copies)
		}
	}
	return nil
}

// Format renders cards as space separated numeric ranks
func Format(cards []Rank) string {
	var sb strings.Builder
	for i, c := range cards {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
