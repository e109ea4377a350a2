package deck

import "strconv"

// Rank is a card's face value. Suits play no part in Beggar-My-Neighbour so a
// card is represented by its rank alone.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// IsValid reports whether r is in [Two, Ace].
func (r Rank) IsValid() bool {
	return r >= Two && r <= Ace
}

// IsPenalty returns true for Jack, Queen, King and Ace.
func (r Rank) IsPenalty() bool {
	return r >= Jack && r <= Ace
}

// PenaltySize returns how many cards the next player must lay after r is
// played: Jack=1, Queen=2, King=3, Ace=4. Plain cards return 0.
func (r Rank) PenaltySize() int {
	if !r.IsPenalty() {
		return 0
	}
	return int(r-Jack) + 1
}

// String returns the numeric rank, e.g. "11" for a Jack
func (r Rank) String() string {
	return strconv.Itoa(int(r))
}

// Name returns the human readable rank name
func (r Rank) Name() string {
	switch r {
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	}
	if r.IsValid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}
