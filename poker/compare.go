package poker

import (
	"fmt"
	"slices"
)

// Compare compares two hands and returns:
// -1 if a is weaker than b
//
//	0 if a equals b
//	1 if a is stronger than b
//
// Cards are compared position by position on their values: category tier,
// then face, then suit (suit is left out for One Pair and Two Pair). When
// every position ties, the suits alone are compared position by position, so
// hands built from different cards never compare equal.
func Compare(a, b *Hand) int {
	for i := range a.values {
		if c := a.values[i].Compare(b.values[i]); c != 0 {
			return c
		}
	}
	for i := range a.suits {
		if c := cmpInt(int(a.suits[i]), int(b.suits[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Compare compares h with other, see Compare.
func (h *Hand) Compare(other *Hand) int {
	return Compare(h, other)
}

// Beats returns true if h is stronger than other
func (h *Hand) Beats(other *Hand) bool {
	return Compare(h, other) > 0
}

// Sort orders hands from weakest to strongest in place.
func Sort(hands []*Hand) {
	slices.SortFunc(hands, Compare)
}

// SortDescending orders hands in winning order, strongest first, in place.
func SortDescending(hands []*Hand) {
	slices.SortFunc(hands, func(a, b *Hand) int {
		return Compare(b, a)
	})
}

// Ranking returns a copy of hands in winning order.
func Ranking(hands []*Hand) []*Hand {
	out := slices.Clone(hands)
	SortDescending(out)
	return out
}

// Explain compares two hands and returns the result with a short explanation
// of what decided it.
func Explain(a, b *Hand) (int, string) {
	result := Compare(a, b)
	if result == 0 {
		return 0, "hands tie"
	}

	winner, loser := a, b
	if result < 0 {
		winner, loser = b, a
	}
	explanation := fmt.Sprintf("%s beats %s", winner, loser)

	if winner.category != loser.category {
		return result, explanation + fmt.Sprintf(" (%s beats %s)", winner.category, loser.category)
	}

	for i := range winner.values {
		w, l := winner.cards[i], loser.cards[i]
		if w.Face != l.Face {
			return result, explanation + fmt.Sprintf(" with %s (%s vs %s)", decidingCard(winner, i), w.Face, l.Face)
		}
		if winner.values[i] != loser.values[i] {
			return result, explanation + fmt.Sprintf(" on suit (%s vs %s)", w, l)
		}
	}
	for i := range winner.suits {
		if winner.suits[i] != loser.suits[i] {
			return result, explanation + fmt.Sprintf(" on suit tie-break (%s vs %s)", winner.cards[i], loser.cards[i])
		}
	}
	return result, explanation
}

// decidingCard names the role of the card at position i for explanations.
func decidingCard(h *Hand, i int) string {
	if h.keys == 0 {
		return "higher card"
	}
	if i >= h.keys {
		return "higher kicker"
	}
	switch h.category {
	case FourOfAKind:
		return "higher quads"
	case FullHouse:
		if i < 3 {
			return "higher trips"
		}
		return "higher pair"
	case ThreeOfAKind:
		return "higher trips"
	case TwoPair:
		if i < 2 {
			return "higher top pair"
		}
		return "higher bottom pair"
	case OnePair:
		return "higher pair"
	default:
		return "higher card"
	}
}
