package poker

import "slices"

// faceCounts builds the face histogram, indexed by face rank.
func faceCounts(cards []Card) [Ace + 1]int {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c.Face]++
	}
	return counts
}

// partition orders cards key cards first, then kickers, and returns the
// number of key cards. Key groups are ordered by size, then face; kickers by
// face. Suit only settles the order between cards of equal face.
func partition(cards []Card, counts [Ace + 1]int) ([]Card, int) {
	keys := make([]Card, 0, len(cards))
	kickers := make([]Card, 0, len(cards))
	for _, c := range cards {
		if counts[c.Face] > 1 {
			keys = append(keys, c)
		} else {
			kickers = append(kickers, c)
		}
	}

	slices.SortFunc(keys, func(a, b Card) int {
		if counts[a.Face] != counts[b.Face] {
			return counts[b.Face] - counts[a.Face]
		}
		return descending(a, b)
	})
	slices.SortFunc(kickers, descending)

	ordered := append(keys, kickers...)

	// A wheel reads 5-4-3-2-A: the Ace plays low.
	if isStraight(counts) && ordered[0].Face == Ace && ordered[len(ordered)-1].Face == Two {
		ace := ordered[0]
		copy(ordered, ordered[1:])
		ordered[len(ordered)-1] = ace
	}
	return ordered, len(keys)
}

func descending(a, b Card) int {
	if a.Face != b.Face {
		return int(b.Face) - int(a.Face)
	}
	return int(b.Suit) - int(a.Suit)
}
