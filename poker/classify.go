package poker

// classify determines the category of five cards. Checks run in strict
// precedence order and the first match wins.
func classify(cards []Card, counts [Ace + 1]int) Category {
	flush := isFlush(cards)
	straight := isStraight(counts)

	var quads, trips, pairs int
	for _, n := range counts {
		switch n {
		case 4:
			quads++
		case 3:
			trips++
		case 2:
			pairs++
		}
	}

	switch {
	case flush && straight:
		if counts[Ace] > 0 && counts[King] > 0 {
			return RoyalFlush
		}
		return StraightFlush
	case quads == 1:
		return FourOfAKind
	case trips == 1 && pairs == 1:
		return FullHouse
	case flush:
		return Flush
	case straight:
		return Straight
	case trips == 1:
		return ThreeOfAKind
	case pairs == 2:
		return TwoPair
	case pairs == 1:
		return OnePair
	default:
		return HighCard
	}
}

func isFlush(cards []Card) bool {
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// isStraight reports five consecutive faces, or the wheel A-2-3-4-5.
func isStraight(counts [Ace + 1]int) bool {
	ranks := make([]int, 0, HandSize)
	for f := Two; f <= Ace; f++ {
		switch counts[f] {
		case 0:
		case 1:
			ranks = append(ranks, int(f))
		default:
			return false
		}
	}
	if len(ranks) != HandSize {
		return false
	}
	if ranks[HandSize-1]-ranks[0] == HandSize-1 {
		return true
	}
	return ranks[0] == 2 && ranks[1] == 3 && ranks[2] == 4 && ranks[3] == 5 && ranks[4] == 14
}
