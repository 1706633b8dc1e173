package poker

// Category enumerates the poker hand categories ordered from weakest to strongest.
// A royal flush is kept as its own category directly above a straight flush.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from strongest to weakest.
var Categories = [...]Category{
	RoyalFlush,
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// tierSpacing separates category bases so that face rank plus suit weight
// never reaches the next tier.
const tierSpacing = 1000

// Base returns the per-card category base value. Royal flush shares the
// straight flush tier boundary but carries an extra increment.
func (c Category) Base() int {
	switch c {
	case RoyalFlush:
		return StraightFlush.Base() + tierSpacing/2
	default:
		return (int(c) + 1) * tierSpacing
	}
}

// suited reports whether suit participates in the per-card primary value.
func (c Category) suited() bool {
	return c != OnePair && c != TwoPair
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}
