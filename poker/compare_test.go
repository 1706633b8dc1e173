package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokeranalyzer/internal/randutil"
)

// representative hands, strongest first
var categoryLadder = []struct {
	category Category
	cards    string
}{
	{RoyalFlush, "10S JS QS KS AS"},
	{StraightFlush, "9H 10H JH QH KH"},
	{FourOfAKind, "2C 2D 2H 2S 3C"},
	{FullHouse, "2D 2H 3S 3H 3D"},
	{Flush, "2C 3C 4C 5C 7C"},
	{Straight, "AD 2H 3C 4S 5D"},
	{ThreeOfAKind, "AC AD AH KC QC"},
	{TwoPair, "AS AH KS KH QD"},
	{OnePair, "AC AD KD QH JS"},
	{HighCard, "AH KD QC JC 9S"},
}

func TestCategoryStrengthOrdering(t *testing.T) {
	t.Parallel()

	hands := make([]*Hand, len(categoryLadder))
	for i, rung := range categoryLadder {
		hands[i] = MustEvaluate(MustParseCards(rung.cards))
		require.Equal(t, rung.category, hands[i].Category(), rung.cards)
	}

	for i := range hands {
		for j := range hands {
			want := 0
			switch {
			case i < j:
				want = 1
			case i > j:
				want = -1
			}
			assert.Equal(t, want, Compare(hands[i], hands[j]),
				"%s vs %s", hands[i].Category(), hands[j].Category())
		}
	}
}

func TestWheelIsLowestStraight(t *testing.T) {
	t.Parallel()

	wheel := MustEvaluate(MustParseCards("AS 2D 3C 4H 5S"))
	six := MustEvaluate(MustParseCards("2C 3D 4S 5H 6D"))
	broadway := MustEvaluate(MustParseCards("10C JD QS KH AD"))

	require.Equal(t, Straight, wheel.Category())
	assert.True(t, six.Beats(wheel))
	assert.True(t, broadway.Beats(six))
	assert.Equal(t, -1, Compare(wheel, six))

	wheelFlush := MustEvaluate(MustParseCards("AD 2D 3D 4D 5D"))
	sixFlush := MustEvaluate(MustParseCards("2H 3H 4H 5H 6H"))
	assert.True(t, sixFlush.Beats(wheelFlush))
}

func TestSortDescendingExample(t *testing.T) {
	t.Parallel()

	full := MustEvaluate(MustParseCards("5D 5C 9H 9S 9D"))
	royal := MustEvaluate(MustParseCards("10H JH QH KH AH"))
	quads := MustEvaluate(MustParseCards("2C 2D 2H 2S 9C"))

	hands := []*Hand{full, royal, quads}
	ranked := Ranking(hands)
	assert.Equal(t, []*Hand{royal, quads, full}, ranked)
	assert.Equal(t, []*Hand{full, royal, quads}, hands, "Ranking does not reorder its input")

	Sort(hands)
	assert.Equal(t, []*Hand{full, quads, royal}, hands)

	SortDescending(hands)
	assert.Equal(t, []Category{RoyalFlush, FourOfAKind, FullHouse},
		[]Category{hands[0].Category(), hands[1].Category(), hands[2].Category()})
}

func TestFlushSuitTieBreak(t *testing.T) {
	t.Parallel()

	hearts := MustEvaluate(MustParseCards("2H 5H 8H JH KH"))
	diamonds := MustEvaluate(MustParseCards("2D 5D 8D JD KD"))

	assert.Equal(t, 1, Compare(hearts, diamonds))
	assert.Equal(t, -1, Compare(diamonds, hearts))
}

func TestExplain(t *testing.T) {
	t.Parallel()

	royal := MustEvaluate(MustParseCards("10H JH QH KH AH"))
	quads := MustEvaluate(MustParseCards("2C 2D 2H 2S 9C"))

	result, why := Explain(quads, royal)
	assert.Equal(t, -1, result)
	assert.Contains(t, why, "(Royal Flush beats Four of a Kind)")

	kings := MustEvaluate(MustParseCards("KC KD KH KS 9D"))
	result, why = Explain(kings, quads)
	assert.Equal(t, 1, result)
	assert.Contains(t, why, "higher quads (K vs 2)")

	result, why = Explain(royal, royal)
	assert.Equal(t, 0, result)
	assert.Equal(t, "hands tie", why)
}

func TestCompareTotalOrder(t *testing.T) {
	t.Parallel()

	rng := randutil.New(42)
	for round := 0; round < 500; round++ {
		d := NewDeck(rng)
		hands, err := d.DealHands(6)
		require.NoError(t, err)

		for _, a := range hands {
			for _, b := range hands {
				if a == b {
					assert.Equal(t, 0, Compare(a, b))
					continue
				}
				require.NotEqual(t, 0, Compare(a, b), "%s vs %s", a, b)
				assert.Equal(t, -Compare(b, a), Compare(a, b), "antisymmetric")
				for _, c := range hands {
					if Compare(a, b) > 0 && Compare(b, c) > 0 {
						assert.Equal(t, 1, Compare(a, c), "transitive")
					}
				}
			}
		}
	}
}

func TestSuitDecidesAtFirstDifferingCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
		why      string
	}{
		{"high card ace of spades over later king", "AS 8H 6D 4C 2S", "AD KH QC JS 9D", "on suit (AS vs AD)"},
		{"flush spades over later four", "AS JS 9S 6S 3S", "AD JD 9D 6D 4D", "on suit (AS vs AD)"},
		{"straight top card suit", "10S 9D 8D 7D 6D", "10H 9S 8S 7S 6S", "on suit (10S vs 10H)"},
		{"flush hearts over diamonds", "2H 5H 8H JH KH", "2D 5D 8D JD KD", "on suit (KH vs KD)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustEvaluate(MustParseCards(tt.stronger))
			b := MustEvaluate(MustParseCards(tt.weaker))
			require.Equal(t, a.Category(), b.Category())
			assert.Equal(t, 1, Compare(a, b))
			assert.Equal(t, -1, Compare(b, a))
			assert.Equal(t, 1, a.Values()[0].Compare(b.Values()[0]), "first card value decides")

			_, why := Explain(b, a)
			assert.Contains(t, why, tt.why)
		})
	}
}

func TestPairsCompareOnFaceBeforeSuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stronger string
		weaker   string
		why      string
	}{
		{"one pair kicker beats higher suited pair", "QH QC 10D 4S 2H", "QS QD 9C 4H 2S", "higher kicker (10 vs 9)"},
		{"one pair same faces falls back to suits", "QS QD 9C 4H 2S", "QH QC 9D 4S 2H", "on suit tie-break (QS vs QH)"},
		{"two pair kicker beats higher suited pairs", "KH KC 3H 3D 8C", "KS KD 3S 3C 7D", "higher kicker (8 vs 7)"},
		{"two pair same faces falls back to suits", "KS KC 3H 3D 7C", "KH KD 3S 3C 7D", "on suit tie-break (KS vs KH)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustEvaluate(MustParseCards(tt.stronger))
			b := MustEvaluate(MustParseCards(tt.weaker))
			assert.Equal(t, 1, Compare(a, b))

			_, why := Explain(a, b)
			assert.Contains(t, why, tt.why)
		})
	}
}
