package display

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokeranalyzer/internal/analyzer"
	"github.com/lox/pokeranalyzer/internal/handfile"
	"github.com/lox/pokeranalyzer/poker"
)

func newAnalyzer(t *testing.T) *analyzer.Analyzer {
	t.Helper()
	return analyzer.New(analyzer.Options{
		Hands:  6,
		Logger: log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}),
		Clock:  quartz.NewMock(t),
	})
}

func TestCardPadding(t *testing.T) {
	r := NewReporter(io.Discard, Options{})
	assert.Equal(t, "10H", r.Card(poker.Card{Face: poker.Ten, Suit: poker.Hearts}))
	assert.Equal(t, " AS", r.Card(poker.Card{Face: poker.Ace, Suit: poker.Spades}))

	h := poker.MustEvaluate(poker.MustParseCards("10H JH QH KH AH"))
	assert.Equal(t, "10H  JH  QH  KH  AH", r.Hand(h))
}

func TestFileRoundReport(t *testing.T) {
	a := newAnalyzer(t)
	round, err := a.Rank(context.Background(), [][]poker.Card{
		poker.MustParseCards("5D 5C 9H 9S 9D"),
		poker.MustParseCards("10H JH QH KH AH"),
		poker.MustParseCards("2C 2D 2H 2S 9C"),
	})
	require.NoError(t, err)
	round.Lines = []string{"5D, 5C, 9H, 9S, 9D", "10H, JH, QH, KH, AH", "2C, 2D, 2H, 2S, 9C"}

	var buf bytes.Buffer
	NewReporter(&buf, Options{}).FileRound("hands.txt", round)
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, banner+"\n\n*** USING TEST DECK ***\n\n*** File: hands.txt\n"))
	assert.Contains(t, out, "*** Here are the three hands...\n 5D  5C  9H  9S  9D\n")
	assert.Contains(t, out, "--- WINNING HAND ORDER ---\n"+
		"10H  JH  QH  KH  AH - Royal Flush\n"+
		" 2C  2D  2H  2S  9C - Four of a Kind\n"+
		" 5D  5C  9H  9S  9D - Full House\n")
	assert.NotContains(t, out, "\x1b[", "no escape codes without color")
}

func TestRandomRoundReport(t *testing.T) {
	round, err := newAnalyzer(t).RandomRound(context.Background(), 5)
	require.NoError(t, err)

	var buf bytes.Buffer
	NewReporter(&buf, Options{Explain: true}).RandomRound(round)
	out := buf.String()

	assert.Contains(t, out, "*** USING RANDOMIZED DECK OF CARDS ***")
	assert.Contains(t, out, "*** Shuffled 52 card deck:")
	assert.Contains(t, out, "*** Here are the six hands...")
	assert.Contains(t, out, "*** Here is what remains in the deck...")
	assert.Contains(t, out, " beats ")

	lines := strings.Split(out, "\n")
	// 52 cards in four rows of 13, each card three columns plus a separator.
	for i, line := range lines {
		if line == "*** Shuffled 52 card deck:" {
			for _, row := range lines[i+1 : i+5] {
				assert.Len(t, row, 13*4-1)
			}
			assert.Equal(t, "", lines[i+5])
		}
	}
}

func TestFileErrorReport(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, Options{})

	_, err := handfile.Parse(strings.NewReader("10H, JH, QH, KH, AH\n2C, 2D, 2H, JH, 9C\n5D, 5C, 9H, 9S, 9D\n"), handfile.Options{})
	require.Error(t, err)

	r.FileError("hands.txt", err)
	assert.Equal(t, banner+"\n\n*** USING TEST DECK ***\n\n*** File: hands.txt\n"+
		"10H, JH, QH, KH, AH\n"+
		"2C, 2D, 2H, JH, 9C\n"+
		"\n"+
		"*** ERROR - DUPLICATED CARD FOUND IN DECK ***\n\n*** DUPLICATE: JH ***\n", buf.String())
	assert.NotContains(t, buf.String(), "5D, 5C")

	buf.Reset()
	r.FileError("hands.txt", errors.New("line 2: invalid face"))
	assert.Contains(t, buf.String(), "*** ERROR - line 2: invalid face ***")
}
