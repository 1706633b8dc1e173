// Package handfile reads pre-dealt poker hands from a text file.
//
// Each non-blank line holds one hand as comma separated card codes:
//
//	10H, JH, QH, KH, AH
//	2C, 2D, 2H, 2S, 9C
package handfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lox/pokeranalyzer/poker"
)

// DefaultMaxHands is the number of hands read when Options.MaxHands is unset.
const DefaultMaxHands = 6

// Options controls parsing.
type Options struct {
	// MaxHands stops reading after this many hands (0 = DefaultMaxHands).
	MaxHands int
}

// Result holds the hands read from a file along with the raw lines they
// came from, in file order.
type Result struct {
	Lines []string
	Hands []*poker.Hand
}

// Units name what Line counts in errors.
const (
	UnitLine = "line"
	UnitHand = "hand"
)

// DuplicateCardError reports a card that appears more than once in the input.
// Lines holds the input read up to and including the offending line.
type DuplicateCardError struct {
	Card  string
	Line  int
	Unit  string
	Lines []string
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("duplicate card %s on %s %d", e.Card, unit(e.Unit), e.Line)
}

// LineError reports a malformed line, or a malformed hand when Unit is UnitHand.
type LineError struct {
	Line int
	Unit string
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s %d %q: %v", unit(e.Unit), e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parse reads hands from r. Parsing halts at the first duplicate card or
// malformed line; no partial result is returned in that case, though a
// DuplicateCardError carries the lines read so far.
func Parse(r io.Reader, opts Options) (*Result, error) {
	maxHands := opts.MaxHands
	if maxHands <= 0 {
		maxHands = DefaultMaxHands
	}

	res := &Result{}
	col := newCollector(UnitLine)
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() && len(res.Hands) < maxHands {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		cards, err := col.collect(strings.Split(line, ","), lineNo, line)
		if err != nil {
			var dup *DuplicateCardError
			if errors.As(err, &dup) {
				dup.Lines = append(res.Lines, line)
			}
			return nil, err
		}

		hand, err := poker.Evaluate(cards)
		if err != nil {
			return nil, &LineError{Line: lineNo, Unit: UnitLine, Text: line, Err: err}
		}
		res.Lines = append(res.Lines, line)
		res.Hands = append(res.Hands, hand)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hands: %w", err)
	}
	return res, nil
}

// ParseFile reads hands from the file at path.
func ParseFile(path string, opts Options) (*Result, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f, opts)
}

// Codes parses hands given as lists of card codes, applying the same
// duplicate detection as Parse. Hands are numbered from 1 in errors. The
// card sets are not evaluated.
func Codes(hands [][]string) ([][]poker.Card, error) {
	col := newCollector(UnitHand)
	sets := make([][]poker.Card, 0, len(hands))
	for i, codes := range hands {
		cards, err := col.collect(codes, i+1, strings.Join(codes, ", "))
		if err != nil {
			return nil, err
		}
		if len(cards) != poker.HandSize {
			return nil, &LineError{
				Line: i + 1,
				Unit: UnitHand,
				Text: strings.Join(codes, ", "),
				Err:  fmt.Errorf("%w: got %d cards, want %d", poker.ErrInvalidHandSize, len(cards), poker.HandSize),
			}
		}
		sets = append(sets, cards)
	}
	return sets, nil
}

// collector parses card codes and remembers every card it has returned.
type collector struct {
	unit string
	seen map[poker.Card]bool
}

func newCollector(unit string) *collector {
	return &collector{unit: unit, seen: make(map[poker.Card]bool)}
}

func (c *collector) collect(codes []string, line int, text string) ([]poker.Card, error) {
	cards := make([]poker.Card, 0, len(codes))
	for _, raw := range codes {
		code := strings.TrimSpace(raw)
		card, err := poker.ParseCard(code)
		if err != nil {
			return nil, &LineError{Line: line, Unit: c.unit, Text: text, Err: err}
		}
		if c.seen[card] {
			return nil, &DuplicateCardError{Card: code, Line: line, Unit: c.unit}
		}
		c.seen[card] = true
		cards = append(cards, card)
	}
	return cards, nil
}

func unit(u string) string {
	if u == "" {
		return UnitLine
	}
	return u
}
