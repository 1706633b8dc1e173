// Package display renders analyzer rounds as a text report.
package display

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pokeranalyzer/internal/analyzer"
	"github.com/lox/pokeranalyzer/internal/handfile"
	"github.com/lox/pokeranalyzer/poker"
)

const (
	banner      = "*** P O K E R H A N D A N A L Y Z E R ***"
	cardsPerRow = 13
)

// Options controls report rendering.
type Options struct {
	Color   bool
	Explain bool // add a line explaining each step of the winning order
}

// Reporter writes analyzer rounds to a writer.
type Reporter struct {
	w       io.Writer
	styles  *Styles
	color   bool
	explain bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:       w,
		styles:  newStyles(w, opts.Color),
		color:   opts.Color,
		explain: opts.Explain,
	}
}

// RandomRound renders a round dealt from a shuffled deck.
func (r *Reporter) RandomRound(round *analyzer.Round) {
	r.println(r.style(r.styles.Header, banner))
	r.println("")
	r.println(r.style(r.styles.Section, "*** USING RANDOMIZED DECK OF CARDS ***"))
	r.println("")
	r.println(r.style(r.styles.Section, fmt.Sprintf("*** Shuffled %d card deck:", len(round.Deck))))
	r.deck(round.Deck)

	r.println(r.style(r.styles.Section, handsHeading(len(round.Hands))))
	for _, h := range round.Hands {
		r.println(r.Hand(h))
	}
	r.println("")

	r.println(r.style(r.styles.Section, "*** Here is what remains in the deck..."))
	r.deck(round.Remaining)

	r.ranking(round.Ranking)
}

// FileRound renders a round read from a hand file.
func (r *Reporter) FileRound(path string, round *analyzer.Round) {
	r.fileHeader(path)
	for _, line := range round.Lines {
		r.println(line)
	}
	r.println("")

	r.println(r.style(r.styles.Section, handsHeading(len(round.Hands))))
	for _, h := range round.Hands {
		r.println(r.Hand(h))
	}
	r.println("")

	r.ranking(round.Ranking)
}

// FileError renders the banner followed by a failure to read the file. A
// duplicate card echoes the lines read up to it, then the duplicate report.
func (r *Reporter) FileError(path string, err error) {
	r.fileHeader(path)

	var dup *handfile.DuplicateCardError
	if errors.As(err, &dup) {
		for _, line := range dup.Lines {
			r.println(line)
		}
		r.println("")
		r.println(r.style(r.styles.Error, "*** ERROR - DUPLICATED CARD FOUND IN DECK ***"))
		r.println("")
		r.println(r.style(r.styles.Error, fmt.Sprintf("*** DUPLICATE: %s ***", dup.Card)))
		return
	}
	r.println("")
	r.println(r.style(r.styles.Error, fmt.Sprintf("*** ERROR - %v ***", err)))
}

func (r *Reporter) fileHeader(path string) {
	r.println(r.style(r.styles.Header, banner))
	r.println("")
	r.println(r.style(r.styles.Section, "*** USING TEST DECK ***"))
	r.println("")
	r.println(r.style(r.styles.Section, "*** File: "+path))
}

func (r *Reporter) ranking(hands []*poker.Hand) {
	r.println(r.style(r.styles.Section, "--- WINNING HAND ORDER ---"))
	for i, h := range hands {
		r.println(fmt.Sprintf("%s - %s", r.Hand(h), r.style(r.styles.Category, h.Category().String())))
		if r.explain && i+1 < len(hands) {
			_, why := poker.Explain(h, hands[i+1])
			r.println(r.style(r.styles.Info, "    "+why))
		}
	}
}

// Hand formats a hand's cards in dealt order, each padded to three columns.
func (r *Reporter) Hand(h *poker.Hand) string {
	cards := h.Dealt()
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = r.Card(c)
	}
	return strings.Join(parts, " ")
}

// Card formats one card code right aligned in three columns.
func (r *Reporter) Card(c poker.Card) string {
	code := fmt.Sprintf("%3s", c.String())
	if c.Suit.IsRed() {
		return r.style(r.styles.RedCard, code)
	}
	return r.style(r.styles.BlackCard, code)
}

func (r *Reporter) deck(cards []poker.Card) {
	var b strings.Builder
	for i, c := range cards {
		b.WriteString(r.Card(c))
		if (i+1)%cardsPerRow == 0 || i == len(cards)-1 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	fmt.Fprint(r.w, b.String())
	r.println("")
}

var numberWords = [...]string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

func handsHeading(n int) string {
	count := fmt.Sprint(n)
	if n >= 0 && n < len(numberWords) {
		count = numberWords[n]
	}
	if n == 1 {
		return "*** Here is the one hand..."
	}
	return fmt.Sprintf("*** Here are the %s hands...", count)
}

func (r *Reporter) style(s lipgloss.Style, text string) string {
	if !r.color {
		return text
	}
	return s.Render(text)
}

func (r *Reporter) println(s string) {
	fmt.Fprintln(r.w, s)
}
