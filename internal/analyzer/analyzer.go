// Package analyzer deals or reads rounds of poker hands, evaluates them and
// orders them into winning order.
package analyzer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokeranalyzer/internal/handfile"
	"github.com/lox/pokeranalyzer/internal/randutil"
	"github.com/lox/pokeranalyzer/poker"
)

// Options configures an Analyzer.
type Options struct {
	Hands   int // hands dealt per random round
	Workers int // concurrent hand evaluations
	Logger  *log.Logger
	Clock   quartz.Clock
}

// Round is the outcome of analysing one set of hands.
type Round struct {
	Seed      int64        // shuffle seed, zero for rounds read from input
	Deck      []poker.Card // shuffled deck before dealing, random rounds only
	Lines     []string     // raw input lines, file rounds only
	Hands     []*poker.Hand
	Ranking   []*poker.Hand // strongest first
	Remaining []poker.Card
	Duration  time.Duration
}

// Analyzer evaluates rounds of hands.
type Analyzer struct {
	hands   int
	workers int
	logger  *log.Logger
	clock   quartz.Clock
}

// New creates an Analyzer, filling in defaults for unset options.
func New(opts Options) *Analyzer {
	if opts.Hands <= 0 {
		opts.Hands = handfile.DefaultMaxHands
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	return &Analyzer{
		hands:   opts.Hands,
		workers: opts.Workers,
		logger:  opts.Logger.WithPrefix("analyzer"),
		clock:   opts.Clock,
	}
}

// Evaluate evaluates each card set concurrently. The returned hands are in
// the same order as sets.
func (a *Analyzer) Evaluate(ctx context.Context, sets [][]poker.Card) ([]*poker.Hand, error) {
	hands := make([]*poker.Hand, len(sets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, cards := range sets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := poker.Evaluate(cards)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i+1, err)
			}
			a.logger.Debug("Evaluated hand", "index", i+1, "hand", h, "category", h.Category())
			hands[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hands, nil
}

// Rank evaluates the card sets and orders them into winning order.
func (a *Analyzer) Rank(ctx context.Context, sets [][]poker.Card) (*Round, error) {
	start := a.clock.Now()
	hands, err := a.Evaluate(ctx, sets)
	if err != nil {
		return nil, err
	}
	round := &Round{
		Hands:   hands,
		Ranking: poker.Ranking(hands),
	}
	round.Duration = a.clock.Now().Sub(start)
	a.logRound(round)
	return round, nil
}

// RandomRound shuffles a fresh deck and deals the configured number of hands.
// A zero seed is replaced with one derived from the clock.
func (a *Analyzer) RandomRound(ctx context.Context, seed int64) (*Round, error) {
	start := a.clock.Now()
	seed = randutil.Seed(seed, a.clock)

	deck := poker.NewDeck(randutil.New(seed))
	shuffled := deck.Cards()

	sets := make([][]poker.Card, 0, a.hands)
	for range a.hands {
		cards, err := deck.Deal(poker.HandSize)
		if err != nil {
			return nil, fmt.Errorf("dealing %d hands: %w", a.hands, err)
		}
		sets = append(sets, cards)
	}

	hands, err := a.Evaluate(ctx, sets)
	if err != nil {
		return nil, err
	}
	round := &Round{
		Seed:      seed,
		Deck:      shuffled,
		Hands:     hands,
		Ranking:   poker.Ranking(hands),
		Remaining: deck.Remaining(),
	}
	round.Duration = a.clock.Now().Sub(start)
	a.logRound(round)
	return round, nil
}

// FileRound reads pre-dealt hands from path and orders them.
func (a *Analyzer) FileRound(ctx context.Context, path string) (*Round, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := a.clock.Now()

	res, err := handfile.ParseFile(path, handfile.Options{MaxHands: a.hands})
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Read hands", "file", path, "hands", len(res.Hands))

	round := &Round{
		Lines:   res.Lines,
		Hands:   res.Hands,
		Ranking: poker.Ranking(res.Hands),
	}
	round.Duration = a.clock.Now().Sub(start)
	a.logRound(round)
	return round, nil
}

func (a *Analyzer) logRound(r *Round) {
	if len(r.Ranking) == 0 {
		a.logger.Warn("Round has no hands")
		return
	}
	a.logger.Info("Round ranked",
		"hands", len(r.Hands),
		"winner", r.Ranking[0],
		"category", r.Ranking[0].Category(),
		"duration", r.Duration)
}
