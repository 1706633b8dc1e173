package poker

import (
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of cards in every evaluated hand.
const HandSize = 5

// ErrInvalidHandSize is returned when a hand does not hold exactly five cards.
var ErrInvalidHandSize = errors.New("invalid hand size")

// Value is the comparison value of a card within an evaluated hand. It is a
// composite key compared field by field: category base, then face, then suit.
// Suit is zero for One Pair and Two Pair hands.
type Value struct {
	Base int
	Face Face
	Suit Suit
}

// Compare returns -1 if v is lower than o, 0 if equal and 1 if higher.
func (v Value) Compare(o Value) int {
	if v.Base != o.Base {
		return cmpInt(v.Base, o.Base)
	}
	if v.Face != o.Face {
		return cmpInt(int(v.Face), int(o.Face))
	}
	return cmpInt(int(v.Suit), int(o.Suit))
}

// Float returns the additive form base + faceRank + suitWeight.
func (v Value) Float() float64 {
	w := 0.0
	if v.Suit.Valid() {
		w = v.Suit.Weight()
	}
	return float64(v.Base+v.Face.Rank()) + w
}

// Hand is an evaluated five card poker hand. It is immutable once built by
// Evaluate.
type Hand struct {
	category Category
	dealt    [HandSize]Card // order the cards were dealt or read in
	cards    [HandSize]Card // key cards first, then kickers
	keys     int
	values   [HandSize]Value
	suits    [HandSize]Suit // suit tie-break key, aligned with cards
}

// Evaluate classifies five cards and computes their comparison values.
func Evaluate(cards []Card) (*Hand, error) {
	if len(cards) != HandSize {
		return nil, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(cards), HandSize)
	}
	for i, c := range cards {
		if !c.Face.Valid() {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidFace, int(c.Face), i)
		}
		if !c.Suit.Valid() {
			return nil, fmt.Errorf("%w: %d at position %d", ErrInvalidSuit, int(c.Suit), i)
		}
	}

	h := &Hand{}
	copy(h.dealt[:], cards)

	counts := faceCounts(cards)
	ordered, keys := partition(cards, counts)
	copy(h.cards[:], ordered)
	h.keys = keys
	h.category = classify(cards, counts)

	for i, c := range h.cards {
		v := Value{Base: h.category.Base(), Face: c.Face}
		if h.category.suited() {
			v.Suit = c.Suit
		}
		h.values[i] = v
		h.suits[i] = c.Suit
	}
	return h, nil
}

// MustEvaluate evaluates cards and panics on error (for tests)
func MustEvaluate(cards []Card) *Hand {
	h, err := Evaluate(cards)
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate %v: %v", cards, err))
	}
	return h
}

// Category returns the hand's category.
func (h *Hand) Category() Category {
	return h.category
}

// IsRoyal reports whether the hand is a royal flush.
func (h *Hand) IsRoyal() bool {
	return h.category == RoyalFlush
}

// Cards returns the cards in comparison order: key cards first, then kickers.
func (h *Hand) Cards() []Card {
	out := make([]Card, HandSize)
	copy(out, h.cards[:])
	return out
}

// Dealt returns the cards in the order they were dealt.
func (h *Hand) Dealt() []Card {
	out := make([]Card, HandSize)
	copy(out, h.dealt[:])
	return out
}

// KeyCards returns the cards that belong to a pair, trips or quads.
func (h *Hand) KeyCards() []Card {
	out := make([]Card, h.keys)
	copy(out, h.cards[:h.keys])
	return out
}

// Kickers returns the cards that are not part of any repeated face.
func (h *Hand) Kickers() []Card {
	out := make([]Card, HandSize-h.keys)
	copy(out, h.cards[h.keys:])
	return out
}

// Values returns the per-card comparison values, aligned with Cards.
func (h *Hand) Values() []Value {
	out := make([]Value, HandSize)
	copy(out, h.values[:])
	return out
}

// String returns the dealt cards separated by spaces.
func (h *Hand) String() string {
	codes := make([]string, HandSize)
	for i, c := range h.dealt {
		codes[i] = c.String()
	}
	return strings.Join(codes, " ")
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
