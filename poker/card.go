package poker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFace is returned for a face outside 2..10, J, Q, K, A.
	ErrInvalidFace = errors.New("invalid face")
	// ErrInvalidSuit is returned for a suit outside D, C, H, S.
	ErrInvalidSuit = errors.New("invalid suit")
)

// Face is a card rank. Its integer value is the face rank used for comparison,
// with Aces high.
type Face int

const (
	Two Face = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Rank returns the face rank in [2,14].
func (f Face) Rank() int {
	return int(f)
}

// Valid reports whether f is one of the 13 recognised faces.
func (f Face) Valid() bool {
	return f >= Two && f <= Ace
}

// String returns the face as printed on card codes ("10", "J", "A", ...)
func (f Face) String() string {
	switch f {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if f.Valid() {
			return fmt.Sprintf("%d", int(f))
		}
		return "?"
	}
}

// Suit is a card suit. Suits are totally ordered for tie-breaking only:
// Diamonds < Clubs < Hearts < Spades.
type Suit int

const (
	Diamonds Suit = iota + 1
	Clubs
	Hearts
	Spades
)

// Suits lists every suit in ascending tie-break order.
var Suits = [...]Suit{Diamonds, Clubs, Hearts, Spades}

// Rank returns the suit's position in the tie-break order (1..4).
func (s Suit) Rank() int {
	return int(s)
}

// Weight returns the fractional tie-break weight of the suit (0.1..0.4).
func (s Suit) Weight() float64 {
	return float64(s) / 10
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// IsRed returns true for Hearts and Diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// String returns the single letter code of the suit.
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Card is an immutable playing card.
type Card struct {
	Face Face
	Suit Suit
}

// NewCard creates a card, rejecting faces and suits outside the standard deck.
func NewCard(face Face, suit Suit) (Card, error) {
	if !face.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidFace, int(face))
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %d", ErrInvalidSuit, int(suit))
	}
	return Card{Face: face, Suit: suit}, nil
}

// String returns the card code, e.g. "10H" or "AS".
func (c Card) String() string {
	return c.Face.String() + c.Suit.String()
}

// Valid reports whether both the face and suit are recognised.
func (c Card) Valid() bool {
	return c.Face.Valid() && c.Suit.Valid()
}

// ParseCard parses a card code such as "10H", "AS" or "qd".
func ParseCard(code string) (Card, error) {
	s := strings.ToUpper(strings.TrimSpace(code))
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidFace, code)
	}

	face, err := parseFace(s[:len(s)-1])
	if err != nil {
		return Card{}, err
	}
	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, err
	}
	return Card{Face: face, Suit: suit}, nil
}

// ParseCards parses a list of card codes.
func ParseCards(codes ...string) ([]Card, error) {
	cards := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses whitespace separated card codes and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(strings.Fields(s)...)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

func parseFace(s string) (Face, error) {
	switch s {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return Face(s[0] - '0'), nil
	case "10", "T":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'D':
		return Diamonds, nil
	case 'C':
		return Clubs, nil
	case 'H':
		return Hearts, nil
	case 'S':
		return Spades, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, string(c))
}
