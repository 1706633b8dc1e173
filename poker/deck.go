package poker

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// ErrDeckExhausted is returned when more cards are requested than remain.
var ErrDeckExhausted = errors.New("deck exhausted")

// Deck represents a standard 52-card deck
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// NewOrderedDeck creates an unshuffled deck, suit by suit (D, C, H, S) from
// Two to Ace. rng may be nil if the deck is never shuffled.
func NewOrderedDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, DeckSize),
		rng:   rng,
	}
	for _, suit := range Suits {
		for face := Two; face <= Ace; face++ {
			d.cards = append(d.cards, Card{Face: face, Suit: suit})
		}
	}
	return d
}

// NewDeck creates a shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := NewOrderedDeck(rng)
	d.Shuffle()
	return d
}

// Shuffle shuffles the undealt cards using Fisher-Yates
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		rest[i], rest[j] = rest[j], rest[i]
	}
}

// Deal deals n cards from the top of the deck
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrDeckExhausted, n, d.Len())
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards, nil
}

// DealHands deals count five card hands and evaluates each of them.
func (d *Deck) DealHands(count int) ([]*Hand, error) {
	hands := make([]*Hand, 0, count)
	for range count {
		cards, err := d.Deal(HandSize)
		if err != nil {
			return nil, err
		}
		h, err := Evaluate(cards)
		if err != nil {
			return nil, err
		}
		hands = append(hands, h)
	}
	return hands, nil
}

// Cards returns every card in deck order, dealt or not.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// Remaining returns the undealt cards in deck order.
func (d *Deck) Remaining() []Card {
	out := make([]Card, d.Len())
	copy(out, d.cards[d.next:])
	return out
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards) - d.next
}
