package poker

import (
	"fmt"
	"pokerhands/pkg/deck"
	"strings"
)

// Hand is a parsed and classified five-card poker hand
// A Hand is immutable once parsed.
type Hand struct {
	source   string
	cards    deck.Hand
	values   []deck.Value
	category Category
	groups   Groups
	key      tieBreak
}

// ParseHand parses five whitespace-separated card tokens, e.g., "4S 5S 6S 7S 8S"
func ParseHand(source string) (*Hand, error) {
	tokens := strings.Fields(source)
	if len(tokens) != HandSize {
		return nil, fmt.Errorf("%w: expected %d cards, got %d", ErrMalformedHand, HandSize, len(tokens))
	}

	cards := make(deck.Hand, 0, HandSize)
	for _, token := range tokens {
		card, err := deck.ParseCard(token)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedHand, err)
		}

		if err := cards.Insert(card); err != nil {
			return nil, err
		}
	}

	a := analyze(cards)
	category := classify(a)

	return &Hand{
		source:   source,
		cards:    cards,
		values:   a.values,
		category: category,
		groups:   a.groups,
		key:      newTieBreak(category, a),
	}, nil
}

// MustParseHand is like ParseHand, but panics on error
func MustParseHand(source string) *Hand {
	h, err := ParseHand(source)
	if err != nil {
		panic(fmt.Sprintf("could not parse hand: %v", err))
	}

	return h
}

// Source returns the string the hand was parsed from
func (h *Hand) Source() string {
	return h.source
}

// Cards returns the cards in the hand, lowest first
func (h *Hand) Cards() deck.Hand {
	return h.cards.Clone()
}

// Values returns the values the hand is ranked on, highest first
// In a wheel straight the ace is returned as deck.LowAce.
func (h *Hand) Values() []deck.Value {
	return append([]deck.Value(nil), h.values...)
}

// Category returns the category of the hand
func (h *Hand) Category() Category {
	return h.category
}

// Groups returns the values of the hand grouped by multiplicity
func (h *Hand) Groups() Groups {
	return h.groups.clone()
}

// Beats returns true if h ranks strictly above other
func (h *Hand) Beats(other *Hand) bool {
	return Compare(h, other) > 0
}

// Ties returns true if h and other rank exactly the same
func (h *Hand) Ties(other *Hand) bool {
	return Compare(h, other) == 0
}

func (h *Hand) String() string {
	return fmt.Sprintf("%s (%s)", h.category, h.cards)
}
