package deck

import (
	"fmt"
	"sort"
	"strings"
)

// Hand is an ordered set of cards, lowest card first
type Hand []Card

func (h Hand) Len() int {
	return len(h)
}

func (h Hand) Less(i, j int) bool {
	return h[i].Compare(h[j]) < 0
}

func (h Hand) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Insert adds the card in sorted position
// ErrDuplicateCard is returned if the hand already holds the card
func (h *Hand) Insert(card Card) error {
	i := sort.Search(len(*h), func(i int) bool {
		return (*h)[i].Compare(card) >= 0
	})

	if i < len(*h) && (*h)[i].Equal(card) {
		return fmt.Errorf("%w: %s", ErrDuplicateCard, card)
	}

	*h = append(*h, Card{})
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = card
	return nil
}

// Suits returns the distinct suits in the hand
func (h Hand) Suits() []Suit {
	seen := make(map[Suit]bool, 4)
	suits := make([]Suit, 0, 4)
	for _, c := range h {
		if !seen[c.Suit] {
			seen[c.Suit] = true
			suits = append(suits, c.Suit)
		}
	}

	return suits
}

func (h Hand) String() string {
	c := make([]string, len(h))
	for i, card := range h {
		c[i] = card.String()
	}

	return strings.Join(c, " ")
}

// Clone returns a clone of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}
