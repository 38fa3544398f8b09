package deck

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Suit represents a card suit
type Suit int

// suit constants
// The order is only used to keep card sets sorted, it never affects play
const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// String returns the single-letter token for the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		panic(fmt.Sprintf("unknown suit: %d", s))
	}
}

// Value is the face value of a card
type Value int

// face cards
const (
	LowAce  Value = 1
	Jack    Value = 11
	Queen   Value = 12
	King    Value = 13
	Ace     Value = 14
	HighAce       = Ace
)

// String returns the token for the value
func (v Value) String() string {
	switch v {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace, LowAce:
		return "A"
	default:
		return strconv.Itoa(int(v))
	}
}

// Card is an individual playing card
type Card struct {
	Value Value
	Suit  Suit
}

// ParseSuit parses a suit token: C, D, H or S
func ParseSuit(s string) (Suit, error) {
	switch s {
	case "C":
		return Clubs, nil
	case "D":
		return Diamonds, nil
	case "H":
		return Hearts, nil
	case "S":
		return Spades, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidSuit, s)
}

// ParseValue parses a value token.
// Numeric values must be between 2 and 10. Face cards are J, Q, K and A, and T is accepted for 10.
func ParseValue(s string) (Value, error) {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		n, err := strconv.Atoi(s)
		if err != nil || n < 2 || n > 10 {
			return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
		}

		return Value(n), nil
	}

	switch s {
	case "T":
		return 10, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	case "A":
		return Ace, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidValue, s)
}

// ParseCard returns a Card from a <value><suit> token such as 10H or QS.
// The last character is the suit, everything before it is the value.
func ParseCard(s string) (Card, error) {
	if utf8.RuneCountInString(s) < 2 {
		return Card{}, fmt.Errorf("%w: card %q is too short", ErrInvalidValue, s)
	}

	_, size := utf8.DecodeLastRuneInString(s)
	value, err := ParseValue(s[:len(s)-size])
	if err != nil {
		return Card{}, err
	}

	suit, err := ParseSuit(s[len(s)-size:])
	if err != nil {
		return Card{}, err
	}

	return Card{Value: value, Suit: suit}, nil
}

// MustParseCard is like ParseCard, but panics on error
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("could not parse card: %v", err))
	}

	return card
}

// CardsFromString returns cards from a whitespace-separated list of tokens.
// It panics on a bad token and is intended for fixtures.
func CardsFromString(s string) []Card {
	fields := strings.Fields(s)
	cards := make([]Card, len(fields))
	for i, field := range fields {
		cards[i] = MustParseCard(field)
	}

	return cards
}

func (c Card) String() string {
	return c.Value.String() + c.Suit.String()
}

// Pretty returns the card with a unicode suit, e.g., A♠
func (c Card) Pretty() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return c.Value.String() + suit
}

// Equal returns true if the cards are equal (matches suit and value)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Value == card.Value
}

// Compare orders cards by value, then by suit
func (c Card) Compare(card Card) int {
	switch {
	case c.Value < card.Value:
		return -1
	case c.Value > card.Value:
		return 1
	case c.Suit < card.Suit:
		return -1
	case c.Suit > card.Suit:
		return 1
	}

	return 0
}

// AceLowValue return the value where Ace is considered low instead of high
func (c Card) AceLowValue() Value {
	if c.Value == Ace {
		return LowAce
	}

	return c.Value
}
