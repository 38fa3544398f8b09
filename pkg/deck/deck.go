package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"
	"math/rand"
	"pokerhands/internal/rng"
	"time"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Deck represents a standard 52-card playing deck
type Deck struct {
	Cards []Card `json:"cards"`
	seed  int64
}

// New returns a new deck of cards.
// Important! this deck is unshuffled. You must call Shuffle() or ShuffleWith() to shuffle the cards
func New() *Deck {
	d := &Deck{
		seed: -1,
	}

	d.buildDeck()
	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for value := Value(2); value <= Ace; value++ {
			cards = append(cards, Card{
				Value: value,
				Suit:  suit,
			})
		}
	}

	d.Cards = cards
}

// Shuffle will shuffle the deck of cards with a seeded generator
// If the seed is 0, the current time is used
func (d *Deck) Shuffle(seed int64) {
	if seed < 0 {
		panic("seed cannot be < 0")
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	d.ShuffleWith(rand.New(rand.NewSource(seed))) // nolint:gosec
	d.seed = seed
}

// ShuffleWith will rebuild and shuffle the deck using the supplied generator
func (d *Deck) ShuffleWith(gen rng.Generator) {
	d.buildDeck()
	d.seed = -1

	for j := len(d.Cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// GetSeed returns the seed used to shuffle the deck, or -1 if no seed was used
func (d *Deck) GetSeed() int64 {
	return d.seed
}

// HashCode returns a SHA1 hash code of the deck.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil))
}

// Draw will draw the next card
// If there are no more cards, ErrEndOfDeck is returned
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) == 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// Deal draws n cards as an ordered hand
func (d *Deck) Deal(n int) (Hand, error) {
	if !d.CanDraw(n) {
		return nil, ErrEndOfDeck
	}

	hand := make(Hand, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		if err := hand.Insert(card); err != nil {
			return nil, err
		}
	}

	return hand, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
