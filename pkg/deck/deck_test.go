package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedGenerator struct{}

// always picks the first card, which rotates the deck
func (fixedGenerator) Intn(int) int {
	return 0
}

func TestNewDeck(t *testing.T) {
	deck := New()

	assert.Equal(t, 52, deck.CardsLeft())
	assert.Equal(t, Card{Value: 2, Suit: Clubs}, deck.Cards[0])
	assert.Equal(t, Card{Value: Ace, Suit: Spades}, deck.Cards[51])
	assert.Equal(t, int64(-1), deck.GetSeed())

	unique := make(map[Card]bool)
	for _, c := range deck.Cards {
		unique[c] = true
	}
	assert.Len(t, unique, 52)
}

func TestDeck_Shuffle(t *testing.T) {
	d1 := New()
	unshuffled := d1.HashCode()

	d1.Shuffle(1)
	assert.Equal(t, int64(1), d1.GetSeed())
	assert.NotEqual(t, unshuffled, d1.HashCode())

	d2 := New()
	d2.Shuffle(1)
	assert.Equal(t, d1.HashCode(), d2.HashCode())

	d2.Shuffle(2)
	assert.NotEqual(t, d1.HashCode(), d2.HashCode())
	assert.Equal(t, 52, d2.CardsLeft())

	assert.Panics(t, func() {
		d2.Shuffle(-1)
	})
}

func TestDeck_ShuffleWith(t *testing.T) {
	d := New()
	d.Shuffle(5)
	d.ShuffleWith(fixedGenerator{})

	assert.Equal(t, int64(-1), d.GetSeed())
	assert.Equal(t, 52, d.CardsLeft())
	// swapping with index 0 every time leaves the second card on top
	assert.Equal(t, Card{Value: 3, Suit: Clubs}, d.Cards[0])
}

func TestDeck_Draw(t *testing.T) {
	deck := New()

	assert.True(t, deck.CanDraw(52))
	assert.False(t, deck.CanDraw(53))

	for i := 0; i < 52; i++ {
		_, err := deck.Draw()
		require.NoError(t, err)
	}

	_, err := deck.Draw()
	assert.ErrorIs(t, err, ErrEndOfDeck)
}

func TestDeck_Deal(t *testing.T) {
	deck := New()
	deck.Shuffle(42)

	seen := make(map[Card]bool)
	for i := 0; i < 10; i++ {
		hand, err := deck.Deal(5)
		require.NoError(t, err)
		assert.Len(t, hand, 5)
		for _, c := range hand {
			assert.False(t, seen[c], "card dealt twice: %s", c)
			seen[c] = true
		}
	}

	assert.Equal(t, 2, deck.CardsLeft())
	_, err := deck.Deal(5)
	assert.ErrorIs(t, err, ErrEndOfDeck)
	assert.Equal(t, 2, deck.CardsLeft())
}
