package poker

import (
	"errors"
	"pokerhands/pkg/deck"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWinningHands_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		hands []string
		want  []string
	}{
		{
			"straight flush beats four of a kind",
			[]string{"4S 5S 6S 7S 8S", "2D 2C 3C 4C 5C"},
			[]string{"4S 5S 6S 7S 8S"},
		},
		{
			"higher quad wins",
			[]string{"2C 2D 2H 2S 9C", "3C 3D 3H 3S 2C"},
			[]string{"3C 3D 3H 3S 2C"},
		},
		{
			"exact tie returns both",
			[]string{"5C 5D 9H 9D KS", "5H 5S 9C 9S KD"},
			[]string{"5C 5D 9H 9D KS", "5H 5S 9C 9S KD"},
		},
		{
			"king-high straight beats the wheel",
			[]string{"AS 2D 3C 4H 5S", "KC QD JH TS 9C"},
			[]string{"KC QD JH TS 9C"},
		},
		{
			"high card compares descending",
			[]string{"2H 4D 5S 9C KD", "3H 5D 6S 9C KD"},
			[]string{"3H 5D 6S 9C KD"},
		},
		{
			"royal flush beats four aces",
			[]string{"AS KS QS JS TS", "AH AD AC AS KS"},
			[]string{"AS KS QS JS TS"},
		},
		{
			"three of a kind beats tied two pairs",
			[]string{"2H 4D 5S 9C KD", "10C 10D 9H 9D 2S", "10H 10S 9C 9S 2D", "3C 3D 3H 7C 8D", "10H 10S 9H 9S 2H"},
			[]string{"3C 3D 3H 7C 8D"},
		},
		{
			"tied winners are not adjacent",
			[]string{"10C 10D 9H 9D 2S", "3H 5D 6S 9C KD", "10H 10S 9C 9S 2D"},
			[]string{"10C 10D 9H 9D 2S", "10H 10S 9C 9S 2D"},
		},
		{
			"wheel beats three of a kind",
			[]string{"AS AD AC 4H 5S", "AH 2D 3C 4D 5C"},
			[]string{"AH 2D 3C 4D 5C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WinningHands(tt.hands)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWinningHands_DuplicateCard(t *testing.T) {
	got, err := WinningHands([]string{"AS KS QS JS TS", "AH AD AC AS AS"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrDuplicateCard)

	var handErr *HandError
	require.True(t, errors.As(err, &handErr))
	assert.Equal(t, 1, handErr.Index)
	assert.Equal(t, "AH AD AC AS AS", handErr.Source)
	assert.Equal(t, KindDuplicateCard, ErrorKind(handErr))
}

func TestWinningHands_FailsWholeBatch(t *testing.T) {
	tests := []struct {
		name  string
		hands []string
		is    error
	}{
		{"wrong token count", []string{"4S 5S 6S 7S 8S", "2D 2C 3C 4C"}, ErrMalformedHand},
		{"bad suit", []string{"4S 5S 6S 7S 8S", "2D 2C 3C 4C 5Z"}, deck.ErrInvalidSuit},
		{"bad value", []string{"4S 5S 6S 7S 8S", "2D 2C 3C 4C 1C"}, deck.ErrInvalidValue},
		{"duplicate", []string{"2D 2D 3C 4C 5C", "4S 5S 6S 7S 8S"}, ErrDuplicateCard},
		{"single bad hand", []string{"2D 2C"}, ErrMalformedHand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := WinningHands(tt.hands)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestEvaluate_CollectsEveryError(t *testing.T) {
	_, err := Evaluate([]string{"2D 2C", "4S 5S 6S 7S 8S", "2D 2D 3C 4C 5C", "2X 3C 4C 5C 6C"})

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 3)

	kinds := make([]string, 0, 3)
	indexes := make([]int, 0, 3)
	for _, e := range merr.Errors {
		var handErr *HandError
		require.True(t, errors.As(e, &handErr))
		indexes = append(indexes, handErr.Index)
		kinds = append(kinds, ErrorKind(e))
	}

	assert.Equal(t, []int{0, 2, 3}, indexes)
	assert.Equal(t, []string{KindMalformedHand, KindDuplicateCard, KindInvalidSuit}, kinds)
	assert.ErrorIs(t, err, ErrMalformedHand)
	assert.ErrorIs(t, err, ErrDuplicateCard)
	assert.ErrorIs(t, err, deck.ErrInvalidSuit)
}

func TestEvaluate(t *testing.T) {
	s, err := Evaluate([]string{"2H 4D 5S 9C KD", "10C 10D 9H 9D 2S", "10H 10S 9C 9S 2D"})
	require.NoError(t, err)
	require.Len(t, s.Hands, 3)
	assert.Equal(t, HighCard, s.Hands[0].Category())
	assert.Equal(t, TwoPair, s.Hands[1].Category())
	assert.Equal(t, []int{1, 2}, s.Winners)
	assert.False(t, s.IsWinner(0))
	assert.True(t, s.IsWinner(2))
	assert.Equal(t, []string{"10C 10D 9H 9D 2S", "10H 10S 9C 9S 2D"}, s.WinningSources())

	s, err = Evaluate(nil)
	require.NoError(t, err)
	assert.Empty(t, s.Winners)
	assert.Empty(t, s.WinningSources())
}

func TestWinningHands_Trivial(t *testing.T) {
	got, err := WinningHands(nil)
	assert.NoError(t, err)
	assert.Nil(t, got)

	got, err = WinningHands([]string{})
	assert.NoError(t, err)
	assert.Equal(t, []string{}, got)

	single := []string{"2H 4D 5S 9C KD"}
	got, err = WinningHands(single)
	assert.NoError(t, err)
	assert.Equal(t, single, got)
	assert.Same(t, &single[0], &got[0])
}

func TestWinningHands_PreservesSources(t *testing.T) {
	hands := []string{" 5C 5D  9H 9D KS", "2H 4D 5S 9C KD", "5H 5S 9C 9S KD\t"}
	got, err := WinningHands(hands)
	require.NoError(t, err)
	assert.Equal(t, []string{" 5C 5D  9H 9D KS", "5H 5S 9C 9S KD\t"}, got)
	assert.Equal(t, " 5C 5D  9H 9D KS", hands[0], "caller data is not modified")
}

// dealHands deals n random hands from a seeded deck
func dealHands(t *testing.T, seed int64, n int) []string {
	t.Helper()

	d := deck.New()
	d.Shuffle(seed)

	hands := make([]string, n)
	for i := range hands {
		h, err := d.Deal(HandSize)
		require.NoError(t, err)
		hands[i] = h.String()
	}

	return hands
}

func TestWinningHands_Properties(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		hands := dealHands(t, seed, 10)

		// a single hand always wins
		for _, h := range hands {
			got, err := WinningHands([]string{h})
			require.NoError(t, err)
			assert.Equal(t, []string{h}, got)
		}

		winners, err := WinningHands(hands)
		require.NoError(t, err)
		require.NotEmpty(t, winners)

		// idempotent
		again, err := WinningHands(winners)
		require.NoError(t, err)
		assert.Equal(t, winners, again)

		// every winner ties every other winner and beats every other hand
		isWinner := make(map[string]bool)
		for _, w := range winners {
			isWinner[w] = true
		}
		best := MustParseHand(winners[0])
		for _, h := range hands {
			parsed := MustParseHand(h)
			if isWinner[h] {
				assert.True(t, parsed.Ties(best), h)
			} else {
				assert.True(t, best.Beats(parsed), h)
			}
		}
	}
}

func TestCompare_Transitive(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		sources := dealHands(t, seed, 10)
		hands := make([]*Hand, len(sources))
		for i, s := range sources {
			hands[i] = MustParseHand(s)
		}

		for _, a := range hands {
			for _, b := range hands {
				assert.Equal(t, Compare(a, b), -Compare(b, a))
				for _, c := range hands {
					if Compare(a, b) >= 0 && Compare(b, c) >= 0 {
						assert.True(t, Compare(a, c) >= 0, "%s >= %s >= %s", a, b, c)
					}
				}
			}
		}
	}
}
