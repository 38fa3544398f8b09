package poker

import (
	"fmt"
	"pokerhands/pkg/deck"
)

// tieBreak orders two hands of the same category
// values are compared lexicographically, most significant first
type tieBreak interface {
	values() []deck.Value
}

// straightKey is used by straights and straight flushes
type straightKey struct {
	anchor deck.Value
}

func (k straightKey) values() []deck.Value {
	return []deck.Value{k.anchor}
}

type quadsKey struct {
	quad, kicker deck.Value
}

func (k quadsKey) values() []deck.Value {
	return []deck.Value{k.quad, k.kicker}
}

type fullHouseKey struct {
	triad, pair deck.Value
}

func (k fullHouseKey) values() []deck.Value {
	return []deck.Value{k.triad, k.pair}
}

// kickersKey is used by flushes and high cards
type kickersKey struct {
	kickers []deck.Value
}

func (k kickersKey) values() []deck.Value {
	return k.kickers
}

type tripsKey struct {
	triad   deck.Value
	kickers []deck.Value
}

func (k tripsKey) values() []deck.Value {
	return append([]deck.Value{k.triad}, k.kickers...)
}

type twoPairKey struct {
	high, low, kicker deck.Value
}

func (k twoPairKey) values() []deck.Value {
	return []deck.Value{k.high, k.low, k.kicker}
}

type pairKey struct {
	pair    deck.Value
	kickers []deck.Value
}

func (k pairKey) values() []deck.Value {
	return append([]deck.Value{k.pair}, k.kickers...)
}

// newTieBreak builds the tie-break key for a classified hand
func newTieBreak(category Category, h *handAnalyzer) tieBreak {
	g := h.groups
	switch category {
	case StraightFlush, Straight:
		return straightKey{anchor: h.values[0]}
	case FourOfAKind:
		return quadsKey{quad: g[Quad][0], kicker: g[Single][0]}
	case FullHouse:
		return fullHouseKey{triad: g[Triad][0], pair: g[Pair][0]}
	case Flush, HighCard:
		return kickersKey{kickers: h.values}
	case ThreeOfAKind:
		return tripsKey{triad: g[Triad][0], kickers: g[Single]}
	case TwoPair:
		return twoPairKey{high: g[Pair][0], low: g[Pair][1], kicker: g[Single][0]}
	case OnePair:
		return pairKey{pair: g[Pair][0], kickers: g[Single]}
	default:
		panic(fmt.Sprintf("unknown category: %d", category))
	}
}

// Compare returns 1 if a beats b, -1 if b beats a, or 0 if they tie
// Suits never break a tie.
func Compare(a, b *Hand) int {
	if a.category != b.category {
		if a.category > b.category {
			return 1
		}

		return -1
	}

	return compareValues(a.key.values(), b.key.values())
}

func compareValues(a, b []deck.Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] > b[i] {
			return 1
		}

		if a[i] < b[i] {
			return -1
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	}

	return 0
}
