package poker

import (
	"fmt"
	"math"
	"pokerhands/pkg/deck"
	"sort"
)

// Groups maps a multiplicity to the values that occur that many times, highest value first
type Groups map[Multiplicity][]deck.Value

// Has returns true if at least one value occurs m times
func (g Groups) Has(m Multiplicity) bool {
	return len(g[m]) > 0
}

// Count returns the number of distinct values that occur m times
func (g Groups) Count(m Multiplicity) int {
	return len(g[m])
}

func (g Groups) clone() Groups {
	c := make(Groups, len(g))
	for m, values := range g {
		c[m] = append([]deck.Value(nil), values...)
	}

	return c
}

// handAnalyzer holds the facts a hand is classified and compared on
type handAnalyzer struct {
	cards    deck.Hand
	flush    bool
	straight bool

	// values is the canonical view of the hand, highest first
	// an ace reads as deck.LowAce when it completes a wheel
	values []deck.Value
	groups Groups
}

// analyze will compute flush, straight and frequency facts for a five-card hand
// The supplied cards are never modified.
func analyze(cards deck.Hand) *handAnalyzer {
	values := make([]deck.Value, len(cards))
	for i, card := range cards {
		values[i] = card.Value
	}
	sort.Sort(valuesDesc(values))

	h := &handAnalyzer{
		cards:  cards,
		values: values,
	}

	// the method order here is required, pairs are grouped from the canonical values
	h.checkFlush()
	h.checkStraight()
	h.checkPairs()

	return h
}

func (h *handAnalyzer) checkFlush() {
	h.flush = len(h.cards) == HandSize && len(h.cards.Suits()) == 1
}

func (h *handAnalyzer) checkStraight() {
	if _, ok := straightHigh(h.values, HandSize); ok {
		h.straight = true
		return
	}

	wheel := make([]deck.Value, len(h.cards))
	for i, card := range h.cards {
		wheel[i] = card.AceLowValue()
	}
	sort.Sort(valuesDesc(wheel))

	if _, ok := straightHigh(wheel, HandSize); ok {
		h.straight = true
		h.values = wheel
	}
}

// checkPairs groups the values by how often they occur
// values must already be sorted
func (h *handAnalyzer) checkPairs() {
	h.groups = make(Groups, 4)

	prevValue := deck.Value(math.MaxInt8)
	numOfValue := 0
	for _, value := range h.values {
		if value == prevValue {
			numOfValue++
			continue
		}

		h.addGroup(prevValue, numOfValue)
		prevValue = value
		numOfValue = 1
	}

	h.addGroup(prevValue, numOfValue)
}

func (h *handAnalyzer) addGroup(value deck.Value, count int) {
	if count == 0 {
		return
	}

	m := Multiplicity(count)
	switch m {
	case Single, Pair, Triad, Quad:
		h.groups[m] = append(h.groups[m], value)
	default:
		panic(fmt.Sprintf("impossible frequency: %s occurs %d times", value, count))
	}
}
