package poker

import "pokerhands/pkg/deck"

// used to keep track of the straight progress
type straightTracker struct {
	startValue deck.Value
	prevValue  deck.Value
	streak     int
}

func (st *straightTracker) add(value deck.Value) {
	if st.streak > 0 && value+1 == st.prevValue {
		st.streak++
	} else {
		st.streak = 1
		st.startValue = value
	}

	st.prevValue = value
}

// straightHigh looks for size consecutive values in values, which must be sorted highest first
// If one is found, then the highest card in the straight is returned
func straightHigh(values []deck.Value, size int) (deck.Value, bool) {
	st := straightTracker{}
	for _, value := range values {
		st.add(value)
		if st.streak >= size {
			return st.startValue, true
		}
	}

	return 0, false
}
