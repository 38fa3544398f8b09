package poker

import "pokerhands/pkg/deck"

func values(v ...int) []deck.Value {
	out := make([]deck.Value, len(v))
	for i, n := range v {
		out[i] = deck.Value(n)
	}

	return out
}

func toInts(k tieBreak) []int {
	vals := k.values()
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = int(v)
	}

	return out
}
