package poker

import "pokerhands/pkg/deck"

type valuesDesc []deck.Value

func (s valuesDesc) Len() int {
	return len(s)
}

func (s valuesDesc) Less(i, j int) bool {
	return s[i] > s[j]
}

func (s valuesDesc) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
