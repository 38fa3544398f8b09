package poker

// rule matches a category against the analyzed facts of a hand
type rule struct {
	category Category
	match    func(h *handAnalyzer) bool
}

// rules are evaluated in order and the first match wins
// Do not reorder: a hand can satisfy several rules and must get the best one.
var rules = []rule{
	{StraightFlush, func(h *handAnalyzer) bool { return h.straight && h.flush }},
	{FourOfAKind, func(h *handAnalyzer) bool { return h.groups.Has(Quad) }},
	{FullHouse, func(h *handAnalyzer) bool { return h.groups.Has(Triad) && h.groups.Has(Pair) }},
	{Flush, func(h *handAnalyzer) bool { return h.flush }},
	{Straight, func(h *handAnalyzer) bool { return h.straight }},
	{ThreeOfAKind, func(h *handAnalyzer) bool { return h.groups.Has(Triad) }},
	{TwoPair, func(h *handAnalyzer) bool { return h.groups.Count(Pair) == 2 }},
	{OnePair, func(h *handAnalyzer) bool { return h.groups.Count(Pair) == 1 }},
	{HighCard, func(h *handAnalyzer) bool { return true }},
}

// classify returns the best category the analyzed hand satisfies
func classify(h *handAnalyzer) Category {
	for _, r := range rules {
		if r.match(h) {
			return r.category
		}
	}

	panic("no category matched")
}
