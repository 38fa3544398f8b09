package poker

import (
	"github.com/hashicorp/go-multierror"
)

// Showdown is the result of evaluating a batch of hands
type Showdown struct {
	Hands []*Hand

	// Winners holds indexes into Hands, in input order
	Winners []int
}

// Evaluate parses every source and finds the winning hands
// If any source fails to parse, no showdown is returned and the error holds a *HandError for every bad source.
func Evaluate(sources []string) (*Showdown, error) {
	var result *multierror.Error
	hands := make([]*Hand, len(sources))
	for i, source := range sources {
		h, err := ParseHand(source)
		if err != nil {
			result = multierror.Append(result, &HandError{
				Index:  i,
				Source: source,
				Err:    err,
			})
			continue
		}

		hands[i] = h
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Showdown{
		Hands:   hands,
		Winners: winners(hands),
	}, nil
}

func winners(hands []*Hand) []int {
	if len(hands) == 0 {
		return []int{}
	}

	best := hands[0]
	for _, h := range hands[1:] {
		if h.Beats(best) {
			best = h
		}
	}

	idx := make([]int, 0, 1)
	for i, h := range hands {
		if h.Ties(best) {
			idx = append(idx, i)
		}
	}

	return idx
}

// IsWinner returns true if the hand at index i is one of the winners
func (s *Showdown) IsWinner(i int) bool {
	for _, w := range s.Winners {
		if w == i {
			return true
		}
	}

	return false
}

// WinningSources returns the source strings of the winning hands, in input order
func (s *Showdown) WinningSources() []string {
	sources := make([]string, len(s.Winners))
	for i, w := range s.Winners {
		sources[i] = s.Hands[w].source
	}

	return sources
}

// WinningHands returns the hands from sources that have the best poker rank
// Tied winners are all returned, in the same order as sources. The returned
// strings are the caller's own values. With fewer than two sources, sources
// is returned as is once it parses.
func WinningHands(sources []string) ([]string, error) {
	s, err := Evaluate(sources)
	if err != nil {
		return nil, err
	}

	if len(sources) <= 1 {
		return sources, nil
	}

	return s.WinningSources(), nil
}
