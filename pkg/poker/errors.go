package poker

import (
	"errors"
	"fmt"
	"pokerhands/pkg/deck"
)

// ErrMalformedHand is returned when a hand does not have five parsable cards
var ErrMalformedHand = errors.New("malformed hand")

// ErrDuplicateCard is returned when the same card appears twice in one hand
var ErrDuplicateCard = deck.ErrDuplicateCard

// error kinds
const (
	KindInvalidSuit   = "InvalidSuitToken"
	KindInvalidValue  = "InvalidValueToken"
	KindMalformedHand = "MalformedHand"
	KindDuplicateCard = "DuplicateCard"
)

// HandError is an error for a single hand within a batch
type HandError struct {
	Index  int
	Source string
	Err    error
}

func (h *HandError) Error() string {
	return fmt.Sprintf("hand %d %q: %v", h.Index, h.Source, h.Err)
}

func (h *HandError) Unwrap() error {
	return h.Err
}

// ErrorKind returns the most specific kind of a parse error, or an empty string
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateCard):
		return KindDuplicateCard
	case errors.Is(err, deck.ErrInvalidSuit):
		return KindInvalidSuit
	case errors.Is(err, deck.ErrInvalidValue):
		return KindInvalidValue
	case errors.Is(err, ErrMalformedHand):
		return KindMalformedHand
	}

	return ""
}
