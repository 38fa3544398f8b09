package deck

import "errors"

// ErrInvalidSuit is returned when a suit token is not one of C, D, H or S
var ErrInvalidSuit = errors.New("invalid suit")

// ErrInvalidValue is returned when a value token is not 2 through 10, T, J, Q, K or A
var ErrInvalidValue = errors.New("invalid value")

// ErrDuplicateCard is returned when a card is added to a hand that already holds it
var ErrDuplicateCard = errors.New("duplicate card")
