package util

import (
	"github.com/google/uuid"
)

// NewRequestID generates a random request identifier
func NewRequestID() string {
	return uuid.New().String()
}
