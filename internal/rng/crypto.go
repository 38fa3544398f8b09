package rng

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("invalid argument to Intn: %d", n))
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
