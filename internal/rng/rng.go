package rng

// Generator provides a simple random number source for shuffling
// *math/rand.Rand satisfies it, which makes seeded shuffles reproducible.
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}
