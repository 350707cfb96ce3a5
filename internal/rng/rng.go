package rng

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// New returns a reproducible Generator for a non-zero seed, otherwise a Crypto one
func New(seed int64) Generator {
	if seed != 0 {
		return NewSeeded(seed)
	}

	return Crypto{}
}
