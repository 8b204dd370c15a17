package generator

// rng is a deterministic pseudo-random number generator (xorshift64).
// Generation must be reproducible bit-for-bit from a seed, so the generator
// carries its own RNG instead of depending on math/rand defaults.
type rng struct {
	state uint64
}

// newRNG creates a new RNG with the given seed.
func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &rng{state: seed}
}

// next returns the next random uint64.
func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// intn returns a random int in [0, n).
func (r *rng) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// DeriveSeed maps a base seed and a sequence number to a distinct seed, so a
// batch of puzzles regenerates identically from one base seed.
func DeriveSeed(base uint64, sequence int) uint64 {
	mixed := base + uint64(sequence)*0x9E3779B97F4A7C15
	mixed ^= mixed >> 33
	mixed *= 0xFF51AFD7ED558CCD
	mixed ^= mixed >> 33
	if mixed == 0 {
		mixed = 1
	}
	return mixed
}
