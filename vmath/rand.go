package vmath

// FastRand is a xorshift64 generator
// Not safe for concurrent use; each owner keeps its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a uniform value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Read fills p with generator output, satisfying io.Reader
// Never returns an error
func (r *FastRand) Read(p []byte) (int, error) {
	var word uint64
	for i := range p {
		if i%8 == 0 {
			word = r.Next()
		}
		p[i] = byte(word)
		word >>= 8
	}
	return len(p), nil
}

// Source is the injectable uniform generator consumed by the simulation
// *FastRand and *math/rand.Rand both satisfy it
type Source interface {
	Float64() float64
}
