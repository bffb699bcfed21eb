package ntru

import (
	"math/rand"
)

// RNG wraps a deterministic rand.Rand for tests.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a random int in [0,n).
func (r *RNG) Intn(n int) int {
	return r.r.Intn(n)
}

// RandPoly returns a random polynomial with up to maxLen coefficients
// in [0,m).
func (r *RNG) RandPoly(maxLen int, m int64) Poly {
	n := 1 + r.r.Intn(maxLen)
	coeffs := make([]int64, n)
	for i := range coeffs {
		coeffs[i] = r.r.Int63n(m)
	}
	return Poly{Coeffs: coeffs}.Canonical()
}
