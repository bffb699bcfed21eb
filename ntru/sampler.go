package ntru

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// TrinarySampler draws trinary polynomials with exact counts of +1 and
// -1 coefficients from a PRNG. The positions are chosen by a
// Fisher-Yates shuffle whose indices come from the PRNG by rejection
// sampling, so the placement is uniform over all arrangements.
//
// f, g and the per-message randomness r are the entire secrecy basis of
// the scheme: production callers must construct the sampler with
// utils.NewPRNG() (crypto/rand backed). utils.NewKeyedPRNG is intended
// for deterministic tests and sweeps only.
type TrinarySampler struct {
	prng utils.PRNG
}

// NewTrinarySampler wraps the given PRNG.
func NewTrinarySampler(prng utils.PRNG) *TrinarySampler {
	return &TrinarySampler{prng: prng}
}

// NewSecureSampler returns a sampler backed by crypto/rand.
func NewSecureSampler() (*TrinarySampler, error) {
	prng, err := utils.NewPRNG()
	if err != nil {
		return nil, err
	}
	return &TrinarySampler{prng: prng}, nil
}

// Trinary samples a length-n vector with numOnes coefficients set to +1
// and numNegOnes set to -1, the rest 0. Coefficients are returned in
// signed form; callers embed them modulo p or q as needed.
func (s *TrinarySampler) Trinary(n, numOnes, numNegOnes int) (Poly, error) {
	if n <= 0 || numOnes < 0 || numNegOnes < 0 || numOnes+numNegOnes > n {
		return Poly{}, fmt.Errorf("%w: cannot place %d ones and %d neg-ones in %d slots",
			ErrMalformedInput, numOnes, numNegOnes, n)
	}
	v := make([]int64, n)
	for i := 0; i < numOnes; i++ {
		v[i] = 1
	}
	for i := numOnes; i < numOnes+numNegOnes; i++ {
		v[i] = -1
	}
	for i := n - 1; i > 0; i-- {
		j, err := s.uniformIndex(uint64(i + 1))
		if err != nil {
			return Poly{}, err
		}
		v[i], v[j] = v[j], v[i]
	}
	return Poly{Coeffs: v}, nil
}

// uniformIndex returns a uniform value in [0, bound) using rejection
// sampling on 64-bit words read from the PRNG.
func (s *TrinarySampler) uniformIndex(bound uint64) (uint64, error) {
	threshold := (^uint64(0) / bound) * bound
	var buf [8]byte
	for {
		if _, err := io.ReadFull(s.prng, buf[:]); err != nil {
			return 0, fmt.Errorf("ntru: prng read: %w", err)
		}
		word := binary.LittleEndian.Uint64(buf[:])
		if word < threshold {
			return word % bound, nil
		}
	}
}
