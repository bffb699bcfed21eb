package ntru

import (
	"errors"
	"fmt"
)

// Params fixes the ring rank N, the small and large moduli p and q, and
// the trinary sampling weights for the private key (Df), the public-key
// salt (Dg) and the per-encryption randomness (Dr).
type Params struct {
	N  int
	P  int64
	Q  int64
	Df int
	Dg int
	Dr int
}

// Default parameter profile.
const (
	DefaultN  = 167
	DefaultP  = 3
	DefaultQ  = 128
	DefaultDf = 61
	DefaultDg = 20
	DefaultDr = 18
)

// NewParams validates and returns a parameter set. q must be a power of
// two so that the fast Newton-lift inversion path applies; p is fixed
// at 3 in this profile.
func NewParams(N int, p, q int64, df, dg, dr int) (Params, error) {
	if N <= 0 {
		return Params{}, errors.New("ntru: N must be positive")
	}
	if p != DefaultP {
		return Params{}, fmt.Errorf("ntru: p must be %d", DefaultP)
	}
	if q < 2 || !isPowerOfTwo(q) {
		return Params{}, errors.New("ntru: q must be a power of two")
	}
	if df < 1 || 2*df-1 > N {
		return Params{}, fmt.Errorf("ntru: df=%d out of range for N=%d", df, N)
	}
	if dg < 0 || 2*dg > N {
		return Params{}, fmt.Errorf("ntru: dg=%d out of range for N=%d", dg, N)
	}
	if dr < 0 || 2*dr > N {
		return Params{}, fmt.Errorf("ntru: dr=%d out of range for N=%d", dr, N)
	}
	return Params{N: N, P: p, Q: q, Df: df, Dg: dg, Dr: dr}, nil
}

// DefaultParams returns the N=167, p=3, q=128 profile with sampling
// weights df=61, dg=20, dr=18.
func DefaultParams() Params {
	par, err := NewParams(DefaultN, DefaultP, DefaultQ, DefaultDf, DefaultDg, DefaultDr)
	if err != nil {
		panic(err)
	}
	return par
}

// Ideal returns the reduction polynomial for the ring, stored as
// 1 - x^N: coefficient 1 at degree 0 and m-1 at degree N. This is the
// layout every consumer of exported quotients rebuilds, so it must not
// change; the generated ideal is the same as for x^N - 1.
func (par Params) Ideal(m int64) Poly {
	coeffs := make([]int64, par.N+1)
	coeffs[0] = 1
	coeffs[par.N] = m - 1
	return Poly{Coeffs: coeffs}
}

func isPowerOfTwo(x int64) bool {
	return x > 0 && x&(x-1) == 0
}
