package ntru

import (
	"errors"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"
)

func testSampler(t *testing.T, key byte) *TrinarySampler {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte{key})
	if err != nil {
		t.Fatal(err)
	}
	return NewTrinarySampler(prng)
}

// findInvertible samples trinary candidates until one inverts mod m.
func findInvertible(t *testing.T, par Params, m int64, smp *TrinarySampler) (Poly, Poly) {
	t.Helper()
	for trial := 0; trial < 200; trial++ {
		f, err := smp.Trinary(par.N, par.Df, par.Df-1)
		if err != nil {
			t.Fatal(err)
		}
		inv, err := Invert(f, par, m)
		if errors.Is(err, ErrNotInvertible) {
			continue
		}
		if err != nil {
			t.Fatal(err)
		}
		return f, inv
	}
	t.Fatal("no invertible trinary polynomial found in 200 trials")
	return Poly{}, Poly{}
}

func TestInvertPrime(t *testing.T) {
	par, err := NewParams(11, 3, 32, 4, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	smp := testSampler(t, 1)
	f, inv := findInvertible(t, par, par.P, smp)
	_, prod := ReduceIdeal(Mul(f, inv, par.P), par, par.P)
	if !prod.Equal(One()) {
		t.Fatalf("f * f^-1 = %v mod (p, I), want 1", prod.Coeffs)
	}
}

func TestInvertPow2(t *testing.T) {
	par, err := NewParams(11, 3, 32, 4, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	smp := testSampler(t, 2)
	f, inv := findInvertible(t, par, par.Q, smp)
	_, prod := ReduceIdeal(Mul(f, inv, par.Q), par, par.Q)
	if !prod.Equal(One()) {
		t.Fatalf("f * f^-1 = %v mod (q, I), want 1", prod.Coeffs)
	}
	for _, c := range inv.Coeffs {
		if c < 0 || c >= par.Q {
			t.Fatalf("inverse coefficient %d outside [0, q)", c)
		}
	}
}

func TestInvertNotInvertible(t *testing.T) {
	par, err := NewParams(11, 3, 32, 4, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	// x - 1 vanishes at 1, so it divides x^N - 1 over every modulus.
	f := Poly{Coeffs: []int64{-1, 1}}
	if _, err := InvertPrime(f, par, par.P); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("InvertPrime(x-1) = %v, want ErrNotInvertible", err)
	}
	if _, err := InvertPow2(f, par, par.Q); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("InvertPow2(x-1) = %v, want ErrNotInvertible", err)
	}
	if _, err := Invert(Zero(), par, par.P); !errors.Is(err, ErrNotInvertible) {
		t.Fatalf("Invert(0) = %v, want ErrNotInvertible", err)
	}
}

func TestInvertDefaultProfile(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size inversion in short mode")
	}
	par := DefaultParams()
	smp := testSampler(t, 3)
	f, fq := findInvertible(t, par, par.Q, smp)
	_, prod := ReduceIdeal(Mul(f, fq, par.Q), par, par.Q)
	if !prod.Equal(One()) {
		t.Fatal("f * fq != 1 mod (q, I) at N=167")
	}
}
