package ntru

import (
	"errors"
	"testing"
)

// checkDivMod verifies a = quo*b + rem (mod m) and deg(rem) < deg(b).
func checkDivMod(t *testing.T, a, b Poly, m int64) {
	t.Helper()
	quo, rem, err := DivMod(a, b, m)
	if err != nil {
		t.Fatalf("DivMod(%v, %v, %d): %v", a.Coeffs, b.Coeffs, m, err)
	}
	back := Add(Mul(quo, b, m), rem, m)
	if !back.Equal(EmbedMod(a, m)) {
		t.Fatalf("quo*b + rem = %v, want %v (mod %d)", back.Coeffs, EmbedMod(a, m).Coeffs, m)
	}
	if rem.Degree() >= b.Degree() {
		t.Fatalf("deg(rem)=%d >= deg(b)=%d", rem.Degree(), b.Degree())
	}
}

func TestDivModInvariant(t *testing.T) {
	rng := NewRNG(17)
	for _, m := range []int64{3, 97, 128} {
		for iter := 0; iter < 100; iter++ {
			a := rng.RandPoly(14, m)
			b := rng.RandPoly(8, m)
			if b.IsZero() {
				continue
			}
			if _, ok := modInv(b.Coeffs[b.Degree()], m); !ok {
				continue
			}
			checkDivMod(t, a, b, m)
		}
	}
}

func TestDivModZeroDivisor(t *testing.T) {
	_, _, err := DivMod(NewPoly([]int64{1, 2}), Zero(), 128)
	var divErr *DivisionError
	if !errors.As(err, &divErr) {
		t.Fatalf("dividing by zero returned %v, want *DivisionError", err)
	}
}

func TestDivModNonUnitLeadingCoeff(t *testing.T) {
	// mod 128 the leading coefficient 2 has no inverse.
	a := NewPoly([]int64{1, 1, 1})
	b := NewPoly([]int64{1, 2})
	_, _, err := DivMod(a, b, 128)
	var divErr *DivisionError
	if !errors.As(err, &divErr) {
		t.Fatalf("non-unit leading coefficient returned %v, want *DivisionError", err)
	}
}

func TestDivModShortDividend(t *testing.T) {
	a := NewPoly([]int64{5, 3})
	b := NewPoly([]int64{1, 0, 0, 1})
	quo, rem, err := DivMod(a, b, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !quo.IsZero() {
		t.Fatalf("quotient = %v, want zero", quo.Coeffs)
	}
	if !rem.Equal(a) {
		t.Fatalf("remainder = %v, want %v", rem.Coeffs, a.Coeffs)
	}
}

func TestReduceIdealRoundTrip(t *testing.T) {
	par, err := NewParams(11, 3, 32, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	rng := NewRNG(23)
	for iter := 0; iter < 50; iter++ {
		a := rng.RandPoly(2*par.N, par.Q)
		quo, rem := ReduceIdeal(a, par, par.Q)
		back := Add(Mul(quo, par.Ideal(par.Q), par.Q), rem, par.Q)
		if !back.Equal(a) {
			t.Fatalf("quo*I + rem != a")
		}
		if rem.Degree() >= par.N {
			t.Fatalf("remainder degree %d not below N=%d", rem.Degree(), par.N)
		}
	}
}
