package ntru

// DivMod computes the long division a = quo*b + rem (mod m) with
// deg(rem) < deg(b). It fails with a *DivisionError when b is the zero
// polynomial or when the leading coefficient of b is not invertible
// modulo m (a real possibility when m is a power of two). A dividend
// shorter than the divisor yields quo = 0, rem = a.
//
// The identity a = quo*b + rem (mod m) holds for every accepted result;
// the witness layer re-states it as the verifier's proof obligation.
func DivMod(a, b Poly, m int64) (quo, rem Poly, err error) {
	b = EmbedMod(b, m)
	db := b.Degree()
	if db < 0 {
		return Poly{}, Poly{}, &DivisionError{Reason: "divisor is the zero polynomial", Modulus: m}
	}
	inv, ok := modInv(b.Coeffs[db], m)
	if !ok {
		return Poly{}, Poly{}, &DivisionError{Reason: "leading coefficient of divisor has no inverse", Modulus: m}
	}

	rem = EmbedMod(a, m)
	if rem.Degree() < db {
		return Zero(), rem, nil
	}

	qc := make([]int64, rem.Degree()-db+1)
	for {
		da := rem.Degree()
		if da < db {
			break
		}
		c := modMul(rem.Coeffs[da], inv, m)
		shift := da - db
		qc[shift] = c

		// rem -= c * x^shift * b; the leading term cancels.
		next := append([]int64(nil), rem.Coeffs...)
		for j, bj := range b.Coeffs {
			next[shift+j] = modSub(next[shift+j], modMul(c, bj, m), m)
		}
		rem = Poly{Coeffs: next}.Canonical()
	}
	return Poly{Coeffs: qc}.Canonical(), rem, nil
}

// ReduceIdeal reduces a modulo the ideal (x^N - 1) over Z/mZ and
// returns both the quotient and the remainder, with the quotient taken
// against the stored 1 - x^N representation. The division cannot fail.
func ReduceIdeal(a Poly, par Params, m int64) (quo, rem Poly) {
	quo, rem, err := DivMod(a, par.Ideal(m), m)
	if err != nil {
		// I has leading coefficient m-1, invertible mod every m >= 2.
		panic(err)
	}
	return quo, rem
}
