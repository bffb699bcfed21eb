package ntru

// Invert returns f^-1 mod (m, x^N - 1), dispatching on the modulus:
// extended Euclid for a prime m, Newton lifting for a power of two.
// ErrNotInvertible is reported when gcd(f, x^N - 1) != 1.
func Invert(f Poly, par Params, m int64) (Poly, error) {
	if m >= 4 && isPowerOfTwo(m) {
		return InvertPow2(f, par, m)
	}
	return InvertPrime(f, par, m)
}

// InvertPrime inverts f modulo a prime m and the ideal I = x^N - 1
// using the polynomial extended Euclidean algorithm. It maintains the
// remainder pair (r0, r1) and the Bezout pair (s0, s1) with the
// invariant s_i * f = r_i (mod m, I), so when the gcd collapses to a
// non-zero constant c the inverse is s0 * c^-1.
func InvertPrime(f Poly, par Params, m int64) (Poly, error) {
	r0 := par.Ideal(m)
	r1 := EmbedMod(f, m)
	if r1.IsZero() {
		return Poly{}, ErrNotInvertible
	}
	s0, s1 := Zero(), One()

	for !r1.IsZero() {
		quo, rem, err := DivMod(r0, r1, m)
		if err != nil {
			// m is prime and r1 != 0, so the leading coefficient is a unit.
			return Poly{}, err
		}
		r0, r1 = r1, rem
		s0, s1 = s1, Sub(s0, Mul(quo, s1, m), m)
	}
	if r0.Degree() != 0 {
		return Poly{}, ErrNotInvertible
	}
	c, ok := modInv(r0.Coeffs[0], m)
	if !ok {
		return Poly{}, ErrNotInvertible
	}
	_, inv := ReduceIdeal(ScalarMul(s0, c, m), par, m)
	return inv, nil
}

// InvertPow2 inverts f modulo q = 2^k and the ideal I = x^N - 1. The
// inverse is first computed mod 2 by the Euclidean method, then lifted
// by Newton iteration v <- 2v - f*v^2, doubling the modulus exponent
// handled per step until reaching q. This never runs the Euclidean
// algorithm against a composite modulus, where the per-step leading
// coefficient need not be a unit.
func InvertPow2(f Poly, par Params, q int64) (Poly, error) {
	v, err := InvertPrime(f, par, 2)
	if err != nil {
		return Poly{}, err
	}
	for e := int64(2); e < q; {
		e *= e
		if e > q {
			e = q
		}
		twoV := ScalarMul(v, 2, e)
		vsq := Mul(v, v, e)
		fvv := Mul(f, vsq, e)
		_, v = ReduceIdeal(Sub(twoV, fvv, e), par, e)
	}
	return v, nil
}
