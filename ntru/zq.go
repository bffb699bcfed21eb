package ntru

// Scalar arithmetic modulo a word-sized modulus. Coefficient magnitudes
// in this system stay below q^2*N, far inside int64 range.

// modReduce maps x into [0, m).
func modReduce(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

func modAdd(a, b, m int64) int64 {
	return modReduce(a+b, m)
}

func modSub(a, b, m int64) int64 {
	return modReduce(a-b, m)
}

func modMul(a, b, m int64) int64 {
	return modReduce(a*b, m)
}

// modInv returns the inverse of a modulo m via the extended Euclidean
// algorithm; ok is false when gcd(a, m) != 1.
func modInv(a, m int64) (int64, bool) {
	r0, r1 := modReduce(a, m), m
	s0, s1 := int64(1), int64(0)
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		s0, s1 = s1, s0-q*s1
	}
	if r0 != 1 {
		return 0, false
	}
	return modReduce(s0, m), true
}

// bitLen returns the number of bits needed to represent x (>= 1 for
// x > 0, 0 for x = 0).
func bitLen(x int64) int {
	n := 0
	for x > 0 {
		n++
		x >>= 1
	}
	return n
}
