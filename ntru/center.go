package ntru

// Sign-representation remapping lives in this file only. Every caller
// that needs the -1 <-> m-1 identification or the decrypt recentring
// goes through these functions.

// CenterModQ maps coefficients in [0,q) to the symmetric interval
// (-q/2, q/2].
func CenterModQ(a Poly, q int64) []int64 {
	out := make([]int64, len(a.Coeffs))
	half := q / 2
	for i, v := range a.Coeffs {
		if v > half {
			out[i] = v - q
		} else {
			out[i] = v
		}
	}
	return out
}

// DecenterToModQ maps centered coefficients back to [0,q).
func DecenterToModQ(a []int64, q int64) Poly {
	out := make([]int64, len(a))
	for i, v := range a {
		out[i] = modReduce(v, q)
	}
	return Poly{Coeffs: out}.Canonical()
}

// FoldSigned performs the decrypt recentring of a mod-q polynomial into
// [0,p): coefficients above q/2 are negative residues, and for those
// (c+1) mod p equals (c-q) mod p because q = 2 (mod 3) in this profile.
// The +1 compensation must be preserved exactly.
func FoldSigned(a Poly, q, p int64) Poly {
	out := make([]int64, len(a.Coeffs))
	half := q / 2
	for i, c := range a.Coeffs {
		if c > half {
			out[i] = modReduce(c+1, p)
		} else {
			out[i] = modReduce(c, p)
		}
	}
	return Poly{Coeffs: out}.Canonical()
}

// TritToField maps a signed trit in {-1,0,1} to its representative in
// [0,m).
func TritToField(t, m int64) int64 {
	return modReduce(t, m)
}
