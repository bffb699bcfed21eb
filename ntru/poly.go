package ntru

// Poly holds the coefficients of a polynomial over Z; index i is the
// coefficient of x^i. Values produced by the ring operations are
// canonical: coefficients reduced into [0, m) for the modulus of the
// operation, trailing zeros trimmed, the zero polynomial stored as [0].
// Operations never mutate their operands.
type Poly struct {
	Coeffs []int64
}

// NewPoly copies coeffs into a canonical polynomial.
func NewPoly(coeffs []int64) Poly {
	return Poly{Coeffs: append([]int64(nil), coeffs...)}.Canonical()
}

// Zero returns the zero polynomial.
func Zero() Poly {
	return Poly{Coeffs: []int64{0}}
}

// One returns the constant polynomial 1.
func One() Poly {
	return Poly{Coeffs: []int64{1}}
}

// Degree returns the highest index with a non-zero coefficient, or -1
// for the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		if p.Coeffs[i] != 0 {
			return i
		}
	}
	return -1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return p.Degree() < 0
}

// Canonical trims trailing zero coefficients; the zero polynomial
// canonicalizes to [0].
func (p Poly) Canonical() Poly {
	d := p.Degree()
	if d < 0 {
		return Zero()
	}
	return Poly{Coeffs: p.Coeffs[:d+1]}
}

// Clone returns a deep copy of p.
func (p Poly) Clone() Poly {
	return Poly{Coeffs: append([]int64(nil), p.Coeffs...)}
}

// Equal reports coefficientwise equality of the canonical forms.
func (p Poly) Equal(q Poly) bool {
	a, b := p.Canonical(), q.Canonical()
	if len(a.Coeffs) != len(b.Coeffs) {
		return false
	}
	for i := range a.Coeffs {
		if a.Coeffs[i] != b.Coeffs[i] {
			return false
		}
	}
	return true
}

// EmbedMod maps every coefficient into [0, m), sending negative values
// to their field representatives (-1 becomes m-1).
func EmbedMod(p Poly, m int64) Poly {
	out := make([]int64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = modReduce(c, m)
	}
	return Poly{Coeffs: out}.Canonical()
}

// Add returns a + b with coefficients reduced into [0, m).
func Add(a, b Poly, m int64) Poly {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var ai, bi int64
		if i < len(a.Coeffs) {
			ai = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			bi = b.Coeffs[i]
		}
		out[i] = modReduce(ai+bi, m)
	}
	return Poly{Coeffs: out}.Canonical()
}

// Sub returns a - b with coefficients reduced into [0, m).
func Sub(a, b Poly, m int64) Poly {
	n := len(a.Coeffs)
	if len(b.Coeffs) > n {
		n = len(b.Coeffs)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var ai, bi int64
		if i < len(a.Coeffs) {
			ai = a.Coeffs[i]
		}
		if i < len(b.Coeffs) {
			bi = b.Coeffs[i]
		}
		out[i] = modReduce(ai-bi, m)
	}
	return Poly{Coeffs: out}.Canonical()
}

// Mul returns a * b mod m by exact integer convolution. The schoolbook
// convolution is the source of truth for every value that feeds a
// cryptographic correctness check; no floating transform shortcut is
// used.
func Mul(a, b Poly, m int64) Poly {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	out := make([]int64, len(a.Coeffs)+len(b.Coeffs)-1)
	for i, ai := range a.Coeffs {
		ar := modReduce(ai, m)
		if ar == 0 {
			continue
		}
		for j, bj := range b.Coeffs {
			br := modReduce(bj, m)
			if br == 0 {
				continue
			}
			out[i+j] = (out[i+j] + ar*br) % m
		}
	}
	return Poly{Coeffs: out}.Canonical()
}

// ScalarMul returns c * a mod m.
func ScalarMul(a Poly, c, m int64) Poly {
	cr := modReduce(c, m)
	out := make([]int64, len(a.Coeffs))
	for i, ai := range a.Coeffs {
		out[i] = modMul(modReduce(ai, m), cr, m)
	}
	return Poly{Coeffs: out}.Canonical()
}
