// Package witness restates the intermediate values of the ntru
// transforms in the fixed-length, zero-padded layout consumed by the
// external arithmetic-circuit verifier. Every vector is a slice of
// non-negative field elements (-1 crosses this boundary as p-1 or q-1,
// consistently per field), and every bundle carries the bit-width
// parameters the verifier needs to size its field checks.
//
// The bundles are pure re-expressions of the transforms themselves:
// they are built from the same single computation path (the *WithTrace
// variants in package ntru), so the final value of an operation is
// bit-for-bit the Remainder field of its bundle.
package witness

import (
	"fmt"

	"NTRU-Encrypt/ntru"
)

// PadTo zero-pads the canonical coefficients of p to exactly n entries.
// It fails when p does not fit the declared length.
func PadTo(p ntru.Poly, n int) ([]int64, error) {
	c := p.Canonical().Coeffs
	if p.Degree() >= n {
		return nil, fmt.Errorf("witness: polynomial of degree %d does not fit %d slots", p.Degree(), n)
	}
	out := make([]int64, n)
	copy(out, c)
	return out, nil
}

// BitWidth returns the number of bits needed for the largest
// intermediate magnitude of a stage with modulus m over N coefficients,
// i.e. bitlen(m^2 * N). This is an upper-bound estimator; the
// verifier's integration layer owns the final field-size choice and may
// substitute its own bound.
func BitWidth(m int64, n int) int {
	v := m * m * int64(n)
	bits := 0
	for v > 0 {
		bits++
		v >>= 1
	}
	return bits
}

// EncryptionWitness bundles one encryption for the verifier:
// e = (r*h + m) mod (q, I), with the dividend r*h + m re-checkable as
// Quotient*I + Remainder. R, M, H and Remainder are padded to N,
// Quotient to N+1 (deg(r*h + m) <= 2N-2 makes deg(quotient) <= N-2,
// but the verifier sizes every quotient slot uniformly).
type EncryptionWitness struct {
	R         []int64 `json:"r"`
	M         []int64 `json:"m"`
	H         []int64 `json:"h"`
	Quotient  []int64 `json:"quotient"`
	Remainder []int64 `json:"remainder"`

	Q     int64 `json:"q"`
	QBits int   `json:"q_bits"`
	N     int   `json:"N"`
}

// BuildEncryption encrypts m under kp and returns the ciphertext
// together with its witness bundle.
func BuildEncryption(m ntru.Poly, kp *ntru.KeyPair, smp *ntru.TrinarySampler) (ntru.Poly, *EncryptionWitness, error) {
	e, tr, err := ntru.EncryptWithTrace(m, kp, smp)
	if err != nil {
		return ntru.Poly{}, nil, err
	}
	par := kp.Par
	w := &EncryptionWitness{Q: par.Q, QBits: BitWidth(par.Q, par.N), N: par.N}
	for _, f := range []struct {
		dst *[]int64
		src ntru.Poly
		n   int
	}{
		{&w.R, tr.R, par.N},
		{&w.M, m, par.N},
		{&w.H, kp.H, par.N},
		{&w.Quotient, tr.Quotient, par.N + 1},
		{&w.Remainder, tr.Remainder, par.N},
	} {
		if *f.dst, err = PadTo(f.src, f.n); err != nil {
			return ntru.Poly{}, nil, err
		}
	}
	return e, w, nil
}

// DecryptionWitness bundles one decryption: the q-stage
// a = f*e mod (q, I) as (Quotient1, Remainder1) and the p-stage
// c = fp*b mod (p, I) as (Quotient2, Remainder2). All vectors are
// padded to N+1.
type DecryptionWitness struct {
	F          []int64 `json:"f"`
	Fp         []int64 `json:"fp"`
	E          []int64 `json:"e"`
	Quotient1  []int64 `json:"quotient1"`
	Remainder1 []int64 `json:"remainder1"`
	Quotient2  []int64 `json:"quotient2"`
	Remainder2 []int64 `json:"remainder2"`

	Q     int64 `json:"q"`
	QBits int   `json:"q_bits"`
	P     int64 `json:"p"`
	PBits int   `json:"p_bits"`
	N     int   `json:"N"`
}

// BuildDecryption decrypts e with kp and returns the plaintext together
// with its witness bundle. The private polynomial f is embedded mod q
// (its stage modulus) before export.
func BuildDecryption(e ntru.Poly, kp *ntru.KeyPair) (ntru.Poly, *DecryptionWitness, error) {
	c, tr, err := ntru.DecryptWithTrace(e, kp)
	if err != nil {
		return ntru.Poly{}, nil, err
	}
	par := kp.Par
	w := &DecryptionWitness{
		Q: par.Q, QBits: BitWidth(par.Q, par.N),
		P: par.P, PBits: BitWidth(par.P, par.N),
		N: par.N,
	}
	for _, f := range []struct {
		dst *[]int64
		src ntru.Poly
	}{
		{&w.F, ntru.EmbedMod(kp.F, par.Q)},
		{&w.Fp, kp.Fp},
		{&w.E, e},
		{&w.Quotient1, tr.Quotient1},
		{&w.Remainder1, tr.Remainder1},
		{&w.Quotient2, tr.Quotient2},
		{&w.Remainder2, tr.Remainder2},
	} {
		if *f.dst, err = PadTo(f.src, par.N+1); err != nil {
			return ntru.Poly{}, nil, err
		}
	}
	return c, w, nil
}
