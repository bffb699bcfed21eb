package ntru

import (
	"fmt"
	"time"

	"NTRU-Encrypt/prof"
)

// EncryptTrace records the intermediate values of one encryption for
// the proof-input export: the mod-q embedding of the randomness r and
// the quotient/remainder pair of the reduction of r*h + m by x^N - 1.
// The ciphertext equals Remainder; there is no second computation path.
type EncryptTrace struct {
	R         Poly
	Quotient  Poly
	Remainder Poly
}

// DecryptTrace records the two reductions of one decryption: the
// q-stage a = f*e mod (q, I) and the p-stage c = fp*b mod (p, I).
type DecryptTrace struct {
	Quotient1  Poly
	Remainder1 Poly
	Quotient2  Poly
	Remainder2 Poly
}

// Encrypt encrypts the plaintext m under the public key in kp:
// e = (r*h + m) mod (q, I) with fresh trinary randomness r of weight
// (Dr, Dr). m must have at most N coefficients, each in {0, 1, 2}
// (2 stands for -1 at the verifier boundary, which cannot represent
// negative values).
func Encrypt(m Poly, kp *KeyPair, smp *TrinarySampler) (Poly, error) {
	e, _, err := EncryptWithTrace(m, kp, smp)
	return e, err
}

// EncryptWithTrace is Encrypt plus the intermediate values the witness
// layer packages for the external verifier.
func EncryptWithTrace(m Poly, kp *KeyPair, smp *TrinarySampler) (Poly, EncryptTrace, error) {
	defer prof.Track(time.Now(), "ntru.Encrypt")

	if kp.H.IsZero() {
		return Poly{}, EncryptTrace{}, fmt.Errorf("%w: public key not set", ErrInvalidKey)
	}
	if len(m.Coeffs) > kp.Par.N {
		return Poly{}, EncryptTrace{}, ErrMessageTooLong
	}
	for _, c := range m.Coeffs {
		if c < 0 || c > 2 {
			return Poly{}, EncryptTrace{}, fmt.Errorf("%w: plaintext coefficients must be in {0,1,2}", ErrMalformedInput)
		}
	}

	r, err := smp.Trinary(kp.Par.N, kp.Par.Dr, kp.Par.Dr)
	if err != nil {
		return Poly{}, EncryptTrace{}, err
	}
	q := kp.Par.Q
	sum := Add(Mul(r, kp.H, q), m, q)
	quo, e := ReduceIdeal(sum, kp.Par, q)
	return e, EncryptTrace{R: EmbedMod(r, q), Quotient: quo, Remainder: e}, nil
}

// Decrypt recovers the plaintext from a ciphertext: a = f*e mod (q, I),
// recentred into [0,p) by FoldSigned, then c = fp*b mod (p, I).
//
// A successful decryption can still yield a plaintext different from
// the one encrypted; that is the scheme's probabilistic decryption
// failure, a value mismatch and never an error.
func Decrypt(e Poly, kp *KeyPair) (Poly, error) {
	c, _, err := DecryptWithTrace(e, kp)
	return c, err
}

// DecryptWithTrace is Decrypt plus the two quotient/remainder pairs the
// witness layer packages for the external verifier.
func DecryptWithTrace(e Poly, kp *KeyPair) (Poly, DecryptTrace, error) {
	defer prof.Track(time.Now(), "ntru.Decrypt")

	if kp.F.IsZero() || kp.Fp.IsZero() {
		return Poly{}, DecryptTrace{}, fmt.Errorf("%w: private key not set", ErrInvalidKey)
	}
	if len(e.Coeffs) > kp.Par.N {
		return Poly{}, DecryptTrace{}, fmt.Errorf("%w: ciphertext longer than ring rank", ErrMalformedInput)
	}

	par := kp.Par
	quo1, a := ReduceIdeal(Mul(kp.F, e, par.Q), par, par.Q)
	b := FoldSigned(a, par.Q, par.P)
	quo2, c := ReduceIdeal(Mul(kp.Fp, b, par.P), par, par.P)
	return c, DecryptTrace{Quotient1: quo1, Remainder1: a, Quotient2: quo2, Remainder2: c}, nil
}

// AddCiphertexts adds two ciphertexts under the same public key
// coefficientwise mod q. Decrypting the sum yields the coefficientwise
// sum of the plaintexts mod p, with a decryption-failure probability
// that grows as noise accumulates; the homomorphism is plain linearity
// of the ring operations, not a separate transform.
func AddCiphertexts(e1, e2 Poly, par Params) Poly {
	return Add(e1, e2, par.Q)
}
