package ntru

import (
	"errors"
	"fmt"
	"time"

	"NTRU-Encrypt/prof"
)

// KeyPair carries the private key f with its two inverses, the
// generation secret g and the public key h = p*fq*g mod (q, I).
// F and G are stored in signed trinary form; Fp, Fq and H are residue
// polynomials modulo p and q respectively. A KeyPair is never mutated
// after generation except by re-deriving h from a freshly drawn g.
type KeyPair struct {
	Par Params

	F  Poly // private, trinary
	Fp Poly // f^-1 mod (p, I)
	Fq Poly // f^-1 mod (q, I)

	G Poly // generation secret, trinary
	H Poly // public key
}

// KeygenOpts bounds the private-key search.
type KeygenOpts struct {
	// MaxTrials caps the retry loop; 0 selects DefaultMaxKeyTrials.
	// Exhausting the budget is a fatal configuration error, never a
	// silent weak key.
	MaxTrials int
	// Cancel, when non-nil, aborts the search at the next attempt
	// boundary once closed. Each attempt is cheap relative to the whole
	// search, so per-attempt granularity suffices.
	Cancel <-chan struct{}
}

// DefaultMaxKeyTrials bounds the invertible-key search for the default
// profile, where the expected number of attempts is small.
const DefaultMaxKeyTrials = 100

// GeneratePrivate searches for a trinary f with (Df, Df-1) ones and
// neg-ones that is invertible both mod q and mod p, and returns a
// KeyPair holding {f, fp, fq}. The search is bounded by opts.MaxTrials
// and fails with ErrKeySearchExhausted when the budget runs out.
func GeneratePrivate(par Params, opts KeygenOpts, smp *TrinarySampler) (*KeyPair, error) {
	defer prof.Track(time.Now(), "ntru.GeneratePrivate")

	maxTrials := opts.MaxTrials
	if maxTrials <= 0 {
		maxTrials = DefaultMaxKeyTrials
	}
	for trial := 0; trial < maxTrials; trial++ {
		select {
		case <-opts.Cancel:
			return nil, ErrKeygenCancelled
		default:
		}

		f, err := smp.Trinary(par.N, par.Df, par.Df-1)
		if err != nil {
			return nil, err
		}
		fq, err := Invert(f, par, par.Q)
		if errors.Is(err, ErrNotInvertible) {
			continue
		} else if err != nil {
			return nil, err
		}
		fp, err := Invert(f, par, par.P)
		if errors.Is(err, ErrNotInvertible) {
			continue
		} else if err != nil {
			return nil, err
		}
		return &KeyPair{Par: par, F: f, Fp: fp, Fq: fq}, nil
	}
	return nil, fmt.Errorf("%w after %d trials (N=%d, df=%d)",
		ErrKeySearchExhausted, maxTrials, par.N, par.Df)
}

// GeneratePublic draws a fresh g with (Dg, Dg) ones and neg-ones and
// derives h = p*fq*g mod (q, I). It is the only permitted mutation of
// an existing KeyPair.
func (kp *KeyPair) GeneratePublic(smp *TrinarySampler) error {
	if kp.Fq.IsZero() {
		return fmt.Errorf("%w: private key not set", ErrInvalidKey)
	}
	g, err := smp.Trinary(kp.Par.N, kp.Par.Dg, kp.Par.Dg)
	if err != nil {
		return err
	}
	kp.G = g
	kp.H = kp.deriveH(g)
	return nil
}

func (kp *KeyPair) deriveH(g Poly) Poly {
	t := Mul(kp.Fq, g, kp.Par.Q)
	t = ScalarMul(t, kp.Par.P, kp.Par.Q)
	_, h := ReduceIdeal(t, kp.Par, kp.Par.Q)
	return h
}

// GenerateKeyPair runs the private search followed by the public
// derivation.
func GenerateKeyPair(par Params, opts KeygenOpts, smp *TrinarySampler) (*KeyPair, error) {
	kp, err := GeneratePrivate(par, opts, smp)
	if err != nil {
		return nil, err
	}
	if err := kp.GeneratePublic(smp); err != nil {
		return nil, err
	}
	return kp, nil
}

// LoadPrivateKey rebuilds a KeyPair from an externally supplied trinary
// f, re-deriving fp and fq exactly as generation does. A key that is
// not invertible under either modulus is rejected with ErrInvalidKey,
// never repaired.
func LoadPrivateKey(par Params, f Poly) (*KeyPair, error) {
	if f.Degree() >= par.N {
		return nil, fmt.Errorf("%w: private key longer than ring rank", ErrInvalidKey)
	}
	for _, c := range f.Coeffs {
		if c < -1 || c > 1 {
			return nil, fmt.Errorf("%w: private key is not trinary", ErrInvalidKey)
		}
	}
	fq, err := Invert(f, par, par.Q)
	if err != nil {
		return nil, fmt.Errorf("%w: f not invertible mod q: %v", ErrInvalidKey, err)
	}
	fp, err := Invert(f, par, par.P)
	if err != nil {
		return nil, fmt.Errorf("%w: f not invertible mod p: %v", ErrInvalidKey, err)
	}
	kp := &KeyPair{Par: par, F: f, Fp: fp, Fq: fq}
	if err := kp.Validate(); err != nil {
		return nil, err
	}
	return kp, nil
}

// Validate re-checks the key invariants: f*fq = 1 mod (q, I),
// f*fp = 1 mod (p, I), and, when g is present, h = p*fq*g mod (q, I).
func (kp *KeyPair) Validate() error {
	if kp.F.IsZero() || kp.Fp.IsZero() || kp.Fq.IsZero() {
		return fmt.Errorf("%w: missing private key material", ErrInvalidKey)
	}
	_, ffq := ReduceIdeal(Mul(kp.F, kp.Fq, kp.Par.Q), kp.Par, kp.Par.Q)
	if !ffq.Equal(One()) {
		return fmt.Errorf("%w: f*fq != 1 mod q", ErrInvalidKey)
	}
	_, ffp := ReduceIdeal(Mul(kp.F, kp.Fp, kp.Par.P), kp.Par, kp.Par.P)
	if !ffp.Equal(One()) {
		return fmt.Errorf("%w: f*fp != 1 mod p", ErrInvalidKey)
	}
	if !kp.G.IsZero() || !kp.H.IsZero() {
		if !kp.deriveH(kp.G).Equal(kp.H) {
			return fmt.Errorf("%w: h does not match p*fq*g", ErrInvalidKey)
		}
	}
	return nil
}
