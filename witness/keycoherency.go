package witness

import (
	"NTRU-Encrypt/ntru"
)

// CoherencyCase exhibits one division the verifier re-checks as
// Dividend = I*Quotient + Remainder, with Remainder = Expected. The
// dividend is an unreduced product (up to 2N-1 coefficients); Candidate
// is the inverse (or salt) polynomial the case vouches for. Together
// the three cases show that the published h matches the private key
// without revealing f itself.
type CoherencyCase struct {
	Label     string  `json:"label"`
	Dividend  []int64 `json:"dividend"`
	Candidate []int64 `json:"candidate"`
	Quotient  []int64 `json:"quotient"`
	Remainder []int64 `json:"remainder"`
	Expected  []int64 `json:"expected"`

	Mod  int64 `json:"mod"`
	Bits int   `json:"bits"`
}

// KeyCoherencyWitness carries the three labelled cases: f*fq = 1 mod
// (q, I), f*fp = 1 mod (p, I) and p*fq*g = h mod (q, I).
type KeyCoherencyWitness struct {
	Fq CoherencyCase `json:"fq"`
	Fp CoherencyCase `json:"fp"`
	H  CoherencyCase `json:"h"`
	N  int           `json:"N"`
}

// BuildKeyCoherency derives the three cases from kp. The key pair must
// hold full private and public material.
func BuildKeyCoherency(kp *ntru.KeyPair) (*KeyCoherencyWitness, error) {
	if err := kp.Validate(); err != nil {
		return nil, err
	}
	par := kp.Par

	fq, err := buildCase("fq", ntru.Mul(kp.F, kp.Fq, par.Q), kp.Fq, ntru.One(), par, par.Q)
	if err != nil {
		return nil, err
	}
	fp, err := buildCase("fp", ntru.Mul(kp.F, kp.Fp, par.P), kp.Fp, ntru.One(), par, par.P)
	if err != nil {
		return nil, err
	}
	hProd := ntru.ScalarMul(ntru.Mul(kp.Fq, kp.G, par.Q), par.P, par.Q)
	h, err := buildCase("h", hProd, ntru.EmbedMod(kp.G, par.Q), kp.H, par, par.Q)
	if err != nil {
		return nil, err
	}
	return &KeyCoherencyWitness{Fq: *fq, Fp: *fp, H: *h, N: par.N}, nil
}

func buildCase(label string, dividend, candidate, expected ntru.Poly, par ntru.Params, m int64) (*CoherencyCase, error) {
	quo, rem := ntru.ReduceIdeal(dividend, par, m)
	c := &CoherencyCase{Label: label, Mod: m, Bits: BitWidth(m, par.N)}
	var err error
	if c.Dividend, err = PadTo(dividend, 2*par.N-1); err != nil {
		return nil, err
	}
	if c.Candidate, err = PadTo(candidate, par.N); err != nil {
		return nil, err
	}
	if c.Quotient, err = PadTo(quo, par.N); err != nil {
		return nil, err
	}
	if c.Remainder, err = PadTo(rem, par.N); err != nil {
		return nil, err
	}
	if c.Expected, err = PadTo(expected, par.N); err != nil {
		return nil, err
	}
	return c, nil
}
