package witness

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// digestSize is the length of a bundle transcript digest in bytes.
const digestSize = 32

// shakeVectors hashes a sequence of labelled vectors into a fixed
// digest with SHAKE-256. Each field is absorbed as
// len(label) | label | len(vec) | vec entries, so bundles with the same
// values under different labels do not collide.
func shakeVectors(fields []labelled) []byte {
	h := sha3.NewShake256()
	var buf [8]byte
	for _, f := range fields {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(f.name)))
		h.Write(buf[:])
		h.Write([]byte(f.name))
		binary.LittleEndian.PutUint64(buf[:], uint64(len(f.vec)))
		h.Write(buf[:])
		for _, v := range f.vec {
			binary.LittleEndian.PutUint64(buf[:], uint64(v))
			h.Write(buf[:])
		}
	}
	out := make([]byte, digestSize)
	h.Read(out)
	return out
}

type labelled struct {
	name string
	vec  []int64
}

// Digest returns a stable transcript identifier of the bundle for the
// verifier integration layer.
func (w *EncryptionWitness) Digest() []byte {
	return shakeVectors([]labelled{
		{"r", w.R}, {"m", w.M}, {"h", w.H},
		{"quotient", w.Quotient}, {"remainder", w.Remainder},
		{"params", []int64{w.Q, int64(w.QBits), int64(w.N)}},
	})
}

// Digest returns a stable transcript identifier of the bundle.
func (w *DecryptionWitness) Digest() []byte {
	return shakeVectors([]labelled{
		{"f", w.F}, {"fp", w.Fp}, {"e", w.E},
		{"quotient1", w.Quotient1}, {"remainder1", w.Remainder1},
		{"quotient2", w.Quotient2}, {"remainder2", w.Remainder2},
		{"params", []int64{w.Q, int64(w.QBits), w.P, int64(w.PBits), int64(w.N)}},
	})
}

// Digest returns a stable transcript identifier of the three cases.
func (w *KeyCoherencyWitness) Digest() []byte {
	var fields []labelled
	for _, c := range []CoherencyCase{w.Fq, w.Fp, w.H} {
		fields = append(fields,
			labelled{c.Label + ".dividend", c.Dividend},
			labelled{c.Label + ".candidate", c.Candidate},
			labelled{c.Label + ".quotient", c.Quotient},
			labelled{c.Label + ".remainder", c.Remainder},
			labelled{c.Label + ".expected", c.Expected},
			labelled{c.Label + ".params", []int64{c.Mod, int64(c.Bits)}},
		)
	}
	return shakeVectors(fields)
}
