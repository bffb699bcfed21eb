// Package keys persists NTRU key material and ciphertexts as JSON
// blobs. Loading a private key always re-derives fp and fq and re-runs
// the coherency checks; a blob that fails them is rejected, never
// repaired.
package keys

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"NTRU-Encrypt/ntru"
)

// Version tags the on-disk format.
const Version = "ntru-encrypt/v1"

// DefaultDir is where the CLI keeps its blobs.
const DefaultDir = "ntru_keys"

// PublicKey is the public half: parameters and h in [0,q).
type PublicKey struct {
	Version string  `json:"version"`
	N       int     `json:"N"`
	P       int64   `json:"p"`
	Q       int64   `json:"q"`
	Df      int     `json:"df"`
	Dg      int     `json:"dg"`
	Dr      int     `json:"dr"`
	H       []int64 `json:"h"`
}

// PrivateKey is the private half; f and g are stored in signed trinary
// form, h in [0,q).
type PrivateKey struct {
	Version string  `json:"version"`
	N       int     `json:"N"`
	P       int64   `json:"p"`
	Q       int64   `json:"q"`
	Df      int     `json:"df"`
	Dg      int     `json:"dg"`
	Dr      int     `json:"dr"`
	F       []int64 `json:"f"`
	G       []int64 `json:"g"`
	H       []int64 `json:"h"`
}

// Ciphertext wraps an encrypted vector with the framing metadata needed
// to decode the recovered plaintext.
type Ciphertext struct {
	Version  string  `json:"version"`
	N        int     `json:"N"`
	Q        int64   `json:"q"`
	E        []int64 `json:"e"`
	MsgBytes int     `json:"msg_bytes"`
}

// FromKeyPair splits kp into its persistable halves.
func FromKeyPair(kp *ntru.KeyPair) (*PublicKey, *PrivateKey) {
	par := kp.Par
	pub := &PublicKey{Version: Version, N: par.N, P: par.P, Q: par.Q,
		Df: par.Df, Dg: par.Dg, Dr: par.Dr,
		H: append([]int64(nil), kp.H.Coeffs...)}
	priv := &PrivateKey{Version: Version, N: par.N, P: par.P, Q: par.Q,
		Df: par.Df, Dg: par.Dg, Dr: par.Dr,
		F: append([]int64(nil), kp.F.Coeffs...),
		G: append([]int64(nil), kp.G.Coeffs...),
		H: append([]int64(nil), kp.H.Coeffs...)}
	return pub, priv
}

// SavePublic writes the public key to dir/public.json.
func SavePublic(pub *PublicKey, dir string) error {
	return writeJSON(filepath.Join(dir, "public.json"), pub)
}

// SavePrivate writes the private key to dir/private.json.
func SavePrivate(priv *PrivateKey, dir string) error {
	return writeJSON(filepath.Join(dir, "private.json"), priv)
}

// SaveCiphertext writes ct to dir/ciphertext.json.
func SaveCiphertext(ct *Ciphertext, dir string) error {
	return SaveCiphertextFile(ct, filepath.Join(dir, "ciphertext.json"))
}

// SaveCiphertextFile writes ct to an explicit path.
func SaveCiphertextFile(ct *Ciphertext, path string) error {
	return writeJSON(path, ct)
}

// LoadPublic reads dir/public.json and rebuilds an encryption-only
// KeyPair (parameters and h).
func LoadPublic(dir string) (*ntru.KeyPair, error) {
	var pub PublicKey
	if err := readJSON(filepath.Join(dir, "public.json"), &pub); err != nil {
		return nil, err
	}
	if pub.Version != Version {
		return nil, fmt.Errorf("%w: unsupported blob version %q", ntru.ErrInvalidKey, pub.Version)
	}
	par, err := ntru.NewParams(pub.N, pub.P, pub.Q, pub.Df, pub.Dg, pub.Dr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ntru.ErrInvalidKey, err)
	}
	h := ntru.NewPoly(pub.H)
	if h.Degree() >= par.N {
		return nil, fmt.Errorf("%w: public key longer than ring rank", ntru.ErrInvalidKey)
	}
	return &ntru.KeyPair{Par: par, H: h}, nil
}

// LoadPrivate reads dir/private.json and rebuilds the full KeyPair,
// re-deriving fp and fq exactly as generation does and re-checking the
// key invariants, including that the stored h matches p*fq*g.
func LoadPrivate(dir string) (*ntru.KeyPair, error) {
	var priv PrivateKey
	if err := readJSON(filepath.Join(dir, "private.json"), &priv); err != nil {
		return nil, err
	}
	if priv.Version != Version {
		return nil, fmt.Errorf("%w: unsupported blob version %q", ntru.ErrInvalidKey, priv.Version)
	}
	par, err := ntru.NewParams(priv.N, priv.P, priv.Q, priv.Df, priv.Dg, priv.Dr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ntru.ErrInvalidKey, err)
	}
	kp, err := ntru.LoadPrivateKey(par, ntru.NewPoly(priv.F))
	if err != nil {
		return nil, err
	}
	kp.G = ntru.NewPoly(priv.G)
	kp.H = ntru.NewPoly(priv.H)
	if err := kp.Validate(); err != nil {
		return nil, err
	}
	return kp, nil
}

// LoadCiphertext reads dir/ciphertext.json.
func LoadCiphertext(dir string) (*Ciphertext, error) {
	return LoadCiphertextFile(filepath.Join(dir, "ciphertext.json"))
}

// LoadCiphertextFile reads a ciphertext blob from an explicit path.
func LoadCiphertextFile(path string) (*Ciphertext, error) {
	var ct Ciphertext
	if err := readJSON(path, &ct); err != nil {
		return nil, err
	}
	if ct.Version != Version {
		return nil, fmt.Errorf("keys: unsupported ciphertext version %q", ct.Version)
	}
	return &ct, nil
}

func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
