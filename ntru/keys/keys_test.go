package keys

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"

	"NTRU-Encrypt/ntru"
)

func testKeyPair(t *testing.T, key byte) *ntru.KeyPair {
	t.Helper()
	par, err := ntru.NewParams(11, 3, 32, 3, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	prng, err := utils.NewKeyedPRNG([]byte{key})
	if err != nil {
		t.Fatal(err)
	}
	kp, err := ntru.GenerateKeyPair(par, ntru.KeygenOpts{}, ntru.NewTrinarySampler(prng))
	if err != nil {
		t.Fatal(err)
	}
	return kp
}

func TestSaveLoadRoundTrip(t *testing.T) {
	kp := testKeyPair(t, 1)
	dir := t.TempDir()
	pub, priv := FromKeyPair(kp)
	if err := SavePublic(pub, dir); err != nil {
		t.Fatal(err)
	}
	if err := SavePrivate(priv, dir); err != nil {
		t.Fatal(err)
	}

	loadedPub, err := LoadPublic(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loadedPub.Par != kp.Par {
		t.Fatalf("loaded parameters %+v, want %+v", loadedPub.Par, kp.Par)
	}
	if !loadedPub.H.Equal(kp.H) {
		t.Fatal("loaded public h differs")
	}

	loadedPriv, err := LoadPrivate(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !loadedPriv.F.Equal(kp.F) || !loadedPriv.G.Equal(kp.G) || !loadedPriv.H.Equal(kp.H) {
		t.Fatal("loaded private key differs from the saved one")
	}
	// fp and fq are re-derived, not stored; they must match anyway.
	if !loadedPriv.Fp.Equal(kp.Fp) || !loadedPriv.Fq.Equal(kp.Fq) {
		t.Fatal("re-derived inverses differ")
	}

	// A loaded public half must be able to encrypt, and the loaded
	// private half to decrypt the result.
	m := ntru.NewPoly([]int64{1, 0, 2, 1})
	prng, err := utils.NewKeyedPRNG([]byte{9})
	if err != nil {
		t.Fatal(err)
	}
	e, err := ntru.Encrypt(m, loadedPub, ntru.NewTrinarySampler(prng))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ntru.Decrypt(e, loadedPriv); err != nil {
		t.Fatal(err)
	}
}

func TestLoadPrivateRejectsTamperedH(t *testing.T) {
	kp := testKeyPair(t, 2)
	dir := t.TempDir()
	_, priv := FromKeyPair(kp)
	priv.H[0] = (priv.H[0] + 1) % kp.Par.Q
	if err := SavePrivate(priv, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPrivate(dir); !errors.Is(err, ntru.ErrInvalidKey) {
		t.Fatalf("tampered h loaded: %v", err)
	}
}

func TestLoadRejectsVersionMismatch(t *testing.T) {
	kp := testKeyPair(t, 3)
	dir := t.TempDir()
	pub, priv := FromKeyPair(kp)
	pub.Version = "ntru-encrypt/v0"
	priv.Version = "ntru-encrypt/v0"
	if err := SavePublic(pub, dir); err != nil {
		t.Fatal(err)
	}
	if err := SavePrivate(priv, dir); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPublic(dir); !errors.Is(err, ntru.ErrInvalidKey) {
		t.Fatalf("stale public version loaded: %v", err)
	}
	if _, err := LoadPrivate(dir); !errors.Is(err, ntru.ErrInvalidKey) {
		t.Fatalf("stale private version loaded: %v", err)
	}
}

func TestCiphertextRoundTrip(t *testing.T) {
	dir := t.TempDir()
	ct := &Ciphertext{Version: Version, N: 11, Q: 32, E: []int64{3, 0, 31, 7}, MsgBytes: 1}
	if err := SaveCiphertext(ct, dir); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadCiphertext(dir)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.N != ct.N || loaded.Q != ct.Q || loaded.MsgBytes != ct.MsgBytes {
		t.Fatalf("loaded ciphertext metadata %+v, want %+v", loaded, ct)
	}
	for i := range ct.E {
		if loaded.E[i] != ct.E[i] {
			t.Fatalf("coefficient %d = %d, want %d", i, loaded.E[i], ct.E[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadPublic(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing blob returned %v, want fs not-exist", err)
	}
	// A truncated blob is a decode error, not a silent zero key.
	if err := os.WriteFile(filepath.Join(dir, "public.json"), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPublic(dir); err == nil {
		t.Fatal("truncated blob loaded without error")
	}
}
