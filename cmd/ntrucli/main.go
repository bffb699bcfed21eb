package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"NTRU-Encrypt/codec"
	"NTRU-Encrypt/ntru"
	"NTRU-Encrypt/ntru/keys"
	"NTRU-Encrypt/witness"
)

func usage() {
	fmt.Println(`usage: ntrucli <gen|encrypt|decrypt> [options]

Subcommands:
  gen      Generate an NTRU keypair and write <dir>/{public,private}.json
           Flags:
             -n      <int>    ring rank N               (default: 167)
             -q      <int>    large modulus, power of 2 (default: 128)
             -df     <int>    private-key weight        (default: 61)
             -dg     <int>    public-salt weight        (default: 20)
             -dr     <int>    randomness weight         (default: 18)
             -trials <int>    max key-search attempts   (default: 100)
             -dir    <path>   key directory             (default: ntru_keys)

  encrypt  Encrypt a text message under <dir>/public.json and write
           <dir>/ciphertext.json plus <dir>/encrypt_witness.json
           Flags:
             -m      <string> message to encrypt (required; 8*len <= N)
             -dir    <path>   key directory (default: ntru_keys)

  decrypt  Decrypt <dir>/ciphertext.json with <dir>/private.json and
           print the recovered text
           Flags:
             -dir    <path>   key directory (default: ntru_keys)

  homadd   Add two stored ciphertexts mod q; decrypting the sum yields
           the coefficientwise sum of the plaintexts mod p
           Flags:
             -a      <path>   first ciphertext JSON  (required)
             -b      <path>   second ciphertext JSON (required)
             -out    <path>   output ciphertext JSON (required)`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	var err error
	switch os.Args[1] {
	case "gen":
		err = runGen(os.Args[2:])
	case "encrypt":
		err = runEncrypt(os.Args[2:])
	case "decrypt":
		err = runDecrypt(os.Args[2:])
	case "homadd":
		err = runHomAdd(os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "ntrucli:", err)
		os.Exit(1)
	}
}

func runGen(args []string) error {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	n := fs.Int("n", ntru.DefaultN, "ring rank N")
	q := fs.Int64("q", ntru.DefaultQ, "large modulus (power of two)")
	df := fs.Int("df", ntru.DefaultDf, "private-key weight")
	dg := fs.Int("dg", ntru.DefaultDg, "public-salt weight")
	dr := fs.Int("dr", ntru.DefaultDr, "randomness weight")
	trials := fs.Int("trials", ntru.DefaultMaxKeyTrials, "max key-search attempts")
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	fs.Parse(args)

	par, err := ntru.NewParams(*n, ntru.DefaultP, *q, *df, *dg, *dr)
	if err != nil {
		return err
	}
	smp, err := ntru.NewSecureSampler()
	if err != nil {
		return err
	}
	kp, err := ntru.GenerateKeyPair(par, ntru.KeygenOpts{MaxTrials: *trials}, smp)
	if err != nil {
		return err
	}
	pub, priv := keys.FromKeyPair(kp)
	if err := keys.SavePublic(pub, *dir); err != nil {
		return err
	}
	if err := keys.SavePrivate(priv, *dir); err != nil {
		return err
	}
	fmt.Printf("wrote %s/public.json and %s/private.json (N=%d q=%d)\n", *dir, *dir, par.N, par.Q)
	return nil
}

func runEncrypt(args []string) error {
	fs := flag.NewFlagSet("encrypt", flag.ExitOnError)
	msg := fs.String("m", "", "message to encrypt")
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	fs.Parse(args)
	if *msg == "" {
		return fmt.Errorf("encrypt: -m is required")
	}

	kp, err := keys.LoadPublic(*dir)
	if err != nil {
		return err
	}
	m, err := codec.EncodeString(*msg, kp.Par.N)
	if err != nil {
		return err
	}
	smp, err := ntru.NewSecureSampler()
	if err != nil {
		return err
	}
	e, w, err := witness.BuildEncryption(m, kp, smp)
	if err != nil {
		return err
	}
	ct := &keys.Ciphertext{Version: keys.Version, N: kp.Par.N, Q: kp.Par.Q,
		E: append([]int64(nil), e.Coeffs...), MsgBytes: len(*msg)}
	if err := keys.SaveCiphertext(ct, *dir); err != nil {
		return err
	}
	if err := saveWitness(*dir, w); err != nil {
		return err
	}
	fmt.Printf("wrote %s/ciphertext.json (witness digest %x)\n", *dir, w.Digest())
	return nil
}

func saveWitness(dir string, w *witness.EncryptionWitness) error {
	b, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "encrypt_witness.json"), b, 0o644)
}

func runDecrypt(args []string) error {
	fs := flag.NewFlagSet("decrypt", flag.ExitOnError)
	dir := fs.String("dir", keys.DefaultDir, "key directory")
	fs.Parse(args)

	kp, err := keys.LoadPrivate(*dir)
	if err != nil {
		return err
	}
	ct, err := keys.LoadCiphertext(*dir)
	if err != nil {
		return err
	}
	c, err := ntru.Decrypt(ntru.NewPoly(ct.E), kp)
	if err != nil {
		return err
	}
	text, err := codec.DecodeString(c, ct.MsgBytes)
	if err != nil {
		// A homomorphic sum decrypts to mod-p coefficients, not bits.
		fmt.Printf("plaintext coefficients (not a bit vector): %v\n", c.Coeffs)
		return nil
	}
	fmt.Println(text)
	return nil
}

func runHomAdd(args []string) error {
	fs := flag.NewFlagSet("homadd", flag.ExitOnError)
	aPath := fs.String("a", "", "first ciphertext JSON")
	bPath := fs.String("b", "", "second ciphertext JSON")
	outPath := fs.String("out", "", "output ciphertext JSON")
	fs.Parse(args)
	if *aPath == "" || *bPath == "" || *outPath == "" {
		return fmt.Errorf("homadd: -a, -b and -out are required")
	}

	a, err := keys.LoadCiphertextFile(*aPath)
	if err != nil {
		return err
	}
	b, err := keys.LoadCiphertextFile(*bPath)
	if err != nil {
		return err
	}
	if a.N != b.N || a.Q != b.Q {
		return fmt.Errorf("homadd: ciphertext parameters differ (N=%d/%d, q=%d/%d)", a.N, b.N, a.Q, b.Q)
	}
	par := ntru.Params{N: a.N, Q: a.Q}
	sum := ntru.AddCiphertexts(ntru.NewPoly(a.E), ntru.NewPoly(b.E), par)
	msgBytes := a.MsgBytes
	if b.MsgBytes > msgBytes {
		msgBytes = b.MsgBytes
	}
	out := &keys.Ciphertext{Version: keys.Version, N: a.N, Q: a.Q,
		E: append([]int64(nil), sum.Coeffs...), MsgBytes: msgBytes}
	if err := keys.SaveCiphertextFile(out, *outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s (sum of %s and %s mod %d)\n", *outPath, *aPath, *bPath, a.Q)
	return nil
}
