package codec

import (
	"errors"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"

	"NTRU-Encrypt/ntru"
)

func TestBitsRoundTrip(t *testing.T) {
	const s = "Hello World"
	bits := BitsFromString(s)
	if len(bits) != 8*len(s) {
		t.Fatalf("bit vector length %d, want %d", len(bits), 8*len(s))
	}
	// 'H' = 0x48 = 01001000, MSB first.
	want := []int64{0, 1, 0, 0, 1, 0, 0, 0}
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d of 'H' = %d, want %d", i, bits[i], want[i])
		}
	}
	back, err := StringFromBits(bits)
	if err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("StringFromBits = %q, want %q", back, s)
	}
}

func TestStringFromBitsRejectsBadInput(t *testing.T) {
	if _, err := StringFromBits([]int64{1, 0, 1}); err == nil {
		t.Fatal("length not a multiple of 8 accepted")
	}
	if _, err := StringFromBits([]int64{0, 0, 0, 0, 0, 0, 0, 2}); err == nil {
		t.Fatal("non-bit coefficient accepted")
	}
}

func TestEncodeStringTooLong(t *testing.T) {
	// 21 bytes need 168 bits, one more than the default rank.
	long := "a string of 21 bytes."
	if _, err := EncodeString(long, ntru.DefaultN); !errors.Is(err, ntru.ErrMessageTooLong) {
		t.Fatalf("EncodeString returned %v, want ErrMessageTooLong", err)
	}
}

// The fixed-string round trip: encode "Hello World" to bits, encrypt,
// decrypt, decode. Retried across key seeds because decryption failure
// is probabilistic.
func TestHelloWorldRoundTrip(t *testing.T) {
	const s = "Hello World"
	par := ntru.DefaultParams()
	m, err := EncodeString(s, par.N)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		prng, err := utils.NewKeyedPRNG([]byte{byte(70 + i)})
		if err != nil {
			t.Fatal(err)
		}
		smp := ntru.NewTrinarySampler(prng)
		kp, err := ntru.GenerateKeyPair(par, ntru.KeygenOpts{}, smp)
		if err != nil {
			t.Fatal(err)
		}
		e, err := ntru.Encrypt(m, kp, smp)
		if err != nil {
			t.Fatal(err)
		}
		c, err := ntru.Decrypt(e, kp)
		if err != nil {
			t.Fatal(err)
		}
		got, err := DecodeString(c, len(s))
		if err == nil && got == s {
			return
		}
		t.Logf("round trip attempt %d recovered %q (err %v), retrying", i+1, got, err)
	}
	t.Fatal("string round trip failed on all attempts")
}
