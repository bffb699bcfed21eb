// Package codec provides the text framing convenience transforms:
// bit-packing a byte string into a binary coefficient vector and back.
// Framing is not part of the cryptographic core, but it round-trips
// exactly for inputs whose bit-length fits the ring rank.
package codec

import (
	"fmt"

	"NTRU-Encrypt/ntru"
)

// BitsFromString returns the MSB-first bits of each byte of s as 0/1
// coefficients.
func BitsFromString(s string) []int64 {
	out := make([]int64, 8*len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		for j := 0; j < 8; j++ {
			out[8*i+j] = int64(b>>(7-j)) & 1
		}
	}
	return out
}

// StringFromBits reassembles bytes from MSB-first bits; the length must
// be a multiple of 8.
func StringFromBits(bits []int64) (string, error) {
	if len(bits)%8 != 0 {
		return "", fmt.Errorf("codec: bit vector length %d not a multiple of 8", len(bits))
	}
	out := make([]byte, len(bits)/8)
	for i := range out {
		var b byte
		for j := 0; j < 8; j++ {
			v := bits[8*i+j]
			if v != 0 && v != 1 {
				return "", fmt.Errorf("codec: coefficient %d at index %d is not a bit", v, 8*i+j)
			}
			b = b<<1 | byte(v)
		}
		out[i] = b
	}
	return string(out), nil
}

// EncodeString frames s as a plaintext polynomial for a ring of rank N.
// It fails when the bit-length of s exceeds N.
func EncodeString(s string, N int) (ntru.Poly, error) {
	if 8*len(s) > N {
		return ntru.Poly{}, fmt.Errorf("codec: %d bits exceed ring rank %d: %w", 8*len(s), N, ntru.ErrMessageTooLong)
	}
	return ntru.NewPoly(BitsFromString(s)), nil
}

// DecodeString recovers a string of byteLen bytes from a decrypted
// polynomial, re-padding the trailing zero coefficients that
// canonicalization trimmed.
func DecodeString(p ntru.Poly, byteLen int) (string, error) {
	bits := make([]int64, 8*byteLen)
	if len(p.Coeffs) > len(bits) {
		return "", fmt.Errorf("codec: polynomial has %d coefficients, expected at most %d", len(p.Coeffs), len(bits))
	}
	copy(bits, p.Coeffs)
	return StringFromBits(bits)
}
