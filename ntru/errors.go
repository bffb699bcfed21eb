package ntru

import (
	"errors"
	"fmt"
)

// ErrMessageTooLong is returned when a plaintext has more than N
// coefficients.
var ErrMessageTooLong = errors.New("ntru: message too long for ring rank")

// ErrMalformedInput is returned when an input vector violates a fixed
// length or coefficient-range requirement.
var ErrMalformedInput = errors.New("ntru: malformed input")

// ErrNotInvertible is returned when a polynomial has no inverse modulo
// the target modulus. During key search this is an expected, frequent
// outcome that drives the retry loop.
var ErrNotInvertible = errors.New("ntru: polynomial not invertible")

// ErrKeySearchExhausted is returned when the bounded private-key search
// runs out of attempts. It is fatal: the chosen N/df pairing yields too
// few invertible trinary polynomials.
var ErrKeySearchExhausted = errors.New("ntru: key search budget exhausted")

// ErrKeygenCancelled is returned when the caller cancels key generation
// at an attempt boundary.
var ErrKeygenCancelled = errors.New("ntru: key generation cancelled")

// ErrInvalidKey is returned when an operation requires key material
// that has not been set, or when a loaded key fails coherency
// verification.
var ErrInvalidKey = errors.New("ntru: invalid key")

// DivisionError reports a failed polynomial division: the divisor was
// the zero polynomial, or its leading coefficient has no inverse modulo
// the modulus (possible when the modulus is composite).
type DivisionError struct {
	Reason  string
	Modulus int64
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("ntru: division error mod %d: %s", e.Modulus, e.Reason)
}
