// Package ntru implements the NTRU public-key cryptosystem over the
// polynomial ring Z[x]/(x^N - 1) in pure Go: exact ring arithmetic,
// modular polynomial inversion, randomized trinary key generation and
// the encrypt/decrypt transforms, including the additive homomorphism
// of ciphertexts under a shared public key.
//
// Every transform can also report the intermediate quotient/remainder
// pair of each reduction it performs, so that an external
// arithmetic-circuit verifier can re-check the division by a single
// multiplication instead of re-deriving it. The witness package
// restates these traces in the fixed-length layout that verifier
// consumes.
package ntru
