// Package domain defines the core domain models for the secure tunnel:
// the supported AEAD algorithms, validated key material, and the encrypted
// envelope with its wire codec.
package domain

import (
	"fmt"
)

// Algorithm represents the AEAD algorithm used for envelope encryption.
//
// The enumeration is closed: the service supports exactly AES-256-GCM and
// ChaCha20-Poly1305, both providing Authenticated Encryption with Associated
// Data. The algorithm is chosen once at service construction and never changes
// for the lifetime of a service instance.
//
// Algorithm selection guidelines:
//   - Use AESGCM on modern CPUs with AES-NI hardware acceleration
//   - Use ChaCha20 on mobile devices or systems without AES-NI
//   - Both provide equivalent 256-bit security when used correctly
type Algorithm string

const (
	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Hardware acceleration on modern CPUs
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	//
	// Key features:
	//   - 256-bit key size
	//   - 12-byte nonce (96 bits)
	//   - 16-byte authentication tag
	//   - Constant-time software implementation
	ChaCha20 Algorithm = "chacha20-poly1305"
)

// Params holds the fixed cipher parameters for an algorithm. It is the single
// source of truth for key, nonce, and tag sizes: the envelope codec, the nonce
// source, and key validation all derive their lengths from here.
type Params struct {
	// KeySize is the required key length in bytes.
	KeySize int
	// NonceSize is the nonce length in bytes.
	NonceSize int
	// TagSize is the authentication tag length in bytes.
	TagSize int
}

// Overhead returns the number of non-ciphertext bytes an encoded envelope
// carries (nonce plus tag). An encoded envelope is always Overhead() bytes
// longer than its plaintext.
func (p Params) Overhead() int {
	return p.NonceSize + p.TagSize
}

// Params returns the cipher parameters for the algorithm.
//
// The switch is intentionally exhaustive over the closed enumeration: adding
// a new algorithm requires adding both the constant and its entry here, which
// keeps the enumeration and the parameter table from drifting apart.
// Returns ErrUnsupportedAlgorithm for unknown values.
func (a Algorithm) Params() (Params, error) {
	switch a {
	case AESGCM:
		return Params{KeySize: 32, NonceSize: 12, TagSize: 16}, nil
	case ChaCha20:
		return Params{KeySize: 32, NonceSize: 12, TagSize: 16}, nil
	default:
		return Params{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, string(a))
	}
}

// ParseAlgorithm converts a string into an Algorithm.
// Returns ErrUnsupportedAlgorithm if the value is not part of the enumeration.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AESGCM:
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
}
