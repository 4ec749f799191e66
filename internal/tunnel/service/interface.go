// Package service provides the cryptographic services for the secure tunnel.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305), nonce generation,
// and the envelope encryption service that frames sealed payloads for the wire.
package service

import (
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data
// with a detached authentication tag.
//
// Implementations are stateless and safe for concurrent use. The nonce is
// supplied by the caller so nonce generation stays a separate concern (see
// NonceSource); implementations must reject nonces of the wrong length.
type AEAD interface {
	// Seal encrypts plaintext under the given nonce and optional AAD,
	// returning the ciphertext and the detached authentication tag.
	Seal(plaintext, nonce, aad []byte) (ciphertext, tag []byte, err error)

	// Open verifies the tag and decrypts the ciphertext using the provided
	// nonce and AAD. Returns ErrAuthenticationFailed on tag mismatch.
	Open(ciphertext, tag, nonce, aad []byte) ([]byte, error)
}

// NonceSource produces nonces for envelope encryption.
//
// Implementations must be safe for concurrent use and must return values that
// are statistically independent across calls and goroutines. The service does
// not track used nonces: uniqueness relies on the birthday bound of the
// 96-bit random nonce space over the key's practical lifetime.
type NonceSource interface {
	// Nonce returns a fresh nonce of the algorithm's nonce size.
	Nonce() ([]byte, error)
}

// EnvelopeService defines the encrypt/decrypt operations over wire-encoded envelopes.
//
// Implementations are immutable after construction: one key, one algorithm,
// for the whole lifetime. Both operations are pure, bounded-time CPU work
// over in-memory bytes and may be invoked concurrently without locking.
type EnvelopeService interface {
	// Encrypt seals plaintext into a wire-encoded envelope (nonce||tag||ciphertext).
	Encrypt(plaintext []byte) ([]byte, error)

	// Decrypt parses a wire-encoded envelope and returns the original plaintext.
	// Fails with ErrTruncatedEnvelope on malformed input and with a single
	// opaque ErrAuthenticationFailed when the tag does not verify.
	Decrypt(wire []byte) ([]byte, error)

	// Algorithm returns the algorithm the service was constructed with.
	Algorithm() tunnelDomain.Algorithm
}
