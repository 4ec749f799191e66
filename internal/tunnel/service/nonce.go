package service

import (
	"crypto/rand"
	"fmt"
)

// RandomNonceSource implements NonceSource using crypto/rand.
//
// Each call draws a fresh nonce of the configured size from the operating
// system's secure random source. crypto/rand is safe for concurrent use, so
// a single RandomNonceSource may be shared across goroutines.
//
// The source is deliberately stateless: it keeps no record of generated
// nonces and no per-key counter. See the EnvelopeService documentation for
// the birthday-bound reasoning behind this trade-off.
type RandomNonceSource struct {
	size int
}

// NewRandomNonceSource creates a nonce source producing nonces of the given size in bytes.
func NewRandomNonceSource(size int) *RandomNonceSource {
	return &RandomNonceSource{size: size}
}

// Nonce returns a fresh random nonce of exactly the configured size.
func (r *RandomNonceSource) Nonce() ([]byte, error) {
	nonce := make([]byte, r.size)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	return nonce, nil
}
