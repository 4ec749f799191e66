package service

import (
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// ChaCha20Poly1305Cipher implements the AEAD interface using ChaCha20-Poly1305.
//
// ChaCha20-Poly1305 combines the ChaCha20 stream cipher with the Poly1305 MAC
// for authentication. It's particularly efficient on platforms without
// hardware AES acceleration and its software implementation is constant-time.
type ChaCha20Poly1305Cipher struct {
	aead   cipher.AEAD
	params tunnelDomain.Params
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
//
// The key must be exactly 32 bytes (256 bits); returns ErrInvalidKeyLength
// otherwise.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	params, err := tunnelDomain.ChaCha20.Params()
	if err != nil {
		return nil, err
	}
	if len(key) != params.KeySize {
		return nil, tunnelDomain.ErrInvalidKeyLength
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tunnelDomain.ErrCipherFailure, err)
	}

	return &ChaCha20Poly1305Cipher{aead: aead, params: params}, nil
}

// Seal encrypts plaintext using ChaCha20-Poly1305 and returns the ciphertext
// with a detached 16-byte Poly1305 tag.
//
// The nonce must be exactly 12 bytes and must never repeat under the same
// key; a wrong-sized nonce surfaces as ErrCipherFailure.
func (c *ChaCha20Poly1305Cipher) Seal(plaintext, nonce, aad []byte) (ciphertext, tag []byte, err error) {
	if len(nonce) != c.params.NonceSize {
		return nil, nil, fmt.Errorf(
			"%w: nonce must be %d bytes, got %d",
			tunnelDomain.ErrCipherFailure,
			c.params.NonceSize,
			len(nonce),
		)
	}

	sealed := c.aead.Seal(nil, nonce, plaintext, aad)
	boundary := len(sealed) - c.params.TagSize
	return sealed[:boundary], sealed[boundary:], nil
}

// Open verifies the detached Poly1305 tag and decrypts the ciphertext.
//
// The same nonce and AAD used during sealing must be provided. Any
// verification failure is reported as the single opaque
// ErrAuthenticationFailed with no partial plaintext.
func (c *ChaCha20Poly1305Cipher) Open(ciphertext, tag, nonce, aad []byte) ([]byte, error) {
	if len(nonce) != c.params.NonceSize || len(tag) != c.params.TagSize {
		return nil, tunnelDomain.ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	// A non-nil destination keeps empty plaintexts as empty slices
	// rather than nil.
	plaintext, err := c.aead.Open(make([]byte, 0, len(ciphertext)), nonce, sealed, aad)
	if err != nil {
		return nil, tunnelDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}
