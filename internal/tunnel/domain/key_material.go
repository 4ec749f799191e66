package domain

import (
	"encoding/base64"
	"fmt"
	"os"
)

// KeyMaterial wraps the raw symmetric key used for envelope encryption.
//
// The wrapper enforces the algorithm's key length at construction time and is
// immutable afterwards. The raw bytes are exposed only to the AEAD sealing and
// opening step via Bytes; they must never be copied into log output, error
// messages, or serialized structures.
//
// Key strength and entropy are the caller's responsibility: the wrapper
// validates length only. Keys should be generated with a cryptographically
// secure random source (the generate-key CLI command does this).
//
// A KeyMaterial is owned by exactly one EnvelopeService for its lifetime.
// Rotating keys means constructing a new service with new KeyMaterial.
type KeyMaterial struct {
	key []byte
}

// NewKeyMaterial creates KeyMaterial from raw key bytes for the given algorithm.
//
// The raw bytes are copied, so the caller may (and should) zero its own copy
// after construction. Returns ErrInvalidKeyLength if the byte count does not
// equal the algorithm's mandated key size.
func NewKeyMaterial(raw []byte, alg Algorithm) (*KeyMaterial, error) {
	params, err := alg.Params()
	if err != nil {
		return nil, err
	}
	if len(raw) != params.KeySize {
		return nil, fmt.Errorf(
			"%w: %s requires %d bytes, got %d",
			ErrInvalidKeyLength,
			alg,
			params.KeySize,
			len(raw),
		)
	}

	key := make([]byte, len(raw))
	copy(key, raw)
	return &KeyMaterial{key: key}, nil
}

// Bytes returns the raw key bytes for use by the AEAD layer.
// The returned slice aliases the internal key; callers must not modify or retain it.
func (k *KeyMaterial) Bytes() []byte {
	return k.key
}

// Len returns the key length in bytes.
func (k *KeyMaterial) Len() int {
	return len(k.key)
}

// Close zeroes the key bytes. The KeyMaterial must not be used afterwards.
// Should be called during application shutdown to clear the key from memory.
func (k *KeyMaterial) Close() {
	Zero(k.key)
	k.key = nil
}

// LoadKeyMaterialFromEnv loads the tunnel key from the TUNNEL_KEY environment variable.
//
// The variable must contain the base64-encoded raw key (standard encoding),
// exactly the algorithm's key size when decoded. The temporary decoded buffer
// is zeroed after the KeyMaterial takes its own copy.
//
// This loading path is intended for development and test environments; in
// production the key should be KMS-wrapped and unwrapped through the keeper
// service instead.
//
// Returns:
//   - ErrTunnelKeyNotSet if TUNNEL_KEY is not configured
//   - ErrInvalidTunnelKeyBase64 if base64 decoding fails
//   - ErrInvalidKeyLength if the decoded key has the wrong size
func LoadKeyMaterialFromEnv(alg Algorithm) (*KeyMaterial, error) {
	raw := os.Getenv("TUNNEL_KEY")
	if raw == "" {
		return nil, ErrTunnelKeyNotSet
	}

	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTunnelKeyBase64, err)
	}
	defer Zero(key)

	return NewKeyMaterial(key, alg)
}
