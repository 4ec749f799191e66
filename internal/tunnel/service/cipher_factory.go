package service

import (
	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// NewCipher creates an AEAD cipher instance for the specified algorithm.
//
// The dispatch is an exhaustive switch over the closed Algorithm enumeration,
// kept adjacent to the parameter registry so adding an algorithm touches both
// or neither. Returns ErrInvalidKeyLength for a wrong-sized key and
// ErrUnsupportedAlgorithm for an unknown algorithm.
func NewCipher(key []byte, alg tunnelDomain.Algorithm) (AEAD, error) {
	params, err := alg.Params()
	if err != nil {
		return nil, err
	}
	if len(key) != params.KeySize {
		return nil, tunnelDomain.ErrInvalidKeyLength
	}

	switch alg {
	case tunnelDomain.AESGCM:
		return NewAESGCM(key)
	case tunnelDomain.ChaCha20:
		return NewChaCha20Poly1305(key)
	default:
		return nil, tunnelDomain.ErrUnsupportedAlgorithm
	}
}
