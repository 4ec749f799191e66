package service

import (
	"time"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

// envelopeService implements EnvelopeService.
//
// The service owns one KeyMaterial and one Algorithm for its entire lifetime
// and holds no other state: encrypt and decrypt are independent operations
// with no ordering between calls, so a single instance can be shared freely
// across goroutines without locking. Rotating keys or algorithms means
// constructing a new service, which keeps it unambiguous which key produced
// a given envelope while a service reference is shared.
//
// No associated data is bound during sealing: envelopes are authenticated
// standalone, not tied to any surrounding context.
type envelopeService struct {
	alg    tunnelDomain.Algorithm
	params tunnelDomain.Params
	cipher AEAD
	nonces NonceSource
}

// NewEnvelopeService creates an EnvelopeService for the given key and algorithm.
//
// The service takes its own reference to the KeyMaterial; the caller remains
// responsible for zeroing it at shutdown. Returns ErrInvalidKeyLength if the
// key does not match the algorithm's key size and ErrUnsupportedAlgorithm
// for an unknown algorithm.
func NewEnvelopeService(
	key *tunnelDomain.KeyMaterial,
	alg tunnelDomain.Algorithm,
) (EnvelopeService, error) {
	params, err := alg.Params()
	if err != nil {
		return nil, err
	}

	cipher, err := NewCipher(key.Bytes(), alg)
	if err != nil {
		return nil, err
	}

	return &envelopeService{
		alg:    alg,
		params: params,
		cipher: cipher,
		nonces: NewRandomNonceSource(params.NonceSize),
	}, nil
}

// Encrypt seals plaintext into a wire-encoded envelope.
//
// A fresh random nonce is generated for every call, so encrypting the same
// plaintext twice produces different wire bytes that both decrypt correctly.
// The returned bytes are laid out as nonce || tag || ciphertext and are
// always params.Overhead() bytes longer than the plaintext. The empty
// plaintext is valid and produces a minimum-length envelope.
//
// The only side effect is consuming entropy from the secure random source.
// Failures of the underlying primitive surface as ErrCipherFailure; they are
// unreachable under the key and nonce invariants enforced at construction.
func (s *envelopeService) Encrypt(plaintext []byte) ([]byte, error) {
	nonce, err := s.nonces.Nonce()
	if err != nil {
		return nil, err
	}

	ciphertext, tag, err := s.cipher.Seal(plaintext, nonce, nil)
	if err != nil {
		return nil, err
	}

	env := tunnelDomain.Envelope{
		Nonce:      nonce,
		Tag:        tag,
		Ciphertext: ciphertext,
		CreatedAt:  time.Now().UTC(),
	}
	return env.Encode(), nil
}

// Decrypt opens a wire-encoded envelope and returns the original plaintext.
//
// Malformed input shorter than the fixed framing fails with
// ErrTruncatedEnvelope. A tag that does not verify fails with the single
// opaque ErrAuthenticationFailed; wrong key, tampered ciphertext, and a
// corrupted tag are deliberately indistinguishable, and no partial plaintext
// is ever returned. Retrying decryption of the same bytes can never succeed,
// so no retry is attempted here.
//
// On success the exact original plaintext bytes are returned with no padding
// artifacts.
func (s *envelopeService) Decrypt(wire []byte) ([]byte, error) {
	env, err := tunnelDomain.DecodeEnvelope(wire, s.params)
	if err != nil {
		return nil, err
	}

	return s.cipher.Open(env.Ciphertext, env.Tag, env.Nonce, nil)
}

// Algorithm returns the algorithm the service was constructed with.
func (s *envelopeService) Algorithm() tunnelDomain.Algorithm {
	return s.alg
}
