package domain

import (
	"time"
)

// Envelope represents the result of one envelope encryption operation.
//
// It is a transient value: built by the encryption service, immediately
// serialized to wire bytes, and discarded. On the decrypt path it is
// reconstructed from wire bytes and consumed by the opening step.
//
// Invariant: Nonce and Tag always have the lengths mandated by the algorithm
// in force for the service that produced the envelope. Ciphertext has the
// same length as the original plaintext for the supported AEAD modes.
type Envelope struct {
	// Nonce is the random value used for this encryption (NonceSize bytes).
	Nonce []byte
	// Tag is the detached authentication tag (TagSize bytes).
	Tag []byte
	// Ciphertext is the encrypted payload, same length as the plaintext.
	Ciphertext []byte
	// CreatedAt records when the envelope was captured. Advisory metadata
	// only: it is not part of the wire format and is never used in any
	// authentication decision.
	CreatedAt time.Time
}

// Encode serializes the envelope to its wire representation.
//
// Wire layout (the contract external systems must match to interoperate):
//
//	offset 0              : nonce (NonceSize bytes)
//	offset NonceSize      : authentication tag (TagSize bytes)
//	offset NonceSize+Tag  : ciphertext (N bytes, N == plaintext length)
//
// There are no length prefixes: both sides derive the fixed offsets from the
// algorithm parameters. CreatedAt is not encoded.
func (e Envelope) Encode() []byte {
	wire := make([]byte, 0, len(e.Nonce)+len(e.Tag)+len(e.Ciphertext))
	wire = append(wire, e.Nonce...)
	wire = append(wire, e.Tag...)
	wire = append(wire, e.Ciphertext...)
	return wire
}

// DecodeEnvelope parses wire bytes into an Envelope using the algorithm's
// fixed parameter sizes.
//
// The first NonceSize bytes are the nonce, the next TagSize bytes the tag,
// and the remainder (possibly empty) the ciphertext. Returns
// ErrTruncatedEnvelope when the input is shorter than NonceSize+TagSize.
//
// The slices in the returned Envelope are copies, so the caller's wire buffer
// may be reused. CreatedAt is set to the decode time and carries no
// authenticated meaning.
func DecodeEnvelope(wire []byte, params Params) (Envelope, error) {
	if len(wire) < params.Overhead() {
		return Envelope{}, ErrTruncatedEnvelope
	}

	nonce := make([]byte, params.NonceSize)
	copy(nonce, wire[:params.NonceSize])

	tag := make([]byte, params.TagSize)
	copy(tag, wire[params.NonceSize:params.Overhead()])

	ciphertext := make([]byte, len(wire)-params.Overhead())
	copy(ciphertext, wire[params.Overhead():])

	return Envelope{
		Nonce:      nonce,
		Tag:        tag,
		Ciphertext: ciphertext,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
