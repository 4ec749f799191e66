package domain

import (
	"github.com/MehanikTMYT/chatbot/internal/errors"
)

// Tunnel encryption error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors
// to provide context for envelope encryption failures. All errors are mapped
// to appropriate HTTP status codes by the error handling layer. None of them
// ever carry raw key material or plaintext in their messages.
var (
	// ErrUnsupportedAlgorithm indicates the requested encryption algorithm is not supported.
	//
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidInput, "unsupported algorithm")

	// ErrInvalidKeyLength indicates the supplied key does not match the
	// algorithm's mandated key size (32 bytes for both supported algorithms).
	// This is a construction-time failure: the service cannot be built with
	// a wrong-sized key.
	ErrInvalidKeyLength = errors.Wrap(errors.ErrInvalidInput, "invalid key length")

	// ErrTruncatedEnvelope indicates the wire bytes are shorter than the
	// minimum envelope framing (nonce plus authentication tag). Always a
	// caller input error; never retried.
	ErrTruncatedEnvelope = errors.Wrap(errors.ErrInvalidInput, "truncated envelope")

	// ErrAuthenticationFailed indicates the envelope's authentication tag did
	// not verify during decryption.
	//
	// This error is deliberately a single opaque failure. It does not
	// distinguish a wrong key from tampered ciphertext from a corrupted tag,
	// so callers cannot be used as a verification oracle.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "envelope authentication failed")

	// ErrCipherFailure indicates the underlying AEAD primitive rejected its
	// inputs. Under correct key and nonce invariants this path is unreachable;
	// if observed it signals an internal defect rather than bad caller input.
	ErrCipherFailure = errors.Wrap(errors.ErrInternal, "cipher failure")

	// ErrTunnelKeyNotSet indicates the TUNNEL_KEY environment variable is not configured.
	ErrTunnelKeyNotSet = errors.Wrap(errors.ErrInvalidInput, "TUNNEL_KEY not set")

	// ErrInvalidTunnelKeyBase64 indicates the tunnel key is not valid base64.
	ErrInvalidTunnelKeyBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid tunnel key base64")
)
