package service

import (
	"crypto/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
)

func newTestService(t *testing.T, alg tunnelDomain.Algorithm) EnvelopeService {
	t.Helper()

	raw := make([]byte, 32)
	_, err := rand.Read(raw)
	require.NoError(t, err)

	key, err := tunnelDomain.NewKeyMaterial(raw, alg)
	require.NoError(t, err)

	svc, err := NewEnvelopeService(key, alg)
	require.NoError(t, err)
	return svc
}

func TestNewEnvelopeService(t *testing.T) {
	t.Run("constructs with both supported algorithms", func(t *testing.T) {
		for _, alg := range []tunnelDomain.Algorithm{tunnelDomain.AESGCM, tunnelDomain.ChaCha20} {
			svc := newTestService(t, alg)
			assert.Equal(t, alg, svc.Algorithm())
		}
	})

	t.Run("rejects 16-byte key", func(t *testing.T) {
		_, err := tunnelDomain.NewKeyMaterial(make([]byte, 16), tunnelDomain.AESGCM)
		assert.ErrorIs(t, err, tunnelDomain.ErrInvalidKeyLength)
	})
}

func TestEnvelopeService_RoundTrip(t *testing.T) {
	for _, alg := range []tunnelDomain.Algorithm{tunnelDomain.AESGCM, tunnelDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			svc := newTestService(t, alg)

			plaintexts := [][]byte{
				{},
				[]byte("a"),
				[]byte("hello, tunnel"),
				make([]byte, 4096),
			}
			for _, plaintext := range plaintexts {
				wire, err := svc.Encrypt(plaintext)
				require.NoError(t, err)
				assert.Len(t, wire, 28+len(plaintext))

				decrypted, err := svc.Decrypt(wire)
				require.NoError(t, err)
				assert.NotNil(t, decrypted)
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestEnvelopeService_KnownScenario(t *testing.T) {
	// 32 zero bytes, AES-256-GCM, "hello": the envelope is 12+16+5 = 33 bytes.
	key, err := tunnelDomain.NewKeyMaterial(make([]byte, 32), tunnelDomain.AESGCM)
	require.NoError(t, err)

	svc, err := NewEnvelopeService(key, tunnelDomain.AESGCM)
	require.NoError(t, err)

	wire, err := svc.Encrypt([]byte("hello"))
	require.NoError(t, err)
	assert.Len(t, wire, 33)

	plaintext, err := svc.Decrypt(wire)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), plaintext)
}

func TestEnvelopeService_NonceFreshness(t *testing.T) {
	svc := newTestService(t, tunnelDomain.AESGCM)
	plaintext := []byte("same plaintext, same key")

	first, err := svc.Encrypt(plaintext)
	require.NoError(t, err)
	second, err := svc.Encrypt(plaintext)
	require.NoError(t, err)

	// Fresh nonces make the wire bytes differ even for identical input.
	assert.NotEqual(t, first, second)

	for _, wire := range [][]byte{first, second} {
		decrypted, err := svc.Decrypt(wire)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestEnvelopeService_TamperDetection(t *testing.T) {
	for _, alg := range []tunnelDomain.Algorithm{tunnelDomain.AESGCM, tunnelDomain.ChaCha20} {
		t.Run(string(alg), func(t *testing.T) {
			svc := newTestService(t, alg)

			wire, err := svc.Encrypt([]byte("integrity matters"))
			require.NoError(t, err)

			// Flipping any single bit anywhere in the envelope must fail
			// authentication, whether it lands in nonce, tag, or ciphertext.
			for i := range wire {
				for bit := 0; bit < 8; bit++ {
					tampered := make([]byte, len(wire))
					copy(tampered, wire)
					tampered[i] ^= 1 << bit

					_, err := svc.Decrypt(tampered)
					assert.ErrorIs(t, err, tunnelDomain.ErrAuthenticationFailed,
						"byte %d bit %d", i, bit)
				}
			}
		})
	}
}

func TestEnvelopeService_WrongKey(t *testing.T) {
	first := newTestService(t, tunnelDomain.AESGCM)
	second := newTestService(t, tunnelDomain.AESGCM)

	wire, err := first.Encrypt([]byte("for the first key only"))
	require.NoError(t, err)

	_, err = second.Decrypt(wire)
	assert.ErrorIs(t, err, tunnelDomain.ErrAuthenticationFailed)
}

func TestEnvelopeService_TruncatedInput(t *testing.T) {
	svc := newTestService(t, tunnelDomain.AESGCM)

	for _, size := range []int{0, 1, 12, 27} {
		_, err := svc.Decrypt(make([]byte, size))
		assert.ErrorIs(t, err, tunnelDomain.ErrTruncatedEnvelope, "size %d", size)
	}
}

func TestEnvelopeService_ConcurrentUse(t *testing.T) {
	svc := newTestService(t, tunnelDomain.ChaCha20)

	const goroutines = 16
	const iterations = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			plaintext := []byte{byte(id), 0xca, 0xfe}
			for i := 0; i < iterations; i++ {
				wire, err := svc.Encrypt(plaintext)
				assert.NoError(t, err)

				decrypted, err := svc.Decrypt(wire)
				assert.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			}
		}(g)
	}
	wg.Wait()
}
