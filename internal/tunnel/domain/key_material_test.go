package domain

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKeyMaterial(t *testing.T) {
	t.Run("accepts 32-byte key", func(t *testing.T) {
		raw := make([]byte, 32)
		_, err := rand.Read(raw)
		require.NoError(t, err)

		key, err := NewKeyMaterial(raw, AESGCM)
		require.NoError(t, err)
		assert.Equal(t, 32, key.Len())
		assert.Equal(t, raw, key.Bytes())
	})

	t.Run("copies the caller's bytes", func(t *testing.T) {
		raw := make([]byte, 32)
		key, err := NewKeyMaterial(raw, ChaCha20)
		require.NoError(t, err)

		// Zeroing the caller's copy must not affect the key material.
		raw[0] = 0xff
		assert.Equal(t, byte(0x00), key.Bytes()[0])
	})

	t.Run("rejects 16-byte key", func(t *testing.T) {
		_, err := NewKeyMaterial(make([]byte, 16), AESGCM)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	})

	t.Run("rejects 64-byte key", func(t *testing.T) {
		_, err := NewKeyMaterial(make([]byte, 64), ChaCha20)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	})

	t.Run("rejects nil key", func(t *testing.T) {
		_, err := NewKeyMaterial(nil, AESGCM)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := NewKeyMaterial(make([]byte, 32), Algorithm("unknown"))
		assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
	})
}

func TestKeyMaterial_Close(t *testing.T) {
	raw := make([]byte, 32)
	for i := range raw {
		raw[i] = byte(i)
	}

	key, err := NewKeyMaterial(raw, AESGCM)
	require.NoError(t, err)

	internal := key.Bytes()
	key.Close()

	assert.Nil(t, key.Bytes())
	for _, b := range internal {
		assert.Equal(t, byte(0), b)
	}
}

func TestLoadKeyMaterialFromEnv(t *testing.T) {
	t.Run("loads valid base64 key", func(t *testing.T) {
		raw := make([]byte, 32)
		_, err := rand.Read(raw)
		require.NoError(t, err)
		t.Setenv("TUNNEL_KEY", base64.StdEncoding.EncodeToString(raw))

		key, err := LoadKeyMaterialFromEnv(AESGCM)
		require.NoError(t, err)
		assert.Equal(t, raw, key.Bytes())
	})

	t.Run("fails when TUNNEL_KEY is not set", func(t *testing.T) {
		t.Setenv("TUNNEL_KEY", "")

		_, err := LoadKeyMaterialFromEnv(AESGCM)
		assert.ErrorIs(t, err, ErrTunnelKeyNotSet)
	})

	t.Run("fails on invalid base64", func(t *testing.T) {
		t.Setenv("TUNNEL_KEY", "not-base64!!!")

		_, err := LoadKeyMaterialFromEnv(AESGCM)
		assert.ErrorIs(t, err, ErrInvalidTunnelKeyBase64)
	})

	t.Run("fails on wrong decoded size", func(t *testing.T) {
		t.Setenv("TUNNEL_KEY", base64.StdEncoding.EncodeToString(make([]byte, 16)))

		_, err := LoadKeyMaterialFromEnv(AESGCM)
		assert.ErrorIs(t, err, ErrInvalidKeyLength)
	})
}

func TestZero(t *testing.T) {
	t.Run("zeroes a slice", func(t *testing.T) {
		b := []byte{1, 2, 3}
		Zero(b)
		assert.Equal(t, []byte{0, 0, 0}, b)
	})

	t.Run("handles nil", func(t *testing.T) {
		assert.NotPanics(t, func() { Zero(nil) })
	})
}
