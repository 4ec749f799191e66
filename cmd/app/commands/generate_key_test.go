package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"
	tunnelService "github.com/MehanikTMYT/chatbot/internal/tunnel/service"
)

// parseEnvOutput extracts KEY="value" assignments from command output.
func parseEnvOutput(t *testing.T, output string) map[string]string {
	t.Helper()
	values := map[string]string{}
	for _, line := range strings.Split(output, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, quoted, found := strings.Cut(line, "=")
		require.True(t, found, "unexpected output line: %q", line)
		value, err := strconv.Unquote(quoted)
		require.NoError(t, err)
		values[key] = value
	}
	return values
}

func TestRunGenerateKey(t *testing.T) {
	t.Run("Success_RawKey", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunGenerateKey(context.Background(), &buf, "aes-gcm", "")
		require.NoError(t, err)

		values := parseEnvOutput(t, buf.String())
		assert.Equal(t, "aes-gcm", values["TUNNEL_ALGORITHM"])

		key, err := base64.StdEncoding.DecodeString(values["TUNNEL_KEY"])
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("Success_UniqueKeys", func(t *testing.T) {
		var first, second bytes.Buffer

		require.NoError(t, RunGenerateKey(context.Background(), &first, "chacha20-poly1305", ""))
		require.NoError(t, RunGenerateKey(context.Background(), &second, "chacha20-poly1305", ""))

		firstKey := parseEnvOutput(t, first.String())["TUNNEL_KEY"]
		secondKey := parseEnvOutput(t, second.String())["TUNNEL_KEY"]
		assert.NotEqual(t, firstKey, secondKey)
	})

	t.Run("Success_WrappedKeyRoundTrip", func(t *testing.T) {
		// localsecrets keeper, development only
		keyURI := "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

		var buf bytes.Buffer
		err := RunGenerateKey(context.Background(), &buf, "aes-gcm", keyURI)
		require.NoError(t, err)

		values := parseEnvOutput(t, buf.String())
		assert.Equal(t, keyURI, values["TUNNEL_KMS_KEY_URI"])
		assert.NotContains(t, values, "TUNNEL_KEY")

		kms := tunnelService.NewKMSService()
		keyMaterial, err := kms.UnwrapKey(
			context.Background(),
			values["TUNNEL_KMS_KEY_URI"],
			values["TUNNEL_WRAPPED_KEY"],
			tunnelDomain.AESGCM,
		)
		require.NoError(t, err)
		defer keyMaterial.Close()

		assert.Equal(t, 32, keyMaterial.Len())
	})

	t.Run("Error_UnsupportedAlgorithm", func(t *testing.T) {
		var buf bytes.Buffer

		err := RunGenerateKey(context.Background(), &buf, "des", "")
		assert.ErrorIs(t, err, tunnelDomain.ErrUnsupportedAlgorithm)
	})
}
