package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"gocloud.dev/secrets"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"

	// Register KMS provider drivers for key wrapping
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// RunGenerateKey generates a tunnel key for the given algorithm and prints it
// as environment variable assignments.
//
// Without a KMS key URI the raw key is printed as TUNNEL_KEY, suitable for
// development and test environments. With a KMS key URI the key is wrapped
// through the keeper first and printed as TUNNEL_KMS_KEY_URI plus
// TUNNEL_WRAPPED_KEY; the raw key never leaves process memory in that mode.
//
// Security: never use base64key:// (localsecrets) URIs in production.
func RunGenerateKey(ctx context.Context, writer io.Writer, algorithm, kmsKeyURI string) error {
	alg, err := tunnelDomain.ParseAlgorithm(algorithm)
	if err != nil {
		return err
	}

	params, err := alg.Params()
	if err != nil {
		return err
	}

	key := make([]byte, params.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}
	defer tunnelDomain.Zero(key)

	_, _ = fmt.Fprintf(writer, "# %d-byte key for %s\n", params.KeySize, alg)
	_, _ = fmt.Fprintf(writer, "TUNNEL_ALGORITHM=%q\n", alg)

	if kmsKeyURI == "" {
		_, _ = fmt.Fprintf(writer, "TUNNEL_KEY=%q\n", base64.StdEncoding.EncodeToString(key))
		return nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() { _ = keeper.Close() }()

	wrapped, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to wrap key: %w", err)
	}

	_, _ = fmt.Fprintf(writer, "TUNNEL_KMS_KEY_URI=%q\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "TUNNEL_WRAPPED_KEY=%q\n", base64.StdEncoding.EncodeToString(wrapped))

	return nil
}
