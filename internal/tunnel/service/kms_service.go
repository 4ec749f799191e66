package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	tunnelDomain "github.com/MehanikTMYT/chatbot/internal/tunnel/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KMSService unwraps KMS-wrapped tunnel keys using gocloud.dev/secrets.
//
// In production the tunnel key is stored wrapped (encrypted) by a cloud KMS
// and only unwrapped in memory at startup; the plain TUNNEL_KEY environment
// variable is the development/test fallback.
type KMSService interface {
	// UnwrapKey decrypts a base64-encoded wrapped key through the KMS keeper
	// at keyURI and returns validated KeyMaterial for the algorithm.
	UnwrapKey(ctx context.Context, keyURI, wrappedBase64 string, alg tunnelDomain.Algorithm) (*tunnelDomain.KeyMaterial, error)
}

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// UnwrapKey opens a secrets.Keeper for the keyURI and decrypts the wrapped key.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
// The temporary plaintext key buffer is zeroed once KeyMaterial holds its own copy.
func (k *kmsService) UnwrapKey(
	ctx context.Context,
	keyURI string,
	wrappedBase64 string,
	alg tunnelDomain.Algorithm,
) (*tunnelDomain.KeyMaterial, error) {
	wrapped, err := base64.StdEncoding.DecodeString(wrappedBase64)
	if err != nil {
		return nil, fmt.Errorf("invalid wrapped key base64: %w", err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer keeper.Close()

	raw, err := keeper.Decrypt(ctx, wrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap tunnel key: %w", err)
	}
	defer tunnelDomain.Zero(raw)

	return tunnelDomain.NewKeyMaterial(raw, alg)
}
