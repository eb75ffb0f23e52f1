package s3adapter

import (
	"context"

	"github.com/bleepstore/s3kit/internal/metadata"
	"github.com/bleepstore/s3kit/internal/sigv2"
	"github.com/bleepstore/s3kit/internal/sigv4"
)

// CredentialSource adapts a metadata.MetadataStore's credential records
// into sigv4.CredentialSource, the lookup the SigV4 verifier calls to
// resolve an access key ID's secret.
type CredentialSource struct {
	Meta metadata.MetadataStore
}

// NewCredentialSource wraps meta for use as a sigv4.CredentialSource.
func NewCredentialSource(meta metadata.MetadataStore) CredentialSource {
	return CredentialSource{Meta: meta}
}

// Lookup returns (nil, nil) for an unknown or deactivated access key, the
// contract sigv4.CredentialSource documents: the verifier maps that to
// InvalidAccessKeyId rather than treating it as a store failure.
func (c CredentialSource) Lookup(ctx context.Context, accessKeyID string) (*sigv4.Credential, error) {
	rec, err := c.Meta.GetCredential(ctx, accessKeyID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Active {
		return nil, nil
	}
	return &sigv4.Credential{
		AccessKeyID: rec.AccessKeyID,
		SecretKey:   rec.SecretKey,
		OwnerID:     rec.OwnerID,
		DisplayName: rec.DisplayName,
		Active:      rec.Active,
	}, nil
}

// CredentialSourceV2 adapts the same metadata store into sigv2's separate
// (structurally identical) CredentialSource interface, for the legacy
// AWS-signature-v2 verifier.
type CredentialSourceV2 struct {
	Meta metadata.MetadataStore
}

// NewCredentialSourceV2 wraps meta for use as a sigv2.CredentialSource.
func NewCredentialSourceV2(meta metadata.MetadataStore) CredentialSourceV2 {
	return CredentialSourceV2{Meta: meta}
}

func (c CredentialSourceV2) Lookup(ctx context.Context, accessKeyID string) (*sigv2.Credential, error) {
	rec, err := c.Meta.GetCredential(ctx, accessKeyID)
	if err != nil {
		return nil, err
	}
	if rec == nil || !rec.Active {
		return nil, nil
	}
	return &sigv2.Credential{
		AccessKeyID: rec.AccessKeyID,
		SecretKey:   rec.SecretKey,
		OwnerID:     rec.OwnerID,
		DisplayName: rec.DisplayName,
		Active:      rec.Active,
	}, nil
}
