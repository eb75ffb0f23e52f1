package sigv4

import "context"

// Credential is the subset of an access-key record the verifier needs.
type Credential struct {
	AccessKeyID string
	SecretKey   string
	OwnerID     string
	DisplayName string
	Active      bool
}

// CredentialSource looks up a credential by access key ID. It returns
// (nil, nil) when the key is simply unknown; callers map that to
// InvalidAccessKeyId.
type CredentialSource interface {
	Lookup(ctx context.Context, accessKeyID string) (*Credential, error)
}

// AuthError is a signature-verification failure tagged with the
// S3 error code the caller should render.
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string { return e.Code + ": " + e.Message }
