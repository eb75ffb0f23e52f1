package ops

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/httpx"
	"github.com/bleepstore/s3kit/internal/sigv4"
)

// checkPostPolicy verifies a browser's "POST Object" form upload: the
// multipart body carries a base64 policy document plus
// x-amz-algorithm/x-amz-credential/x-amz-date/x-amz-signature fields
// instead of an Authorization header, and the policy document itself
// (not a canonical request) is the string-to-sign. Always resolves to
// PutObject, mirroring original_source's v4_check_post_signature,
// which is the only branch of its signature dance that forces a fixed
// operation rather than feeding into resolve_route.
func (d *Dispatcher) checkPostPolicy(r *http.Request) (*authResult, error) {
	upload, err := httpx.ParseFormUpload(r)
	if err != nil {
		return nil, err
	}

	policy, ok := upload.Field("policy")
	if !ok {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "missing field: policy")
	}
	algorithm, ok := upload.Field("x-amz-algorithm")
	if !ok {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "missing field: x-amz-algorithm")
	}
	credentialField, ok := upload.Field("x-amz-credential")
	if !ok {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "missing field: x-amz-credential")
	}
	amzDate, ok := upload.Field("x-amz-date")
	if !ok {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "missing field: x-amz-date")
	}
	signature, ok := upload.Field("x-amz-signature")
	if !ok {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "missing field: x-amz-signature")
	}

	if _, err := base64.StdEncoding.DecodeString(policy); err != nil {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "invalid field: policy")
	}
	if algorithm != sigv4.Algorithm {
		return nil, s3err.ErrNotImplemented.WithExtra("reason", "unsupported x-amz-algorithm: "+algorithm)
	}

	parts := strings.SplitN(credentialField, "/", 5)
	if len(parts) != 5 || parts[4] != "aws4_request" {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "invalid field: x-amz-credential")
	}
	accessKeyID, date, region, service := parts[0], parts[1], parts[2], parts[3]

	if _, err := sigv4.ParseAmzDate(amzDate); err != nil {
		return nil, s3err.ErrInvalidArgument.WithExtra("reason", "invalid field: x-amz-date")
	}
	if len(amzDate) < 8 || date != amzDate[:8] {
		return nil, s3err.ErrSignatureDoesNotMatch
	}

	cred, err := d.SigV4.Source.Lookup(r.Context(), accessKeyID)
	if err != nil {
		return nil, s3err.ErrInternalError
	}
	if cred == nil || !cred.Active {
		return nil, s3err.ErrInvalidAccessKeyId
	}

	expected := sigv4.CalculatePolicySignature(policy, cred.SecretKey, date, region, service)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) != 1 {
		return nil, s3err.ErrSignatureDoesNotMatch
	}

	return &authResult{acx: acxFromV4(cred), forcedOp: "PutObject", upload: upload}, nil
}
