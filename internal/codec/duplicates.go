package codec

import "strings"

// HeaderAllowsDuplicates reports whether a lowercased header name may
// safely be sent more than once and combined with a comma separator.
// Security-critical headers (signing inputs, checksums, SSE controls)
// always reject duplicates; everything else defaults to rejecting too
// unless explicitly allow-listed here.
func HeaderAllowsDuplicates(name string) bool {
	switch name {
	case "authorization", "x-amz-date", "x-amz-content-sha256",
		"x-amz-security-token", "x-amz-signature", "host":
		return false
	case "x-amz-server-side-encryption",
		"x-amz-server-side-encryption-aws-kms-key-id",
		"x-amz-server-side-encryption-context",
		"x-amz-server-side-encryption-bucket-key-enabled":
		return false
	case "accept", "accept-encoding", "accept-language", "cache-control",
		"connection", "pragma", "trailer", "transfer-encoding", "upgrade",
		"via", "warning":
		return true
	}
	if strings.HasPrefix(name, "x-amz-checksum-") {
		return false
	}
	if strings.HasPrefix(name, "x-amz-meta-") {
		return true
	}
	if strings.HasPrefix(name, "x-amz-") {
		return false
	}
	return false
}

// QueryAllowsDuplicates reports whether a query parameter may safely
// repeat. S3 query parameters never combine: every disambiguator,
// signature component, and listing filter must be unique, so this is
// kept as a closed allow-list of nothing rather than a permissive
// default — present for symmetry with HeaderAllowsDuplicates and to
// document the policy at the same call sites.
func QueryAllowsDuplicates(name string) bool {
	switch name {
	case "AWSAccessKeyId", "Signature", "Expires", "x-amz-signature",
		"x-amz-credential", "x-amz-date", "x-amz-expires", "x-amz-signedheaders",
		"uploadId", "partNumber", "x-id",
		"prefix", "delimiter", "marker", "max-keys":
		return false
	}
	if strings.HasPrefix(name, "x-amz-") {
		return false
	}
	return false
}
