// Package s3path extracts the bucket/key addressed by an S3 request —
// path-style ("/{bucket}/{key...}") or virtual-hosted-style
// ("{bucket}.s3.example.com/{key...}") — ahead of and independent of
// route resolution, mirroring how the original extracts an S3Path before
// it even knows which operation a request names.
package s3path

import (
	"regexp"
	"strings"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/registry"
)

// MaxKeyLength is S3's limit on object key length in UTF-8 bytes.
const MaxKeyLength = 1024

// bucketNameRegex validates bucket names: 3-63 characters, lowercase
// letters/numbers/hyphens/periods, must start and end with a letter or
// number.
var bucketNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9.\-]{1,61}[a-z0-9]$`)

var ipAddressRegex = regexp.MustCompile(`^\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}$`)

// Path is the bucket/key a request addresses. Bucket is empty for
// service-level operations (ListBuckets); Key is empty for bucket-level
// operations.
type Path struct {
	Bucket string
	Key    string
}

// Shape classifies the path the same way registry.Operation.PathShape
// does, so a resolved Path can be handed straight to router.Resolve.
func (p Path) Shape() registry.PathShape {
	switch {
	case p.Bucket == "":
		return registry.ShapeRoot
	case p.Key == "":
		return registry.ShapeBucket
	default:
		return registry.ShapeObject
	}
}

// ParsePathStyle splits a decoded URL path into a Path, assuming
// path-style addressing ("/bucket/key...").
func ParsePathStyle(urlPath string) (Path, error) {
	trimmed := strings.TrimPrefix(urlPath, "/")
	if trimmed == "" {
		return Path{}, nil
	}
	var p Path
	if i := strings.IndexByte(trimmed, '/'); i < 0 {
		p.Bucket = strings.TrimSuffix(trimmed, "/")
	} else {
		p.Bucket, p.Key = trimmed[:i], trimmed[i+1:]
	}
	return validate(p)
}

// ParseVirtualHostedStyle splits a Host header of the form
// "{bucket}.{baseDomain}" plus the request's URL path into a Path. A
// Host that does not end in baseDomain falls back to path-style parsing
// of urlPath, matching the original's behavior when virtual-hosting
// isn't in play for a given request.
func ParseVirtualHostedStyle(baseDomain, host, urlPath string) (Path, error) {
	host = stripPort(host)
	suffix := "." + baseDomain
	if !strings.HasSuffix(host, suffix) {
		return ParsePathStyle(urlPath)
	}
	bucket := strings.TrimSuffix(host, suffix)
	if bucket == "" {
		return ParsePathStyle(urlPath)
	}
	key := strings.TrimPrefix(urlPath, "/")
	return validate(Path{Bucket: bucket, Key: key})
}

func validate(p Path) (Path, error) {
	if p.Bucket != "" && !isValidBucketName(p.Bucket) {
		return Path{}, s3err.ErrInvalidBucketName
	}
	if len(p.Key) > MaxKeyLength {
		return Path{}, s3err.ErrKeyTooLongError
	}
	return p, nil
}

// isValidBucketName reports whether name meets S3's bucket naming rules.
func isValidBucketName(name string) bool {
	if len(name) < 3 || len(name) > 63 {
		return false
	}
	if !bucketNameRegex.MatchString(name) {
		return false
	}
	if ipAddressRegex.MatchString(name) {
		return false
	}
	if strings.HasPrefix(name, "xn--") {
		return false
	}
	if strings.HasSuffix(name, "-s3alias") || strings.HasSuffix(name, "--ol-s3") {
		return false
	}
	if strings.Contains(name, "..") {
		return false
	}
	return true
}

func stripPort(host string) string {
	if i := strings.LastIndexByte(host, ':'); i >= 0 && !strings.Contains(host[i:], "]") {
		return host[:i]
	}
	return host
}
