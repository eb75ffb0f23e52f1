package codec

import "github.com/bleepstore/s3kit/internal/registry"

// FallbackInput builds the dynamic input Value for an operation with no
// registered Struct shape: most of the ~90 S3 operations are routed and
// dispatched but only carry their path-bound identifiers, since a host
// that doesn't implement them returns NotImplemented before any field
// beyond Bucket/Key would matter.
func FallbackInput(op *registry.Operation, bucket, key string) map[string]any {
	out := map[string]any{}
	if bucket != "" {
		out["Bucket"] = bucket
	}
	if key != "" {
		out["Key"] = key
	}
	return out
}
