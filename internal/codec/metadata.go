package codec

import (
	"net/http"
	"strings"
)

// ExtractUserMetadata collects every x-amz-meta-* header into a map
// keyed by the suffix after the prefix, lowercased per S3 convention.
// Unlike a naive single-value read, repeated headers for the same key
// are combined with ", " — the same policy CombineHeaderValues applies
// to any other allow-listed header, since x-amz-meta-* is itself
// allow-listed for duplicates.
func ExtractUserMetadata(h http.Header) map[string]string {
	out := map[string]string{}
	for name, values := range h {
		lname := strings.ToLower(name)
		if !strings.HasPrefix(lname, "x-amz-meta-") {
			continue
		}
		key := strings.TrimPrefix(lname, "x-amz-meta-")
		if existing, ok := out[key]; ok {
			out[key] = existing + ", " + strings.Join(values, ", ")
			continue
		}
		out[key] = strings.Join(values, ", ")
	}
	return out
}

// ApplyUserMetadata writes a metadata map back onto a header set as
// x-amz-meta-* headers, for GetObject/HeadObject responses.
func ApplyUserMetadata(h http.Header, meta map[string]string) {
	for k, v := range meta {
		h.Set("x-amz-meta-"+k, v)
	}
}
