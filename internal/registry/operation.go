package registry

import "strings"

// PathShape classifies an operation's URI pattern by how many path
// segments it binds: no bucket, a bucket only, or a bucket and key.
type PathShape int

const (
	ShapeRoot PathShape = iota
	ShapeBucket
	ShapeObject
)

func (s PathShape) String() string {
	switch s {
	case ShapeRoot:
		return "root"
	case ShapeBucket:
		return "bucket"
	case ShapeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Operation is one S3 API operation: its shape names, HTTP binding,
// and the disambiguators the router uses to pick it out from others
// sharing the same {method, path-shape}.
type Operation struct {
	Name string

	InputType  string // always "{Name}Input"
	OutputType string // always "{Name}Output"

	SmithyInput  string
	SmithyOutput string

	Method          string // one of HEAD, GET, POST, PUT, DELETE
	URIPattern      string // raw Smithy http.uri, e.g. "/{Bucket}?lifecycle"
	SuccessStatus   int
	Doc             string
	UnwrappedXML    bool // s3-unwrapped-xml-output

	// Derived from URIPattern at registration time.
	PathShape       PathShape
	QueryTag        string            // a query param whose value is empty in the pattern; "" if none
	QueryPatterns   map[string]string // query params with fixed non-empty values
	RequiredQueries []string          // required-but-unvalued query string disambiguators (at most one per spec.md, but UploadPart/UploadPartCopy need two; see router.go)
	RequiredHeaders []string          // at most two required-header disambiguators
}

// decomposeURI splits a Smithy-style http.uri ("/{Bucket}?list-type=2")
// into its path shape and query disambiguators. x-id is always
// stripped: it never participates in routing.
func decomposeURI(method, uri string) (PathShape, string, map[string]string) {
	path := uri
	var query string
	if i := strings.IndexByte(uri, '?'); i >= 0 {
		path = uri[:i]
		query = uri[i+1:]
	}

	shape := ShapeRoot
	segs := strings.Split(strings.Trim(path, "/"), "/")
	segs = nonEmpty(segs)
	switch {
	case len(segs) == 0:
		shape = ShapeRoot
	case len(segs) == 1:
		shape = ShapeBucket
	default:
		shape = ShapeObject
	}

	var bareKeys []string
	patterns := map[string]string{}
	if query != "" {
		for _, kv := range strings.Split(query, "&") {
			if kv == "" {
				continue
			}
			var k, v string
			if i := strings.IndexByte(kv, '='); i >= 0 {
				k, v = kv[:i], kv[i+1:]
			} else {
				k = kv
			}
			if k == "x-id" {
				continue
			}
			if v == "" {
				bareKeys = append(bareKeys, k)
			} else {
				patterns[k] = v
			}
		}
	}

	// At most one bare (valueless) query parameter may act as the
	// route's tag disambiguator. A URI that names more than one (e.g.
	// UploadPart/UploadPartCopy's "?partNumber&uploadId") isn't using
	// the tag mechanism at all — those operations disambiguate purely
	// through RequiredQueries/RequiredHeaders, set explicitly by the
	// opRQ*/opRQH* constructors, so no tag is derived here.
	tag := ""
	if len(bareKeys) == 1 {
		tag = bareKeys[0]
	}
	return shape, tag, patterns
}

func nonEmpty(ss []string) []string {
	out := ss[:0:0]
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
