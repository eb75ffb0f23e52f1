package router

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/bleepstore/s3kit/internal/registry"
)

func mustQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("ParseQuery(%q): %v", raw, err)
	}
	return v
}

func TestResolveBucketGetDisambiguation(t *testing.T) {
	reg := registry.New()
	rt := Build(reg)

	cases := []struct {
		query string
		want  string
	}{
		{"", "ListObjects"},
		{"list-type=2", "ListObjectsV2"},
		{"versions", "ListObjectVersions"},
		{"uploads", "ListMultipartUploads"},
		{"acl", "GetBucketAcl"},
		{"lifecycle", "GetBucketLifecycle"},
	}

	for _, c := range cases {
		op, _, err := rt.Resolve(http.MethodGet, registry.ShapeBucket, mustQuery(t, c.query), http.Header{})
		if err != nil {
			t.Fatalf("query %q: %v", c.query, err)
		}
		if op.Name != c.want {
			t.Errorf("query %q: got %s, want %s", c.query, op.Name, c.want)
		}
	}
}

func TestResolveObjectPutDisambiguation(t *testing.T) {
	reg := registry.New()
	rt := Build(reg)

	// Plain PUT with no disambiguators falls through to the final route.
	op, _, err := rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, ""), http.Header{})
	if err != nil || op.Name != "PutObject" {
		t.Fatalf("got %v, err=%v", op, err)
	}

	// ?acl is a tagged route.
	op, _, err = rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, "acl"), http.Header{})
	if err != nil || op.Name != "PutObjectAcl" {
		t.Fatalf("got %v, err=%v", op, err)
	}

	// UploadPart: partNumber+uploadId present, no copy-source header.
	h := http.Header{}
	op, needsFullBody, err := rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, "partNumber=1&uploadId=abc"), h)
	if err != nil || op.Name != "UploadPart" {
		t.Fatalf("got %v, err=%v", op, err)
	}
	if needsFullBody {
		t.Fatalf("UploadPart should not need full body buffering")
	}

	// UploadPartCopy: same query plus the copy-source header.
	h2 := http.Header{}
	h2.Set("x-amz-copy-source", "/src-bucket/src-key")
	op, _, err = rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, "partNumber=1&uploadId=abc"), h2)
	if err != nil || op.Name != "UploadPartCopy" {
		t.Fatalf("got %v, err=%v", op, err)
	}

	// CopyObject: disambiguated purely by the copy-source header, no query.
	h3 := http.Header{}
	h3.Set("x-amz-copy-source", "/src-bucket/src-key")
	op, _, err = rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, ""), h3)
	if err != nil || op.Name != "CopyObject" {
		t.Fatalf("got %v, err=%v", op, err)
	}
}

func TestNeedsFullBodyExcludesStreamingPayload(t *testing.T) {
	reg := registry.New()
	rt := Build(reg)

	// PutObject's payload field is a StreamingBlob: the body is attached
	// as a live reader, never buffered by the router/codec.
	op, needsFullBody, err := rt.Resolve(http.MethodPut, registry.ShapeObject, mustQuery(t, ""), http.Header{})
	if err != nil || op.Name != "PutObject" {
		t.Fatalf("got %v, err=%v", op, err)
	}
	if needsFullBody {
		t.Fatalf("PutObject should not need full body buffering")
	}

	// CreateBucket's payload is an XML document (CreateBucketConfiguration),
	// so it still needs the whole body buffered before decoding.
	op, needsFullBody, err = rt.Resolve(http.MethodPut, registry.ShapeBucket, mustQuery(t, ""), http.Header{})
	if err != nil || op.Name != "CreateBucket" {
		t.Fatalf("got %v, err=%v", op, err)
	}
	if !needsFullBody {
		t.Fatalf("CreateBucket should need full body buffering")
	}
}

func TestResolveUnknownOperation(t *testing.T) {
	reg := registry.New()
	rt := Build(reg)
	if _, _, err := rt.Resolve(http.MethodPatch, registry.ShapeObject, url.Values{}, http.Header{}); err == nil {
		t.Fatal("expected ErrUnknownOperation for an unregistered method")
	}
}

func TestResolveSingleRouteGroupNeedsNoDisambiguation(t *testing.T) {
	reg := registry.New()
	rt := Build(reg)
	op, _, err := rt.Resolve(http.MethodGet, registry.ShapeRoot, url.Values{}, http.Header{})
	if err != nil || op.Name != "ListBuckets" {
		t.Fatalf("got %v, err=%v", op, err)
	}
}
