package codec

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bleepstore/s3kit/internal/registry"
)

func TestHeaderAllowsDuplicates(t *testing.T) {
	cases := map[string]bool{
		"x-amz-meta-reviewedby": true,
		"accept-encoding":       true,
		"authorization":         false,
		"x-amz-date":            false,
		"x-amz-checksum-crc32":  false,
		"x-amz-server-side-encryption": false,
		"content-type":          false,
	}
	for name, want := range cases {
		if got := HeaderAllowsDuplicates(name); got != want {
			t.Errorf("HeaderAllowsDuplicates(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestQueryAllowsDuplicatesAlwaysFalse(t *testing.T) {
	for _, name := range []string{"prefix", "uploadId", "partNumber", "x-amz-date", "anything"} {
		if QueryAllowsDuplicates(name) {
			t.Errorf("QueryAllowsDuplicates(%q) = true, want false", name)
		}
	}
}

func TestCombineHeaderValuesJoinsMetadata(t *testing.T) {
	h := http.Header{}
	h.Add("X-Amz-Meta-Reviewedby", "joe@example.com")
	h.Add("X-Amz-Meta-Reviewedby", "jane@example.com")
	v, ok, err := CombineHeaderValues(h, "x-amz-meta-reviewedby")
	if err != nil || !ok {
		t.Fatalf("unexpected error/ok: %v %v", err, ok)
	}
	if v != "joe@example.com, jane@example.com" {
		t.Fatalf("got %q", v)
	}
}

func TestCombineHeaderValuesRejectsDuplicateAuthorization(t *testing.T) {
	h := http.Header{}
	h.Add("Authorization", "AWS4-HMAC-SHA256 ...")
	h.Add("Authorization", "AWS4-HMAC-SHA256 ...")
	_, _, err := CombineHeaderValues(h, "authorization")
	if err == nil {
		t.Fatal("expected error for duplicate Authorization header")
	}
}

func TestExtractUserMetadataCombinesDuplicates(t *testing.T) {
	h := http.Header{}
	h.Add("X-Amz-Meta-Reviewedby", "joe@example.com")
	h.Add("X-Amz-Meta-Reviewedby", "jane@example.com")
	h.Add("X-Amz-Meta-Other", "x")
	meta := ExtractUserMetadata(h)
	if meta["reviewedby"] != "joe@example.com, jane@example.com" {
		t.Fatalf("got %q", meta["reviewedby"])
	}
	if meta["other"] != "x" {
		t.Fatalf("got %q", meta["other"])
	}
}

func TestEncodeOutputScalarPayload(t *testing.T) {
	reg := registry.New()
	op, ok := reg.Operation("GetBucketLocation")
	if !ok {
		t.Fatal("GetBucketLocation not registered")
	}
	rec := httptest.NewRecorder()
	if err := EncodeOutput(reg, op, rec, map[string]any{"LocationConstraint": "us-west-2"}); err != nil {
		t.Fatalf("EncodeOutput: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<LocationConstraint xmlns="http://s3.amazonaws.com/doc/2006-03-01/">us-west-2</LocationConstraint>`) {
		t.Fatalf("unexpected body: %s", body)
	}
}

func TestEncodeOutputStructuredXMLFields(t *testing.T) {
	reg := registry.New()
	op, ok := reg.Operation("GetBucketAcl")
	if !ok {
		t.Fatal("GetBucketAcl not registered")
	}
	rec := httptest.NewRecorder()
	value := map[string]any{
		"Owner": map[string]any{"ID": "owner-1", "DisplayName": "alice"},
		"Grants": []any{
			map[string]any{
				"Grantee":    map[string]any{"ID": "owner-1", "DisplayName": "alice", "Type_": "CanonicalUser"},
				"Permission": "FULL_CONTROL",
			},
		},
	}
	if err := EncodeOutput(reg, op, rec, value); err != nil {
		t.Fatalf("EncodeOutput: %v", err)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"<AccessControlPolicy", "<Owner><ID>owner-1</ID><DisplayName>alice</DisplayName></Owner>",
		"<AccessControlList><Grant>", "<Permission>FULL_CONTROL</Permission>",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected body to contain %q, got: %s", want, body)
		}
	}
}

func TestDecodeInputFallbackBucketKeyOnly(t *testing.T) {
	reg := registry.New()
	op, ok := reg.Operation("RestoreObject")
	if !ok {
		t.Fatal("RestoreObject not registered")
	}
	r := httptest.NewRequest("POST", "/my-bucket/my-key?restore", nil)
	in, err := DecodeInput(reg, op, r, "my-bucket", "my-key")
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}
	if in["Bucket"] != "my-bucket" || in["Key"] != "my-key" {
		t.Fatalf("got %#v", in)
	}
}

func TestDecodeInputCreateBucketXMLPayload(t *testing.T) {
	reg := registry.New()
	op, ok := reg.Operation("CreateBucket")
	if !ok {
		t.Fatal("CreateBucket not registered")
	}
	body := `<CreateBucketConfiguration><LocationConstraint>eu-west-1</LocationConstraint></CreateBucketConfiguration>`
	r := httptest.NewRequest("PUT", "/my-bucket", bytes.NewBufferString(body))
	r.ContentLength = int64(len(body))
	in, err := DecodeInput(reg, op, r, "my-bucket", "")
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}
	cfg, ok := in["CreateBucketConfiguration"].(map[string]any)
	if !ok {
		t.Fatalf("expected CreateBucketConfiguration map, got %#v", in["CreateBucketConfiguration"])
	}
	if cfg["LocationConstraint"] != "eu-west-1" {
		t.Fatalf("got %#v", cfg)
	}
}

func TestDecodeInputHeaderAndQuery(t *testing.T) {
	reg := registry.New()
	op, ok := reg.Operation("ListObjects")
	if !ok {
		t.Fatal("ListObjects not registered")
	}
	r := httptest.NewRequest("GET", "/my-bucket?prefix=foo%2F&max-keys=10", nil)
	in, err := DecodeInput(reg, op, r, "my-bucket", "")
	if err != nil {
		t.Fatalf("DecodeInput: %v", err)
	}
	if in["Bucket"] != "my-bucket" {
		t.Fatalf("got %#v", in)
	}
	if in["Prefix"] != "foo/" {
		t.Fatalf("got %#v", in["Prefix"])
	}
	if in["MaxKeys"] != "10" {
		t.Fatalf("got %#v", in["MaxKeys"])
	}
}

func TestQueryErrorOnDuplicateParam(t *testing.T) {
	q, _ := url.ParseQuery("prefix=a&prefix=b")
	_, _, err := CombineQueryValues(q, "prefix")
	if err == nil {
		t.Fatal("expected error for duplicate query parameter")
	}
}
