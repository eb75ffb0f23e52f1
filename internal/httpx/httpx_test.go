package httpx

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bleepstore/s3kit/internal/sigv4"
)

func TestPayloadHashDetectsStreaming(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/bucket/key", nil)
	r.Header.Set("X-Amz-Content-Sha256", sigv4.StreamingPayload)
	hash, streaming := PayloadHash(r)
	if !streaming || hash != sigv4.StreamingPayload {
		t.Fatalf("got hash=%q streaming=%v", hash, streaming)
	}

	r2 := httptest.NewRequest(http.MethodPut, "/bucket/key", nil)
	r2.Header.Set("X-Amz-Content-Sha256", "deadbeef")
	if _, streaming := PayloadHash(r2); streaming {
		t.Fatal("non-streaming hash misclassified as streaming")
	}
}

func TestBufferFullBodyRewindsReader(t *testing.T) {
	body := []byte("<CreateBucketConfiguration/>")
	r := httptest.NewRequest(http.MethodPut, "/bucket", bytes.NewReader(body))

	got, err := BufferFullBody(r, MaxBufferedBody)
	if err != nil {
		t.Fatalf("BufferFullBody: %v", err)
	}
	if !bytes.Equal(got, body) {
		t.Fatalf("got %q, want %q", got, body)
	}

	again, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("rereading r.Body: %v", err)
	}
	if !bytes.Equal(again, body) {
		t.Fatalf("second read got %q, want %q", again, body)
	}
}

func TestBufferFullBodySkipsGet(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/bucket/key", nil)
	data, err := BufferFullBody(r, MaxBufferedBody)
	if err != nil || data != nil {
		t.Fatalf("got data=%v err=%v, want nil, nil", data, err)
	}
}

func TestBufferFullBodyRejectsOversized(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/bucket", bytes.NewReader(bytes.Repeat([]byte("a"), 100)))
	if _, err := BufferFullBody(r, 10); err == nil {
		t.Fatal("expected an error for a body exceeding the limit")
	}
}

func TestParseFormUploadSeparatesFieldsFromFile(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	mustWriteField(t, w, "key", "uploads/${filename}")
	mustWriteField(t, w, "acl", "public-read")
	fw, err := w.CreateFormFile("file", "hello.txt")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("hello world")); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/bucket", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())

	upload, err := ParseFormUpload(r)
	if err != nil {
		t.Fatalf("ParseFormUpload: %v", err)
	}
	if v, ok := upload.Field("key"); !ok || v != "uploads/${filename}" {
		t.Fatalf("got key field %q, ok=%v", v, ok)
	}
	if v, ok := upload.Field("ACL"); !ok || v != "public-read" {
		t.Fatalf("field lookup should be case-insensitive, got %q, ok=%v", v, ok)
	}
	if upload.FileName != "hello.txt" {
		t.Fatalf("got filename %q", upload.FileName)
	}
	content, err := io.ReadAll(upload.File)
	if err != nil {
		t.Fatalf("reading file stream: %v", err)
	}
	if string(content) != "hello world" {
		t.Fatalf("got file content %q", content)
	}
}

func TestParseFormUploadRejectsMissingFilePart(t *testing.T) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	mustWriteField(t, w, "key", "uploads/no-file")
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/bucket", &buf)
	r.Header.Set("Content-Type", w.FormDataContentType())

	if _, err := ParseFormUpload(r); err == nil {
		t.Fatal("expected an error when no file part is present")
	}
}

func TestParseFormUploadRejectsNonMultipart(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/bucket", strings.NewReader("key=value"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := ParseFormUpload(r); err == nil {
		t.Fatal("expected an error for a non-multipart content type")
	}
}

func TestSpliceChunkedBodyDecodesAndSignsChunks(t *testing.T) {
	const secretKey = "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY"
	const seed = "4f232c4386841ef735655705268965c44a0e4690baa4adea153f7db9fa80a0a9"
	date, err := sigv4.ParseAmzDate("20130524T000000Z")
	if err != nil {
		t.Fatalf("ParseAmzDate: %v", err)
	}

	chunk := []byte("hello world")
	sts := sigv4.CreateChunkStringToSign(date.FmtISO8601(), date.FmtDate(), "us-east-1", "s3", seed, chunk)
	sig := sigv4.CalculateSignature(sts, secretKey, date.FmtDate(), "us-east-1", "s3")

	finalSts := sigv4.CreateChunkStringToSign(date.FmtISO8601(), date.FmtDate(), "us-east-1", "s3", sig, nil)
	finalSig := sigv4.CalculateSignature(finalSts, secretKey, date.FmtDate(), "us-east-1", "s3")

	var body bytes.Buffer
	body.WriteString("b;chunk-signature=" + sig + "\r\n")
	body.Write(chunk)
	body.WriteString("\r\n")
	body.WriteString("0;chunk-signature=" + finalSig + "\r\n\r\n")

	r := httptest.NewRequest(http.MethodPut, "/bucket/key", &body)
	r.Header.Set("X-Amz-Decoded-Content-Length", "11")

	if err := SpliceChunkedBody(r, secretKey, date.FmtISO8601(), date.FmtDate(), "us-east-1", seed); err != nil {
		t.Fatalf("SpliceChunkedBody: %v", err)
	}
	if r.ContentLength != 11 {
		t.Fatalf("got ContentLength %d, want 11", r.ContentLength)
	}

	decoded, err := io.ReadAll(r.Body)
	if err != nil {
		t.Fatalf("reading spliced body: %v", err)
	}
	if string(decoded) != "hello world" {
		t.Fatalf("got %q, want %q", decoded, "hello world")
	}
}

func TestSpliceChunkedBodyRequiresDecodedLengthHeader(t *testing.T) {
	r := httptest.NewRequest(http.MethodPut, "/bucket/key", strings.NewReader(""))
	if err := SpliceChunkedBody(r, "secret", "20130524T000000Z", "20130524", "us-east-1", "seed"); err == nil {
		t.Fatal("expected an error when x-amz-decoded-content-length is missing")
	}
}

func mustWriteField(t *testing.T, w *multipart.Writer, name, value string) {
	t.Helper()
	if err := w.WriteField(name, value); err != nil {
		t.Fatalf("WriteField(%q): %v", name, err)
	}
}
