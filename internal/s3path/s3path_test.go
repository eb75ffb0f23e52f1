package s3path

import (
	"strings"
	"testing"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/registry"
)

func TestParsePathStyle(t *testing.T) {
	cases := []struct {
		path       string
		wantBucket string
		wantKey    string
		wantShape  registry.PathShape
	}{
		{"/", "", "", registry.ShapeRoot},
		{"/my-bucket", "my-bucket", "", registry.ShapeBucket},
		{"/my-bucket/", "my-bucket", "", registry.ShapeBucket},
		{"/my-bucket/a/b/c.txt", "my-bucket", "a/b/c.txt", registry.ShapeObject},
		{"/my-bucket/key", "my-bucket", "key", registry.ShapeObject},
	}
	for _, c := range cases {
		p, err := ParsePathStyle(c.path)
		if err != nil {
			t.Fatalf("ParsePathStyle(%q): %v", c.path, err)
		}
		if p.Bucket != c.wantBucket || p.Key != c.wantKey {
			t.Errorf("ParsePathStyle(%q) = (%q, %q), want (%q, %q)", c.path, p.Bucket, p.Key, c.wantBucket, c.wantKey)
		}
		if p.Shape() != c.wantShape {
			t.Errorf("ParsePathStyle(%q).Shape() = %v, want %v", c.path, p.Shape(), c.wantShape)
		}
	}
}

func TestParsePathStyleRejectsInvalidBucketName(t *testing.T) {
	if _, err := ParsePathStyle("/A/key"); err != s3err.ErrInvalidBucketName {
		t.Fatalf("got %v, want ErrInvalidBucketName", err)
	}
}

func TestParsePathStyleRejectsOverlongKey(t *testing.T) {
	key := strings.Repeat("a", MaxKeyLength+1)
	if _, err := ParsePathStyle("/my-bucket/" + key); err != s3err.ErrKeyTooLongError {
		t.Fatalf("got %v, want ErrKeyTooLongError", err)
	}
}

func TestParseVirtualHostedStyle(t *testing.T) {
	p, err := ParseVirtualHostedStyle("s3.example.com", "my-bucket.s3.example.com:443", "/key")
	if err != nil {
		t.Fatalf("ParseVirtualHostedStyle: %v", err)
	}
	if p.Bucket != "my-bucket" || p.Key != "key" {
		t.Fatalf("got (%q, %q)", p.Bucket, p.Key)
	}
}

func TestParseVirtualHostedStyleFallsBackToPathStyle(t *testing.T) {
	p, err := ParseVirtualHostedStyle("s3.example.com", "s3.example.com", "/my-bucket/key")
	if err != nil {
		t.Fatalf("ParseVirtualHostedStyle: %v", err)
	}
	if p.Bucket != "my-bucket" || p.Key != "key" {
		t.Fatalf("path-style fallback got (%q, %q)", p.Bucket, p.Key)
	}
}

func TestIsValidBucketName(t *testing.T) {
	cases := map[string]bool{
		"my-bucket":       true,
		"my.bucket.name":  true,
		"ab":              false,
		"MyBucket":        false,
		"192.168.1.1":     false,
		"xn--bucket":      false,
		"bucket-s3alias":  false,
		"bucket..name":    false,
	}
	for name, want := range cases {
		if got := isValidBucketName(name); got != want {
			t.Errorf("isValidBucketName(%q) = %v, want %v", name, got, want)
		}
	}
}
