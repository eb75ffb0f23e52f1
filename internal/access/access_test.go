package access

import (
	"context"
	"testing"

	s3err "github.com/bleepstore/s3kit/internal/errors"
	"github.com/bleepstore/s3kit/internal/sigv4"
)

func TestDefaultCheckRejectsAnonymous(t *testing.T) {
	err := DefaultCheck(&Context{OperationName: "GetObject"})
	if err != s3err.ErrAccessDenied {
		t.Fatalf("got %v, want ErrAccessDenied", err)
	}
}

func TestDefaultCheckAllowsAuthenticated(t *testing.T) {
	err := DefaultCheck(&Context{
		OperationName: "GetObject",
		Credential:    &sigv4.Credential{OwnerID: "owner-1", Active: true},
	})
	if err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

// denyDeleteBucket overrides DeleteBucket to always deny, leaving every
// other operation at DefaultChecker's allow-everything behavior.
type denyDeleteBucket struct {
	DefaultChecker
	sawBucket string
}

func (c *denyDeleteBucket) DeleteBucket(ctx context.Context, req *Request) error {
	c.sawBucket = req.Bucket
	return s3err.ErrAccessDenied
}

func TestCheckOperationRunsOverriddenMethod(t *testing.T) {
	c := &denyDeleteBucket{}
	acx := &Context{
		OperationName: "DeleteBucket",
		Bucket:        "my-bucket",
		Credential:    &sigv4.Credential{OwnerID: "owner-1", Active: true},
	}
	err := CheckOperation(context.Background(), c, &Request{Context: acx})
	if err != s3err.ErrAccessDenied {
		t.Fatalf("got %v, want the overridden method's ErrAccessDenied", err)
	}
	if c.sawBucket != "my-bucket" {
		t.Fatalf("override did not see bucket, got %q", c.sawBucket)
	}
}

func TestCheckOperationDefaultCheckShortCircuitsBeforeMethod(t *testing.T) {
	c := &denyDeleteBucket{}
	acx := &Context{OperationName: "DeleteBucket"}
	err := CheckOperation(context.Background(), c, &Request{Context: acx})
	if err != s3err.ErrAccessDenied {
		t.Fatalf("got %v, want ErrAccessDenied from the generic check", err)
	}
	if c.sawBucket != "" {
		t.Fatal("per-operation method ran despite the generic check failing")
	}
}

func TestCheckOperationDefaultCheckerAllowsEveryOperation(t *testing.T) {
	c := DefaultChecker{}
	acx := &Context{
		OperationName: "ListBuckets",
		Credential:    &sigv4.Credential{OwnerID: "owner-1", Active: true},
	}
	if err := CheckOperation(context.Background(), c, &Request{Context: acx}); err != nil {
		t.Fatalf("got %v, want nil", err)
	}
}

func TestCheckOperationUnknownOperationName(t *testing.T) {
	c := DefaultChecker{}
	acx := &Context{
		OperationName: "NotARealOperation",
		Credential:    &sigv4.Credential{OwnerID: "owner-1", Active: true},
	}
	err := CheckOperation(context.Background(), c, &Request{Context: acx})
	if err != s3err.ErrNotImplemented {
		t.Fatalf("got %v, want ErrNotImplemented", err)
	}
}
