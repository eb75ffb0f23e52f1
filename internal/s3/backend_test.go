package s3

import (
	"context"
	"testing"

	s3err "github.com/bleepstore/s3kit/internal/errors"
)

type echoBackend struct {
	UnimplementedBackend
}

func (echoBackend) GetObject(ctx context.Context, input map[string]any) (map[string]any, error) {
	return map[string]any{"Key": input["Key"]}, nil
}

func TestCallRunsOverriddenMethod(t *testing.T) {
	out, err := Call(context.Background(), echoBackend{}, "GetObject", map[string]any{"Key": "a.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["Key"] != "a.txt" {
		t.Fatalf("got %#v", out)
	}
}

func TestCallFallsBackToUnimplemented(t *testing.T) {
	_, err := Call(context.Background(), echoBackend{}, "PutObject", map[string]any{})
	s3e, ok := err.(*s3err.S3Error)
	if !ok || s3e.Code != s3err.ErrNotImplemented.Code {
		t.Fatalf("got %v, want an S3Error with Code %q", err, s3err.ErrNotImplemented.Code)
	}
}

func TestCallUnknownOperation(t *testing.T) {
	_, err := Call(context.Background(), echoBackend{}, "NotARealOperation", map[string]any{})
	if err != s3err.ErrNotImplemented {
		t.Fatalf("got %v, want ErrNotImplemented", err)
	}
}
