package registry

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "registry-cache.db")
	c, err := OpenCache(dbPath)
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCacheStoreAndLookup(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	if _, ok, err := c.Lookup(ctx, "digest-1"); err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	patches := []ModelPatch{{OperationName: "PutObject", Method: "PUT", URIPattern: "/{Bucket}/{Key+}", SuccessStatus: 200}}
	if err := c.Store(ctx, "digest-1", patches); err != nil {
		t.Fatalf("Store: %v", err)
	}

	got, ok, err := c.Lookup(ctx, "digest-1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].OperationName != "PutObject" {
		t.Fatalf("got %+v", got)
	}
}

func TestCacheStoreOverwritesDigest(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	c.Store(ctx, "digest-1", []ModelPatch{{OperationName: "PutObject", Method: "PUT"}})
	c.Store(ctx, "digest-1", []ModelPatch{{OperationName: "GetObject", Method: "GET"}})

	got, ok, err := c.Lookup(ctx, "digest-1")
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].OperationName != "GetObject" {
		t.Fatalf("got %+v, want the overwritten patch set", got)
	}
}

func TestLoadModelCachedMissThenHit(t *testing.T) {
	c := openTestCache(t)
	ctx := context.Background()

	calls := 0
	loadModel := func() ([]byte, error) {
		calls++
		return []byte(testModel), nil
	}

	r := New()
	if err := LoadModelCached(ctx, r, c, "digest-1", loadModel); err != nil {
		t.Fatalf("LoadModelCached (miss): %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected loadModel called once on miss, got %d", calls)
	}
	if op, _ := r.Operation("PutObject"); op.Method != "PUT" {
		t.Fatalf("patch not applied: %+v", op)
	}

	r2 := New()
	if err := LoadModelCached(ctx, r2, c, "digest-1", loadModel); err != nil {
		t.Fatalf("LoadModelCached (hit): %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected loadModel not called again on cache hit, got %d calls", calls)
	}
	if op, _ := r2.Operation("PutObject"); op.Method != "PUT" {
		t.Fatalf("cached patch not applied: %+v", op)
	}
}
