package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// Cache persists the route patches an external Smithy model last
// resolved to, so a clustered deployment's other nodes don't each have
// to re-read and re-decode the model file on every process start. It
// is purely an optimization: New on its own always builds a complete
// registry, and a cache miss just means LoadModelFromEnv falls back to
// reading the model file directly.
type Cache struct {
	db *sql.DB
}

// OpenCache opens (creating if necessary) a SQLite-backed Cache at dsn.
func OpenCache(dsn string) (*Cache, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("registry: opening cache database: %w", err)
	}
	c := &Cache{db: db}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, p := range pragmas {
		if _, err := c.db.Exec(p); err != nil {
			return fmt.Errorf("registry: executing %q: %w", p, err)
		}
	}
	schema := `
		CREATE TABLE IF NOT EXISTS model_patches (
			model_digest TEXT PRIMARY KEY,
			patches_json TEXT NOT NULL,
			cached_at    TEXT NOT NULL
		);
	`
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("registry: creating cache schema: %w", err)
	}
	return nil
}

// Close closes the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Lookup returns the patches cached under digest, if present.
func (c *Cache) Lookup(ctx context.Context, digest string) ([]ModelPatch, bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx,
		`SELECT patches_json FROM model_patches WHERE model_digest = ?`, digest,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("registry: querying cache: %w", err)
	}
	var patches []ModelPatch
	if err := json.Unmarshal([]byte(raw), &patches); err != nil {
		return nil, false, fmt.Errorf("registry: decoding cached patches: %w", err)
	}
	return patches, true, nil
}

// Store records patches under digest, replacing whatever was cached
// there before.
func (c *Cache) Store(ctx context.Context, digest string, patches []ModelPatch) error {
	raw, err := json.Marshal(patches)
	if err != nil {
		return fmt.Errorf("registry: encoding patches: %w", err)
	}
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO model_patches (model_digest, patches_json, cached_at) VALUES (?, ?, ?)
		 ON CONFLICT(model_digest) DO UPDATE SET patches_json = excluded.patches_json, cached_at = excluded.cached_at`,
		digest, raw, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("registry: storing patches: %w", err)
	}
	return nil
}

// LoadModelCached behaves like LoadModelFromEnv, but consults cache
// first, keyed on modelDigest (the caller's choice of content hash or
// version string for the model file), and populates the cache on a
// miss. A nil cache degrades to plain LoadModelFromEnv behavior.
func LoadModelCached(ctx context.Context, r *Registry, cache *Cache, modelDigest string, loadModel func() ([]byte, error)) error {
	if cache != nil {
		if patches, ok, err := cache.Lookup(ctx, modelDigest); err != nil {
			return err
		} else if ok {
			r.ApplyModelPatches(patches)
			return nil
		}
	}

	raw, err := loadModel()
	if err != nil {
		return err
	}
	patches, err := LoadModelPatches(raw)
	if err != nil {
		return err
	}
	r.ApplyModelPatches(patches)

	if cache != nil {
		return cache.Store(ctx, modelDigest, patches)
	}
	return nil
}
