// Package placecache is a SQLite-backed TTL cache for places API responses.
// Repeated analyses of the same location reuse the cached raw records instead
// of re-querying the upstream API.
package placecache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// Cache stores raw place records keyed by the query that produced them.
type Cache struct {
	db *sql.DB
}

// Open opens (or creates) the cache database at path and configures WAL mode.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, eris.Wrap(err, "placecache: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "placecache: exec %s", pragma)
		}
	}
	return &Cache{db: db}, nil
}

const migration = `
CREATE TABLE IF NOT EXISTS place_cache (
	id         TEXT PRIMARY KEY,
	query_key  TEXT NOT NULL,
	payload    TEXT NOT NULL,
	fetched_at DATETIME NOT NULL DEFAULT (datetime('now')),
	expires_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_place_cache_query_key ON place_cache(query_key);
CREATE INDEX IF NOT EXISTS idx_place_cache_expires_at ON place_cache(expires_at);
`

// Migrate creates the cache schema.
func (c *Cache) Migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, migration)
	return eris.Wrap(err, "placecache: migrate")
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Key builds the cache key for one upstream query. Location matching is
// case-insensitive.
func Key(operation, location, businessType string, radius int) string {
	return fmt.Sprintf("%s|%s|%s|%d", operation, strings.ToLower(strings.TrimSpace(location)), businessType, radius)
}

// Get returns the newest unexpired payload for a key, unmarshaled into dst.
// A cache miss returns (false, nil).
func (c *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT payload FROM place_cache
		 WHERE query_key = ? AND expires_at > datetime('now')
		 ORDER BY fetched_at DESC LIMIT 1`,
		key,
	)

	var payload string
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, eris.Wrap(err, "placecache: get")
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return false, eris.Wrap(err, "placecache: unmarshal payload")
	}
	return true, nil
}

// Put stores a payload for a key with the given TTL.
func (c *Cache) Put(ctx context.Context, key string, value any, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return eris.Wrap(err, "placecache: marshal payload")
	}

	now := time.Now().UTC()
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO place_cache (id, query_key, payload, fetched_at, expires_at) VALUES (?, ?, ?, ?, ?)`,
		uuid.New().String(), key, string(payload), now, now.Add(ttl),
	)
	return eris.Wrap(err, "placecache: put")
}

// DeleteExpired removes expired rows and reports how many were deleted.
func (c *Cache) DeleteExpired(ctx context.Context) (int, error) {
	res, err := c.db.ExecContext(ctx,
		`DELETE FROM place_cache WHERE expires_at <= datetime('now')`,
	)
	if err != nil {
		return 0, eris.Wrap(err, "placecache: delete expired")
	}
	n, err := res.RowsAffected()
	return int(n), eris.Wrap(err, "placecache: rows affected")
}
