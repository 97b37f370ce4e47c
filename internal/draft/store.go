package draft

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema
// changes; stale databases are rejected rather than silently migrated.
const schemaVersion = 1

var (
	// ErrNotFound reports a missing draft key.
	ErrNotFound = errors.New("draft not found")
	// ErrLocked reports that another process holds the draft database.
	ErrLocked = errors.New("draft store locked by another process")
	// ErrSchemaMismatch indicates the database schema version doesn't match
	// the expected version.
	ErrSchemaMismatch = errors.New("schema version mismatch")
)

// Store is the autosave capability handed to callers that persist work in
// progress. Payloads are opaque JSON strings keyed by course code.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, payload string) error
	Remove(ctx context.Context, key string) error
	List(ctx context.Context) ([]Entry, error)
}

// Entry describes one stored draft.
type Entry struct {
	Key       string
	Size      int
	UpdatedAt time.Time
}

// Snapshot is one immutable historical copy of a draft.
type Snapshot struct {
	ID        string
	Key       string
	Payload   string
	CreatedAt time.Time
}

// SQLStore is the SQLite-backed Store. A file lock next to the database keeps
// two processes from writing it concurrently.
type SQLStore struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

var _ Store = (*SQLStore)(nil)

// Open initializes or connects to the draft database at path and acquires its
// companion lock file. Returns ErrLocked when another process holds it.
func Open(path string) (*SQLStore, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire draft lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &SQLStore{db: db, path: path, lock: lock}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database and releases the lock file.
func (s *SQLStore) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); unlockErr != nil && err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file path.
func (s *SQLStore) Path() string {
	return s.path
}

func (s *SQLStore) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		if _, err := s.db.ExecContext(ctx, schemaSQL); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
		if _, err := s.db.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record schema version: %w", err)
		}
		return nil
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to reset)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

// Get returns the stored payload for key.
func (s *SQLStore) Get(ctx context.Context, key string) (string, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM drafts WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("get draft %s: %w", key, err)
	}
	return payload, nil
}

// Set stores payload under key, replacing any previous value, and records an
// immutable snapshot row for history.
func (s *SQLStore) Set(ctx context.Context, key, payload string) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin draft tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO drafts (key, payload, updated_at) VALUES (?, ?, ?)
         ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		key, payload, now,
	); err != nil {
		return fmt.Errorf("upsert draft %s: %w", key, err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO draft_snapshots (id, key, payload, created_at) VALUES (?, ?, ?, ?)",
		uuid.NewString(), key, payload, now,
	); err != nil {
		return fmt.Errorf("record snapshot for %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit draft %s: %w", key, err)
	}
	return nil
}

// Remove deletes a draft and its snapshot history.
func (s *SQLStore) Remove(ctx context.Context, key string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin draft tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, "DELETE FROM drafts WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("delete draft %s: %w", key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete draft %s: %w", key, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM draft_snapshots WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete snapshots for %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete %s: %w", key, err)
	}
	return nil
}

// List returns all stored drafts ordered by key.
func (s *SQLStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT key, LENGTH(payload), updated_at FROM drafts ORDER BY key")
	if err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var updated string
		if err := rows.Scan(&entry.Key, &entry.Size, &updated); err != nil {
			return nil, fmt.Errorf("scan draft row: %w", err)
		}
		entry.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drafts: %w", err)
	}
	return entries, nil
}

// Snapshots returns a draft's history, newest first.
func (s *SQLStore) Snapshots(ctx context.Context, key string) ([]Snapshot, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, key, payload, created_at FROM draft_snapshots WHERE key = ? ORDER BY created_at DESC",
		key)
	if err != nil {
		return nil, fmt.Errorf("list snapshots for %s: %w", key, err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		var snap Snapshot
		var created string
		if err := rows.Scan(&snap.ID, &snap.Key, &snap.Payload, &created); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		snap.CreatedAt, _ = time.Parse(time.RFC3339Nano, created)
		snapshots = append(snapshots, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list snapshots for %s: %w", key, err)
	}
	return snapshots, nil
}
