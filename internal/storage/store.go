package storage

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Storage keys, one per collection. Every key holds either a JSON array of
// records or a JSON object mapping entity id -> blob string (images/photos).
const (
	KeyCourses           = "jdga_courses"
	KeyUserCourses       = "jdga_user_courses"
	KeyScorecards        = "jdga_scorecards"
	KeyContacts          = "jdga_contacts"
	KeyMemberships       = "jdga_memberships"
	KeyFavoriteHoles     = "jdga_favorite_holes"
	KeyTrips             = "jdga_trips"
	KeyTournamentResults = "jdga_tournament_results"
	KeyFutureHosts       = "jdga_future_hosts"
	KeySettings          = "jdga_settings"
	KeyScorecardImages   = "jdga_scorecard_images"
	KeyContactPhotos     = "jdga_contact_photos"
	KeyClubs             = "jdga_clubs"
	KeyUserClubs         = "jdga_user_clubs"
)

// AllKeys lists every known collection key, used by reset and backup.
var AllKeys = []string{
	KeyCourses,
	KeyUserCourses,
	KeyScorecards,
	KeyContacts,
	KeyMemberships,
	KeyFavoriteHoles,
	KeyTrips,
	KeyTournamentResults,
	KeyFutureHosts,
	KeySettings,
	KeyScorecardImages,
	KeyContactPhotos,
	KeyClubs,
	KeyUserClubs,
}

// DB is the key-value store every collection lives in: a single SQLite file
// with one row per collection key. All reads and writes move the whole value
// for a key, there are no partial updates and no cross-key transactions.
type DB struct {
	sql *sql.DB

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// Open opens (creating if needed) the store at the given path.
func Open(path string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	if err = sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	createKVTable := `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`

	if _, err := sqlDB.Exec(createKVTable); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &DB{
		sql:   sqlDB,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

func (db *DB) Close() error {
	return db.sql.Close()
}

// Get returns the raw value for key, or nil when the key is absent.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := db.sql.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return value, nil
}

// Set writes the full value for key, replacing any previous value.
func (db *DB) Set(ctx context.Context, key string, value []byte) error {
	_, err := db.sql.ExecContext(ctx, "INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (db *DB) Remove(ctx context.Context, key string) error {
	_, err := db.sql.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// LockKey serializes read-modify-write cycles on one collection key, so two
// concurrent mutations cannot clobber each other's write. Returns the unlock
// function.
func (db *DB) LockKey(key string) func() {
	db.mu.Lock()
	l, ok := db.locks[key]
	if !ok {
		l = &sync.Mutex{}
		db.locks[key] = l
	}
	db.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// GenerateID returns a new record id: millisecond timestamp plus a random
// suffix, so ids sort roughly by creation time and rapid sequential calls
// cannot collide.
func GenerateID() string {
	buf := make([]byte, 5)
	rand.Read(buf)
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}

// Now returns the timestamp format stored on every record.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ClearAll removes every known collection key.
func (db *DB) ClearAll(ctx context.Context) error {
	for _, key := range AllKeys {
		if err := db.Remove(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// ExportAll produces a backup: every known key mapped to its current raw
// value. Absent keys export as JSON null.
func (db *DB) ExportAll(ctx context.Context) (map[string]json.RawMessage, error) {
	data := make(map[string]json.RawMessage, len(AllKeys))
	for _, key := range AllKeys {
		value, err := db.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		if value == nil {
			value = []byte("null")
		}
		data[key] = json.RawMessage(value)
	}
	return data, nil
}

// ImportAll restores a backup, overwriting recognized keys only; unknown
// keys in the payload are ignored.
func (db *DB) ImportAll(ctx context.Context, data map[string]json.RawMessage) error {
	known := make(map[string]bool, len(AllKeys))
	for _, key := range AllKeys {
		known[key] = true
	}

	for key, value := range data {
		if !known[key] {
			continue
		}
		unlock := db.LockKey(key)
		err := db.Set(ctx, key, value)
		unlock()
		if err != nil {
			return err
		}
	}
	return nil
}
