package scene

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/lixenwraith/swarm-installation/installation"
)

const snapshotSchema = `CREATE TABLE IF NOT EXISTS snapshots (
	room_id TEXT PRIMARY KEY,
	payload BLOB NOT NULL
)`

// SQLiteStore persists snapshots as JSON payloads keyed by room identity
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens or creates the database at path
// An empty path uses swarm-snapshots.db in the user cache directory
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			dir = os.TempDir()
		}
		path = filepath.Join(dir, "swarm-installation", "swarm-snapshots.db")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("snapshot dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Path returns the database file
func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the handle
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

func (s *SQLiteStore) Save(ctx context.Context, snap installation.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", snap.RoomID, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots(room_id, payload) VALUES(?, ?)
		 ON CONFLICT(room_id) DO UPDATE SET payload = excluded.payload`,
		snap.RoomID, payload)
	if err != nil {
		return fmt.Errorf("save snapshot %s: %w", snap.RoomID, err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context, roomID string) (installation.Snapshot, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM snapshots WHERE room_id = ?`, roomID).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return installation.Snapshot{}, false, nil
	}
	if err != nil {
		return installation.Snapshot{}, false, fmt.Errorf("load snapshot %s: %w", roomID, err)
	}

	var snap installation.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return installation.Snapshot{}, false, fmt.Errorf("decode snapshot %s: %w", roomID, err)
	}
	return snap, true, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// OpenStore builds the store named by driver: "memory" or "sqlite"
func OpenStore(driver, path string) (SnapshotStore, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown snapshot driver %q", driver)
	}
}
