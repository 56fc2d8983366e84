package journal

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Entry is a single recorded move.
type Entry struct {
	RunID       string
	Source      string
	Destination string
	Extension   string
	MovedAt     time.Time
}

// Journal persists every move of a run in a SQLite database, so a run can be inspected
// (or reverted by hand) afterwards.
type Journal struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens or creates the journal database.
// The path can be ":memory:" for an in-memory database or a file path.
func Open(path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// A single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	j := &Journal{
		db: db,
	}

	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cleanup_moves (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		extension TEXT NOT NULL,
		moved_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_cleanup_moves_run_id ON cleanup_moves(run_id);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Record stores a single move.
func (j *Journal) Record(ctx context.Context, entry Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if entry.MovedAt.IsZero() {
		entry.MovedAt = time.Now()
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO cleanup_moves (run_id, source, destination, extension, moved_at)
		VALUES (?, ?, ?, ?, ?)`,
		entry.RunID, entry.Source, entry.Destination, entry.Extension, entry.MovedAt.UnixNano())

	return err
}

// Entries returns the moves of a run in the order they were recorded.
func (j *Journal) Entries(ctx context.Context, runID string) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	rows, err := j.db.QueryContext(ctx, `
		SELECT run_id, source, destination, extension, moved_at
		FROM cleanup_moves
		WHERE run_id = ?
		ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var movedAt int64

		if err := rows.Scan(&entry.RunID, &entry.Source, &entry.Destination, &entry.Extension, &movedAt); err != nil {
			return nil, err
		}

		entry.MovedAt = time.Unix(0, movedAt)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// Count returns the number of moves over all runs.
func (j *Journal) Count(ctx context.Context) (int, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	var count int
	err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cleanup_moves").Scan(&count)

	return count, err
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.db.Close()
}
