// Package history persists finished viewer sessions to a local SQLite
// database so `sv --recent` can show what was explored before.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/stepview/pkg/metrics"
	"github.com/vanderheijden86/stepview/pkg/trace"
)

// DefaultRecentLimit caps Recent listings when the caller passes no limit.
const DefaultRecentLimit = 20

// Session is one recorded viewer run.
type Session struct {
	ID           int64
	StartedAt    time.Time
	Algorithm    trace.Kind
	InputSummary string
	InputSize    int
	Frames       int
	LastIndex    int
	Completed    bool
	DurationMS   int64
}

// Store wraps the sessions database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if necessary) the sessions database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// Best effort; the defaults work too.
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		_, _ = db.Exec(pragma)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			algorithm TEXT NOT NULL,
			input_summary TEXT,
			input_size INTEGER NOT NULL DEFAULT 0,
			frames INTEGER NOT NULL DEFAULT 0,
			last_index INTEGER NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0
		)
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}

	index := `CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC)`
	if _, err := db.Exec(index); err != nil {
		return fmt.Errorf("create sessions index: %w", err)
	}

	return nil
}

// Record inserts a session and returns its row ID.
func (s *Store) Record(sess Session) (int64, error) {
	defer metrics.Timer(metrics.HistoryWrite)()

	startedAt := sess.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	res, err := s.db.Exec(`
		INSERT INTO sessions (started_at, algorithm, input_summary, input_size, frames, last_index, completed, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		startedAt.UTC().Format(time.RFC3339),
		string(sess.Algorithm),
		sess.InputSummary,
		sess.InputSize,
		sess.Frames,
		sess.LastIndex,
		sess.Completed,
		sess.DurationMS,
	)
	if err != nil {
		return 0, fmt.Errorf("insert session: %w", err)
	}

	return res.LastInsertId()
}

// Recent returns the most recent sessions, newest first. A non-positive
// limit falls back to DefaultRecentLimit.
func (s *Store) Recent(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := s.db.Query(`
		SELECT id, started_at, algorithm, input_summary, input_size, frames, last_index, completed, duration_ms
		FROM sessions
		ORDER BY started_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess      Session
			startedAt string
			algorithm string
			summary   sql.NullString
		)

		err := rows.Scan(
			&sess.ID, &startedAt, &algorithm, &summary,
			&sess.InputSize, &sess.Frames, &sess.LastIndex,
			&sess.Completed, &sess.DurationMS,
		)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}

		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			sess.StartedAt = t
		}
		sess.Algorithm = trace.Kind(algorithm)
		if summary.Valid {
			sess.InputSummary = summary.String
		}

		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	return sessions, nil
}

// Count returns the number of recorded sessions.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Prune deletes all but the newest keep sessions.
func (s *Store) Prune(keep int) error {
	if keep < 0 {
		keep = 0
	}

	_, err := s.db.Exec(`
		DELETE FROM sessions
		WHERE id NOT IN (
			SELECT id FROM sessions
			ORDER BY started_at DESC, id DESC
			LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("prune sessions: %w", err)
	}

	return nil
}
