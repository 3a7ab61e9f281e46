// Package history persists completed quiz sessions to a local SQLite
// database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    started_at TEXT NOT NULL,
    finished_at TEXT NOT NULL,
    topic TEXT NOT NULL,
    asked INTEGER NOT NULL,
    correct INTEGER NOT NULL,
    score REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS answers (
    session_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    question_id INTEGER NOT NULL,
    response TEXT NOT NULL,
    correct INTEGER NOT NULL,
    PRIMARY KEY (session_id, position),
    FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);
`

// SessionRecord summarizes one completed quiz session.
type SessionRecord struct {
	ID         string
	StartedAt  time.Time
	FinishedAt time.Time
	Topic      string
	Asked      int
	Correct    int
	Score      float64
}

// AnswerRecord is one graded answer within a session, in quiz order.
type AnswerRecord struct {
	QuestionID int
	Response   string
	Correct    bool
}

// Store is a handle to the session history database.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas,
// and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// AppendSession stores a session and its answers in one transaction.
func (s *Store) AppendSession(ctx context.Context, rec SessionRecord, answers []AnswerRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Times are stored as RFC 3339 text so they sort lexicographically.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, started_at, finished_at, topic, asked, correct, score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.StartedAt.UTC().Format(time.RFC3339Nano),
		rec.FinishedAt.UTC().Format(time.RFC3339Nano),
		rec.Topic, rec.Asked, rec.Correct, rec.Score)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	for i, a := range answers {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answers (session_id, position, question_id, response, correct)
			 VALUES (?, ?, ?, ?, ?)`,
			rec.ID, i, a.QuestionID, a.Response, a.Correct)
		if err != nil {
			return fmt.Errorf("insert answer %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, topic, asked, correct, score
		 FROM sessions ORDER BY finished_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		var started, finished string
		err := rows.Scan(&rec.ID, &started, &finished, &rec.Topic,
			&rec.Asked, &rec.Correct, &rec.Score)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if rec.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if rec.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("parse finished_at: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultPath resolves the history database path in priority order:
// 1. QUIZDRILL_HISTORY environment variable
// 2. $XDG_DATA_HOME/quizdrill/history.db
// 3. ~/.local/share/quizdrill/history.db
func DefaultPath() (string, error) {
	if p := os.Getenv("QUIZDRILL_HISTORY"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "quizdrill", "history.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
