// Package journal keeps an append-only record of mission events in a local
// SQLite database. It is an audit trail: commands log to it but never
// depend on it for correctness, so journal failures are nonfatal.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	KindStarted   = "started"
	KindChecked   = "checked"
	KindCompleted = "completed"
)

// Event is one row in the journal.
type Event struct {
	ID        string
	MissionID string
	Kind      string
	XPAwarded int
	Detail    string
	CreatedAt time.Time
}

type Journal struct {
	db *sql.DB
}

// DefaultPath returns the journal location under the base directory.
func DefaultPath(baseDir string) string {
	return filepath.Join(baseDir, "journal.db")
}

// Open opens (and creates if missing) the journal database and applies the
// schema.
func Open(ctx context.Context, path string) (*Journal, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	j := &Journal{db: db}
	if err := j.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS mission_events (
			id TEXT PRIMARY KEY,
			mission_id TEXT NOT NULL,
			kind TEXT NOT NULL,
			xp_awarded INTEGER NOT NULL DEFAULT 0,
			detail TEXT,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_mission_events_mission_id ON mission_events(mission_id);`,
		`CREATE INDEX IF NOT EXISTS idx_mission_events_kind ON mission_events(kind);`,
	}
	for _, stmt := range stmts {
		if _, err := j.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// Append records an event and returns its generated ID.
func (j *Journal) Append(ctx context.Context, missionID, kind string, xpAwarded int, detail string) (string, error) {
	id := uuid.NewString()
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO mission_events (id, mission_id, kind, xp_awarded, detail, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, missionID, kind, xpAwarded, detail, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("journal append: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit events, newest first.
func (j *Journal) ListRecent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT id, mission_id, kind, xp_awarded, COALESCE(detail, ''), created_at
		FROM mission_events
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("journal list: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.MissionID, &e.Kind, &e.XPAwarded, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("journal scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal rows: %w", err)
	}
	return events, nil
}

// CountByKind returns how many events of one kind have been recorded.
func (j *Journal) CountByKind(ctx context.Context, kind string) (int, error) {
	row := j.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mission_events WHERE kind = ?`, kind)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("journal count: %w", err)
	}
	return n, nil
}
