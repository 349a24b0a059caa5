// Package feedback persists manual corrections to extracted records. The
// engine never reads this data back — it exists for out-of-band analysis of
// extraction quality; there is no online learning loop.
package feedback

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Correction is one reviewed field: what the engine extracted and what the
// reviewer replaced it with.
type Correction struct {
	ID        uuid.UUID `json:"id"`
	ParseID   uuid.UUID `json:"parse_id"`
	Field     string    `json:"field"`
	Extracted string    `json:"extracted"`
	Corrected string    `json:"corrected"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is an append-only corrections log on an embedded sqlite file.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS corrections (
	id         TEXT PRIMARY KEY,
	parse_id   TEXT NOT NULL,
	field      TEXT NOT NULL,
	extracted  TEXT NOT NULL,
	corrected  TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS corrections_parse_id ON corrections (parse_id);`

// Open opens (creating if needed) the corrections database at path.
func Open(ctx context.Context, path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open corrections db: %w", err)
	}
	if _, err := db.ExecContext(ctx, createTableSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init corrections schema: %w", err)
	}
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Record appends one correction. The id and timestamp are assigned here
// when unset.
func (s *Store) Record(ctx context.Context, c Correction) (Correction, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO corrections (id, parse_id, field, extracted, corrected, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID.String(), c.ParseID.String(), c.Field, c.Extracted, c.Corrected,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return Correction{}, fmt.Errorf("insert correction: %w", err)
	}
	s.logger.Info("feedback.recorded", "parse_id", c.ParseID, "field", c.Field)
	return c, nil
}

// List returns the newest corrections, up to limit.
func (s *Store) List(ctx context.Context, limit int) ([]Correction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, parse_id, field, extracted, corrected, created_at
		 FROM corrections ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query corrections: %w", err)
	}
	defer rows.Close()

	var out []Correction
	for rows.Next() {
		var c Correction
		var id, parseID, createdAt string
		if err := rows.Scan(&id, &parseID, &c.Field, &c.Extracted, &c.Corrected, &createdAt); err != nil {
			return nil, fmt.Errorf("scan correction: %w", err)
		}
		c.ID, _ = uuid.Parse(id)
		c.ParseID, _ = uuid.Parse(parseID)
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		out = append(out, c)
	}
	return out, rows.Err()
}
