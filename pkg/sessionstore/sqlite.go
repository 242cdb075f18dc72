package sessionstore

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/goliatone/go-formschema/pkg/history"
)

// SQLite stores sessions in a single table of a local database file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: open %s: %w", path, err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	ddl := `
	CREATE TABLE IF NOT EXISTS sessions (
		name TEXT PRIMARY KEY,
		snapshot TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return fmt.Errorf("sessionstore: migrate: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, name string) (history.Snapshot, error) {
	row := s.db.QueryRowContext(ctx, `SELECT snapshot FROM sessions WHERE name = ?`, name)

	var raw string
	if err := row.Scan(&raw); err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return history.Snapshot{}, notFound(name)
		}
		return history.Snapshot{}, fmt.Errorf("sessionstore: load %s: %w", name, err)
	}

	var snap history.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return history.Snapshot{}, fmt.Errorf("sessionstore: decode %s: %w", name, err)
	}
	return snap, nil
}

func (s *SQLite) Save(ctx context.Context, name string, snap history.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("sessionstore: encode %s: %w", name, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (name, snapshot) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET snapshot = excluded.snapshot, updated_at = CURRENT_TIMESTAMP`,
		name, string(raw),
	)
	if err != nil {
		return fmt.Errorf("sessionstore: save %s: %w", name, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, name string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("sessionstore: delete %s: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sessionstore: delete %s: %w", name, err)
	}
	if affected == 0 {
		return notFound(name)
	}
	return nil
}

func (s *SQLite) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sessions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("sessionstore: list: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("sessionstore: list: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
