package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognicore/treener/pkg/treener/internalerr"
	"github.com/cognicore/treener/pkg/treener/ner"
	"github.com/cognicore/treener/pkg/treener/store"
	"github.com/cognicore/treener/pkg/treener/tree"
)

// sqliteStore implements the Store interface using SQLite
type sqliteStore struct {
	db   *sql.DB
	view tree.View
	now  func() time.Time
}

// OpenSQLite opens a SQLite database with WAL mode enabled. view selects
// the word layer stored in the leaves table.
func OpenSQLite(ctx context.Context, path string, view tree.View) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", internalerr.ErrStoreUnavailable, err)
	}

	// Enable foreign keys
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{
		db:   db,
		view: view,
		now:  func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close closes the database connection
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// initSchema creates tables if they don't exist
func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS trees (
	id TEXT PRIMARY KEY,
	name TEXT UNIQUE NOT NULL,
	body TEXT NOT NULL,
	saved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS leaves (
	tree_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	word TEXT NOT NULL,
	label TEXT,
	PRIMARY KEY(tree_id, position),
	FOREIGN KEY(tree_id) REFERENCES trees(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS leaves_label ON leaves(label);
`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Save replaces any tree stored under the same name. The new row gets a
// fresh ULID so ids sort by save time.
func (s *sqliteStore) Save(ctx context.Context, t *tree.Tree) error {
	if err := store.ValidateName(t.Name); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// foreign_keys is per connection, so do not rely on the cascade.
	if _, err := tx.ExecContext(ctx, `DELETE FROM leaves WHERE tree_id IN (SELECT id FROM trees WHERE name = ?)`, t.Name); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM trees WHERE name = ?`, t.Name); err != nil {
		return err
	}

	id := ulid.Make().String()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO trees (id, name, body, saved_at) VALUES (?, ?, ?, ?)`,
		id, t.Name, t.String(), s.now().Format(time.RFC3339Nano),
	)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO leaves (tree_id, position, word, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, l := range store.LeafLabels(t, s.view) {
		var label sql.NullString
		if l.Label != "" {
			label = sql.NullString{String: string(l.Label), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, id, l.Position, l.Word, label); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Load parses the stored body of the named tree.
func (s *sqliteStore) Load(ctx context.Context, name string) (*tree.Tree, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM trees WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tree %q: %w", name, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	root, err := tree.Parse(body, s.view)
	if err != nil {
		return nil, fmt.Errorf("tree %q: %w", name, err)
	}
	return tree.New(name, root), nil
}

// List returns every saved tree with its leaf and entity counts.
func (s *sqliteStore) List(ctx context.Context) ([]store.Record, error) {
	const query = `
SELECT t.id, t.name, t.saved_at,
	COUNT(l.position),
	COALESCE(SUM(CASE WHEN l.label IS NOT NULL AND l.label != ? THEN 1 ELSE 0 END), 0)
FROM trees t
LEFT JOIN leaves l ON l.tree_id = t.id
GROUP BY t.id, t.name, t.saved_at
ORDER BY t.name
`
	rows, err := s.db.QueryContext(ctx, query, string(ner.None))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.Record
	for rows.Next() {
		var (
			rec     store.Record
			savedAt string
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &savedAt, &rec.Leaves, &rec.Entities); err != nil {
			return nil, err
		}
		if ts, err := time.Parse(time.RFC3339Nano, savedAt); err == nil {
			rec.SavedAt = ts
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Labels reads the leaves table rather than re-parsing the tree body.
func (s *sqliteStore) Labels(ctx context.Context, name string) ([]store.LeafLabel, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM trees WHERE name = ?`, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tree %q: %w", name, internalerr.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT position, word, label FROM leaves WHERE tree_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []store.LeafLabel
	for rows.Next() {
		var (
			l     store.LeafLabel
			label sql.NullString
		)
		if err := rows.Scan(&l.Position, &l.Word, &label); err != nil {
			return nil, err
		}
		l.Label = ner.Label(label.String)
		out = append(out, l)
	}
	return out, rows.Err()
}
