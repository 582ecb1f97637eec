// Package store persists canvases and their undo history in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/revolutionary-ui/revui/internal/builder"
	"github.com/revolutionary-ui/revui/internal/export"
	"github.com/revolutionary-ui/revui/internal/version"
)

// ErrNotFound is returned when a canvas does not exist.
var ErrNotFound = errors.New("canvas not found")

// Canvas is a persisted builder state.
type Canvas struct {
	Name       string
	Components []*builder.Node
	Past       [][]*builder.Node
	Future     [][]*builder.Node
	SelectedID string
	Settings   builder.Settings
	UpdatedAt  time.Time
}

// FromState captures the persistent parts of s under name.
func FromState(name string, s *builder.State) *Canvas {
	return &Canvas{
		Name:       name,
		Components: s.Components,
		Past:       s.History.Past,
		Future:     s.History.Future,
		SelectedID: s.SelectedID,
		Settings:   s.Settings,
	}
}

// State rebuilds a builder state from the canvas.
func (c *Canvas) State() *builder.State {
	s := builder.Restore(c.Components, c.Past, c.Future, c.Settings)
	if builder.Find(s.Components, c.SelectedID) != nil {
		s.SelectedID = c.SelectedID
	}
	return s
}

// Summary is one row of List.
type Summary struct {
	Name      string    `json:"name"`
	Nodes     int       `json:"nodes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store wraps the SQLite connection.
type Store struct {
	conn *sql.DB
	log  *slog.Logger
}

// Open opens (or creates) the database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time
	conn.SetMaxOpenConns(1)

	s := &Store{conn: conn, log: logger.With("component", "store")}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := s.stamp(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// stamp records the running version as the database writer. A database
// last written by a newer release is still opened, with a warning.
func (s *Store) stamp() error {
	prev, err := s.WrittenBy(context.Background())
	if err != nil {
		return err
	}
	if version.IsNewerThan(prev, version.Version) {
		s.log.Warn("database was written by a newer revui", "written_by", prev, "running", version.Version)
		return nil
	}
	_, err = s.conn.Exec(
		`INSERT INTO meta (key, value) VALUES ('written_by', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, version.Version)
	if err != nil {
		return fmt.Errorf("stamp version: %w", err)
	}
	return nil
}

// WrittenBy returns the revui version that last opened the database for
// writing, or "" for a fresh database.
func (s *Store) WrittenBy(ctx context.Context) (string, error) {
	var v string
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'written_by'`).Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read meta: %w", err)
	}
	return v, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS canvases (
			name TEXT PRIMARY KEY,
			tree_json TEXT NOT NULL DEFAULT '[]',
			selected_id TEXT NOT NULL DEFAULT '',
			settings_json TEXT NOT NULL DEFAULT '{}',
			node_count INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS history (
			canvas TEXT NOT NULL REFERENCES canvases(name),
			kind TEXT NOT NULL CHECK (kind IN ('past', 'future')),
			seq INTEGER NOT NULL,
			tree_json TEXT NOT NULL,
			PRIMARY KEY (canvas, kind, seq)
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, m := range migrations {
		if _, err := s.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %s: %w", firstLine(m), err)
		}
	}
	return nil
}

// Save writes c, replacing any canvas of the same name and its history.
func (s *Store) Save(ctx context.Context, c *Canvas) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("save canvas: empty name")
	}
	tree, err := export.JSON(c.Components)
	if err != nil {
		return fmt.Errorf("encode tree: %w", err)
	}
	settings, err := json.Marshal(c.Settings)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO canvases (name, tree_json, selected_id, settings_json, node_count, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			tree_json = excluded.tree_json,
			selected_id = excluded.selected_id,
			settings_json = excluded.settings_json,
			node_count = excluded.node_count,
			updated_at = excluded.updated_at`,
		name, tree, c.SelectedID, string(settings), builder.Count(c.Components), now,
	)
	if err != nil {
		return fmt.Errorf("upsert canvas: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE canvas = ?`, name); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	if err := insertSnapshots(ctx, tx, name, "past", c.Past); err != nil {
		return err
	}
	if err := insertSnapshots(ctx, tx, name, "future", c.Future); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	c.UpdatedAt = now
	s.log.Debug("canvas saved", "name", name, "nodes", builder.Count(c.Components),
		"past", len(c.Past), "future", len(c.Future))
	return nil
}

func insertSnapshots(ctx context.Context, tx *sql.Tx, canvas, kind string, snaps [][]*builder.Node) error {
	for seq, snap := range snaps {
		data, err := export.JSON(snap)
		if err != nil {
			return fmt.Errorf("encode %s snapshot %d: %w", kind, seq, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO history (canvas, kind, seq, tree_json) VALUES (?, ?, ?, ?)`,
			canvas, kind, seq, data,
		); err != nil {
			return fmt.Errorf("insert %s snapshot: %w", kind, err)
		}
	}
	return nil
}

// Load reads the canvas called name. It returns ErrNotFound when absent.
func (s *Store) Load(ctx context.Context, name string) (*Canvas, error) {
	c := &Canvas{Name: name}
	var tree, settings string
	err := s.conn.QueryRowContext(ctx,
		`SELECT tree_json, selected_id, settings_json, updated_at FROM canvases WHERE name = ?`, name,
	).Scan(&tree, &c.SelectedID, &settings, &c.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load canvas: %w", err)
	}

	if c.Components, err = export.Parse([]byte(tree)); err != nil {
		return nil, fmt.Errorf("canvas %s: %w", name, err)
	}
	c.Settings = builder.DefaultSettings()
	if err := json.Unmarshal([]byte(settings), &c.Settings); err != nil {
		return nil, fmt.Errorf("canvas %s: settings: %w", name, err)
	}

	rows, err := s.conn.QueryContext(ctx,
		`SELECT kind, tree_json FROM history WHERE canvas = ? ORDER BY kind, seq`, name)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, data string
		if err := rows.Scan(&kind, &data); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		snap, err := export.Parse([]byte(data))
		if err != nil {
			return nil, fmt.Errorf("canvas %s: %s snapshot: %w", name, kind, err)
		}
		if kind == "past" {
			c.Past = append(c.Past, snap)
		} else {
			c.Future = append(c.Future, snap)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns every saved canvas, most recently updated first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT name, node_count, updated_at FROM canvases ORDER BY updated_at DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("list canvases: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.Name, &sum.Nodes, &sum.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan canvas: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Delete removes a canvas and its history. It returns ErrNotFound when
// there was nothing to delete.
func (s *Store) Delete(ctx context.Context, name string) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE canvas = ?`, name); err != nil {
		return fmt.Errorf("delete history: %w", err)
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM canvases WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete canvas: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	s.log.Debug("canvas deleted", "name", name)
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
