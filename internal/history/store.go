// ABOUTME: SQLite-backed history of submitted prompt instructions
// ABOUTME: Provides recording and recency queries over past prompts

package history

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Prompt is one submitted instruction.
type Prompt struct {
	ID        string
	Title     string
	Text      string
	CreatedAt time.Time
}

type Store struct {
	conn *sql.DB
}

// Open opens or creates the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL keeps writes from blocking the render loop's reads.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn}, nil
}

func (s *Store) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Record stores a submitted prompt. An empty ID is assigned a fresh UUID;
// the assigned ID is returned.
func (s *Store) Record(p Prompt) (string, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.conn.Exec(
		"INSERT INTO prompts (id, title, text, created_at) VALUES (?, ?, ?, ?)",
		p.ID, p.Title, p.Text, p.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("record prompt: %w", err)
	}
	return p.ID, nil
}

// Recent returns up to limit prompts, newest first.
func (s *Store) Recent(limit int) ([]Prompt, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.conn.Query(
		"SELECT id, title, text, created_at FROM prompts ORDER BY created_at DESC, id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query prompts: %w", err)
	}
	defer rows.Close()

	var out []Prompt
	for rows.Next() {
		var p Prompt
		if err := rows.Scan(&p.ID, &p.Title, &p.Text, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
