package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqlQueries holds the dialect specific statements of a SQLStore
type sqlQueries struct {
	schema string
	load   string
	save   string
}

// SQLStore keeps the document in a single row of the documents table
type SQLStore struct {
	db      *sql.DB
	name    string
	queries sqlQueries
}

func newSQLStore(ctx context.Context, db *sql.DB, name string, queries sqlQueries) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, queries.schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &SQLStore{db: db, name: name, queries: queries}, nil
}

// Load reads the document row
func (s *SQLStore) Load(ctx context.Context) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, s.queries.load, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return body, nil
}

// Save upserts the document row
func (s *SQLStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, s.queries.save, s.name, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	return nil
}

// Health performs a health check on the database
func (s *SQLStore) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var result int
	err := s.db.QueryRowContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}

	if result != 1 {
		return fmt.Errorf("unexpected health check result: %d", result)
	}

	return nil
}

// Close closes the database connection gracefully
func (s *SQLStore) Close() error {
	return s.db.Close()
}
