package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"travel_reco/internal/domain"
)

// Source reads the dataset document from MySQL. It never writes.
type Source struct {
	db   *sql.DB
	name string
}

var _ domain.CatalogSource = (*Source)(nil)

func New(db *sql.DB, name string) *Source { return &Source{db: db, name: name} }

func (s *Source) Fetch(ctx context.Context) ([]byte, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, latestDocumentSQL, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("catalog document %q: %w", s.name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog document %q: %w", s.name, err)
	}
	return body, nil
}

// Check verifies the table is reachable; an empty table is fine.
func (s *Source) Check(ctx context.Context) error {
	var one int
	err := s.db.QueryRowContext(ctx, pingDocumentsSQL).Scan(&one)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	return nil
}
