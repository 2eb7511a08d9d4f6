package infra_catalog_postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Source loads the catalog once from the movies table. The table is owned
// by whatever ingests content; this service only ever reads it.
type Source struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Source {
	return &Source{db: db}
}

func (s *Source) Load(ctx context.Context) ([]MovieDB, error) {
	query := `
		SELECT id, title, year, genres, overview, poster_link, manifest_link
		FROM movies
		ORDER BY position ASC
	`

	var moviesDB []MovieDB
	err := s.db.SelectContext(ctx, &moviesDB, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}

	return moviesDB, nil
}
