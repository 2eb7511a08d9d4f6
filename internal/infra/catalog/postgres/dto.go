package infra_catalog_postgres

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

type MovieDB struct {
	ID           uuid.UUID      `db:"id"`
	PosterLink   string         `db:"poster_link"`
	ManifestLink string         `db:"manifest_link"`
	Title        string         `db:"title"`
	Genres       pq.StringArray `db:"genres"`
	Year         int            `db:"year"`
	Overview     string         `db:"overview"`
}

func (m *MovieDB) ToDomain() model.MovieMeta {
	mm := model.MovieMeta{
		ID:           m.ID,
		PosterLink:   m.PosterLink,
		ManifestLink: m.ManifestLink,
		Title:        m.Title,
		Genres:       []string(m.Genres),
		Year:         m.Year,
		Overview:     m.Overview,
	}
	mm.Normalize()
	return mm
}

func ToDomainList(moviesDB []MovieDB) []model.MovieMeta {
	movies := make([]model.MovieMeta, len(moviesDB))
	for i, movieDB := range moviesDB {
		movies[i] = movieDB.ToDomain()
	}
	return movies
}
