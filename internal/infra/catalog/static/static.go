package infra_catalog_static

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

//go:embed seed.json
var seedJSON []byte

type movieSeed struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Year         int      `json:"year"`
	Genres       []string `json:"genres"`
	Overview     string   `json:"overview"`
	PosterLink   string   `json:"poster_link"`
	ManifestLink string   `json:"manifest_link"`
}

func (s movieSeed) toDomain() (model.MovieMeta, error) {
	id, err := uuid.Parse(s.ID)
	if err != nil {
		return model.MovieMeta{}, fmt.Errorf("bad movie id %q: %w", s.ID, err)
	}
	mm := model.MovieMeta{
		ID:           id,
		Title:        s.Title,
		Year:         s.Year,
		Genres:       s.Genres,
		Overview:     s.Overview,
		PosterLink:   s.PosterLink,
		ManifestLink: s.ManifestLink,
	}
	mm.Normalize()
	return mm, nil
}

// Source serves the catalog from the seed embedded in the binary.
type Source struct{}

func New() *Source {
	return &Source{}
}

// Load decodes the embedded seed in file order.
func (s *Source) Load() ([]model.MovieMeta, error) {
	var seeds []movieSeed
	if err := json.Unmarshal(seedJSON, &seeds); err != nil {
		return nil, fmt.Errorf("decode embedded seed: %w", err)
	}

	movies := make([]model.MovieMeta, 0, len(seeds))
	for _, s := range seeds {
		mm, err := s.toDomain()
		if err != nil {
			return nil, err
		}
		movies = append(movies, mm)
	}
	return movies, nil
}
