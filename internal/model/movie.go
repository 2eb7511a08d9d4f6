package model

import "github.com/google/uuid"

const EmptyTitle string = ""

// MovieMeta is one entry of the static catalog. The catalog is loaded once
// at startup and never mutated afterwards.
type MovieMeta struct {
	ID           uuid.UUID
	PosterLink   string
	ManifestLink string
	Title        string
	Genres       []string
	Year         int

	Overview string
}

// Normalize defaults absent optional fields so callers never have to
// nil-check them.
func (mm *MovieMeta) Normalize() {
	if mm.Genres == nil {
		mm.Genres = []string{}
	}
}

// HasGenre reports whether the movie carries the exact genre tag.
func (mm MovieMeta) HasGenre(genre string) bool {
	for _, g := range mm.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
