package usecase_browse

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

var (
	ErrDuplicateMovieID = errors.New("duplicate movie id in catalog")
	ErrMovieNotFound    = errors.New("movie not found")
)

// Usecase holds the catalog for the lifetime of the process. The slice is
// never mutated after New, so reads need no locking.
type Usecase struct {
	movies []model.MovieMeta
	byID   map[uuid.UUID]int
	genres []string
}

// New validates and indexes the loaded catalog. Genres are enumerated once:
// the distinct tags present across all movies, sorted.
func New(movies []model.MovieMeta) (*Usecase, error) {
	byID := make(map[uuid.UUID]int, len(movies))
	genreSet := make(map[string]struct{})

	for i := range movies {
		movies[i].Normalize()
		if _, ok := byID[movies[i].ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMovieID, movies[i].ID)
		}
		byID[movies[i].ID] = i
		for _, g := range movies[i].Genres {
			genreSet[g] = struct{}{}
		}
	}

	genres := make([]string, 0, len(genreSet))
	for g := range genreSet {
		genres = append(genres, g)
	}
	sort.Strings(genres)

	return &Usecase{
		movies: movies,
		byID:   byID,
		genres: genres,
	}, nil
}

// All returns the catalog in presentation order.
func (u *Usecase) All() []model.MovieMeta {
	return u.movies
}

// Genres returns the distinct genre tags present in the catalog, sorted.
func (u *Usecase) Genres() []string {
	return u.genres
}

func (u *Usecase) ByID(id uuid.UUID) (model.MovieMeta, error) {
	i, ok := u.byID[id]
	if !ok {
		return model.MovieMeta{}, fmt.Errorf("%w: %s", ErrMovieNotFound, id)
	}
	return u.movies[i], nil
}

// Filter returns the ordered subsequence of the catalog matching both the
// free-text query and the genre constraint. Empty inputs degrade to
// "match all"; there are no error conditions.
func (u *Usecase) Filter(query, genre string) []model.MovieMeta {
	matched := make([]model.MovieMeta, 0, len(u.movies))
	for _, mm := range u.movies {
		if Matches(mm, query, genre) {
			matched = append(matched, mm)
		}
	}
	return matched
}

// Matches is the filter predicate: a case-insensitive substring match of
// the trimmed query against title, year and genre tags, plus an exact
// genre-tag membership check.
func Matches(mm model.MovieMeta, query, genre string) bool {
	if genre != "" && !mm.HasGenre(genre) {
		return false
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	haystack := strings.ToLower(strings.Join(append(
		[]string{mm.Title, strconv.Itoa(mm.Year)},
		mm.Genres...,
	), " "))
	return strings.Contains(haystack, q)
}
