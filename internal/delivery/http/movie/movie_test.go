package http_movie

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
	usecase_browse "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/browse"
)

func newRouter(t *testing.T, movies []model.MovieMeta) (*gin.Engine, *usecase_browse.Usecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	uc, err := usecase_browse.New(movies)
	require.NoError(t, err)

	engine := gin.New()
	New(uc).RegisterRoutes(engine.Group("/api/v1"))
	return engine, uc
}

func testCatalog() []model.MovieMeta {
	return []model.MovieMeta{
		{ID: uuid.New(), Title: "Planeta Azul", Year: 1934, Genres: []string{"Aventura", "Clásico"}, ManifestLink: "https://example.com/a.m3u8"},
		{ID: uuid.New(), Title: "Historias de Iquitos", Year: 2020, Genres: []string{"Drama"}, ManifestLink: "https://example.com/b.m3u8"},
	}
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestGetMovies(t *testing.T) {
	testCases := []struct {
		name           string
		path           string
		expectedTitles []string
	}{
		{
			name:           "no filters returns whole catalog in order",
			path:           "/api/v1/movies",
			expectedTitles: []string{"Planeta Azul", "Historias de Iquitos"},
		},
		{
			name:           "query filters case-insensitively",
			path:           "/api/v1/movies?query=iquitos",
			expectedTitles: []string{"Historias de Iquitos"},
		},
		{
			name:           "genre filters by exact tag",
			path:           "/api/v1/movies?genre=Cl%C3%A1sico",
			expectedTitles: []string{"Planeta Azul"},
		},
		{
			name:           "no match yields empty list, not an error",
			path:           "/api/v1/movies?query=xyz",
			expectedTitles: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _ := newRouter(t, testCatalog())

			rec := doGet(t, engine, tc.path)

			require.Equal(t, http.StatusOK, rec.Code)
			var resp MoviesListResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, len(tc.expectedTitles), resp.Total)
			got := make([]string, len(resp.Movies))
			for i, m := range resp.Movies {
				got[i] = m.Title
			}
			assert.Equal(t, tc.expectedTitles, got)
		})
	}
}

func TestGetGenres(t *testing.T) {
	engine, _ := newRouter(t, testCatalog())

	rec := doGet(t, engine, "/api/v1/movies/genres")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp GenresResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"Aventura", "Clásico", "Drama"}, resp.Genres)
}

func TestGetMovie(t *testing.T) {
	catalog := testCatalog()
	engine, _ := newRouter(t, catalog)

	t.Run("existing movie", func(t *testing.T) {
		rec := doGet(t, engine, "/api/v1/movies/"+catalog[0].ID.String())

		require.Equal(t, http.StatusOK, rec.Code)
		var resp MovieResponseDTO
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Planeta Azul", resp.Title)
		assert.Equal(t, catalog[0].ManifestLink, resp.ManifestLink)
	})

	t.Run("unknown movie", func(t *testing.T) {
		rec := doGet(t, engine, "/api/v1/movies/"+uuid.NewString())
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		rec := doGet(t, engine, "/api/v1/movies/not-a-uuid")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
