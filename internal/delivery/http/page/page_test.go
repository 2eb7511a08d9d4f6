package http_page

import (
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

func TestPageRenders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	uc, err := usecase_browse.New([]model.MovieMeta{
		{ID: uuid.New(), Title: "Planeta Azul", Year: 1934, Genres: []string{"Aventura", "Clásico"}},
		{ID: uuid.New(), Title: "Historias de Iquitos", Year: 2020, Genres: []string{"Drama"}},
	})
	require.NoError(t, err)

	engine := gin.New()
	New(uc).RegisterRoutes(engine.Group("/"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	// genre options come from the catalog, sorted
	assert.Contains(t, body, `<option value="Aventura">`)
	assert.Contains(t, body, `<option value="Clásico">`)
	assert.Contains(t, body, `<option value="Drama">`)
	// the empty-state message and overlay root are part of the shell
	assert.Contains(t, body, "No se encontraron películas")
	assert.Contains(t, body, `id="overlayRoot"`)
	assert.Contains(t, body, "hls.js")
}
