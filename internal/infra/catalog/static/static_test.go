package infra_catalog_static

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	movies, err := New().Load()
	require.NoError(t, err)
	require.NotEmpty(t, movies)

	seen := make(map[uuid.UUID]bool)
	for _, mm := range movies {
		assert.False(t, seen[mm.ID], "duplicate id %s", mm.ID)
		seen[mm.ID] = true

		assert.NotEmpty(t, mm.Title)
		assert.NotZero(t, mm.Year)
		assert.NotEmpty(t, mm.ManifestLink)
		assert.NotNil(t, mm.Genres)
	}
}

func TestLoadKeepsSeedOrder(t *testing.T) {
	movies, err := New().Load()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(movies), 2)
	assert.Equal(t, "Planeta Azul", movies[0].Title)
	assert.Equal(t, "Historias de Iquitos", movies[1].Title)
}
