package infra_session_memory

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

func TestSetGetDelete(t *testing.T) {
	cache := New(time.Hour)
	id := model.NewViewerID()
	selected := uuid.New()

	state := model.ViewerState{Query: "iquitos", Genre: "Drama", Selected: &selected}
	require.NoError(t, cache.Set(id, state))

	got, ok, err := cache.Get(id)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, state, got)

	require.NoError(t, cache.Delete(id))
	_, ok, err = cache.Get(id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUnknownViewer(t *testing.T) {
	cache := New(time.Hour)

	_, ok, err := cache.Get(model.NewViewerID())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpiry(t *testing.T) {
	cache := New(time.Minute)
	now := time.Now()
	cache.now = func() time.Time { return now }

	id := model.NewViewerID()
	require.NoError(t, cache.Set(id, model.ViewerState{Query: "planeta"}))

	_, ok, err := cache.Get(id)
	require.NoError(t, err)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, err = cache.Get(id)
	require.NoError(t, err)
	assert.False(t, ok)
}
