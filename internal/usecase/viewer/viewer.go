package usecase_viewer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

var (
	ErrMovieNotFound       = errors.New("movie not found")
	ErrFailedToLoadState   = errors.New("failed to load viewer state")
	ErrFailedToStoreState  = errors.New("failed to store viewer state")
	ErrFailedToAttachMovie = errors.New("failed to attach movie")
)

// SessionCache keeps per-viewer UI state between requests. Entries expire
// on their own; the usecase never deletes them explicitly.
type SessionCache interface {
	Set(id model.ViewerID, state model.ViewerState) error
	Get(id model.ViewerID) (model.ViewerState, bool, error)
}

// Catalog resolves selections against the immutable catalog.
type Catalog interface {
	ByID(id uuid.UUID) (model.MovieMeta, error)
}

// Player owns the playback slot tied to the viewer's selection.
type Player interface {
	Attach(viewerID model.ViewerID, manifest string) (model.PlayerSession, error)
	Release(viewerID model.ViewerID)
}

// Usecase is the composition root of a browsing session: it owns the three
// pieces of UI state (query, genre, selection) and couples the overlay to
// the playback slot. Overlay visibility is derived from the selection, so
// closing and releasing can never happen independently.
type Usecase struct {
	cache   SessionCache
	catalog Catalog
	player  Player
}

func New(cache SessionCache, catalog Catalog, player Player) *Usecase {
	return &Usecase{
		cache:   cache,
		catalog: catalog,
		player:  player,
	}
}

// State returns the viewer's current state; an unknown or expired viewer
// gets a fresh zero state.
func (u *Usecase) State(ctx context.Context, id model.ViewerID) (model.ViewerState, error) {
	state, _, err := u.cache.Get(id)
	if err != nil {
		return model.ViewerState{}, fmt.Errorf("%w: %w", ErrFailedToLoadState, err)
	}
	return state, nil
}

func (u *Usecase) SetQuery(ctx context.Context, id model.ViewerID, query string) (model.ViewerState, error) {
	return u.mutate(id, func(state *model.ViewerState) error {
		state.Query = query
		return nil
	})
}

func (u *Usecase) SetGenre(ctx context.Context, id model.ViewerID, genre string) (model.ViewerState, error) {
	return u.mutate(id, func(state *model.ViewerState) error {
		state.Genre = genre
		return nil
	})
}

// Select makes movieID the current selection, which opens the overlay and
// binds the movie's manifest to the playback slot. Selecting while another
// movie plays releases the old session before the new one is created.
func (u *Usecase) Select(ctx context.Context, id model.ViewerID, movieID uuid.UUID) (model.ViewerState, error) {
	mm, err := u.catalog.ByID(movieID)
	if err != nil {
		return model.ViewerState{}, fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	}

	state, err := u.mutate(id, func(state *model.ViewerState) error {
		if _, err := u.player.Attach(id, mm.ManifestLink); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToAttachMovie, err)
		}
		selected := mm.ID
		state.Selected = &selected
		return nil
	})
	if err != nil {
		// stored state carries no selection, so an attached slot must not
		// survive a store failure
		if errors.Is(err, ErrFailedToStoreState) {
			u.player.Release(id)
		}
		return model.ViewerState{}, err
	}
	return state, nil
}

// Close clears the selection and releases the playback session in one step.
// Closing with nothing selected is a no-op.
func (u *Usecase) Close(ctx context.Context, id model.ViewerID) (model.ViewerState, error) {
	return u.mutate(id, func(state *model.ViewerState) error {
		state.Selected = nil
		u.player.Release(id)
		return nil
	})
}

func (u *Usecase) mutate(id model.ViewerID, fn func(*model.ViewerState) error) (model.ViewerState, error) {
	state, _, err := u.cache.Get(id)
	if err != nil {
		return model.ViewerState{}, fmt.Errorf("%w: %w", ErrFailedToLoadState, err)
	}

	if err := fn(&state); err != nil {
		return model.ViewerState{}, err
	}

	if err := u.cache.Set(id, state); err != nil {
		return model.ViewerState{}, fmt.Errorf("%w: %w", ErrFailedToStoreState, err)
	}
	return state, nil
}
