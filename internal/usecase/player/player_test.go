package usecase_player

import (
	"sync"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

type UsecasePlayerUnitSuite struct {
	suite.Suite
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []Event
}

func (p *recordingPublisher) PublishPlayback(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) states() []model.PlayerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.PlayerState, len(p.events))
	for i, e := range p.events {
		out[i] = e.State
	}
	return out
}

type resources struct {
	manager   *Manager
	publisher *recordingPublisher
}

func initResources() *resources {
	publisher := &recordingPublisher{}
	return &resources{
		manager:   New(WithPublisher(publisher)),
		publisher: publisher,
	}
}

const (
	viewerA = model.ViewerID("viewer-a")
	viewerB = model.ViewerID("viewer-b")

	manifestOne = "https://example.com/one.m3u8"
	manifestTwo = "https://example.com/two.m3u8"
)

func (s *UsecasePlayerUnitSuite) TestAttach(t provider.T) {
	t.Parallel()

	t.Run("Should reject empty manifest", func(t provider.T) {
		r := initResources()

		_, err := r.manager.Attach(viewerA, "")

		assert.ErrorIs(t, err, ErrEmptyManifest)
		assert.Equal(t, model.PlayerIdle, r.manager.State(viewerA))
	})

	t.Run("Should move idle slot to attaching", func(t provider.T) {
		r := initResources()

		session, err := r.manager.Attach(viewerA, manifestOne)

		assert.NoError(t, err)
		assert.Equal(t, model.PlayerAttaching, session.State)
		assert.Equal(t, model.PlayerAttaching, r.manager.State(viewerA))
	})

	t.Run("Should release previous session before acquiring new one", func(t provider.T) {
		r := initResources()

		_, err := r.manager.Attach(viewerA, manifestOne)
		assert.NoError(t, err)
		_, err = r.manager.Attach(viewerA, manifestTwo)
		assert.NoError(t, err)

		// attaching(one), released(one), attaching(two): never two live sessions
		assert.Equal(t, []model.PlayerState{
			model.PlayerAttaching,
			model.PlayerIdle,
			model.PlayerAttaching,
		}, r.publisher.states())
		assert.Equal(t, manifestOne, r.publisher.events[1].Manifest)
		assert.Equal(t, manifestTwo, r.publisher.events[2].Manifest)
	})

	t.Run("Should keep slots of different viewers independent", func(t provider.T) {
		r := initResources()

		_, err := r.manager.Attach(viewerA, manifestOne)
		assert.NoError(t, err)
		_, err = r.manager.Attach(viewerB, manifestTwo)
		assert.NoError(t, err)

		assert.Equal(t, model.PlayerAttaching, r.manager.State(viewerA))
		assert.Equal(t, model.PlayerAttaching, r.manager.State(viewerB))
	})
}

func (s *UsecasePlayerUnitSuite) TestMarkAttached(t provider.T) {
	t.Parallel()

	t.Run("Should promote attaching session", func(t provider.T) {
		r := initResources()

		_, err := r.manager.Attach(viewerA, manifestOne)
		assert.NoError(t, err)
		session := r.manager.MarkAttached(viewerA)

		assert.Equal(t, model.PlayerAttached, session.State)
		assert.Equal(t, model.PlayerAttached, r.manager.State(viewerA))
	})

	t.Run("Should ignore report against idle slot", func(t provider.T) {
		r := initResources()

		session := r.manager.MarkAttached(viewerA)

		assert.Equal(t, model.PlayerIdle, session.State)
		assert.Empty(t, r.publisher.states())
	})
}

func (s *UsecasePlayerUnitSuite) TestRelease(t provider.T) {
	t.Parallel()

	t.Run("Should release attached session", func(t provider.T) {
		r := initResources()

		_, err := r.manager.Attach(viewerA, manifestOne)
		assert.NoError(t, err)
		r.manager.MarkAttached(viewerA)
		r.manager.Release(viewerA)

		assert.Equal(t, model.PlayerIdle, r.manager.State(viewerA))
	})

	t.Run("Should treat releasing idle slot as no-op", func(t provider.T) {
		r := initResources()

		r.manager.Release(viewerA)
		r.manager.Release(viewerA)

		assert.Equal(t, model.PlayerIdle, r.manager.State(viewerA))
		assert.Empty(t, r.publisher.states())
	})
}

func (s *UsecasePlayerUnitSuite) TestReportUnsupported(t provider.T) {
	t.Parallel()

	r := initResources()

	_, err := r.manager.Attach(viewerA, manifestOne)
	assert.NoError(t, err)
	r.manager.ReportUnsupported(viewerA)

	assert.Equal(t, model.PlayerIdle, r.manager.State(viewerA))

	events := r.publisher.events
	last := events[len(events)-1]
	assert.True(t, last.Degraded)
	assert.Equal(t, model.PlayerIdle, last.State)
	assert.Equal(t, manifestOne, last.Manifest)
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecasePlayerUnitSuite))
}
