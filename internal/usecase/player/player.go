package usecase_player

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

var ErrEmptyManifest = errors.New("manifest link is empty")

// Event is one playback lifecycle transition, published so observers (the
// websocket hub) can watch sessions come and go.
type Event struct {
	ViewerID model.ViewerID
	State    model.PlayerState
	Manifest string
	Degraded bool
}

type Publisher interface {
	PublishPlayback(e Event)
}

// Manager owns the single playback slot of every viewer and enforces the
// session lifecycle: strict release-before-acquire on manifest changes,
// idempotent release on every teardown path. It never talks to the
// streaming library itself; the page reports attach results back.
type Manager struct {
	mu       sync.Mutex
	sessions map[model.ViewerID]*model.PlayerSession

	publisher Publisher
	logger    *slog.Logger
}

type ManagerOption func(*Manager)

func WithLogger(logger *slog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

func WithPublisher(p Publisher) ManagerOption {
	return func(m *Manager) {
		m.publisher = p
	}
}

func New(opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[model.ViewerID]*model.PlayerSession),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Attach binds a manifest to the viewer's playback slot. Any existing
// session is released first so two sessions are never live for one surface.
func (m *Manager) Attach(viewerID model.ViewerID, manifest string) (model.PlayerSession, error) {
	if manifest == "" {
		return model.PlayerSession{}, ErrEmptyManifest
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.releaseLocked(viewerID)

	session := &model.PlayerSession{
		ViewerID: viewerID,
		Manifest: manifest,
		State:    model.PlayerAttaching,
	}
	m.sessions[viewerID] = session

	m.logger.Info("playback attaching",
		slog.String("viewer_id", string(viewerID)),
		slog.String("manifest", manifest),
	)
	m.publish(Event{ViewerID: viewerID, State: model.PlayerAttaching, Manifest: manifest})

	return *session, nil
}

// MarkAttached records the page's report that the streaming session bound
// the source. A report against an idle slot is ignored: it belongs to a
// session that was already torn down.
func (m *Manager) MarkAttached(viewerID model.ViewerID) model.PlayerSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[viewerID]
	if !ok {
		return model.PlayerSession{ViewerID: viewerID, State: model.PlayerIdle}
	}

	session.State = model.PlayerAttached
	m.logger.Info("playback attached", slog.String("viewer_id", string(viewerID)))
	m.publish(Event{ViewerID: viewerID, State: model.PlayerAttached, Manifest: session.Manifest})

	return *session
}

// Release tears the viewer's session down. Releasing an already-idle slot
// is a no-op, not an error.
func (m *Manager) Release(viewerID model.ViewerID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.releaseLocked(viewerID)
}

// ReportUnsupported records that the client can play the manifest neither
// natively nor through the streaming library. Non-fatal: the slot goes back
// to idle and the condition is logged as degraded capability.
func (m *Manager) ReportUnsupported(viewerID model.ViewerID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[viewerID]
	manifest := ""
	if ok {
		manifest = session.Manifest
	}

	m.logger.Warn("playback capability unsupported",
		slog.String("viewer_id", string(viewerID)),
		slog.String("manifest", manifest),
	)
	m.releaseLocked(viewerID)
	m.publish(Event{ViewerID: viewerID, State: model.PlayerIdle, Manifest: manifest, Degraded: true})
}

// State reports the current slot state, PlayerIdle when nothing is bound.
func (m *Manager) State(viewerID model.ViewerID) model.PlayerState {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[viewerID]
	if !ok {
		return model.PlayerIdle
	}
	return session.State
}

func (m *Manager) releaseLocked(viewerID model.ViewerID) {
	session, ok := m.sessions[viewerID]
	if !ok {
		return
	}
	delete(m.sessions, viewerID)

	m.logger.Info("playback released",
		slog.String("viewer_id", string(viewerID)),
		slog.String("manifest", session.Manifest),
	)
	m.publish(Event{ViewerID: viewerID, State: model.PlayerIdle, Manifest: session.Manifest})
}

func (m *Manager) publish(e Event) {
	if m.publisher == nil {
		return
	}
	m.publisher.PublishPlayback(e)
}
