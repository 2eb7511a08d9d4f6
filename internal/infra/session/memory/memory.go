package infra_session_memory

import (
	"sync"
	"time"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

type entry struct {
	state     model.ViewerState
	expiresAt time.Time
}

// Cache is the default viewer-session backend: a TTL-bounded map guarded by
// a mutex. Suitable for a single-instance deployment; the Redis backend
// covers everything else.
type Cache struct {
	mu      sync.RWMutex
	entries map[model.ViewerID]entry
	ttl     time.Duration
	now     func() time.Time
}

func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[model.ViewerID]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *Cache) Set(id model.ViewerID, state model.ViewerState) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = entry{
		state:     state,
		expiresAt: c.now().Add(c.ttl),
	}
	return nil
}

func (c *Cache) Get(id model.ViewerID) (model.ViewerState, bool, error) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()

	if !ok {
		return model.ViewerState{}, false, nil
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return model.ViewerState{}, false, nil
	}
	return e.state, true, nil
}

func (c *Cache) Delete(id model.ViewerID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, id)
	return nil
}
