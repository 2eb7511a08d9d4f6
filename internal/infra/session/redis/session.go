package infra_session_redis

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"

	"github.com/guevarapcharly-commits/pelis-avod/internal/config"
	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

// Cache keeps viewer UI state in Redis so a restart of the service does not
// drop in-flight browsing sessions. Entries carry a TTL; an expired entry
// simply reads back as absent.
type Cache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		log.Fatal("redis ping failed", err)
	}

	return client
}

func New(client *redis.Client, key string, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

type stateDTO struct {
	Query    string  `json:"query"`
	Genre    string  `json:"genre"`
	Selected *string `json:"selected,omitempty"`
}

func (c *Cache) Set(id model.ViewerID, state model.ViewerState) error {
	dto := stateDTO{
		Query: state.Query,
		Genre: state.Genre,
	}
	if state.Selected != nil {
		s := state.Selected.String()
		dto.Selected = &s
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("encode viewer state: %w", err)
	}
	if err := c.client.Set(c.fullKey(id), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("store viewer state: %w", err)
	}
	return nil
}

func (c *Cache) Get(id model.ViewerID) (model.ViewerState, bool, error) {
	raw, err := c.client.Get(c.fullKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return model.ViewerState{}, false, nil
		}
		return model.ViewerState{}, false, fmt.Errorf("load viewer state: %w", err)
	}

	var dto stateDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return model.ViewerState{}, false, fmt.Errorf("decode viewer state: %w", err)
	}

	state := model.ViewerState{
		Query: dto.Query,
		Genre: dto.Genre,
	}
	if dto.Selected != nil {
		id, err := uuid.Parse(*dto.Selected)
		if err != nil {
			return model.ViewerState{}, false, fmt.Errorf("decode viewer selection: %w", err)
		}
		state.Selected = &id
	}
	return state, true, nil
}

func (c *Cache) Delete(id model.ViewerID) error {
	if err := c.client.Del(c.fullKey(id)).Err(); err != nil {
		return fmt.Errorf("drop viewer state: %w", err)
	}
	return nil
}

func (c *Cache) fullKey(id model.ViewerID) string {
	if c.key != "" {
		return c.key + ":" + string(id)
	}
	return string(id)
}
