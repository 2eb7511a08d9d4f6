package app

import (
	"context"
	"log"
	"log/slog"
	"time"

	"github.com/guevarapcharly-commits/pelis-avod/internal/config"
	http_init "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/init"
	http_viewer_middleware "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/middleware/viewer"
	http_movie "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/movie"
	http_page "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/page"
	http_playback "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/playback"
	http_viewer "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/viewer"
	ws_playback "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/ws/playback"
	infra_catalog_postgres "github.com/guevarapcharly-commits/pelis-avod/internal/infra/catalog/postgres"
	infra_catalog_static "github.com/guevarapcharly-commits/pelis-avod/internal/infra/catalog/static"
	infra_session_memory "github.com/guevarapcharly-commits/pelis-avod/internal/infra/session/memory"
	infra_session_redis "github.com/guevarapcharly-commits/pelis-avod/internal/infra/session/redis"
	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
	usecase_browse "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/browse"
	usecase_player "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/player"
	usecase_viewer "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/viewer"
)

func Go(cfg *config.Config) {
	movies := loadCatalog(cfg)

	browseUC, err := usecase_browse.New(movies)
	if err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}

	sessionCache := newSessionCache(cfg)

	hub := ws_playback.New(slog.Default())
	playerManager := usecase_player.New(usecase_player.WithPublisher(hub))
	viewerUC := usecase_viewer.New(sessionCache, browseUC, playerManager)

	identity := http_viewer_middleware.New()

	controllerPool := http_init.NewControllerPool(identity.ViewerIdentity())
	controllerPool.Add(http_movie.New(browseUC))
	controllerPool.Add(http_viewer.New(viewerUC))
	controllerPool.Add(http_playback.New(playerManager, hub))
	controllerPool.AddRoot(http_page.New(browseUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}

func loadCatalog(cfg *config.Config) []model.MovieMeta {
	switch cfg.Catalog.Source {
	case config.CatalogSourcePostgres:
		pgConn := infra_catalog_postgres.MustEstablishConn(cfg.Postgres)
		moviesDB, err := infra_catalog_postgres.New(pgConn).Load(context.Background())
		if err != nil {
			log.Fatalf("failed to load catalog from postgres: %v", err)
		}
		return infra_catalog_postgres.ToDomainList(moviesDB)
	default:
		movies, err := infra_catalog_static.New().Load()
		if err != nil {
			log.Fatalf("failed to load embedded catalog: %v", err)
		}
		return movies
	}
}

func newSessionCache(cfg *config.Config) usecase_viewer.SessionCache {
	ttl := time.Duration(cfg.Session.TTLMinutes) * time.Minute

	if cfg.Session.Backend == config.SessionBackendRedis {
		redisConn := infra_session_redis.MustEstablishConn(cfg.Redis)
		return infra_session_redis.New(redisConn, "viewer_session", ttl)
	}
	return infra_session_memory.New(ttl)
}
