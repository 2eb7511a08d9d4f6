package http_viewer_middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
)

const (
	CookieName = "viewer_id"
	ContextKey = "viewer_id"

	cookieMaxAge = 60 * 60 * 24
)

// Middleware gives every browser a stable viewer identity. State keyed by
// it is ephemeral; the cookie only has to outlive one browsing session.
type Middleware struct {
	logger *slog.Logger
}

func New() *Middleware {
	return &Middleware{
		logger: slog.Default(),
	}
}

func (m *Middleware) ViewerIdentity() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := ctx.Cookie(CookieName)
		if err != nil || model.ViewerID(id) == model.EmptyViewerID {
			id = string(model.NewViewerID())
			ctx.SetCookie(CookieName, id, cookieMaxAge, "/", "", false, true)
			m.logger.Info("new viewer", slog.String("viewer_id", id))
		}
		ctx.Set(ContextKey, id)
		ctx.Next()
	}
}

// ViewerID extracts the identity the middleware stored on the context.
func ViewerID(ctx *gin.Context) model.ViewerID {
	return model.ViewerID(ctx.GetString(ContextKey))
}
