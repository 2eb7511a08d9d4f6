package http_playback

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	http_viewer_middleware "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/middleware/viewer"
	ws_playback "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/ws/playback"
	usecase_player "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/player"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StateResponseDTO представляет состояние сессии воспроизведения
type StateResponseDTO struct {
	State string `json:"state"`
}

type Controller struct {
	player *usecase_player.Manager
	hub    *ws_playback.Hub

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(player *usecase_player.Manager,
	hub *ws_playback.Hub,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		player: player,
		hub:    hub,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	playback := router.Group("/playback")
	playback.GET("", c.getState)
	playback.POST("/attached", c.reportAttached)
	playback.POST("/unsupported", c.reportUnsupported)
	playback.GET("/ws", c.observe)
}

// @Summary Состояние воспроизведения
// @Description Возвращает состояние сессии воспроизведения текущего зрителя
// @Tags Playback operations
// @Produce json
// @Success 200 {object} StateResponseDTO "Состояние получено"
// @Router /playback [get]
func (c *Controller) getState(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)
	ctx.JSON(http.StatusOK, StateResponseDTO{
		State: string(c.player.State(viewerID)),
	})
}

// @Summary Подтверждение привязки источника
// @Description Страница сообщает, что стриминговая библиотека привязала манифест к плееру
// @Tags Playback operations
// @Produce json
// @Success 200 {object} StateResponseDTO "Состояние обновлено"
// @Router /playback/attached [post]
func (c *Controller) reportAttached(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)
	session := c.player.MarkAttached(viewerID)
	ctx.JSON(http.StatusOK, StateResponseDTO{State: string(session.State)})
}

// @Summary Сообщение о недоступности воспроизведения
// @Description Страница сообщает, что HLS недоступен ни нативно, ни через библиотеку
// @Tags Playback operations
// @Success 204 "Деградация зафиксирована"
// @Router /playback/unsupported [post]
func (c *Controller) reportUnsupported(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)
	c.player.ReportUnsupported(viewerID)
	ctx.Status(http.StatusNoContent)
}

func (c *Controller) observe(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		c.logger.Error("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}

	client := &ws_playback.Client{
		Hub:  c.hub,
		Conn: conn,
		Send: make(chan []byte, 16),
	}
	c.hub.RegisterClient(client)

	go c.hub.StartClientWriting(client)
	go c.hub.StartClientReading(client)
}
