package http_viewer

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/common"
	http_viewer_middleware "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/middleware/viewer"
	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
	usecase_viewer "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/viewer"
)

// QueryRequestDTO представляет запрос на изменение поискового текста
type QueryRequestDTO struct {
	Query string `json:"query"`
}

// GenreRequestDTO представляет запрос на изменение фильтра по жанру
type GenreRequestDTO struct {
	Genre string `json:"genre"`
}

// SelectRequestDTO представляет запрос на выбор фильма
type SelectRequestDTO struct {
	MovieID string `json:"movie_id" binding:"required"`
}

// StateResponseDTO представляет состояние сеанса просмотра
type StateResponseDTO struct {
	Query       string  `json:"query"`
	Genre       string  `json:"genre"`
	Selected    *string `json:"selected,omitempty"`
	OverlayOpen bool    `json:"overlay_open"`
}

func ConvertFromState(state model.ViewerState) StateResponseDTO {
	dto := StateResponseDTO{
		Query:       state.Query,
		Genre:       state.Genre,
		OverlayOpen: state.OverlayOpen(),
	}
	if state.Selected != nil {
		s := state.Selected.String()
		dto.Selected = &s
	}
	return dto
}

type Controller struct {
	uc *usecase_viewer.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_viewer.Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	viewer := router.Group("/viewer")
	viewer.GET("", c.getState)
	viewer.PUT("/query", c.setQuery)
	viewer.PUT("/genre", c.setGenre)
	viewer.POST("/select", c.selectMovie)
	viewer.POST("/close", c.closeOverlay)
}

// @Summary Состояние сеанса просмотра
// @Description Возвращает текущее состояние сеанса: запрос, жанр, выбранный фильм
// @Tags Viewer operations
// @Produce json
// @Success 200 {object} StateResponseDTO "Состояние получено"
// @Router /viewer [get]
func (c *Controller) getState(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)

	state, err := c.uc.State(ctx.Request.Context(), viewerID)
	if err != nil {
		c.internalError(ctx, "failed to load viewer state", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromState(state))
}

// @Summary Изменение поискового запроса
// @Description Сохраняет текст поиска; фильтрация пересчитывается на каждое изменение
// @Tags Viewer operations
// @Accept json
// @Produce json
// @Param request body QueryRequestDTO true "Новый поисковый запрос"
// @Success 200 {object} StateResponseDTO "Состояние обновлено"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Router /viewer/query [put]
func (c *Controller) setQuery(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)

	var req QueryRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	state, err := c.uc.SetQuery(ctx.Request.Context(), viewerID, req.Query)
	if err != nil {
		c.internalError(ctx, "failed to set query", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromState(state))
}

// @Summary Изменение фильтра по жанру
// @Description Сохраняет выбранный жанр; пустая строка означает «все жанры»
// @Tags Viewer operations
// @Accept json
// @Produce json
// @Param request body GenreRequestDTO true "Новый жанр"
// @Success 200 {object} StateResponseDTO "Состояние обновлено"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Router /viewer/genre [put]
func (c *Controller) setGenre(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)

	var req GenreRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	state, err := c.uc.SetGenre(ctx.Request.Context(), viewerID, req.Genre)
	if err != nil {
		c.internalError(ctx, "failed to set genre", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromState(state))
}

// @Summary Выбор фильма
// @Description Делает фильм текущим: оверлей открывается, манифест привязывается к плееру
// @Tags Viewer operations
// @Accept json
// @Produce json
// @Param request body SelectRequestDTO true "Идентификатор фильма"
// @Success 200 {object} StateResponseDTO "Фильм выбран"
// @Failure 400 {object} http_common.ErrorResponse "Некорректные данные запроса"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Router /viewer/select [post]
func (c *Controller) selectMovie(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)

	var req SelectRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.badRequest(ctx, err)
		return
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		c.badRequest(ctx, err)
		return
	}

	state, err := c.uc.Select(ctx.Request.Context(), viewerID, movieID)
	if err != nil {
		if errors.Is(err, usecase_viewer.ErrMovieNotFound) {
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error:   "Movie not found",
				Message: err.Error(),
				Code:    http.StatusNotFound,
			})
			return
		}
		c.internalError(ctx, "failed to select movie", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromState(state))
}

// @Summary Закрытие оверлея
// @Description Сбрасывает выбор фильма и освобождает сессию воспроизведения
// @Tags Viewer operations
// @Produce json
// @Success 200 {object} StateResponseDTO "Оверлей закрыт"
// @Router /viewer/close [post]
func (c *Controller) closeOverlay(ctx *gin.Context) {
	viewerID := http_viewer_middleware.ViewerID(ctx)

	state, err := c.uc.Close(ctx.Request.Context(), viewerID)
	if err != nil {
		c.internalError(ctx, "failed to close overlay", err)
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromState(state))
}

func (c *Controller) badRequest(ctx *gin.Context, err error) {
	c.logger.Warn("invalid request body", slog.String("error", err.Error()))
	ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
		Error: "Invalid request body",
		Code:  http.StatusBadRequest,
	})
}

func (c *Controller) internalError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, slog.String("error", err.Error()))
	ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
		Error:   msg,
		Message: err.Error(),
		Code:    http.StatusInternalServerError,
	})
}
