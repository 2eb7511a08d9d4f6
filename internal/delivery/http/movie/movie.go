package http_movie

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	http_common "github.com/guevarapcharly-commits/pelis-avod/internal/delivery/http/common"
	"github.com/guevarapcharly-commits/pelis-avod/internal/model"
	usecase_browse "github.com/guevarapcharly-commits/pelis-avod/internal/usecase/browse"
)

// MovieResponseDTO представляет ответ с данными фильма
type MovieResponseDTO struct {
	ID           uuid.UUID `json:"id" example:"7f8a1f64-2b9e-4f1d-9c3a-5d8e6a2b4c10"`
	Title        string    `json:"title" example:"Planeta Azul"`
	Year         int       `json:"year" example:"1934"`
	Genres       []string  `json:"genres" example:"Aventura,Clásico"`
	Overview     string    `json:"overview" example:"Una expedición parte hacia una isla..."`
	PosterLink   string    `json:"poster_link" example:"https://example.com/poster.jpg"`
	ManifestLink string    `json:"manifest_link" example:"https://example.com/stream.m3u8"`
}

// MoviesListResponseDTO DTO для отфильтрованного списка фильмов
type MoviesListResponseDTO struct {
	Movies []MovieResponseDTO `json:"movies"`
	Total  int                `json:"total"`
}

// GenresResponseDTO DTO для списка жанров каталога
type GenresResponseDTO struct {
	Genres []string `json:"genres"`
}

func ConvertFromMovieMeta(meta model.MovieMeta) MovieResponseDTO {
	return MovieResponseDTO{
		ID:           meta.ID,
		Title:        meta.Title,
		Year:         meta.Year,
		Genres:       meta.Genres,
		Overview:     meta.Overview,
		PosterLink:   meta.PosterLink,
		ManifestLink: meta.ManifestLink,
	}
}

func ConvertFromMovieMetaList(metas []model.MovieMeta) []MovieResponseDTO {
	movies := make([]MovieResponseDTO, len(metas))
	for i, meta := range metas {
		movies[i] = ConvertFromMovieMeta(meta)
	}
	return movies
}

type Controller struct {
	uc *usecase_browse.Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc *usecase_browse.Usecase, opts ...ControllerOption) *Controller {
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
	movies := router.Group("/movies")
	movies.GET("", c.getMovies)
	movies.GET("/genres", c.getGenres)
	movies.GET("/:movie_id", c.getMovie)
}

// @Summary Получение каталога фильмов
// @Description Возвращает фильмы каталога, отфильтрованные по тексту и жанру
// @Tags Movies operations
// @Produce json
// @Param query query string false "Поисковый запрос"
// @Param genre query string false "Жанр (точное совпадение)"
// @Success 200 {object} MoviesListResponseDTO "Список фильмов успешно получен"
// @Router /movies [get]
func (c *Controller) getMovies(ctx *gin.Context) {
	query := ctx.Query("query")
	genre := ctx.Query("genre")

	movies := c.uc.Filter(query, genre)

	response := MoviesListResponseDTO{
		Movies: ConvertFromMovieMetaList(movies),
		Total:  len(movies),
	}

	ctx.JSON(http.StatusOK, response)
}

// @Summary Получение жанров каталога
// @Description Возвращает отсортированный список жанров, встречающихся в каталоге
// @Tags Movies operations
// @Produce json
// @Success 200 {object} GenresResponseDTO "Список жанров успешно получен"
// @Router /movies/genres [get]
func (c *Controller) getGenres(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, GenresResponseDTO{Genres: c.uc.Genres()})
}

// @Summary Получение фильма
// @Description Возвращает фильм по идентификатору
// @Tags Movies operations
// @Produce json
// @Param movie_id path string true "UUID фильма" example("7f8a1f64-2b9e-4f1d-9c3a-5d8e6a2b4c10")
// @Success 200 {object} MovieResponseDTO "Фильм найден"
// @Failure 400 {object} http_common.ErrorResponse "Некорректный UUID фильма"
// @Failure 404 {object} http_common.ErrorResponse "Фильм не найден"
// @Router /movies/{movie_id} [get]
func (c *Controller) getMovie(ctx *gin.Context) {
	idParam := ctx.Param("movie_id")
	movieID, err := uuid.Parse(idParam)
	if err != nil {
		c.logger.Warn("invalid movie ID",
			slog.String("id", idParam),
			slog.String("error", err.Error()),
		)
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid movie ID",
			Code:  http.StatusBadRequest,
		})
		return
	}

	meta, err := c.uc.ByID(movieID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error:   "Movie not found",
			Message: err.Error(),
			Code:    http.StatusNotFound,
		})
		return
	}

	ctx.JSON(http.StatusOK, ConvertFromMovieMeta(meta))
}
