package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/service"
	"github.com/user/movieapi/internal/utils"
)

// ListMovies 电影分页列表
func (h *Handler) ListMovies(c *gin.Context) {
	q, ok := bindPage(c)
	if !ok {
		return
	}

	page, err := h.Movies.List(c.Request.Context(), q.PageIndex, q.PageSize)
	if err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgSuccess, page)
}

// GetMovie 电影详情
func (h *Handler) GetMovie(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	movie, err := h.Movies.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgSuccess, movie)
}

// SearchMovies 按标题搜索
func (h *Handler) SearchMovies(c *gin.Context) {
	movies, err := h.Movies.Search(c.Request.Context(), c.Param("text"))
	if err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgSuccess, movies)
}

// CreateMovie 创建电影
func (h *Handler) CreateMovie(c *gin.Context) {
	var req model.CreateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return
	}

	movie, err := h.Movies.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgCreated, movie)
}

// UpdateMovie 更新电影
// id 的检查先于字段校验
func (h *Handler) UpdateMovie(c *gin.Context) {
	var req model.CreateMovieRequest
	err := c.ShouldBindJSON(&req)

	var verrs validator.ValidationErrors
	if err != nil && !errors.As(err, &verrs) {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return
	}
	if req.ID <= 0 {
		utils.Fail(c, service.ErrInvalidMovie.Message, nil)
		return
	}
	if err != nil {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return
	}

	movie, err := h.Movies.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgUpdated, movie)
}

// DeleteMovie 删除电影
func (h *Handler) DeleteMovie(c *gin.Context) {
	if err := h.Movies.Delete(c.Request.Context(), queryID(c)); err != nil {
		respondError(c, "MovieHandler", err)
		return
	}
	utils.OK(c, msgDeleted, nil)
}
