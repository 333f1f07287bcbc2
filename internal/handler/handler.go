package handler

import (
	"errors"
	"log"
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/middleware"
	"github.com/user/movieapi/internal/repository"
	"github.com/user/movieapi/internal/service"
	"github.com/user/movieapi/internal/utils"
)

const (
	msgSuccess          = "Success"
	msgCreated          = "Created Successfully"
	msgUpdated          = "Updated Successfully"
	msgDeleted          = "Deleted Successfully"
	msgValidationFailed = "Validation failed"
	msgSomethingWrong   = "Something went wrong"
	msgUploadFailed     = "An error occured."
)

// Handler HTTP 处理器
type Handler struct {
	Movies  *service.MovieService
	People  *service.PersonService
	Posters *service.PosterService
	Config  *config.Config
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	// 电影与人物共用一份读缓存，任一写操作都会使其失效
	cache := service.NewReadCache(cfg.CacheTTL, cfg.CacheSize)

	return &Handler{
		Movies:  service.NewMovieService(repos.Movie, repos.Person, cache),
		People:  service.NewPersonService(repos.Person, cache),
		Posters: service.NewPosterService(cfg.UploadDir),
		Config:  cfg,
	}
}

// respondError 业务错误直接返回其消息，其余错误只记录日志
func respondError(c *gin.Context, tag string, err error) {
	var se *service.Error
	if errors.As(err, &se) {
		utils.Fail(c, se.Message, nil)
		return
	}

	log.Printf("[%s] %s %s 处理失败 rid=%s: %v",
		tag, c.Request.Method, c.Request.URL.Path, middleware.GetRequestID(c), err)
	// 记入 gin 上下文，访问日志一并输出
	_ = c.Error(err)
	utils.Fail(c, msgSomethingWrong, nil)
}

// pageQuery 分页参数
type pageQuery struct {
	PageIndex int `form:"pageIndex,default=0" binding:"min=0"`
	PageSize  int `form:"pageSize,default=10" binding:"min=0"`
}

// bindPage 解析分页参数，失败时已写入响应
func bindPage(c *gin.Context) (pageQuery, bool) {
	var q pageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.Fail(c, msgValidationFailed, validationErrors(err))
		return q, false
	}
	// pageIndex*pageSize 溢出时拒绝
	if q.PageSize > 0 && q.PageIndex > math.MaxInt/q.PageSize {
		utils.Fail(c, msgValidationFailed, fieldErrors{
			"pageIndex": {"The value '" + strconv.Itoa(q.PageIndex) + "' is too large."},
		})
		return q, false
	}
	return q, true
}

// paramID 解析路径中的 id，失败时已写入响应
func paramID(c *gin.Context) (int, bool) {
	raw := c.Param("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		utils.Fail(c, msgValidationFailed, fieldErrors{
			"id": {"The value '" + raw + "' is not valid."},
		})
		return 0, false
	}
	return id, true
}

// queryID DELETE 使用查询参数 id，缺失或非法按 0 处理
func queryID(c *gin.Context) int {
	id, _ := strconv.Atoi(c.Query("id"))
	return id
}
