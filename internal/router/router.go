package router

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/handler"
	"github.com/user/movieapi/internal/middleware"
)

// New 创建 gin 引擎并注册中间件与路由
func New(h *handler.Handler) *gin.Engine {
	handler.RegisterValidators()

	r := gin.New()

	// 中间件
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(h.Config.RateLimitRPS, h.Config.RateLimitBurst))

	// 启用 gzip，默认压缩级别
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	RegisterRoutes(r, h)
	return r
}

// RegisterRoutes 注册所有路由
func RegisterRoutes(r *gin.Engine, h *handler.Handler) {
	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// 海报静态文件
	r.Static(h.Config.StaticRoute, h.Config.UploadDir)

	api := r.Group("/api")

	// ==================== 电影 ====================
	movie := api.Group("/movie")
	{
		movie.GET("", h.ListMovies)
		movie.GET("/:id", h.GetMovie)
		movie.GET("/Search/:text", h.SearchMovies)
		movie.POST("", h.CreateMovie)
		movie.PUT("", h.UpdateMovie)
		movie.DELETE("", h.DeleteMovie)
		movie.POST("/upload-movie-poster", h.UploadMoviePoster)
	}

	// ==================== 人物 ====================
	person := api.Group("/person")
	{
		person.GET("", h.ListPeople)
		person.GET("/:id", h.GetPerson)
		person.GET("/Search/:text", h.SearchPeople)
		person.POST("", h.CreatePerson)
		person.PUT("", h.UpdatePerson)
		person.DELETE("", h.DeletePerson)
	}
}
