package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/handler"
	"github.com/user/movieapi/internal/repository"
	"github.com/user/movieapi/internal/router"
	"github.com/user/movieapi/internal/service"
)

func main() {
	// 加载环境变量
	if err := godotenv.Load(); err != nil {
		log.Println("未找到 .env 文件，使用系统环境变量")
	}

	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 初始化数据库（含表结构迁移）
	db, err := repository.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("获取数据库连接池失败: %v", err)
	}
	defer sqlDB.Close()

	// 初始化仓库
	repos := repository.NewRepositories(db)

	// 初始化 Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化 Handler 并注册路由
	h := handler.NewHandler(repos, cfg)
	r := router.New(h)

	// 启动海报清理任务
	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()
	cleanupSvc := service.NewPosterCleanupService(cfg.UploadDir, cfg.PosterCleanupInterval, cfg.PosterRetention, repos.Movie)
	cleanupSvc.Start(bgCtx)

	// 海报上传可能较大，读写超时放宽到 60 秒
	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        r,
		ReadTimeout:    60 * time.Second,
		WriteTimeout:   60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// 在 goroutine 中启动服务器，这样我们就可以监听信号
	go func() {
		log.Printf("服务器启动于 http://localhost:%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务器启动失败: %v", err)
		}
	}()

	// 等待中断信号以优雅地关闭服务器
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("正在关闭服务器...")
	stopBackground()

	// 5 秒超时上下文用于关闭过程
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("服务器强制关闭:", err)
	}

	log.Println("服务器已退出")
}
