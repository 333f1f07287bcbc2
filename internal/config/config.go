package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config 应用配置
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"5005"`

	Database Database

	// 海报上传目录（绝对路径），同时作为静态文件目录挂载
	UploadDir   string `env:"UPLOAD_DIR" envDefault:"/srv/movieapi/StaticFiles"`
	StaticRoute string `env:"STATIC_ROUTE" envDefault:"/StaticFiles"`

	// 为 0 时不启动海报清理任务
	PosterCleanupInterval time.Duration `env:"POSTER_CLEANUP_INTERVAL" envDefault:"0s"`
	PosterRetention       time.Duration `env:"POSTER_RETENTION" envDefault:"72h"`

	// 详情与搜索结果缓存，默认关闭，CACHE_TTL 大于 0 时启用
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"0s"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"1000"`

	// 按 IP 限流，RATE_LIMIT_RPS 为 0 时关闭
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"20"`
}

// Database 数据库配置
type Database struct {
	Driver   string `env:"DB_DRIVER" envDefault:"postgres"` // postgres | sqlite
	URL      string `env:"DATABASE_URL"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"movies"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/movies.db"`
	LogLevel   string `env:"DB_LOG_LEVEL" envDefault:"warn"`
}

// Load 加载配置
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}

	switch cfg.Database.Driver {
	case "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("不支持的数据库类型: %s", cfg.Database.Driver)
	}

	if cfg.PosterRetention < 0 {
		return nil, fmt.Errorf("POSTER_RETENTION 不能为负数: %s", cfg.PosterRetention)
	}

	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_BURST 必须大于 0: %d", cfg.RateLimitBurst)
	}

	if cfg.CacheTTL > 0 && cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("CACHE_SIZE 必须大于 0: %d", cfg.CacheSize)
	}

	return cfg, nil
}

// IsProduction 是否生产环境
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN 返回当前驱动对应的连接串
func (d Database) DSN() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}
