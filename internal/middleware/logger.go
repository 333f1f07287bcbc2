package middleware

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// ForwardedForHeader 反向代理附带的原始客户端地址
const ForwardedForHeader = "X-Forwarded-For"

// accessEntry 一次请求的访问日志字段
type accessEntry struct {
	RequestID    string
	Method       string
	Path         string
	Status       int
	Bytes        int
	Latency      time.Duration
	ClientIP     string
	ForwardedFor string
	Errors       string
}

// String 固定字段顺序，可选字段为空时省略
func (e accessEntry) String() string {
	line := fmt.Sprintf("[Access] rid=%s %s %s status=%d bytes=%d latency=%v ip=%s",
		e.RequestID, e.Method, e.Path, e.Status, e.Bytes, e.Latency, e.ClientIP)
	if e.ForwardedFor != "" {
		line += " xff=" + e.ForwardedFor
	}
	if e.Errors != "" {
		line += " errors=" + e.Errors
	}
	return line
}

// Logger 访问日志中间件，需挂在 RequestID 之后
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		// 未写出响应体时 Size 为 -1
		size := c.Writer.Size()
		if size < 0 {
			size = 0
		}

		log.Print(accessEntry{
			RequestID:    GetRequestID(c),
			Method:       c.Request.Method,
			Path:         path,
			Status:       c.Writer.Status(),
			Bytes:        size,
			Latency:      time.Since(start),
			ClientIP:     c.ClientIP(),
			ForwardedFor: c.GetHeader(ForwardedForHeader),
			Errors:       strings.Join(c.Errors.Errors(), "; "),
		})
	}
}
