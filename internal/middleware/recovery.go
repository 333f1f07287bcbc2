package middleware

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/utils"
)

// Recovery panic 恢复，返回与其他失败一致的 400 响应
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("[Recovery] 请求 %s 发生 panic: %v", GetRequestID(c), err)
		utils.AbortFail(c, "Something went wrong")
	})
}
