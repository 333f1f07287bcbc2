package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一API响应结构
type Response struct {
	Status  bool        `json:"status"`  // 是否成功
	Message string      `json:"message"` // 消息
	Data    interface{} `json:"data"`    // 数据
}

// OK 返回成功响应
func OK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// Fail 返回失败响应，所有失败一律 400
func Fail(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusBadRequest, Response{
		Status:  false,
		Message: message,
		Data:    data,
	})
}

// AbortFail 返回失败响应并中止后续处理
func AbortFail(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Response{
		Status:  false,
		Message: message,
	})
}
