package handler

import (
	"errors"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/movieapi/internal/middleware"
	"github.com/user/movieapi/internal/service"
	"github.com/user/movieapi/internal/utils"
)

// posterField 上传表单字段名
const posterField = "imageFile"

// UploadMoviePoster 上传电影海报，成功时直接返回 {"profileImage": url}
func (h *Handler) UploadMoviePoster(c *gin.Context) {
	fh, err := c.FormFile(posterField)
	if err != nil {
		log.Printf("[UploadHandler] 读取上传文件失败 rid=%s: %v", middleware.GetRequestID(c), err)
		utils.Fail(c, msgUploadFailed, nil)
		return
	}

	src, err := fh.Open()
	if err != nil {
		log.Printf("[UploadHandler] 打开上传文件失败 rid=%s: %v", middleware.GetRequestID(c), err)
		utils.Fail(c, msgUploadFailed, nil)
		return
	}
	defer src.Close()

	name, err := h.Posters.Save(originalFilename(fh), src)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImageType) {
			utils.Fail(c, service.ErrInvalidImageType.Message, nil)
			return
		}
		log.Printf("[UploadHandler] 保存海报失败 rid=%s: %v", middleware.GetRequestID(c), err)
		utils.Fail(c, msgUploadFailed, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profileImage": h.posterURL(c, name)})
}

// originalFilename 从 Content-Disposition 中取原始文件名
func originalFilename(fh *multipart.FileHeader) string {
	if _, params, err := mime.ParseMediaType(fh.Header.Get("Content-Disposition")); err == nil {
		if name := strings.Trim(params["filename"], `"`); name != "" {
			return name
		}
	}
	return fh.Filename
}

// posterURL 拼接海报的访问地址
func (h *Handler) posterURL(c *gin.Context, name string) string {
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + strings.TrimRight(h.Config.StaticRoute, "/") + "/" + name
}
