package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// 扩展名区分大小写
var allowedPosterExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".svg":  true,
}

// PosterService 海报文件存储
type PosterService struct {
	dir string
}

// NewPosterService 创建海报存储
func NewPosterService(dir string) *PosterService {
	return &PosterService{dir: dir}
}

// Dir 海报存储目录
func (s *PosterService) Dir() string {
	return s.dir
}

// Save 校验扩展名后以随机文件名写入，返回新文件名
func (s *PosterService) Save(originalName string, src io.Reader) (string, error) {
	ext := filepath.Ext(originalName)
	if !allowedPosterExtensions[ext] {
		return "", ErrInvalidImageType
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("创建海报目录失败: %w", err)
	}

	name := uuid.NewString() + ext
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("创建海报文件失败: %w", err)
	}

	if _, err := io.Copy(f, src); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("写入海报失败: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("写入海报失败: %w", err)
	}

	return name, nil
}
