package service

import (
	"context"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// PosterCleanupService 定时清理未被任何电影引用的海报文件
type PosterCleanupService struct {
	dir       string
	interval  time.Duration
	retention time.Duration
	covers    CoverLister
	now       func() time.Time
}

// NewPosterCleanupService 创建海报清理服务
func NewPosterCleanupService(dir string, interval, retention time.Duration, covers CoverLister) *PosterCleanupService {
	return &PosterCleanupService{
		dir:       dir,
		interval:  interval,
		retention: retention,
		covers:    covers,
		now:       time.Now,
	}
}

// Start 启动定时清理任务，ctx 取消后退出
func (s *PosterCleanupService) Start(ctx context.Context) {
	if s.interval <= 0 {
		log.Println("[PosterCleanup] 未配置清理间隔，跳过")
		return
	}

	ticker := time.NewTicker(s.interval)

	go func() {
		defer ticker.Stop()

		// 启动时先运行一次
		s.runCleanup(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.runCleanup(ctx)
			}
		}
	}()
}

func (s *PosterCleanupService) runCleanup(ctx context.Context) {
	removed, err := s.RunOnce(ctx)
	if err != nil {
		log.Printf("[PosterCleanup] 清理海报失败: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("[PosterCleanup] 已清理 %d 个未引用的海报", removed)
	}
}

// RunOnce 删除超过保留期且未被引用的文件，返回删除数量
func (s *PosterCleanupService) RunOnce(ctx context.Context) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	covers, err := s.covers.CoverImages(ctx)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]struct{}, len(covers))
	for _, cover := range covers {
		referenced[coverFileName(cover)] = struct{}{}
	}

	cutoff := s.now().Add(-s.retention)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			log.Printf("[PosterCleanup] 删除 %s 失败: %v", entry.Name(), err)
			continue
		}
		removed++
	}

	return removed, nil
}

// coverFileName 从封面地址中取出文件名
func coverFileName(cover string) string {
	if u, err := url.Parse(cover); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(cover)
}
