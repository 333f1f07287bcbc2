package utils

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry 缓存值及其过期时间
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// LRUCache 带过期时间的定长 LRU 缓存，并发安全
type LRUCache[T any] struct {
	storage *lru.Cache[string, cacheEntry[T]]
	ttl     time.Duration
	now     func() time.Time
}

// NewLRUCache size 为最大条数，ttl 为有效期
func NewLRUCache[T any](size int, ttl time.Duration) (*LRUCache[T], error) {
	c, err := lru.New[string, cacheEntry[T]](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache[T]{storage: c, ttl: ttl, now: time.Now}, nil
}

// Set 写入（已存在则覆盖）
func (c *LRUCache[T]) Set(key string, value T) {
	c.storage.Add(key, cacheEntry[T]{value: value, expiresAt: c.now().Add(c.ttl)})
}

// Get 读取，过期条目顺带删除
func (c *LRUCache[T]) Get(key string) (T, bool) {
	var zero T
	entry, ok := c.storage.Get(key)
	if !ok {
		return zero, false
	}
	if c.now().After(entry.expiresAt) {
		c.storage.Remove(key)
		return zero, false
	}
	return entry.value, true
}

// Purge 清空
func (c *LRUCache[T]) Purge() {
	c.storage.Purge()
}

// Len 当前条数（含未清理的过期条目）
func (c *LRUCache[T]) Len() int {
	return c.storage.Len()
}
