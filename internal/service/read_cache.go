package service

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/utils"
)

// ReadCache 详情与搜索结果的读缓存，任一写操作后整体失效
// nil 表示不启用，所有方法均可在 nil 上调用
//
// 读取方在查库前取得 generation，写回时若 generation 已变（期间发生过写操作）则放弃写回，
// 避免与写操作交错的读把旧数据重新放进缓存。
type ReadCache struct {
	mu         sync.Mutex
	generation uint64

	details      *cache.Cache
	movieSearch  *utils.LRUCache[[]model.MovieSearchView]
	personSearch *utils.LRUCache[[]model.PersonSearchView]
}

// NewReadCache ttl <= 0 时返回 nil
func NewReadCache(ttl time.Duration, size int) *ReadCache {
	if ttl <= 0 {
		return nil
	}

	movieSearch, err := utils.NewLRUCache[[]model.MovieSearchView](size, ttl)
	if err != nil {
		log.Printf("[ReadCache] 初始化失败，不启用缓存: %v", err)
		return nil
	}
	personSearch, err := utils.NewLRUCache[[]model.PersonSearchView](size, ttl)
	if err != nil {
		log.Printf("[ReadCache] 初始化失败，不启用缓存: %v", err)
		return nil
	}

	return &ReadCache{
		details:      cache.New(ttl, 2*ttl),
		movieSearch:  movieSearch,
		personSearch: personSearch,
	}
}

// snapshot 查库前调用，返回当前 generation
func (c *ReadCache) snapshot() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// store 仅在 gen 仍为当前 generation 时写入
func (c *ReadCache) store(gen uint64, set func()) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	set()
}

func movieKey(id int) string  { return "movie:" + strconv.Itoa(id) }
func personKey(id int) string { return "person:" + strconv.Itoa(id) }

func (c *ReadCache) movie(id int) (*model.MovieDetailView, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.details.Get(movieKey(id))
	if !ok {
		return nil, false
	}
	view, ok := v.(*model.MovieDetailView)
	return view, ok
}

func (c *ReadCache) setMovie(gen uint64, view *model.MovieDetailView) {
	c.store(gen, func() { c.details.SetDefault(movieKey(view.ID), view) })
}

func (c *ReadCache) person(id int) (*model.ActorDetailView, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.details.Get(personKey(id))
	if !ok {
		return nil, false
	}
	view, ok := v.(*model.ActorDetailView)
	return view, ok
}

func (c *ReadCache) setPerson(gen uint64, view *model.ActorDetailView) {
	c.store(gen, func() { c.details.SetDefault(personKey(view.ID), view) })
}

func (c *ReadCache) movieSearchResult(text string) ([]model.MovieSearchView, bool) {
	if c == nil {
		return nil, false
	}
	return c.movieSearch.Get(text)
}

func (c *ReadCache) setMovieSearchResult(gen uint64, text string, views []model.MovieSearchView) {
	c.store(gen, func() { c.movieSearch.Set(text, views) })
}

func (c *ReadCache) personSearchResult(text string) ([]model.PersonSearchView, bool) {
	if c == nil {
		return nil, false
	}
	return c.personSearch.Get(text)
}

func (c *ReadCache) setPersonSearchResult(gen uint64, text string, views []model.PersonSearchView) {
	c.store(gen, func() { c.personSearch.Set(text, views) })
}

// Invalidate 清空全部缓存，并使进行中的读取不再写回
func (c *ReadCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.details.Flush()
	c.movieSearch.Purge()
	c.personSearch.Purge()
}
