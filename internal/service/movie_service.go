package service

import (
	"context"

	"github.com/user/movieapi/internal/model"
	"golang.org/x/sync/errgroup"
)

// MovieService 电影服务
type MovieService struct {
	movies MovieStore
	people PersonStore
	cache  *ReadCache
}

// NewMovieService 创建电影服务，cache 可为 nil
func NewMovieService(movies MovieStore, people PersonStore, cache *ReadCache) *MovieService {
	return &MovieService{movies: movies, people: people, cache: cache}
}

// List 分页列表，总数与当前页并发查询
func (s *MovieService) List(ctx context.Context, pageIndex, pageSize int) (*model.MoviePage, error) {
	var (
		count  int64
		movies []model.Movie
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.movies.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		movies, err = s.movies.List(gctx, pageIndex*pageSize, pageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.MoviePage{
		Movies: model.ToMovieListViews(movies),
		Count:  count,
	}, nil
}

// GetByID 电影详情
func (s *MovieService) GetByID(ctx context.Context, id int) (*model.MovieDetailView, error) {
	if view, ok := s.cache.movie(id); ok {
		return view, nil
	}
	gen := s.cache.snapshot()

	movie, err := s.movies.FindByID(ctx, id, true)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrRecordNotExist
	}

	view := model.ToMovieDetailView(*movie)
	s.cache.setMovie(gen, &view)
	return &view, nil
}

// Search 按标题搜索，不分页
func (s *MovieService) Search(ctx context.Context, text string) ([]model.MovieSearchView, error) {
	if views, ok := s.cache.movieSearchResult(text); ok {
		return views, nil
	}
	gen := s.cache.snapshot()

	movies, err := s.movies.SearchByTitle(ctx, text)
	if err != nil {
		return nil, err
	}

	views := model.ToMovieSearchViews(movies)
	s.cache.setMovieSearchResult(gen, text, views)
	return views, nil
}

// Create 创建电影，任一演员 ID 无效则整体拒绝
func (s *MovieService) Create(ctx context.Context, req model.CreateMovieRequest) (*model.MovieDetailView, error) {
	actors, err := s.resolveActors(ctx, req.Actors)
	if err != nil {
		return nil, err
	}

	movie := req.ToMovie()
	movie.ID = 0
	movie.Actors = actors

	if err := s.movies.Create(ctx, &movie); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	view := model.ToMovieDetailView(movie)
	return &view, nil
}

// Update 覆盖标量字段并按差集调整演员，返回更新后的内存状态
func (s *MovieService) Update(ctx context.Context, req model.CreateMovieRequest) (*model.MovieDetailView, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidMovie
	}

	actors, err := s.resolveActors(ctx, req.Actors)
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, req.ID, true)
	if err != nil {
		return nil, err
	}
	if movie == nil {
		return nil, ErrInvalidMovie
	}

	req.ApplyTo(movie)
	removed, added := DiffActors(movie.Actors, actors)

	if err := s.movies.Save(ctx, movie, removed, added); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	movie.Actors = append(withoutActors(movie.Actors, removed), added...)
	view := model.ToMovieDetailView(*movie)
	return &view, nil
}

// Delete 删除电影
func (s *MovieService) Delete(ctx context.Context, id int) error {
	movie, err := s.movies.FindByID(ctx, id, false)
	if err != nil {
		return err
	}
	if movie == nil {
		return ErrInvalidMovie
	}
	if err := s.movies.Delete(ctx, movie); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// resolveActors 解析演员 ID，数量不一致（含重复 ID）即视为无效
func (s *MovieService) resolveActors(ctx context.Context, ids []int) ([]model.Person, error) {
	actors, err := s.people.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(actors) != len(ids) {
		return nil, ErrInvalidActor
	}
	return actors, nil
}

// DiffActors 计算演员差集
// removed: current 中有而 requested 中没有；added: requested 中有而 current 中没有
func DiffActors(current, requested []model.Person) (removed, added []model.Person) {
	requestedIDs := make(map[int]struct{}, len(requested))
	for _, p := range requested {
		requestedIDs[p.ID] = struct{}{}
	}
	currentIDs := make(map[int]struct{}, len(current))
	for _, p := range current {
		currentIDs[p.ID] = struct{}{}
	}

	for _, p := range current {
		if _, ok := requestedIDs[p.ID]; !ok {
			removed = append(removed, p)
		}
	}
	for _, p := range requested {
		if _, ok := currentIDs[p.ID]; !ok {
			added = append(added, p)
		}
	}
	return removed, added
}

func withoutActors(actors, removed []model.Person) []model.Person {
	drop := make(map[int]struct{}, len(removed))
	for _, p := range removed {
		drop[p.ID] = struct{}{}
	}

	kept := make([]model.Person, 0, len(actors))
	for _, p := range actors {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	return kept
}
