package service

import (
	"context"

	"github.com/user/movieapi/internal/model"
	"golang.org/x/sync/errgroup"
)

// PersonService 人物服务
type PersonService struct {
	people PersonStore
	cache  *ReadCache
}

// NewPersonService 创建人物服务，cache 可为 nil
func NewPersonService(people PersonStore, cache *ReadCache) *PersonService {
	return &PersonService{people: people, cache: cache}
}

// List 分页列表
func (s *PersonService) List(ctx context.Context, pageIndex, pageSize int) (*model.PersonPage, error) {
	var (
		count  int64
		people []model.Person
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = s.people.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		people, err = s.people.List(gctx, pageIndex*pageSize, pageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.PersonPage{
		Movies: model.ToActorViews(people),
		Count:  count,
	}, nil
}

// GetByID 人物详情，附带参演电影标题
func (s *PersonService) GetByID(ctx context.Context, id int) (*model.ActorDetailView, error) {
	if view, ok := s.cache.person(id); ok {
		return view, nil
	}
	gen := s.cache.snapshot()

	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrRecordNotExist
	}

	titles, err := s.people.MovieTitles(ctx, person.ID)
	if err != nil {
		return nil, err
	}

	view := model.ToActorDetailView(*person, titles)
	s.cache.setPerson(gen, &view)
	return &view, nil
}

// Search 按姓名搜索
func (s *PersonService) Search(ctx context.Context, text string) ([]model.PersonSearchView, error) {
	if views, ok := s.cache.personSearchResult(text); ok {
		return views, nil
	}
	gen := s.cache.snapshot()

	people, err := s.people.SearchByName(ctx, text)
	if err != nil {
		return nil, err
	}

	views := model.ToPersonSearchViews(people)
	s.cache.setPersonSearchResult(gen, text, views)
	return views, nil
}

// Create 创建人物，返回带生成 ID 的视图
func (s *PersonService) Create(ctx context.Context, req model.ActorView) (*model.ActorView, error) {
	person := req.ToPerson()
	person.ID = 0

	if err := s.people.Create(ctx, &person); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	req.ID = person.ID
	return &req, nil
}

// Update 确认记录存在后整行覆盖
func (s *PersonService) Update(ctx context.Context, req model.ActorView) (*model.ActorView, error) {
	if req.ID <= 0 {
		return nil, ErrInvalidPersonData
	}

	existing, err := s.people.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrInvalidPersonData
	}

	person := req.ToPerson()
	if err := s.people.Update(ctx, &person); err != nil {
		return nil, err
	}
	s.cache.Invalidate()

	view := model.ToActorView(person)
	return &view, nil
}

// Delete 删除人物，电影关联一并移除
func (s *PersonService) Delete(ctx context.Context, id int) error {
	person, err := s.people.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if person == nil {
		return ErrInvalidPerson
	}
	if err := s.people.Delete(ctx, person); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}
