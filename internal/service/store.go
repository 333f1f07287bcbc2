package service

import (
	"context"

	"github.com/user/movieapi/internal/model"
)

// MovieStore 电影数据访问
// FindByID 在记录不存在时返回 nil, nil
type MovieStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Movie, error)
	FindByID(ctx context.Context, id int, withActors bool) (*model.Movie, error)
	SearchByTitle(ctx context.Context, text string) ([]model.Movie, error)
	Create(ctx context.Context, movie *model.Movie) error
	Save(ctx context.Context, movie *model.Movie, removed, added []model.Person) error
	Delete(ctx context.Context, movie *model.Movie) error
}

// PersonStore 人物数据访问
type PersonStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]model.Person, error)
	FindByID(ctx context.Context, id int) (*model.Person, error)
	FindByIDs(ctx context.Context, ids []int) ([]model.Person, error)
	SearchByName(ctx context.Context, text string) ([]model.Person, error)
	Create(ctx context.Context, person *model.Person) error
	Update(ctx context.Context, person *model.Person) error
	Delete(ctx context.Context, person *model.Person) error
	MovieTitles(ctx context.Context, personID int) ([]string, error)
}

// CoverLister 列出已被电影引用的封面地址
type CoverLister interface {
	CoverImages(ctx context.Context) ([]string, error)
}
