package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MovieRepository struct {
	db *gorm.DB
}

func NewMovieRepository(db *gorm.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

// Count 电影总数
func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Movie{}).Count(&count).Error
	return count, err
}

// List 分页获取电影（预加载演员）
func (r *MovieRepository) List(ctx context.Context, offset, limit int) ([]model.Movie, error) {
	var movies []model.Movie
	err := preloadActors(r.db.WithContext(ctx)).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&movies).Error
	return movies, err
}

// FindByID 根据 ID 查找电影，不存在时返回 nil, nil
func (r *MovieRepository) FindByID(ctx context.Context, id int, withActors bool) (*model.Movie, error) {
	var movie model.Movie
	query := r.db.WithContext(ctx)
	if withActors {
		query = preloadActors(query)
	}

	err := query.Where("id = ?", id).First(&movie).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// SearchByTitle 标题子串匹配，大小写规则取决于数据库排序规则
func (r *MovieRepository) SearchByTitle(ctx context.Context, text string) ([]model.Movie, error) {
	var movies []model.Movie
	err := preloadActors(r.db.WithContext(ctx)).
		Where(`title LIKE ? ESCAPE '\'`, likePattern(text)).
		Order("id ASC").
		Find(&movies).Error
	return movies, err
}

// Create 创建电影并写入演员关联（不改写演员本身）
func (r *MovieRepository) Create(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Omit("Actors.*").Create(movie).Error
}

// Save 覆盖标量字段并按差集调整演员关联，先删后增，在同一事务内完成
func (r *MovieRepository) Save(ctx context.Context, movie *model.Movie, removed, added []model.Person) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Movie{}).Where("id = ?", movie.ID).Updates(map[string]interface{}{
			"title":        movie.Title,
			"description":  movie.Description,
			"language":     movie.Language,
			"release_date": movie.ReleaseDate,
			"cover_image":  movie.CoverImage,
		}).Error
		if err != nil {
			return err
		}

		// 关联操作作用在一个只有主键的副本上，避免 gorm 改写调用方的 Actors
		target := &model.Movie{ID: movie.ID}
		if len(removed) > 0 {
			if err := tx.Model(target).Association("Actors").Delete(removed); err != nil {
				return err
			}
		}
		if len(added) > 0 {
			if err := tx.Model(target).Association("Actors").Append(added); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 删除电影及其演员关联
func (r *MovieRepository) Delete(ctx context.Context, movie *model.Movie) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(movie).Error
}

// CoverImages 所有非空封面地址
func (r *MovieRepository) CoverImages(ctx context.Context) ([]string, error) {
	var covers []string
	err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Where("cover_image IS NOT NULL AND cover_image <> ''").
		Pluck("cover_image", &covers).Error
	return covers, err
}

func preloadActors(db *gorm.DB) *gorm.DB {
	return db.Preload("Actors", func(db *gorm.DB) *gorm.DB {
		return db.Order("people.id ASC")
	})
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern 构造子串匹配模式，% 和 _ 按字面匹配
func likePattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
