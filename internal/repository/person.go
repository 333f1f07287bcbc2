package repository

import (
	"context"
	"errors"

	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

// Count 人物总数
func (r *PersonRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Person{}).Count(&count).Error
	return count, err
}

// List 分页获取人物
func (r *PersonRepository) List(ctx context.Context, offset, limit int) ([]model.Person, error) {
	var people []model.Person
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&people).Error
	return people, err
}

// FindByID 根据 ID 查找人物，不存在时返回 nil, nil
func (r *PersonRepository) FindByID(ctx context.Context, id int) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&person).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &person, nil
}

// FindByIDs 批量查找，只返回存在的记录
func (r *PersonRepository) FindByIDs(ctx context.Context, ids []int) ([]model.Person, error) {
	if len(ids) == 0 {
		return []model.Person{}, nil
	}
	var people []model.Person
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&people).Error
	return people, err
}

// SearchByName 姓名子串匹配
func (r *PersonRepository) SearchByName(ctx context.Context, text string) ([]model.Person, error) {
	var people []model.Person
	err := r.db.WithContext(ctx).
		Where(`name LIKE ? ESCAPE '\'`, likePattern(text)).
		Order("id ASC").
		Find(&people).Error
	return people, err
}

// Create 创建人物
func (r *PersonRepository) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

// Update 整行覆盖
func (r *PersonRepository) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Model(&model.Person{}).Where("id = ?", person.ID).
		Updates(map[string]interface{}{
			"name":          person.Name,
			"date_of_birth": person.DateOfBirth,
		}).Error
}

// Delete 删除人物，同时移除其所有电影关联（电影本身保留）
func (r *PersonRepository) Delete(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM "+model.MovieActorTable+" WHERE person_id = ?", person.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Person{}, person.ID).Error
	})
}

// MovieTitles 该人物参演的所有电影标题
func (r *PersonRepository) MovieTitles(ctx context.Context, personID int) ([]string, error) {
	titles := []string{}
	err := r.db.WithContext(ctx).Model(&model.Movie{}).
		Joins("JOIN "+model.MovieActorTable+" ON "+model.MovieActorTable+".movie_id = movies.id").
		Where(model.MovieActorTable+".person_id = ?", personID).
		Order("movies.id ASC").
		Pluck("movies.title", &titles).Error
	return titles, err
}
