package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/model"
	"gorm.io/gorm"
)

// setupTestDB 在临时目录创建 SQLite 数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := InitDB(config.Database{
		Driver:     "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "movies.db"),
		LogLevel:   "silent",
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedPeople(t *testing.T, repo *PersonRepository, names ...string) []model.Person {
	t.Helper()

	people := make([]model.Person, 0, len(names))
	for i, name := range names {
		p := model.Person{Name: name, DateOfBirth: time.Date(1960+i, 1, 1, 0, 0, 0, 0, time.UTC)}
		require.NoError(t, repo.Create(context.Background(), &p))
		people = append(people, p)
	}
	return people
}

func seedMovie(t *testing.T, repo *MovieRepository, title string, actors ...model.Person) model.Movie {
	t.Helper()

	m := model.Movie{
		Title:       title,
		Description: title + " description",
		Language:    "English",
		ReleaseDate: time.Date(1999, 3, 31, 0, 0, 0, 0, time.UTC),
		Actors:      actors,
	}
	require.NoError(t, repo.Create(context.Background(), &m))
	return m
}

func actorIDs(people []model.Person) []int {
	ids := make([]int, 0, len(people))
	for _, p := range people {
		ids = append(ids, p.ID)
	}
	return ids
}

func countJoinRows(t *testing.T, db *gorm.DB, column string, id int) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table(model.MovieActorTable).Where(column+" = ?", id).Count(&n).Error)
	return n
}
