package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/model"
	"github.com/user/movieapi/internal/repository"
)

func setupRepos(t *testing.T) *repository.Repositories {
	t.Helper()

	db, err := repository.InitDB(config.Database{
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
	return repository.NewRepositories(db)
}

func createPeople(t *testing.T, repos *repository.Repositories, names ...string) []model.Person {
	t.Helper()

	people := make([]model.Person, 0, len(names))
	for i, name := range names {
		p := model.Person{Name: name, DateOfBirth: time.Date(1970+i, 6, 1, 0, 0, 0, 0, time.UTC)}
		require.NoError(t, repos.Person.Create(context.Background(), &p))
		people = append(people, p)
	}
	return people
}

func movieRequest(title string, actors ...int) model.CreateMovieRequest {
	return model.CreateMovieRequest{
		Title:       title,
		Description: title + " description",
		Language:    "English",
		ReleaseDate: model.NewDate(time.Date(2014, 10, 24, 0, 0, 0, 0, time.UTC)),
		Actors:      actors,
	}
}

func viewIDs(actors []model.ActorView) []int {
	ids := make([]int, 0, len(actors))
	for _, a := range actors {
		ids = append(ids, a.ID)
	}
	return ids
}
