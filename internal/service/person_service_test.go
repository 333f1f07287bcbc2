package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/movieapi/internal/model"
)

func TestPersonService_CreateAndGet(t *testing.T) {
	repos := setupRepos(t)
	people := NewPersonService(repos.Person, nil)
	movies := NewMovieService(repos.Movie, repos.Person, nil)
	ctx := context.Background()

	dob := model.NewDate(time.Date(1964, 9, 2, 0, 0, 0, 0, time.UTC))
	created, err := people.Create(ctx, model.ActorView{ID: 77, Name: "Keanu Reeves", DateOfBirth: dob})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, 77, created.ID)

	got, err := people.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keanu Reeves", got.Name)
	assert.True(t, dob.Equal(got.DateOfBirth.Time))
	assert.NotNil(t, got.Movies)
	assert.Empty(t, got.Movies)

	_, err = movies.Create(ctx, movieRequest("The Matrix", created.ID))
	require.NoError(t, err)
	_, err = movies.Create(ctx, movieRequest("John Wick", created.ID))
	require.NoError(t, err)

	got, err = people.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"The Matrix", "John Wick"}, got.Movies)
}

func TestPersonService_GetByID_NotFound(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPersonService(repos.Person, nil)

	_, err := svc.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrRecordNotExist)
}

func TestPersonService_ListAndSearch(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPersonService(repos.Person, nil)
	ctx := context.Background()

	createPeople(t, repos, "Keanu Reeves", "Carrie-Anne Moss", "Keanu Lookalike")

	page, err := svc.List(ctx, 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, page.Count)
	require.Len(t, page.Movies, 2)
	assert.Equal(t, "Keanu Reeves", page.Movies[0].Name)

	found, err := svc.Search(ctx, "Keanu")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestPersonService_Update(t *testing.T) {
	repos := setupRepos(t)
	svc := NewPersonService(repos.Person, nil)
	ctx := context.Background()

	p := createPeople(t, repos, "Keanu")[0]
	dob := model.NewDate(time.Date(1964, 9, 2, 0, 0, 0, 0, time.UTC))

	updated, err := svc.Update(ctx, model.ActorView{ID: p.ID, Name: "Keanu Reeves", DateOfBirth: dob})
	require.NoError(t, err)
	assert.Equal(t, p.ID, updated.ID)
	assert.Equal(t, "Keanu Reeves", updated.Name)

	_, err = svc.Update(ctx, model.ActorView{Name: "x", DateOfBirth: dob})
	assert.ErrorIs(t, err, ErrInvalidPersonData)

	_, err = svc.Update(ctx, model.ActorView{ID: p.ID + 50, Name: "x", DateOfBirth: dob})
	assert.ErrorIs(t, err, ErrInvalidPersonData)
}

func TestPersonService_Delete(t *testing.T) {
	repos := setupRepos(t)
	people := NewPersonService(repos.Person, nil)
	movies := NewMovieService(repos.Movie, repos.Person, nil)
	ctx := context.Background()

	p := createPeople(t, repos, "A", "B")
	movie, err := movies.Create(ctx, movieRequest("Heat", p[0].ID, p[1].ID))
	require.NoError(t, err)

	require.NoError(t, people.Delete(ctx, p[0].ID))
	assert.ErrorIs(t, people.Delete(ctx, p[0].ID), ErrInvalidPerson)
	assert.ErrorIs(t, people.Delete(ctx, 0), ErrInvalidPerson)

	got, err := movies.GetByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{p[1].ID}, viewIDs(got.Actors))
}
