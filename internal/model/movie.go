package model

import (
	"time"
)

// Movie 电影
type Movie struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Language    string    `json:"language" gorm:"not null"`
	ReleaseDate time.Time `json:"releaseDate" gorm:"not null"`
	CoverImage  *string   `json:"coverImage"`
	Actors      []Person  `json:"actors" gorm:"many2many:movie_actors;constraint:OnDelete:CASCADE;"`
}

func (Movie) TableName() string {
	return "movies"
}

// Person 人物（演员）
type Person struct {
	ID          int       `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	DateOfBirth time.Time `json:"dateOfBirth"`
}

func (Person) TableName() string {
	return "people"
}

// MovieActorTable 电影与演员的关联表
const MovieActorTable = "movie_actors"
