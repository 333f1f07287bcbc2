package model

// ActorView 演员视图，同时作为人物的创建/更新请求体
type ActorView struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	DateOfBirth Date   `json:"dateOfBirth" binding:"required"`
}

// ActorDetailView 演员详情（含参演电影标题）
type ActorDetailView struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	DateOfBirth Date     `json:"dateOfBirth"`
	Movies      []string `json:"movies"`
}

// PersonSearchView 人物搜索结果
type PersonSearchView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MovieListView 电影列表项
type MovieListView struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Actors      []ActorView `json:"actors"`
	Language    string      `json:"language"`
	ReleaseDate Date        `json:"releaseDate"`
	CoverImage  *string     `json:"coverImage"`
}

// MovieDetailView 电影详情
type MovieDetailView struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Language    string      `json:"language"`
	ReleaseDate Date        `json:"releaseDate"`
	CoverImage  *string     `json:"coverImage"`
	Actors      []ActorView `json:"actors"`
}

// MovieSearchView 电影搜索结果
type MovieSearchView struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	ReleaseDate Date        `json:"releaseDate"`
	Description string      `json:"description"`
	CoverImage  *string     `json:"coverImage"`
	Actors      []ActorView `json:"actors"`
}

// CreateMovieRequest 创建/更新电影请求体
type CreateMovieRequest struct {
	ID          int     `json:"id"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Actors      []int   `json:"actors" binding:"required"`
	Language    string  `json:"language" binding:"required"`
	ReleaseDate Date    `json:"releaseDate" binding:"required"`
	CoverImage  *string `json:"coverImage"`
}

// MoviePage 电影分页结果
type MoviePage struct {
	Movies []MovieListView `json:"movies"`
	Count  int64           `json:"count"`
}

// PersonPage 人物分页结果
// 列表字段沿用 movies 键名，与已有客户端保持一致
type PersonPage struct {
	Movies []ActorView `json:"movies"`
	Count  int64       `json:"count"`
}
