package model

// ToActorView Person -> ActorView
func ToActorView(p Person) ActorView {
	return ActorView{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: NewDate(p.DateOfBirth),
	}
}

// ToActorViews 批量转换，空输入返回空切片而不是 nil
func ToActorViews(people []Person) []ActorView {
	views := make([]ActorView, 0, len(people))
	for _, p := range people {
		views = append(views, ToActorView(p))
	}
	return views
}

// ToPerson ActorView -> Person
func (v ActorView) ToPerson() Person {
	return Person{
		ID:          v.ID,
		Name:        v.Name,
		DateOfBirth: v.DateOfBirth.Time,
	}
}

func ToActorDetailView(p Person, titles []string) ActorDetailView {
	if titles == nil {
		titles = []string{}
	}
	return ActorDetailView{
		ID:          p.ID,
		Name:        p.Name,
		DateOfBirth: NewDate(p.DateOfBirth),
		Movies:      titles,
	}
}

func ToPersonSearchViews(people []Person) []PersonSearchView {
	views := make([]PersonSearchView, 0, len(people))
	for _, p := range people {
		views = append(views, PersonSearchView{ID: p.ID, Name: p.Name})
	}
	return views
}

func ToMovieListView(m Movie) MovieListView {
	return MovieListView{
		ID:          m.ID,
		Title:       m.Title,
		Actors:      ToActorViews(m.Actors),
		Language:    m.Language,
		ReleaseDate: NewDate(m.ReleaseDate),
		CoverImage:  m.CoverImage,
	}
}

func ToMovieListViews(movies []Movie) []MovieListView {
	views := make([]MovieListView, 0, len(movies))
	for _, m := range movies {
		views = append(views, ToMovieListView(m))
	}
	return views
}

func ToMovieDetailView(m Movie) MovieDetailView {
	return MovieDetailView{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Language:    m.Language,
		ReleaseDate: NewDate(m.ReleaseDate),
		CoverImage:  m.CoverImage,
		Actors:      ToActorViews(m.Actors),
	}
}

func ToMovieSearchViews(movies []Movie) []MovieSearchView {
	views := make([]MovieSearchView, 0, len(movies))
	for _, m := range movies {
		views = append(views, MovieSearchView{
			ID:          m.ID,
			Title:       m.Title,
			ReleaseDate: NewDate(m.ReleaseDate),
			Description: m.Description,
			CoverImage:  m.CoverImage,
			Actors:      ToActorViews(m.Actors),
		})
	}
	return views
}

// ToMovie 请求体 -> 实体（不含演员，演员由调用方解析后赋值）
func (r CreateMovieRequest) ToMovie() Movie {
	return Movie{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Language:    r.Language,
		ReleaseDate: r.ReleaseDate.Time,
		CoverImage:  r.CoverImage,
	}
}

// ApplyTo 用请求体覆盖已有电影的标量字段
func (r CreateMovieRequest) ApplyTo(m *Movie) {
	m.Title = r.Title
	m.Description = r.Description
	m.Language = r.Language
	m.ReleaseDate = r.ReleaseDate.Time
	m.CoverImage = r.CoverImage
}
