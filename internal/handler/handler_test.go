package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/user/movieapi/internal/config"
	"github.com/user/movieapi/internal/handler"
	"github.com/user/movieapi/internal/repository"
	"github.com/user/movieapi/internal/router"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	engine    *gin.Engine
	db        *gorm.DB
	uploadDir string
}

// envelope 响应信封，data 延迟解析
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Env: "test",
		Database: config.Database{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(dir, "movies.db"),
			LogLevel:   "silent",
		},
		UploadDir:   filepath.Join(dir, "StaticFiles"),
		StaticRoute: "/StaticFiles",
	}

	db, err := repository.InitDB(cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	h := handler.NewHandler(repository.NewRepositories(db), cfg)
	return &testServer{engine: router.New(h), db: db, uploadDir: cfg.UploadDir}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if r != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) upload(t *testing.T, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/movie/upload-movie-poster", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Host = "movies.example.com"
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

type actorJSON struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	DateOfBirth string `json:"dateOfBirth"`
}

type movieJSON struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Language    string      `json:"language"`
	ReleaseDate string      `json:"releaseDate"`
	CoverImage  *string     `json:"coverImage"`
	Actors      []actorJSON `json:"actors"`
}

func (s *testServer) createPerson(t *testing.T, name string) actorJSON {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/person", map[string]interface{}{
		"name":        name,
		"dateOfBirth": "1964-09-02T00:00:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p actorJSON
	decode(t, w, &p)
	return p
}

func (s *testServer) createMovie(t *testing.T, title string, actors ...int) movieJSON {
	t.Helper()

	w := s.do(t, http.MethodPost, "/api/movie", movieBody(0, title, actors...))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var m movieJSON
	decode(t, w, &m)
	return m
}

func movieBody(id int, title string, actors ...int) map[string]interface{} {
	if actors == nil {
		actors = []int{}
	}
	return map[string]interface{}{
		"id":          id,
		"title":       title,
		"description": title + " description",
		"language":    "English",
		"releaseDate": "1999-03-31T00:00:00",
		"actors":      actors,
	}
}

func ids(actors []actorJSON) []int {
	out := make([]int, 0, len(actors))
	for _, a := range actors {
		out = append(out, a.ID)
	}
	return out
}
