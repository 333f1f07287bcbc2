package handler_test

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPoster_RejectsExtension(t *testing.T) {
	s := newTestServer(t)

	w := s.upload(t, "imageFile", "virus.exe", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.False(t, env.Status)
	assert.Equal(t, "Only .jpg, .jpeg and png type files are Allowed.", env.Message)

	entries, err := os.ReadDir(s.uploadDir)
	if err == nil {
		assert.Empty(t, entries)
	} else {
		assert.True(t, os.IsNotExist(err))
	}
}

func TestUploadPoster_Accepts(t *testing.T) {
	s := newTestServer(t)

	w := s.upload(t, "imageFile", "poster.png", []byte("png-bytes"))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	url := resp["profileImage"]
	require.True(t, strings.HasPrefix(url, "http://movies.example.com/StaticFiles/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"))

	name := strings.TrimPrefix(url, "http://movies.example.com/StaticFiles/")
	assert.NotEqual(t, "poster.png", name)

	data, err := os.ReadFile(filepath.Join(s.uploadDir, name))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))

	// 上传后可通过静态路由访问
	w = s.do(t, http.MethodGet, "/StaticFiles/"+name, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
}

func TestUploadPoster_MissingFile(t *testing.T) {
	s := newTestServer(t)

	w := s.upload(t, "otherField", "poster.png", []byte("png-bytes"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"An error occured.","data":null}`, w.Body.String())
}
