package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	OK(c, "Success", gin.H{"count": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":true,"message":"Success","data":{"count":1}}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Fail(c, "Record does not Exist", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Status)
	assert.Equal(t, "Record does not Exist", resp.Message)
	assert.Nil(t, resp.Data)
}

func TestAbortFail(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	AbortFail(c, "Something went wrong")

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"status":false,"message":"Something went wrong","data":null}`, w.Body.String())
}
