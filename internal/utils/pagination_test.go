package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contextWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestGetPaginationParams_Defaults(t *testing.T) {
	params := GetPaginationParams(contextWithQuery(""))

	assert.Equal(t, 1, params.PageIndex)
	assert.Equal(t, 10, params.PageSize)
}

func TestGetPaginationParams_ClampsOutOfRangeValues(t *testing.T) {
	params := GetPaginationParams(contextWithQuery("pageIndex=-3&pageSize=5000"))

	assert.Equal(t, 1, params.PageIndex)
	assert.Equal(t, 10, params.PageSize)
}

func TestGetPaginationParams_PassesValidValues(t *testing.T) {
	params := GetPaginationParams(contextWithQuery("pageIndex=3&pageSize=25"))

	assert.Equal(t, 3, params.PageIndex)
	assert.Equal(t, 25, params.PageSize)
}

func TestQueryUint64(t *testing.T) {
	value, ok := QueryUint64(contextWithQuery("userId=42"), "userId")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), value)

	value, ok = QueryUint64(contextWithQuery(""), "userId")
	assert.True(t, ok)
	assert.Equal(t, uint64(0), value)

	_, ok = QueryUint64(contextWithQuery("userId=abc"), "userId")
	assert.False(t, ok)
}
