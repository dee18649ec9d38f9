package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return ctx, w
}

func TestParseIDParam(t *testing.T) {
	ctx, _ := testContext("/x")
	ctx.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseIDParam(ctx)
	assert.True(t, ok)
	assert.EqualValues(t, 42, id)
}

func TestParseIDParamRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", "0"} {
		ctx, w := testContext("/x")
		ctx.Params = gin.Params{{Key: "id", Value: raw}}
		_, ok := parseIDParam(ctx)
		assert.False(t, ok, "value %q must be rejected", raw)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestParsePaginationDefaults(t *testing.T) {
	ctx, _ := testContext("/x")
	limit, offset := parsePagination(ctx)
	assert.Equal(t, 100, limit)
	assert.Equal(t, 0, offset)
}

func TestParsePaginationBounds(t *testing.T) {
	ctx, _ := testContext("/x?limit=5000&offset=-3")
	limit, offset := parsePagination(ctx)
	assert.Equal(t, 100, limit, "out-of-range limit falls back to the default")
	assert.Equal(t, 0, offset, "negative offset falls back to zero")

	ctx, _ = testContext("/x?limit=10&offset=20")
	limit, offset = parsePagination(ctx)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 20, offset)
}
