package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/scribeapp/scribe/middleware"
)

func requestIDRouter() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/ping", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, ctx.GetString(middleware.ContextRequestIDKey))
	})
	return r
}

func TestRequestIDGenerated(t *testing.T) {
	w := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(middleware.HeaderRequestID)
	assert.NotEmpty(t, id)
	assert.Equal(t, id, w.Body.String(), "context and header carry the same id")
}

func TestRequestIDHonorsClientValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(middleware.HeaderRequestID, "client-supplied-id")

	w := httptest.NewRecorder()
	requestIDRouter().ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", w.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "client-supplied-id", w.Body.String())
}
