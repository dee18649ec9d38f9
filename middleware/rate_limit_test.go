package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/scribeapp/scribe/middleware"
)

func TestRateLimitThrottlesBursts(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimit())
	r.GET("/limited", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	var allowed, throttled int
	for i := 0; i < 200; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "198.51.100.7:4000"
		r.ServeHTTP(w, req)
		switch w.Code {
		case http.StatusOK:
			allowed++
		case http.StatusTooManyRequests:
			throttled++
		}
	}

	assert.Greater(t, allowed, 0, "the initial burst passes")
	assert.Greater(t, throttled, 0, "sustained bursts are throttled")
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RateLimit())
	r.GET("/limited", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	// exhaust one client
	for i := 0; i < 200; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		r.ServeHTTP(w, req)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "203.0.113.10:4000"
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "a fresh client has its own bucket")
}
