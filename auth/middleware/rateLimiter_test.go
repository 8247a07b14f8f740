package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_RefusesBeyondBurst(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "1")
	t.Setenv("RATE_LIMIT_BURST", "2")
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRateLimiter().Middleware())
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	var codes []int
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, w.Code)
	}

	// httptest requests share a client IP, so they share one bucket.
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestEnvInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "")
	assert.Equal(t, 10, envInt("RATE_LIMIT_RPS", 10))

	t.Setenv("RATE_LIMIT_RPS", "abc")
	assert.Equal(t, 10, envInt("RATE_LIMIT_RPS", 10))

	t.Setenv("RATE_LIMIT_RPS", "-5")
	assert.Equal(t, 10, envInt("RATE_LIMIT_RPS", 10))

	t.Setenv("RATE_LIMIT_RPS", "3")
	assert.Equal(t, 3, envInt("RATE_LIMIT_RPS", 10))
}
