package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func rateLimitedRouter(requests int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(NewRateLimiter(zap.NewNop(), nil, requests, window).Middleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	return router
}

func doRequest(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.RemoteAddr = remoteAddr

	router.ServeHTTP(rr, req)

	return rr
}

func TestRateLimiterAllowsUnderLimit(t *testing.T) {
	RegisterTestingT(t)

	router := rateLimitedRouter(3, time.Minute)

	for i := 0; i < 3; i++ {
		rr := doRequest(router, "10.0.0.1:1234")
		Expect(rr.Code).To(Equal(http.StatusOK))
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	RegisterTestingT(t)

	router := rateLimitedRouter(2, time.Minute)

	doRequest(router, "10.0.0.1:1234")
	doRequest(router, "10.0.0.1:1234")

	rr := doRequest(router, "10.0.0.1:1234")

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Header().Get("Retry-After")).ToNot(BeEmpty())
}

func TestRateLimiterKeysByClientIP(t *testing.T) {
	RegisterTestingT(t)

	router := rateLimitedRouter(1, time.Minute)

	doRequest(router, "10.0.0.1:1234")

	rr := doRequest(router, "10.0.0.2:1234")

	Expect(rr.Code).To(Equal(http.StatusOK))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	RegisterTestingT(t)

	router := rateLimitedRouter(1, 50*time.Millisecond)

	doRequest(router, "10.0.0.1:1234")

	rr := doRequest(router, "10.0.0.1:1234")
	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))

	time.Sleep(60 * time.Millisecond)

	rr = doRequest(router, "10.0.0.1:1234")
	Expect(rr.Code).To(Equal(http.StatusOK))
}
