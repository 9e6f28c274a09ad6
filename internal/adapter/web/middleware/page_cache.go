package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"todoweb/internal/metrics"
)

// PageCache memoizes rendered GET responses for a short TTL. It is a plain
// TTL cache: writes do not invalidate it, which is why the TTL stays in the
// low seconds.
type PageCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *metrics.AppMetrics
}

type cachedPage struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func NewPageCache(logger *zap.Logger, appMetrics *metrics.AppMetrics, ttl time.Duration) *PageCache {
	return &PageCache{
		cache:   cache.New(ttl, 2*ttl),
		ttl:     ttl,
		logger:  logger,
		metrics: appMetrics,
	}
}

type bodyCapture struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

func (pc *PageCache) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI()

		if v, found := pc.cache.Get(key); found {
			page := v.(cachedPage)

			if pc.metrics != nil {
				pc.metrics.RecordCacheHit(c.Request.URL.Path)
			}

			pc.logger.Debug("page cache hit", zap.String("key", key))

			c.Header("Content-Type", page.ContentType)
			c.Data(page.StatusCode, page.ContentType, page.Body)
			c.Abort()
			return
		}

		if pc.metrics != nil {
			pc.metrics.RecordCacheMiss(c.Request.URL.Path)
		}

		capture := &bodyCapture{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = capture

		c.Next()

		if capture.Status() == http.StatusOK {
			pc.cache.Set(key, cachedPage{
				StatusCode:  capture.Status(),
				ContentType: capture.Header().Get("Content-Type"),
				Body:        capture.buf.Bytes(),
			}, pc.ttl)
		}
	}
}
