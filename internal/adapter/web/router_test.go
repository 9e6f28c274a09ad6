package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"

	. "todoweb/pkg/test"

	"todoweb/internal/adapter/database/sqlite/repository"
	"todoweb/internal/adapter/web/handler"
	"todoweb/internal/core/domain"
	"todoweb/internal/core/port"
	"todoweb/internal/core/service"
	"todoweb/internal/metrics"
	"todoweb/pkg/config"

	factory "todoweb/pkg/test/factory"
)

var ctx = context.Background()

type RouterSuite struct {
	suite.Suite
	Repo   port.TodoRepository
	Config *config.AppConfig
}

func (s *RouterSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db := InitTestDB()

	s.Repo = repository.NewTodoRepository(db)
	s.Config = &config.AppConfig{
		Environment:  "test",
		PageCacheTTL: 3 * time.Second,
		Listing:      config.DefaultListing(),
	}
}

func TestRouterSuite(t *testing.T) {
	RegisterTestingT(t)

	suite.Run(t, new(RouterSuite))
}

func (s *RouterSuite) buildRouter() *gin.Engine {
	svc := service.NewTodoService(s.Repo, s.Config.Listing, nil, nil)
	logger := otelzap.New(zap.NewNop())

	return SetupRouter(RouterConfig{
		TodoHandler:   handler.NewTodoHandler(svc, logger),
		Logger:        logger,
		Metrics:       metrics.NewAppMetrics(prometheus.NewRegistry()),
		AppConfig:     s.Config,
		TemplatesGlob: filepath.Join(ProjectRoot(), "web", "templates", "*.html"),
		StaticDir:     filepath.Join(ProjectRoot(), "web", "static"),
	})
}

func (s *RouterSuite) serve(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)

	router.ServeHTTP(rr, req)

	return rr
}

func (s *RouterSuite) TestRootRedirectsToList() {
	rr := s.serve(s.buildRouter(), "GET", "/")

	Expect(rr.Code).To(Equal(http.StatusFound))
	Expect(rr.Header().Get("Location")).To(Equal("/todos"))
}

func (s *RouterSuite) TestHealthz() {
	rr := s.serve(s.buildRouter(), "GET", "/healthz")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring(`"status":"ok"`))
}

func (s *RouterSuite) TestMetricsEndpointExposesRequestCounters() {
	router := s.buildRouter()

	s.serve(router, "GET", "/todos")

	rr := s.serve(router, "GET", "/metrics")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).To(ContainSubstring("http_requests_total"))
}

func (s *RouterSuite) TestUnknownRouteRenders404Page() {
	rr := s.serve(s.buildRouter(), "GET", "/nope")

	Expect(rr.Code).To(Equal(http.StatusNotFound))
	Expect(rr.Header().Get("Content-Type")).To(ContainSubstring("text/html"))
}

func (s *RouterSuite) TestStaticAssetsServed() {
	rr := s.serve(s.buildRouter(), "GET", "/static/css/style.css")

	Expect(rr.Code).To(Equal(http.StatusOK))
}

func (s *RouterSuite) TestPageCacheServesSecondListHit() {
	s.Config.PageCacheEnabled = true
	router := s.buildRouter()

	s.serve(router, "GET", "/todos")

	s.Repo.Create(ctx, factory.NewTodo[domain.Todo](map[string]any{"Title": "Invisible"}))

	rr := s.serve(router, "GET", "/todos")

	Expect(rr.Code).To(Equal(http.StatusOK))
	Expect(rr.Body.String()).ToNot(ContainSubstring("Invisible"))
}

func (s *RouterSuite) TestRateLimitKicksIn() {
	s.Config.RateLimitEnabled = true
	router := s.buildRouter()

	var last *httptest.ResponseRecorder

	for i := 0; i < 61; i++ {
		last = s.serve(router, "GET", "/healthz")
	}

	Expect(last.Code).To(Equal(http.StatusTooManyRequests))
	Expect(last.Header().Get("Retry-After")).ToNot(BeEmpty())
}
