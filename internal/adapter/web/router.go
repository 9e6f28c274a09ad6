package web

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"todoweb/internal/adapter/web/handler"
	"todoweb/internal/adapter/web/middleware"
	"todoweb/internal/metrics"
	"todoweb/pkg/config"
)

type RouterConfig struct {
	TodoHandler *handler.TodoHandler
	Logger      *otelzap.Logger
	Metrics     *metrics.AppMetrics
	AppConfig   *config.AppConfig

	// TemplatesGlob and StaticDir let tests point the engine at the repo
	// root; empty values mean the defaults relative to the working dir.
	TemplatesGlob string
	StaticDir     string
}

func SetupRouter(rc RouterConfig) *gin.Engine {
	if rc.AppConfig.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("todoweb"))
	router.Use(middleware.RequestLogger(rc.Logger, rc.Metrics))

	if rc.AppConfig.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(rc.Logger.Logger, rc.Metrics, 60, time.Minute)
		router.Use(limiter.Middleware())
	}

	templatesGlob := rc.TemplatesGlob

	if templatesGlob == "" {
		templatesGlob = "web/templates/*.html"
	}

	staticDir := rc.StaticDir

	if staticDir == "" {
		staticDir = "web/static"
	}

	router.LoadHTMLGlob(templatesGlob)
	router.Static("/static", staticDir)

	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/todos")
	})

	todos := router.Group("/todos")
	{
		listHandlers := []gin.HandlerFunc{}

		if rc.AppConfig.PageCacheEnabled {
			pageCache := middleware.NewPageCache(rc.Logger.Logger, rc.Metrics, rc.AppConfig.PageCacheTTL)
			listHandlers = append(listHandlers, pageCache.Middleware())
		}

		todos.GET("", append(listHandlers, rc.TodoHandler.List)...)
		todos.GET("/new", rc.TodoHandler.NewForm)
		todos.POST("", rc.TodoHandler.Create)
		todos.GET("/:id", rc.TodoHandler.Detail)
		todos.GET("/:id/edit", rc.TodoHandler.EditForm)
		todos.POST("/:id", rc.TodoHandler.Update)
		todos.POST("/:id/toggle", rc.TodoHandler.Toggle)
		todos.GET("/:id/delete", rc.TodoHandler.ConfirmDelete)
		todos.POST("/:id/delete", rc.TodoHandler.Delete)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if rc.Metrics != nil {
		router.GET("/metrics", gin.WrapH(rc.Metrics.Handler()))
	}

	router.NoRoute(func(c *gin.Context) {
		c.HTML(http.StatusNotFound, "404.html", nil)
	})

	return router
}
