package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"bookstore-map/internal/shared/middleware"
	"bookstore-map/internal/shared/response"
	"bookstore-map/pkg/container"
	"bookstore-map/web"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) (*gin.Engine, error) {
	router := gin.New()

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	sessionConfig := middleware.DefaultSessionConfig()
	sessionConfig.CookieSecure = c.Config.Session.CookieSecure
	sessionConfig.MaxAge = int(c.Config.Session.TTL.Seconds())

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.Metrics(c.Metrics),
	)

	router.StaticFS("/static", http.FS(web.Static()))
	if c.Metrics != nil {
		router.GET("/metrics", gin.WrapH(c.Metrics.Handler()))
	}

	// Pages keep the user's selection per browser session
	pages := router.Group("/")
	pages.Use(middleware.Session(sessionConfig))
	{
		pages.GET("", c.BookstoreHandler.Page)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))
		setupBookstoreRoutes(v1, c)
	}

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Route not found")
	})

	return router, nil
}

// ========================================
// BOOKSTORE ROUTES
// ========================================
func setupBookstoreRoutes(v1 *gin.RouterGroup, c *container.Container) {
	bookstores := v1.Group("/bookstores")
	{
		bookstores.GET("", c.BookstoreHandler.GetPage)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Redis chỉ giữ selection state, lỗi Redis không làm service unhealthy
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"redis": redisStatus,
		}

		c.JSON(http.StatusOK, health)
	}
}
