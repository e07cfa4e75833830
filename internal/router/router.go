// Package router sets up all HTTP routes for the app.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/siddharth-labs/astro-report-api/internal/handlers"
	"github.com/siddharth-labs/astro-report-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
//
// mode is applied via gin.SetMode: gin reads the GIN_MODE env var in its
// package init, so setting the variable after startup has no effect.
func Setup(h *handlers.Handler, templateGlob, mode string, rateLimitPerHour int, allowedOrigins []string) *gin.Engine {
	gin.SetMode(mode)
	r := gin.Default()
	r.Use(middleware.CORS(allowedOrigins))
	r.LoadHTMLGlob(templateGlob)

	rateLimiter := middleware.NewRateLimiter(rateLimitPerHour)

	r.GET("/", h.Index)
	// Only the submit route burns upstream quota, so only it is throttled.
	r.POST("/", rateLimiter.RateLimit(), h.Submit)
	r.GET("/download", h.Download)

	r.GET("/api/v1/health", h.HealthCheck)

	return r
}
