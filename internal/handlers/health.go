package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-labs/astro-report-api/internal/models"
)

// HealthCheck returns service status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:        "ok",
		Version:       h.Version,
		OdiaFont:      h.Renderer.HasUnicodeFont(),
		Model:         h.Model,
		ModelFallback: h.ModelFallback,
	})
}
