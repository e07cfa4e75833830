// download.go serves the current report as a PDF attachment.
package handlers

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-labs/astro-report-api/internal/models"
)

// Download regenerates and serves the PDF for the caller's current report.
// GET /download
//
// The PDF is rebuilt from the stored report on every request — bytes are
// never cached. With no report yet, this is the one user-visible failure in
// the app: an explicit 400, not an empty document.
func (h *Handler) Download(c *gin.Context) {
	var sid string
	if id, err := c.Cookie(sessionCookie); err == nil {
		sid = id
	}

	rep, ok := h.Store.Get(sid)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "no_report",
			Message: "No report available! Submit the form first.",
			Code:    http.StatusBadRequest,
		})
		return
	}

	path, err := h.Renderer.RenderFile(rep, h.OutputDir)
	if err != nil {
		log.Printf("⚠️  PDF render failed for %q: %v", rep.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "render_failed",
			Message: "Could not generate the PDF document",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.FileAttachment(path, filepath.Base(path))
}
