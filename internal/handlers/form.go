// form.go serves the input form and processes submissions.
//
// GET  / — the form, plus this session's most recent result if it has one
// POST / — validate, normalize, predict, store, re-render with the result
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/siddharth-labs/astro-report-api/internal/models"
	"github.com/siddharth-labs/astro-report-api/internal/services/age"
	"github.com/siddharth-labs/astro-report-api/internal/services/prediction"
)

// Index renders the form page.
// GET /
func (h *Handler) Index(c *gin.Context) {
	// Session-only lookup: the form page never shows another visitor's
	// result. The global fallback is reserved for /download.
	var rep *models.Report
	if id, err := c.Cookie(sessionCookie); err == nil {
		rep, _ = h.Store.GetSession(id)
	}
	h.renderPage(c, rep)
}

// Submit processes a form submission.
// POST /
//
// All four fields are required. If any is missing or blank the submission is
// silently skipped and the bare form is re-rendered — intentional behavior:
// partial input is not an error condition worth a failure page.
func (h *Handler) Submit(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	dob := strings.TrimSpace(c.PostForm("dob"))
	tob := strings.TrimSpace(c.PostForm("tob"))
	location := strings.TrimSpace(c.PostForm("location"))

	if name == "" || dob == "" || tob == "" || location == "" {
		h.renderPage(c, nil)
		return
	}

	ctx := c.Request.Context()

	normalized := h.Normalizer.Normalize(ctx, location)

	// Unparseable dates degrade to an unknown age rather than failing the
	// submission.
	var agePtr *int
	if years, err := age.Calculate(dob); err == nil {
		agePtr = &years
	}

	text := h.Predictor.Predict(ctx, prediction.Inputs{
		Name:               name,
		DOB:                dob,
		TOB:                tob,
		NormalizedLocation: normalized,
		Age:                agePtr,
	})

	rep := &models.Report{
		Name:               name,
		DOB:                dob,
		TOB:                tob,
		Age:                agePtr,
		NormalizedLocation: normalized,
		Prediction:         text,
	}

	h.Store.Put(sessionID(c), rep)
	h.renderPage(c, rep)
}

// renderPage renders index.html, with or without a result block.
func (h *Handler) renderPage(c *gin.Context, rep *models.Report) {
	data := gin.H{}
	if rep != nil {
		data["Report"] = rep
	}
	c.HTML(http.StatusOK, "index.html", data)
}
