// Package handlers contains the HTTP handlers for the web app.
//
// Go Pattern: Handlers are grouped on a struct holding shared dependencies,
// injected explicitly — no globals, no service locator. The external-facing
// collaborators are small local interfaces so tests can stub the geocoding
// and generation backends without touching the network.
package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/siddharth-labs/astro-report-api/internal/models"
	"github.com/siddharth-labs/astro-report-api/internal/services/prediction"
	"github.com/siddharth-labs/astro-report-api/internal/services/report"
)

// sessionCookie scopes reports to the submitting browser.
const sessionCookie = "astro_session"

// Normalizer resolves free-text locations to an India-hierarchy label.
type Normalizer interface {
	Normalize(ctx context.Context, text string) string
}

// Predictor produces the astrology narrative. Total: always returns text.
type Predictor interface {
	Predict(ctx context.Context, in prediction.Inputs) string
}

// Renderer turns a report into a PDF artifact on disk.
type Renderer interface {
	RenderFile(rep *models.Report, dir string) (string, error)
	HasUnicodeFont() bool
}

// Handler holds shared dependencies for all HTTP handlers.
type Handler struct {
	Store      *report.Store
	Normalizer Normalizer
	Predictor  Predictor
	Renderer   Renderer

	OutputDir     string
	Model         string
	ModelFallback string
	Version       string
}

// NewHandler creates a handler with all dependencies.
func NewHandler(store *report.Store, n Normalizer, p Predictor, r Renderer, outputDir, model, modelFallback, version string) *Handler {
	return &Handler{
		Store:         store,
		Normalizer:    n,
		Predictor:     p,
		Renderer:      r,
		OutputDir:     outputDir,
		Model:         model,
		ModelFallback: modelFallback,
		Version:       version,
	}
}

// sessionID returns the browser's session id, minting and setting a new one
// when absent. Session ids are opaque uuids, not credentials.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.New().String()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}
