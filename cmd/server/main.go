// Package main is the entry point for the Siddharth Astrology web server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/siddharth-labs/astro-report-api/internal/config"
	"github.com/siddharth-labs/astro-report-api/internal/handlers"
	"github.com/siddharth-labs/astro-report-api/internal/router"
	"github.com/siddharth-labs/astro-report-api/internal/services/location"
	"github.com/siddharth-labs/astro-report-api/internal/services/pdfgen"
	"github.com/siddharth-labs/astro-report-api/internal/services/prediction"
	"github.com/siddharth-labs/astro-report-api/internal/services/report"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🔮 Siddharth Astrology %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}
	log.Printf("📋 Config loaded: port=%s, model=%s, fallback=%s", cfg.Port, cfg.Model, cfg.ModelFallback)

	// Step 2: Create Services
	normalizer := location.New(cfg.GeocodeTimeout)

	gemini, err := prediction.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GenerateTimeout)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}
	defer gemini.Close()
	predictor := prediction.New(gemini, cfg.Model, cfg.ModelFallback)

	// Font probe is non-fatal; the renderer logs its own downgrade.
	renderer := pdfgen.NewRenderer(cfg.FontPath)
	store := report.NewStore()

	// Step 3: Setup HTTP Router
	h := handlers.NewHandler(store, normalizer, predictor, renderer,
		cfg.OutputDir, cfg.Model, cfg.ModelFallback, Version)
	r := router.Setup(h, "web/templates/*", cfg.GinMode, cfg.RateLimitPerHour, cfg.AllowedOrigins)

	// Step 4: Start the HTTP Server
	// Generation can take tens of seconds, so the write timeout is generous.
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("🌐 Server listening on http://localhost:%s", cfg.Port)
		log.Printf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	// Step 5: Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Printf("🛑 Received signal %v, shutting down gracefully...", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server forced to shutdown: %v", err)
	}

	log.Println("👋 Server stopped. Goodbye!")
}
