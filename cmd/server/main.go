// Package main is the entry point for the Exam Prep API server.
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

	"github.com/prepwise/exam-prep-api/internal/config"
	"github.com/prepwise/exam-prep-api/internal/router"
	"github.com/prepwise/exam-prep-api/internal/services/analyzer"
	"github.com/prepwise/exam-prep-api/internal/services/llm"
	"github.com/prepwise/exam-prep-api/internal/services/predictor"
	"github.com/prepwise/exam-prep-api/internal/services/summarizer"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("🚀 Exam Prep API %s starting...", Version)

	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	log.Printf("📋 Config loaded: port=%s, gin_mode=%s, pdf_engine=%s", cfg.Port, cfg.GinMode, cfg.PDFEngine)

	os.Setenv("GIN_MODE", cfg.GinMode)

	// Step 2: Create Services
	client := llm.New(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.OpenRouterBaseURL)
	if client.Configured() {
		log.Printf("✅ Model client configured (%s)", cfg.OpenRouterModel)
	} else {
		log.Println("⚠️  No model API key set (set OPENROUTER_API_KEY — analysis requests will fail)")
	}

	pipeline := analyzer.New(summarizer.New(client), predictor.New(client))

	if cfg.APIKey != "" {
		log.Println("✅ API key auth enabled")
	} else {
		log.Println("⚠️  No API key configured (endpoints are open — set API_KEY in production)")
	}

	// Step 3: Setup HTTP Router
	r := router.Setup(cfg, pipeline, Version)

	// Step 4: Start the HTTP Server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
		// Model calls block the analyze request, so the write timeout is
		// generous while reads stay tight.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 180 * time.Second,
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
