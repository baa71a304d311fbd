package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/JunbeomL22/letsberational/internal/config"
	"github.com/JunbeomL22/letsberational/internal/handlers"
	"github.com/JunbeomL22/letsberational/internal/logger"

	"github.com/gorilla/mux"
)

func main() {
	cfg := config.Load()

	// Initialize proper logging with config level and file path
	if err := logger.InitWithConfig(cfg.Logging.LogLevel, cfg.Logging.LogFile); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	logger.Always.Printf("🚀 Let's Be Rational implied vol service starting - Port: %s", cfg.Port)

	if cfg.Logging.LogLevel == "verbose" {
		fmt.Printf("⚠️  VERBOSE LOGGING ENABLED - Per-quote solver traces will be logged to %s\n", cfg.Logging.LogFile)
	}

	logger.Always.Printf("🔧 ENGINE: rational solver, max batch %d, default option type %s",
		cfg.Engine.MaxBatchSize, cfg.Engine.DefaultOptionType)
	if cfg.Engine.EnableBenchmarks {
		logger.Always.Printf("🔧 BENCHMARK MODE: Newton-Raphson baseline reported alongside each quote")
	}

	// Initialize handlers
	volHandler := handlers.NewVolHandler(cfg)

	// Setup router
	r := mux.NewRouter()

	// Main application endpoints
	r.HandleFunc("/api/implied-vol", volHandler.ImpliedVolHandler).Methods("POST")
	r.HandleFunc("/api/implied-vol/batch", volHandler.BatchImpliedVolHandler).Methods("POST")
	r.HandleFunc("/api/price", volHandler.PriceHandler).Methods("POST")
	r.HandleFunc("/api/health", volHandler.HealthHandler).Methods("GET")

	// Start server
	fmt.Printf("🌐 Server starting on http://localhost:%s\n", cfg.Port)
	logger.Always.Printf("🌐 Server starting on http://localhost:%s", cfg.Port)
	logger.Info.Printf("🌐 HTTP server started on port %s", cfg.Port)

	if err := http.ListenAndServe("0.0.0.0:"+cfg.Port, r); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
