package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/middleware"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/seed"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/service"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/internal/storage/sqlite"
	"github.com/venkateswarlu-cpu/SmartExpenseSplitter-Ambati/pkg/logging"
)

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	// .env is optional; deployed environments set variables directly
	_ = godotenv.Load()

	// Setup structured logging
	logging.Setup()

	dbPath := getEnv("DB_PATH", "./data/expenses.db")
	port := getEnv("PORT", "8080")

	// Initialize SQLite storage
	store, err := sqlite.New(dbPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", dbPath)

	// Seed default groups. A failure here is logged, not fatal: the API
	// still serves whatever was seeded before the failure.
	if err := seed.New(store).EnsureDefaultGroups(context.Background(), seed.DefaultGroups); err != nil {
		slog.Error("Error seeding groups", "error", err)
	}

	mux := service.NewRouter(store)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// Wrap with h2c so clients can use HTTP/2 without TLS
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := ":" + port
	slog.Info("Server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
