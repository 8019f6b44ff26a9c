package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/botsuinsure/botsuinsure-api/internal/infra/catalog"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/http/handlers"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/http/middleware"
	"github.com/botsuinsure/botsuinsure-api/internal/infra/memory"
	"github.com/botsuinsure/botsuinsure-api/internal/usecase"
)

func main() {
	godotenv.Load()

	logger, err := newLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	// The product table is built once here and stays read-only for the
	// life of the process.
	table := catalog.Build(getenv("DATA_DIR", "data"), logger)
	for _, src := range table.Sources {
		if !src.Loaded {
			middleware.RecordCatalogLoadFailure(src.File)
		}
	}

	productRepo := memory.NewProductRepository(table.Products)
	companyRepo := memory.NewCompanyRepository(table.Companies)

	compareUC := usecase.NewCompareProductsUseCase(productRepo)
	calculateUC := usecase.NewCalculatePremiumsUseCase(productRepo)
	captureLeadUC := usecase.NewCaptureLeadUseCase()

	productHandler := handlers.NewProductHandler(productRepo, calculateUC)
	compareHandler := handlers.NewCompareHandler(compareUC)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	healthHandler := handlers.NewHealthHandler(table)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
	}))

	r.Get("/", handleRoot)
	r.Get("/api/products", productHandler.HandleList)
	r.Get("/api/products/calculate", productHandler.HandleCalculate)
	r.Get("/api/products/{id}", productHandler.HandleGet)
	r.Get("/api/compare", compareHandler.Handle)
	r.Get("/api/companies", companyHandler.HandleList)
	r.Post("/api/leads", leadHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())
	r.NotFound(handleNotFound)

	port := getenv("PORT", "8080")
	logger.Info("listening",
		zap.String("port", port),
		zap.Int("products", len(table.Products)),
	)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "BotsuInsure API - Compare Botswana Insurance Plans",
	})
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "Not found"})
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
