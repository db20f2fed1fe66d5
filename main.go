package main

import (
	"log"
	"net/http"

	"pricewise/config"
	"pricewise/database"
	"pricewise/handlers"
	"pricewise/middleware"
	"pricewise/pricing"
	"pricewise/repository"
	"pricewise/scheduler"
	"pricewise/scraper"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	if err := database.CreateTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository()

	// Initialize pricing pipeline
	classifier := pricing.NewKeywordClassifier()
	validator := pricing.NewValidator(classifier)
	estimator := pricing.NewEstimator(classifier)

	// Initialize comparison builder
	fetcher := scraper.NewHTTPFetcher(cfg.FetchTimeout)
	builder := scraper.NewBuilder(fetcher, validator, estimator, cfg.FetchTimeout)

	// Initialize and start the comparison refresher
	cache := scheduler.NewComparisonCache()
	refresher := scheduler.NewRefresher(builder, productRepo, cache, cfg.FetchTimeout)
	if err := refresher.Start(cfg.RefreshSchedule); err != nil {
		log.Fatalf("Failed to start refresher: %v", err)
	}
	defer refresher.Stop()

	// Initialize handlers
	h := handlers.NewHandlers(builder, productRepo, cache, cfg.FetchTimeout)

	// Setup router
	r := mux.NewRouter()

	// Apply global middleware
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS))

	r.HandleFunc("/health", h.HealthCheck).Methods("GET")

	apiV1 := r.PathPrefix("/api/v1").Subrouter()
	apiV1.HandleFunc("/analyze", h.AnalyzeProduct).Methods("POST")
	apiV1.HandleFunc("/products", h.AddTrackedProduct).Methods("POST")
	apiV1.HandleFunc("/products", h.GetTrackedProducts).Methods("GET")
	apiV1.HandleFunc("/products/{id}", h.DeleteTrackedProduct).Methods("DELETE")
	apiV1.HandleFunc("/products/{id}/comparison", h.GetProductComparison).Methods("GET")

	// CORS configuration
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	log.Printf("Server starting on %s:%s", cfg.Host, cfg.Port)
	log.Printf("   GET  /health - Health check")
	log.Printf("   POST /api/v1/analyze - Compare a product across platforms")
	log.Printf("   POST /api/v1/products - Track a product")
	log.Printf("   GET  /api/v1/products - Get tracked products")
	log.Printf("   GET  /api/v1/products/{id}/comparison - Latest comparison for a product")

	log.Fatal(http.ListenAndServe(cfg.Host+":"+cfg.Port, c.Handler(r)))
}
