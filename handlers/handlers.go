package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pricewise/models"
	"pricewise/repository"
	"pricewise/scheduler"
	"pricewise/scraper"

	"github.com/gorilla/mux"
)

// Analyzer turns raw user input (product name or URL) into a comparison.
type Analyzer interface {
	Analyze(ctx context.Context, input string) (*models.ComparisonResult, error)
	Compare(ctx context.Context, query models.ProductQuery) (*models.ComparisonResult, error)
}

type Handlers struct {
	analyzer    Analyzer
	productRepo *repository.ProductRepository
	cache       *scheduler.ComparisonCache
	timeout     time.Duration
}

func NewHandlers(analyzer Analyzer, productRepo *repository.ProductRepository, cache *scheduler.ComparisonCache, timeout time.Duration) *Handlers {
	return &Handlers{
		analyzer:    analyzer,
		productRepo: productRepo,
		cache:       cache,
		timeout:     timeout,
	}
}

// HealthCheck returns service status
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// AnalyzeProduct handles POST /api/v1/analyze
func (h *Handlers) AnalyzeProduct(w http.ResponseWriter, r *http.Request) {
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.analyzer.Analyze(ctx, req.Query)
	if err != nil {
		if errors.Is(err, scraper.ErrEmptyQuery) {
			writeError(w, http.StatusBadRequest, "Query is required")
			return
		}
		log.Printf("Failed to analyze %q: %v", req.Query, err)
		writeError(w, http.StatusInternalServerError, "Failed to analyze product")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// AddTrackedProduct handles POST /api/v1/products
func (h *Handlers) AddTrackedProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return
	}

	var req models.AddProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.URL = strings.TrimSpace(req.URL)
	if req.Name == "" && req.URL == "" {
		writeError(w, http.StatusBadRequest, "Name or URL is required")
		return
	}

	// Recover a display name from the URL when only a URL was given
	if req.Name == "" {
		req.Name = scraper.NameFromURL(req.URL)
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "Could not determine product name from URL")
			return
		}
	}

	product, err := h.productRepo.Add(userID, req.Name, req.URL)
	if err != nil {
		log.Printf("Failed to add tracked product: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to add product")
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetTrackedProducts handles GET /api/v1/products
func (h *Handlers) GetTrackedProducts(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return
	}

	products, err := h.productRepo.GetByUser(userID)
	if err != nil {
		log.Printf("Failed to get tracked products: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to get products")
		return
	}

	if products == nil {
		products = []models.TrackedProduct{}
	}

	writeJSON(w, http.StatusOK, products)
}

// DeleteTrackedProduct handles DELETE /api/v1/products/{id}
func (h *Handlers) DeleteTrackedProduct(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	if err := h.productRepo.Delete(userID, id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Failed to delete tracked product %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}

// GetProductComparison handles GET /api/v1/products/{id}/comparison
func (h *Handlers) GetProductComparison(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "X-User-ID header is required")
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.productRepo.GetByID(userID, id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		log.Printf("Failed to get tracked product %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to get product")
		return
	}

	if result, ok := h.cache.Get(product.ID); ok {
		writeJSON(w, http.StatusOK, result)
		return
	}

	// Cache miss, build the comparison on demand
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	result, err := h.analyzer.Compare(ctx, product.Query())
	if err != nil {
		log.Printf("Failed to build comparison for product %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "Failed to build comparison")
		return
	}

	h.cache.Set(product.ID, result)
	writeJSON(w, http.StatusOK, result)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
