package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricewise/models"
	"pricewise/scheduler"
	"pricewise/scraper"
)

type stubAnalyzer struct {
	result *models.ComparisonResult
	err    error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, input string) (*models.ComparisonResult, error) {
	return s.result, s.err
}

func (s *stubAnalyzer) Compare(ctx context.Context, query models.ProductQuery) (*models.ComparisonResult, error) {
	return s.result, s.err
}

func sampleResult() *models.ComparisonResult {
	return &models.ComparisonResult{
		Query: "samsung galaxy m34",
		Records: []models.PriceRecord{
			{
				Platform:     "amazon",
				SellingPrice: models.ExtractedPrice{Amount: 16499, Source: models.PriceSourceExtracted},
				Availability: "In Stock",
			},
		},
		GeneratedAt: time.Now(),
	}
}

func TestAnalyzeProduct(t *testing.T) {
	h := NewHandlers(&stubAnalyzer{result: sampleResult()}, nil, scheduler.NewComparisonCache(), time.Second)

	body, _ := json.Marshal(models.AnalyzeRequest{Query: "samsung galaxy m34"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.AnalyzeProduct(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ComparisonResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, "samsung galaxy m34", result.Query)
	assert.Len(t, result.Records, 1)
	assert.Equal(t, "amazon", result.Records[0].Platform)
}

func TestAnalyzeProductEmptyQuery(t *testing.T) {
	h := NewHandlers(&stubAnalyzer{err: scraper.ErrEmptyQuery}, nil, scheduler.NewComparisonCache(), time.Second)

	body, _ := json.Marshal(models.AnalyzeRequest{Query: ""})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	h.AnalyzeProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeProductInvalidBody(t *testing.T) {
	h := NewHandlers(&stubAnalyzer{result: sampleResult()}, nil, scheduler.NewComparisonCache(), time.Second)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	h.AnalyzeProduct(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackedProductsRequireUserID(t *testing.T) {
	h := NewHandlers(&stubAnalyzer{result: sampleResult()}, nil, scheduler.NewComparisonCache(), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	rec := httptest.NewRecorder()

	h.GetTrackedProducts(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	h := NewHandlers(&stubAnalyzer{result: sampleResult()}, nil, scheduler.NewComparisonCache(), time.Second)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	h.HealthCheck(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}
