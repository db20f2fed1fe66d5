package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"pricewise/models"
	"pricewise/repository"
)

// Comparer builds a fresh comparison for a product query.
type Comparer interface {
	Compare(ctx context.Context, query models.ProductQuery) (*models.ComparisonResult, error)
}

// ComparisonCache holds the latest comparison per tracked product.
type ComparisonCache struct {
	mu      sync.RWMutex
	results map[int]*models.ComparisonResult
}

func NewComparisonCache() *ComparisonCache {
	return &ComparisonCache{results: make(map[int]*models.ComparisonResult)}
}

func (c *ComparisonCache) Get(productID int) (*models.ComparisonResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.results[productID]
	return result, ok
}

func (c *ComparisonCache) Set(productID int, result *models.ComparisonResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results[productID] = result
}

// Refresher periodically rebuilds comparisons for all tracked products.
type Refresher struct {
	cron        *cron.Cron
	comparer    Comparer
	productRepo *repository.ProductRepository
	cache       *ComparisonCache
	timeout     time.Duration
}

func NewRefresher(comparer Comparer, productRepo *repository.ProductRepository, cache *ComparisonCache, timeout time.Duration) *Refresher {
	return &Refresher{
		cron:        cron.New(cron.WithSeconds()),
		comparer:    comparer,
		productRepo: productRepo,
		cache:       cache,
		timeout:     timeout,
	}
}

// Start registers the refresh job and runs an initial refresh in the background.
func (r *Refresher) Start(schedule string) error {
	_, err := r.cron.AddFunc(schedule, r.refreshAll)
	if err != nil {
		return err
	}

	r.cron.Start()
	log.Printf("Comparison refresher started with schedule: %s", schedule)

	go r.refreshAll()
	return nil
}

func (r *Refresher) Stop() {
	r.cron.Stop()
	log.Println("Comparison refresher stopped")
}

func (r *Refresher) refreshAll() {
	products, err := r.productRepo.GetAll()
	if err != nil {
		log.Printf("Refresh skipped, failed to load tracked products: %v", err)
		return
	}

	if len(products) == 0 {
		return
	}

	log.Printf("Refreshing comparisons for %d tracked products", len(products))
	refreshed := 0
	for _, product := range products {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		result, err := r.comparer.Compare(ctx, product.Query())
		cancel()
		if err != nil {
			log.Printf("Failed to refresh product %d (%s): %v", product.ID, product.Name, err)
			continue
		}

		r.cache.Set(product.ID, result)
		refreshed++

		if best := result.BestPrice(); best != nil {
			log.Printf("Refreshed product %d (%s): best price ₹%.2f on %s", product.ID, product.Name, best.SellingPrice.Amount, best.Platform)
		}
	}

	log.Printf("Refreshed %d/%d comparisons", refreshed, len(products))
}
