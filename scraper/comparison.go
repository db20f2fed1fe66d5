package scraper

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"pricewise/config"
	"pricewise/models"
	"pricewise/pricing"
)

// ErrEmptyQuery is the only error Compare surfaces: an empty or
// unparseable product query leaves nothing to estimate from. Every other
// failure self-heals into an estimated record.
var ErrEmptyQuery = errors.New("product query is empty")

// Builder orchestrates the per-platform pipeline
// fetch → extract → validate → (accept | estimate) → discount
// and aggregates the records into a ComparisonResult.
type Builder struct {
	fetcher      Fetcher
	extractor    *PageExtractor
	validator    *pricing.Validator
	estimator    *pricing.Estimator
	platforms    []config.Platform
	fetchTimeout time.Duration
}

// NewBuilder wires a comparison builder over the platform registry.
func NewBuilder(fetcher Fetcher, validator *pricing.Validator, estimator *pricing.Estimator, fetchTimeout time.Duration) *Builder {
	return &Builder{
		fetcher:      fetcher,
		extractor:    NewPageExtractor(),
		validator:    validator,
		estimator:    estimator,
		platforms:    config.Platforms(),
		fetchTimeout: fetchTimeout,
	}
}

// Analyze is the inbound entry point: input is either a product name or a
// product-page URL.
func (b *Builder) Analyze(ctx context.Context, input string) (*models.ComparisonResult, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrEmptyQuery
	}

	query := models.ProductQuery{Name: input}
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		query = models.ProductQuery{URL: input, Name: NameFromURL(input)}
	}

	return b.Compare(ctx, query)
}

// target is one platform lookup within a comparison request.
type target struct {
	platform config.Platform
	url      string
}

// Compare produces one PriceRecord per platform. The source platform's
// record always comes first; the rest are ranked by selling price. The
// result is never empty: platforms that cannot be fetched or parsed get
// estimator output instead.
func (b *Builder) Compare(ctx context.Context, query models.ProductQuery) (*models.ComparisonResult, error) {
	if query.IsEmpty() {
		return nil, ErrEmptyQuery
	}

	name := strings.TrimSpace(query.Name)
	if name == "" {
		name = NameFromURL(query.URL)
	}
	if name == "" {
		return nil, ErrEmptyQuery
	}

	targets := b.buildTargets(query, name)

	records := make([]models.PriceRecord, len(targets))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t target) {
			defer wg.Done()
			records[i] = b.buildRecord(ctx, t, name)
		}(i, t)
	}
	wg.Wait()

	// The source record stays first; rank the cross-platform records by
	// selling price.
	rest := records[1:]
	sort.SliceStable(rest, func(i, j int) bool {
		return rest[i].SellingPrice.Amount < rest[j].SellingPrice.Amount
	})

	return &models.ComparisonResult{
		Query:       name,
		Records:     records,
		GeneratedAt: time.Now(),
	}, nil
}

// buildTargets lays out the source platform first, then every other
// registered platform via its search URL.
func (b *Builder) buildTargets(query models.ProductQuery, name string) []target {
	var targets []target

	sourceName := ""
	if query.URL != "" {
		if p, ok := config.DetectPlatform(query.URL); ok {
			sourceName = p.Name
			targets = append(targets, target{platform: p, url: query.URL})
		} else {
			// Unknown storefront: still first; the extractor falls back
			// to the generic selector chain for it.
			targets = append(targets, target{
				platform: config.Platform{Name: "web"},
				url:      query.URL,
			})
			sourceName = "web"
		}
	}

	for _, p := range b.platforms {
		if p.Name == sourceName {
			continue
		}
		targets = append(targets, target{platform: p, url: p.SearchFor(name)})
	}

	return targets
}

// buildRecord runs the pipeline for one platform. It never fails: every
// error path degrades to an estimated record.
func (b *Builder) buildRecord(ctx context.Context, t target, name string) models.PriceRecord {
	fetchCtx, cancel := context.WithTimeout(ctx, b.fetchTimeout)
	defer cancel()

	markup, err := b.fetcher.Fetch(fetchCtx, t.url)
	if err != nil {
		log.Printf("Fetch failed on %s, estimating: %v", t.platform.Name, err)
		return b.estimatedRecord(t, name)
	}

	extraction, ok := b.extractor.Extract(markup, t.platform.Name)
	if !ok {
		log.Printf("Extraction miss on %s for %q, estimating", t.platform.Name, name)
		return b.estimatedRecord(t, name)
	}

	price := extraction.Price
	source := models.PriceSourceExtracted

	if v := b.validator.Validate(price, extraction.Title, t.platform.Name); !v.Valid {
		if v.Suggestion != nil {
			log.Printf("Implausible price on %s (%s), using suggestion ₹%.2f", t.platform.Name, v.Reason, *v.Suggestion)
			price = *v.Suggestion
			source = models.PriceSourceEstimated
		} else {
			log.Printf("Implausible price on %s (%s), estimating", t.platform.Name, v.Reason)
			price = b.estimator.Estimate(name)
			source = models.PriceSourceEstimated
		}
	}

	record := models.PriceRecord{
		Platform:     t.platform.Name,
		SellingPrice: models.ExtractedPrice{Amount: price, Source: source},
		Availability: extraction.Availability,
		Rating:       extraction.Rating,
		ReviewCount:  extraction.ReviewCount,
		Delivery:     extraction.Delivery,
		Features:     extraction.Features,
		URL:          t.url,
	}

	// A list price below the selling price is not an error, just absent.
	if extraction.ListPrice != nil && *extraction.ListPrice >= price {
		record.ListPrice = &models.ExtractedPrice{Amount: *extraction.ListPrice, Source: models.PriceSourceExtracted}
		record.DiscountPercent, record.DiscountAmount = pricing.Discount(price, extraction.ListPrice)
	}

	return record
}

// estimatedRecord is the fallback of last resort. Synthetic records carry
// no rating, review count or delivery estimate: those are explicitly
// unknown, not invented.
func (b *Builder) estimatedRecord(t target, name string) models.PriceRecord {
	return models.PriceRecord{
		Platform: t.platform.Name,
		SellingPrice: models.ExtractedPrice{
			Amount: b.estimator.Estimate(name),
			Source: models.PriceSourceEstimated,
		},
		Availability: "Unknown",
		URL:          t.url,
	}
}
