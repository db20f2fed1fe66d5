package models

import (
	"strings"
	"time"
)

// PriceSource marks where a price came from.
type PriceSource string

const (
	PriceSourceExtracted PriceSource = "extracted"
	PriceSourceEstimated PriceSource = "estimated"
)

// ExtractedPrice is a normalized price amount with its provenance.
// Amount is always > 0; a missing price is represented by a nil
// *ExtractedPrice, never by a zero amount.
type ExtractedPrice struct {
	Amount float64     `json:"amount"`
	Source PriceSource `json:"source"`
}

// ProductQuery identifies the product being compared. Either Name or URL
// (or both) must be set. It is immutable once created and seeds the
// deterministic estimator.
type ProductQuery struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// IsEmpty returns true if the query carries nothing to work with.
func (q ProductQuery) IsEmpty() bool {
	return strings.TrimSpace(q.Name) == "" && strings.TrimSpace(q.URL) == ""
}

// PriceRecord is the comparison output for one platform. It is constructed
// once per comparison request and never mutated afterwards.
type PriceRecord struct {
	Platform        string          `json:"platform"`
	SellingPrice    ExtractedPrice  `json:"selling_price"`
	ListPrice       *ExtractedPrice `json:"list_price,omitempty"`
	DiscountPercent *float64        `json:"discount_percentage,omitempty"`
	DiscountAmount  *float64        `json:"discount_amount,omitempty"`
	Availability    string          `json:"availability"`
	Rating          *float64        `json:"rating,omitempty"`
	ReviewCount     *int            `json:"review_count,omitempty"`
	Delivery        string          `json:"delivery,omitempty"`
	Features        []string        `json:"features,omitempty"`
	URL             string          `json:"url,omitempty"`
}

// IsEstimated returns true if the selling price is synthetic.
func (r *PriceRecord) IsEstimated() bool {
	return r.SellingPrice.Source == PriceSourceEstimated
}

// ComparisonResult is the ordered set of per-platform records for one query.
// The source platform's record is always first and the set is never empty.
type ComparisonResult struct {
	Query       string        `json:"query"`
	Records     []PriceRecord `json:"records"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// BestPrice returns the record with the lowest selling price.
func (c *ComparisonResult) BestPrice() *PriceRecord {
	if len(c.Records) == 0 {
		return nil
	}
	best := &c.Records[0]
	for i := range c.Records {
		if c.Records[i].SellingPrice.Amount < best.SellingPrice.Amount {
			best = &c.Records[i]
		}
	}
	return best
}

// CategoryRange holds plausibility bounds for a product category, in rupees.
// These are static reference data loaded once at startup.
type CategoryRange struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	TypicalMin float64 `json:"typical_min"`
	TypicalMax float64 `json:"typical_max"`
}

// Contains returns true if price falls inside the hard [Min, Max] bounds.
func (r CategoryRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// TrackedProduct is a product a user has saved for scheduled re-comparison.
type TrackedProduct struct {
	ID        int       `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url,omitempty" db:"url"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
	IsActive  bool      `json:"is_active" db:"is_active"`
}

// Query builds the comparison query for a tracked product.
func (p *TrackedProduct) Query() ProductQuery {
	return ProductQuery{Name: p.Name, URL: p.URL}
}

// AnalyzeRequest is the body of POST /api/v1/analyze.
type AnalyzeRequest struct {
	Query string `json:"query" validate:"required"`
}

// AddProductRequest is the body of POST /api/v1/products.
type AddProductRequest struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url"`
}
