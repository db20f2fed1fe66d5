package pricing

import (
	"strings"

	"pricewise/models"
)

// Absolute plausibility bounds in rupees, applied regardless of category.
// Anything outside these is an extraction error (a rating or a pin code
// parsed as a price), not a real product price.
const (
	AbsoluteMinPrice = 10
	AbsoluteMaxPrice = 500000
)

// DefaultRange is used when no category keyword matches a product name.
var DefaultRange = models.CategoryRange{Min: 100, Max: 50000, TypicalMin: 300, TypicalMax: 15000}

// Category is a matched price-range bucket for a product name.
type Category struct {
	Name  string
	Range models.CategoryRange
}

// Classifier infers a price-range category from a free-text product name.
type Classifier interface {
	Classify(productName string) (Category, bool)
}

type categoryEntry struct {
	keyword  string
	category string
	rng      models.CategoryRange
}

// Table order matters: matching is first-match-wins, so more specific
// keywords ("headphone", "smartwatch") must come before the generic ones
// they contain ("phone", "watch").
var categoryTable = []categoryEntry{
	{"headphone", "audio", models.CategoryRange{Min: 500, Max: 50000, TypicalMin: 1000, TypicalMax: 20000}},
	{"earphone", "audio", models.CategoryRange{Min: 200, Max: 30000, TypicalMin: 500, TypicalMax: 10000}},
	{"earbud", "audio", models.CategoryRange{Min: 500, Max: 30000, TypicalMin: 1000, TypicalMax: 15000}},
	{"speaker", "audio", models.CategoryRange{Min: 500, Max: 100000, TypicalMin: 1000, TypicalMax: 30000}},
	{"smartwatch", "wearable", models.CategoryRange{Min: 1000, Max: 80000, TypicalMin: 1500, TypicalMax: 30000}},
	{"phone", "phone", models.CategoryRange{Min: 8000, Max: 100000, TypicalMin: 12000, TypicalMax: 60000}},
	{"mobile", "phone", models.CategoryRange{Min: 8000, Max: 100000, TypicalMin: 12000, TypicalMax: 60000}},
	{"laptop", "laptop", models.CategoryRange{Min: 15000, Max: 300000, TypicalMin: 30000, TypicalMax: 120000}},
	{"macbook", "laptop", models.CategoryRange{Min: 60000, Max: 400000, TypicalMin: 80000, TypicalMax: 250000}},
	{"tablet", "tablet", models.CategoryRange{Min: 8000, Max: 150000, TypicalMin: 10000, TypicalMax: 60000}},
	{"ipad", "tablet", models.CategoryRange{Min: 25000, Max: 200000, TypicalMin: 30000, TypicalMax: 100000}},
	{"television", "tv", models.CategoryRange{Min: 10000, Max: 400000, TypicalMin: 15000, TypicalMax: 100000}},
	{"tv", "tv", models.CategoryRange{Min: 10000, Max: 400000, TypicalMin: 15000, TypicalMax: 100000}},
	{"monitor", "monitor", models.CategoryRange{Min: 5000, Max: 150000, TypicalMin: 8000, TypicalMax: 50000}},
	{"camera", "camera", models.CategoryRange{Min: 5000, Max: 400000, TypicalMin: 20000, TypicalMax: 150000}},
	{"refrigerator", "appliance", models.CategoryRange{Min: 10000, Max: 250000, TypicalMin: 15000, TypicalMax: 80000}},
	{"fridge", "appliance", models.CategoryRange{Min: 10000, Max: 250000, TypicalMin: 15000, TypicalMax: 80000}},
	{"washing machine", "appliance", models.CategoryRange{Min: 8000, Max: 150000, TypicalMin: 12000, TypicalMax: 50000}},
	{"microwave", "appliance", models.CategoryRange{Min: 3000, Max: 50000, TypicalMin: 5000, TypicalMax: 25000}},
	{"mixer", "appliance", models.CategoryRange{Min: 1000, Max: 25000, TypicalMin: 1500, TypicalMax: 10000}},
	{"sneaker", "footwear", models.CategoryRange{Min: 500, Max: 30000, TypicalMin: 1000, TypicalMax: 12000}},
	{"shoe", "footwear", models.CategoryRange{Min: 300, Max: 30000, TypicalMin: 800, TypicalMax: 8000}},
	{"sandal", "footwear", models.CategoryRange{Min: 200, Max: 10000, TypicalMin: 400, TypicalMax: 3000}},
	{"shirt", "apparel", models.CategoryRange{Min: 200, Max: 8000, TypicalMin: 400, TypicalMax: 2500}},
	{"jeans", "apparel", models.CategoryRange{Min: 500, Max: 10000, TypicalMin: 800, TypicalMax: 4000}},
	{"dress", "apparel", models.CategoryRange{Min: 300, Max: 15000, TypicalMin: 500, TypicalMax: 5000}},
	{"saree", "apparel", models.CategoryRange{Min: 300, Max: 50000, TypicalMin: 600, TypicalMax: 10000}},
	{"kurta", "apparel", models.CategoryRange{Min: 200, Max: 8000, TypicalMin: 400, TypicalMax: 3000}},
	{"jacket", "apparel", models.CategoryRange{Min: 500, Max: 20000, TypicalMin: 1000, TypicalMax: 8000}},
	{"watch", "watch", models.CategoryRange{Min: 300, Max: 200000, TypicalMin: 1000, TypicalMax: 30000}},
	{"backpack", "bag", models.CategoryRange{Min: 300, Max: 20000, TypicalMin: 600, TypicalMax: 6000}},
	{"bag", "bag", models.CategoryRange{Min: 200, Max: 50000, TypicalMin: 500, TypicalMax: 10000}},
	{"perfume", "beauty", models.CategoryRange{Min: 200, Max: 20000, TypicalMin: 400, TypicalMax: 8000}},
	{"shampoo", "beauty", models.CategoryRange{Min: 50, Max: 3000, TypicalMin: 100, TypicalMax: 1200}},
	{"cream", "beauty", models.CategoryRange{Min: 50, Max: 5000, TypicalMin: 100, TypicalMax: 1500}},
	{"lipstick", "beauty", models.CategoryRange{Min: 100, Max: 5000, TypicalMin: 200, TypicalMax: 2000}},
	{"book", "book", models.CategoryRange{Min: 50, Max: 10000, TypicalMin: 150, TypicalMax: 2000}},
	{"toy", "toy", models.CategoryRange{Min: 100, Max: 20000, TypicalMin: 200, TypicalMax: 5000}},
	{"sofa", "furniture", models.CategoryRange{Min: 5000, Max: 200000, TypicalMin: 10000, TypicalMax: 60000}},
	{"mattress", "furniture", models.CategoryRange{Min: 2000, Max: 100000, TypicalMin: 5000, TypicalMax: 40000}},
	{"chair", "furniture", models.CategoryRange{Min: 500, Max: 60000, TypicalMin: 1500, TypicalMax: 20000}},
}

// KeywordClassifier infers a category by substring match against an ordered
// keyword table. The first matching keyword wins; names matching several
// keywords only honor the earliest table entry.
type KeywordClassifier struct {
	table []categoryEntry
}

// NewKeywordClassifier returns a classifier over the static category table.
func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{table: categoryTable}
}

// Classify returns the first category whose keyword appears in the
// lowercased product name.
func (c *KeywordClassifier) Classify(productName string) (Category, bool) {
	name := strings.ToLower(productName)
	for _, entry := range c.table {
		if strings.Contains(name, entry.keyword) {
			return Category{Name: entry.category, Range: entry.rng}, true
		}
	}
	return Category{}, false
}
