package pricing

import (
	"hash/fnv"
	"math"
	"math/rand"
	"strings"
)

// Estimator produces a reproducible synthetic price when extraction fails
// or yields an implausible value. The same product name always estimates
// to the same price within a deployment: the name hashes to a seed, the
// seed drives a pseudo-random draw scaled into the category's range.
type Estimator struct {
	classifier Classifier
}

// NewEstimator creates an estimator over the given classifier.
func NewEstimator(classifier Classifier) *Estimator {
	return &Estimator{classifier: classifier}
}

// Estimate returns a whole-rupee price inside the inferred category's
// [min, max] range (DefaultRange when no category matches). The result
// satisfies the absolute bounds by construction, so it never needs
// validation.
func (e *Estimator) Estimate(productName string) float64 {
	bounds := DefaultRange
	if category, ok := e.classifier.Classify(productName); ok {
		bounds = category.Range
	}

	seed := nameSeed(productName)
	unit := rand.New(rand.NewSource(seed)).Float64()

	price := math.Round(bounds.Min + unit*(bounds.Max-bounds.Min))
	if price < bounds.Min {
		price = math.Ceil(bounds.Min)
	}
	if price > bounds.Max {
		price = math.Floor(bounds.Max)
	}
	return price
}

// nameSeed hashes a product name into a stable seed. Case and surrounding
// whitespace are ignored so "iPhone 15" and "iphone 15 " estimate alike.
func nameSeed(productName string) int64 {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(productName))))
	return int64(h.Sum64())
}
