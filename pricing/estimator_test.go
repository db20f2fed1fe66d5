package pricing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateDeterministic(t *testing.T) {
	e := NewEstimator(NewKeywordClassifier())

	names := []string{
		"Samsung Galaxy Phone",
		"Dell Inspiron Laptop",
		"Nike Running Shoes",
		"Some Unknown Widget",
	}

	for _, name := range names {
		first := e.Estimate(name)
		second := e.Estimate(name)
		assert.Equal(t, first, second, "Estimate(%q) must be stable", name)
	}
}

func TestEstimateIgnoresCaseAndWhitespace(t *testing.T) {
	e := NewEstimator(NewKeywordClassifier())

	assert.Equal(t, e.Estimate("iPhone 15"), e.Estimate("  iphone 15 "))
}

func TestEstimateWithinCategoryBounds(t *testing.T) {
	e := NewEstimator(NewKeywordClassifier())
	c := NewKeywordClassifier()

	tests := []string{
		"Samsung Galaxy Phone",
		"HP Pavilion Laptop",
		"Cotton Casual Shirt",
		"Anti-Ageing Face Cream",
		"Sony Bravia TV 55 inch",
	}

	for _, name := range tests {
		price := e.Estimate(name)
		category, ok := c.Classify(name)
		assert.True(t, ok, "expected a category for %q", name)
		assert.GreaterOrEqual(t, price, category.Range.Min, "Estimate(%q)", name)
		assert.LessOrEqual(t, price, category.Range.Max, "Estimate(%q)", name)
	}
}

func TestEstimateWithinAbsoluteBounds(t *testing.T) {
	e := NewEstimator(NewKeywordClassifier())

	// A spread of arbitrary names, category match or not, must always land
	// inside the absolute bounds.
	for i := 0; i < 200; i++ {
		name := fmt.Sprintf("mystery product %d", i)
		price := e.Estimate(name)
		assert.GreaterOrEqual(t, price, float64(AbsoluteMinPrice))
		assert.LessOrEqual(t, price, float64(AbsoluteMaxPrice))
	}
}

func TestEstimateWholeRupees(t *testing.T) {
	e := NewEstimator(NewKeywordClassifier())

	price := e.Estimate("Samsung Galaxy Phone")
	assert.Equal(t, price, float64(int64(price)), "estimates are rounded to whole rupees")
}
