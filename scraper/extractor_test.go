package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const amazonPage = `
<html><body>
	<span id="productTitle"> Samsung Galaxy M34 5G  (Midnight Blue, 128 GB) </span>
	<div id="corePriceDisplay_desktop_feature_div">
		<span class="a-price"><span class="a-offscreen">₹16,499</span></span>
	</div>
	<span class="basisPrice"><span class="a-price"><span class="a-offscreen">₹24,999</span></span></span>
	<span id="acrPopover"><span class="a-icon-alt">4.2 out of 5 stars</span></span>
	<span id="acrCustomerReviewText">12,308 ratings</span>
	<div id="feature-bullets"><ul>
		<li><span class="a-list-item">6000 mAh battery</span></li>
		<li><span class="a-list-item">120 Hz sAMOLED display</span></li>
	</ul></div>
	<div id="availability"><span>In stock</span></div>
</body></html>`

const flipkartPage = `
<html><body>
	<span class="B_NuCI">HP Pavilion Gaming Laptop</span>
	<div class="_30jeq3 _16Jk6d">₹45,999</div>
	<div class="_3I9_wc _2p6lqe">₹52,999</div>
	<div class="_3LWZlK">4.4</div>
	<span class="_2_R_DZ"><span>8,014 Ratings</span></span>
</body></html>`

const genericPage = `
<html><body>
	<h1>Classic Cotton Shirt</h1>
	<div class="price">Rs. 1,299</div>
	<del>Rs. 1,999</del>
</body></html>`

func TestExtractAmazonPage(t *testing.T) {
	e := NewPageExtractor()

	got, ok := e.Extract(amazonPage, "amazon")
	require.True(t, ok)
	assert.Equal(t, "Samsung Galaxy M34 5G (Midnight Blue, 128 GB)", got.Title)
	assert.Equal(t, 16499.0, got.Price)
	require.NotNil(t, got.ListPrice)
	assert.Equal(t, 24999.0, *got.ListPrice)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.2, *got.Rating)
	require.NotNil(t, got.ReviewCount)
	assert.Equal(t, 12308, *got.ReviewCount)
	assert.Len(t, got.Features, 2)
	assert.Equal(t, "In Stock", got.Availability)
}

func TestExtractFlipkartPage(t *testing.T) {
	e := NewPageExtractor()

	got, ok := e.Extract(flipkartPage, "flipkart")
	require.True(t, ok)
	assert.Equal(t, "HP Pavilion Gaming Laptop", got.Title)
	assert.Equal(t, 45999.0, got.Price)
	require.NotNil(t, got.ListPrice)
	assert.Equal(t, 52999.0, *got.ListPrice)
	require.NotNil(t, got.Rating)
	assert.Equal(t, 4.4, *got.Rating)
}

func TestExtractUnknownPlatformUsesGenericChain(t *testing.T) {
	e := NewPageExtractor()

	got, ok := e.Extract(genericPage, "someshop")
	require.True(t, ok)
	assert.Equal(t, "Classic Cotton Shirt", got.Title)
	assert.Equal(t, 1299.0, got.Price)
	require.NotNil(t, got.ListPrice)
	assert.Equal(t, 1999.0, *got.ListPrice)
}

func TestExtractSelectorFallbackOrder(t *testing.T) {
	e := NewPageExtractor()

	// No #productTitle: the chain falls through to the h1.
	page := `<html><body>
		<h1>Fallback Product</h1>
		<span class="a-price"><span class="a-offscreen">₹2,499</span></span>
	</body></html>`

	got, ok := e.Extract(page, "amazon")
	require.True(t, ok)
	assert.Equal(t, "Fallback Product", got.Title)
	assert.Equal(t, 2499.0, got.Price)
}

func TestExtractMissingTitleFails(t *testing.T) {
	e := NewPageExtractor()

	_, ok := e.Extract(`<html><body><div class="price">₹999</div></body></html>`, "someshop")
	assert.False(t, ok)
}

func TestExtractMissingPriceFails(t *testing.T) {
	e := NewPageExtractor()

	_, ok := e.Extract(`<html><body><h1>Phantom Product</h1></body></html>`, "someshop")
	assert.False(t, ok)
}

func TestExtractOutOfStock(t *testing.T) {
	e := NewPageExtractor()

	page := `<html><body>
		<span id="productTitle">Sold Out Gadget</span>
		<span class="a-price"><span class="a-offscreen">₹5,999</span></span>
		<div id="availability"><span>Currently unavailable</span></div>
	</body></html>`

	got, ok := e.Extract(page, "amazon")
	require.True(t, ok)
	assert.Equal(t, "Out of Stock", got.Availability)
}

func TestExtractBadRatingDropped(t *testing.T) {
	e := NewPageExtractor()

	page := `<html><body>
		<span id="productTitle">Oddly Rated Gadget</span>
		<span class="a-price"><span class="a-offscreen">₹5,999</span></span>
		<span id="acrPopover"><span class="a-icon-alt">97 out of 100</span></span>
	</body></html>`

	got, ok := e.Extract(page, "amazon")
	require.True(t, ok)
	assert.Nil(t, got.Rating)
}
