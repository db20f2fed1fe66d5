package config

import (
	"fmt"
	"net/url"
	"strings"
)

// SelectorSet holds the ordered structural selectors for one platform.
// Lists run most-specific-to-most-generic; extraction stops at the first
// selector producing a non-empty match, which tolerates markup drift
// across page variants.
type SelectorSet struct {
	Title        []string
	Price        []string
	ListPrice    []string
	Rating       []string
	ReviewCount  []string
	Features     []string
	Availability []string
	Delivery     []string
}

// Platform describes a known marketplace source.
type Platform struct {
	Name      string
	Host      string
	SearchURL string // printf template taking the escaped product name
	Selectors SelectorSet
}

// SearchFor builds the platform's search URL for a product name.
func (p Platform) SearchFor(productName string) string {
	return fmt.Sprintf(p.SearchURL, url.QueryEscape(productName))
}

// platformRegistry is immutable, process-wide reference data. Order
// matters: the first entry is the default source platform for name-only
// queries.
var platformRegistry = []Platform{
	{
		Name:      "amazon",
		Host:      "amazon.",
		SearchURL: "https://www.amazon.in/s?k=%s",
		Selectors: SelectorSet{
			Title: []string{"#productTitle", "span#productTitle", "h2 a span", "h1"},
			Price: []string{
				"#corePriceDisplay_desktop_feature_div .a-price .a-offscreen",
				".a-price .a-offscreen",
				"#priceblock_ourprice",
				"#priceblock_dealprice",
				".a-price-whole",
			},
			ListPrice: []string{
				".basisPrice .a-price .a-offscreen",
				".a-text-price .a-offscreen",
				"#priceblock_listprice",
				".priceBlockStrikePriceString",
			},
			Rating:       []string{"#acrPopover .a-icon-alt", "span[data-hook='rating-out-of-text']", ".a-icon-star .a-icon-alt"},
			ReviewCount:  []string{"#acrCustomerReviewText", "span[data-hook='total-review-count']"},
			Features:     []string{"#feature-bullets li span.a-list-item", "#feature-bullets li"},
			Availability: []string{"#availability span", "#availability"},
			Delivery:     []string{"#mir-layout-DELIVERY_BLOCK-slot-PRIMARY_DELIVERY_MESSAGE_LARGE span", "#deliveryBlockMessage"},
		},
	},
	{
		Name:      "flipkart",
		Host:      "flipkart.",
		SearchURL: "https://www.flipkart.com/search?q=%s",
		Selectors: SelectorSet{
			Title:        []string{".B_NuCI", "h1.yhB1nd span", "span.VU-ZEz", "h1"},
			Price:        []string{"div._30jeq3._16Jk6d", "div.Nx9bqj.CxhGGd", "div._30jeq3"},
			ListPrice:    []string{"div._3I9_wc._2p6lqe", "div.yRaY8j.A6ZONS", "div._3I9_wc"},
			Rating:       []string{"div._3LWZlK", "div.XQDdHH"},
			ReviewCount:  []string{"span._2_R_DZ span", "span.Wphh3N"},
			Features:     []string{"li._21Ahn-", "div._2418kt li"},
			Availability: []string{"div._16FRp0"},
			Delivery:     []string{"div._3XINqE", "div.hVvnXm"},
		},
	},
	{
		Name:      "myntra",
		Host:      "myntra.",
		SearchURL: "https://www.myntra.com/%s",
		Selectors: SelectorSet{
			Title:       []string{"h1.pdp-title", "h1.pdp-name", "h1"},
			Price:       []string{"span.pdp-price strong", ".pdp-price", ".pdp-discount-container .pdp-price"},
			ListPrice:   []string{"span.pdp-mrp s", ".pdp-mrp s"},
			Rating:      []string{"div.index-overallRating div", ".index-overallRating"},
			ReviewCount: []string{"div.index-ratingsCount"},
			Features:    []string{".pdp-product-description-content li"},
		},
	},
	{
		Name:      "snapdeal",
		Host:      "snapdeal.",
		SearchURL: "https://www.snapdeal.com/search?keyword=%s",
		Selectors: SelectorSet{
			Title:       []string{"h1.pdp-e-i-head", ".pdp-e-i-head", "h1"},
			Price:       []string{"span.payBlkBig", ".pdp-final-price", "span.pdpFinalPrice"},
			ListPrice:   []string{"span.pdpCutPrice", ".pdpCutPrice"},
			Rating:      []string{"span.avrg-rating", ".avrg-rating"},
			ReviewCount: []string{"span.total-rating", ".numbr-review"},
			Features:    []string{".spec-body li", ".dtls-list li"},
		},
	},
}

// GenericSelectors is the fallback chain for unknown platforms.
var GenericSelectors = SelectorSet{
	Title: []string{"h1", ".product-title", ".product-name", "[itemprop='name']"},
	Price: []string{
		"[itemprop='price']", ".price", ".product-price", ".current-price",
		".sale-price", "[data-price]", "[class*='price']",
	},
	ListPrice:    []string{".original-price", ".regular-price", ".list-price", ".mrp", "del", "s"},
	Rating:       []string{"[itemprop='ratingValue']", ".rating", ".star-rating"},
	ReviewCount:  []string{"[itemprop='reviewCount']", ".review-count"},
	Features:     []string{".product-features li", ".features li", ".description li"},
	Availability: []string{"[itemprop='availability']", ".availability", ".stock"},
}

// Platforms returns the registry of known platforms, in priority order.
func Platforms() []Platform {
	return platformRegistry
}

// PlatformByName looks up a platform by its registry name.
func PlatformByName(name string) (Platform, bool) {
	for _, p := range platformRegistry {
		if p.Name == name {
			return p, true
		}
	}
	return Platform{}, false
}

// DetectPlatform maps a product URL onto a known platform by host.
func DetectPlatform(rawURL string) (Platform, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return Platform{}, false
	}

	host := strings.ToLower(u.Host)
	for _, p := range platformRegistry {
		if strings.Contains(host, p.Host) {
			return p, true
		}
	}
	return Platform{}, false
}

// SelectorsFor returns the selector set for a platform name, falling back
// to the generic chain for unknown platforms.
func SelectorsFor(platform string) SelectorSet {
	if p, ok := PlatformByName(platform); ok {
		return p.Selectors
	}
	return GenericSelectors
}
