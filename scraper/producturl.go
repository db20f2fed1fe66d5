package scraper

import (
	"net/url"
	"regexp"
	"strings"
)

// Product-page path patterns, most specific first. The capture group is
// the name-bearing slug.
var slugPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/([^/?]+)/dp/[A-Z0-9]{8,}`), // amazon: /product-name/dp/ASIN
	regexp.MustCompile(`/([^/?]+)/p/itm[a-z0-9]+`),  // flipkart: /product-name/p/itmXXXX
	regexp.MustCompile(`/products/([^/?&]+)`),
	regexp.MustCompile(`/product/([^/?&]+)`),
	regexp.MustCompile(`/item/([^/?&]+)`),
	regexp.MustCompile(`/buy/([^/?&]+)`),
	regexp.MustCompile(`/p/([^/?&]+)`),
}

// NameFromURL recovers a product name from a product-page URL slug.
// Returns "" when the URL carries nothing name-like.
func NameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := u.Path

	for _, pattern := range slugPatterns {
		if match := pattern.FindStringSubmatch(path); match != nil {
			if name := slugToName(match[1]); name != "" {
				return name
			}
		}
	}

	// Fallback: the last path segment, minus extensions.
	segments := strings.Split(strings.TrimSuffix(path, "/"), "/")
	if len(segments) == 0 {
		return ""
	}
	last := segments[len(segments)-1]
	last = strings.SplitN(last, ".", 2)[0]
	if last == "" || last == "index" || last == "search" {
		return ""
	}
	return slugToName(last)
}

// slugToName turns "samsung-galaxy-m34-5g" into "samsung galaxy m34 5g".
func slugToName(slug string) string {
	name := strings.NewReplacer("-", " ", "_", " ", "+", " ", "%20", " ").Replace(slug)
	name = strings.Join(strings.Fields(name), " ")
	return strings.ToLower(strings.TrimSpace(name))
}
