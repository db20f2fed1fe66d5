package scraper

import (
	"regexp"
	"strconv"
	"strings"

	"pricewise/config"
	"pricewise/pricing"

	"github.com/PuerkitoBio/goquery"
)

// Extraction is the partial product record recovered from page markup.
type Extraction struct {
	Title        string
	Price        float64
	ListPrice    *float64
	Rating       *float64
	ReviewCount  *int
	Features     []string
	Availability string
	Delivery     string
}

// PageExtractor recovers product fields from fetched markup using the
// platform's ordered selector chains.
type PageExtractor struct {
	normalizer *pricing.Normalizer
}

// NewPageExtractor creates an extractor.
func NewPageExtractor() *PageExtractor {
	return &PageExtractor{normalizer: pricing.NewNormalizer()}
}

const maxFeatures = 6

var (
	ratingPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)
	digitsPattern = regexp.MustCompile(`[0-9][0-9,]*`)
)

// Extract pulls a product record out of markup for the named platform.
// Unknown platforms use the generic selector chain. Returns false when no
// title or no price could be recovered; callers must treat that as
// "extraction failed", never as an empty product.
func (e *PageExtractor) Extract(markup, platform string) (*Extraction, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, false
	}

	selectors := config.SelectorsFor(platform)

	title := firstText(doc, selectors.Title)
	if title == "" {
		return nil, false
	}

	price, ok := e.normalizer.Normalize(firstText(doc, selectors.Price))
	if !ok {
		return nil, false
	}

	extraction := &Extraction{
		Title:        collapseWhitespace(title),
		Price:        price,
		Availability: parseAvailability(firstText(doc, selectors.Availability)),
		Delivery:     collapseWhitespace(firstText(doc, selectors.Delivery)),
		Features:     collectFeatures(doc, selectors.Features),
	}

	if list, ok := e.normalizer.Normalize(firstText(doc, selectors.ListPrice)); ok {
		extraction.ListPrice = &list
	}
	if rating, ok := parseRating(firstText(doc, selectors.Rating)); ok {
		extraction.Rating = &rating
	}
	if count, ok := parseReviewCount(firstText(doc, selectors.ReviewCount)); ok {
		extraction.ReviewCount = &count
	}

	return extraction, true
}

// firstText returns the first non-empty text produced by the ordered
// selector chain.
func firstText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(doc.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

// collectFeatures gathers bullet texts from the first selector that
// yields any, capped at maxFeatures.
func collectFeatures(doc *goquery.Document, selectors []string) []string {
	for _, selector := range selectors {
		var features []string
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			if len(features) >= maxFeatures {
				return
			}
			if text := collapseWhitespace(s.Text()); text != "" {
				features = append(features, text)
			}
		})
		if len(features) > 0 {
			return features
		}
	}
	return nil
}

// parseRating accepts values in (0, 5]; anything else is treated as
// absent rather than clamped.
func parseRating(text string) (float64, bool) {
	match := ratingPattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	rating, err := strconv.ParseFloat(match[1], 64)
	if err != nil || rating <= 0 || rating > 5 {
		return 0, false
	}
	return rating, true
}

func parseReviewCount(text string) (int, bool) {
	match := digitsPattern.FindString(text)
	if match == "" {
		return 0, false
	}
	count, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// parseAvailability folds free-text stock notes into a small set of
// statuses. An empty note means the page showed no stock warning.
func parseAvailability(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "out of stock"),
		strings.Contains(lower, "sold out"),
		strings.Contains(lower, "unavailable"):
		return "Out of Stock"
	case strings.Contains(lower, "only") && strings.Contains(lower, "left"):
		return "Limited Stock"
	default:
		return "In Stock"
	}
}

var whitespacePattern = regexp.MustCompile(`\s+`)

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
