package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Normalizer converts raw scraped price text into a numeric rupee amount.
// It understands currency symbols, "Rs." prefixes, Indian digit grouping
// and the K / Lakh / Crore magnitude short forms.
type Normalizer struct{}

// NewNormalizer creates a price text normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// stripPattern removes everything except digits, separators, currency
// markers, whitespace and the letters used by Rs/K/Lakh/Crore suffixes.
var stripPattern = regexp.MustCompile(`[^0-9.,\s₹$€£RrSsKkLlCcAaHhOoEe]`)

// Patterns are ordered most specific first so a bare-decimal match never
// swallows a currency-qualified one. Each has exactly one capture group
// holding the numeric part.
var pricePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"symbol", regexp.MustCompile(`[₹$€£]\s*([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?)`)},
	{"rs_prefix", regexp.MustCompile(`(?i)rs\.?\s*([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]+)?|[0-9]+(?:\.[0-9]+)?)`)},
	{"short_form", regexp.MustCompile(`(?i)([0-9]+(?:\.[0-9]+)?)\s*(?:k|l|lakh|lac|cr|crore)\b`)},
	{"grouped", regexp.MustCompile(`([0-9]{1,3}(?:,[0-9]{2,3})+(?:\.[0-9]+)?)`)},
	{"plain", regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)`)},
}

// Magnitude tokens are checked against the original (unstripped) text.
// Crore and Lakh are tested before K so "Cr" and "L" are never misread
// as a plain thousand suffix.
var (
	crorePattern    = regexp.MustCompile(`(?i)(?:^|[\s0-9.,])(?:cr|crore)s?\b`)
	lakhPattern     = regexp.MustCompile(`(?i)(?:^|[\s0-9.,])(?:l|lakh|lac)s?\b`)
	thousandPattern = regexp.MustCompile(`(?i)[0-9.,]\s*k\b`)
)

// Normalize parses a price fragment into a rupee amount. The second return
// value is false when no pattern matches or the value is not positive.
func (n *Normalizer) Normalize(text string) (float64, bool) {
	if strings.TrimSpace(text) == "" {
		return 0, false
	}

	cleaned := stripPattern.ReplaceAllString(text, "")

	for _, pattern := range pricePatterns {
		match := pattern.re.FindStringSubmatch(cleaned)
		if match == nil {
			continue
		}

		raw := strings.ReplaceAll(match[1], ",", "")
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(value) {
			continue
		}

		value *= magnitudeFor(text)
		if value <= 0 {
			return 0, false
		}
		return value, true
	}

	return 0, false
}

// magnitudeFor rescans the original text for magnitude tokens.
func magnitudeFor(text string) float64 {
	switch {
	case crorePattern.MatchString(text):
		return 10000000
	case lakhPattern.MatchString(text):
		return 100000
	case thousandPattern.MatchString(text):
		return 1000
	default:
		return 1
	}
}
