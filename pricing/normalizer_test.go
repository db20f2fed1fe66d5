package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeFormats(t *testing.T) {
	n := NewNormalizer()

	tests := []struct {
		text string
		want float64
	}{
		{"₹1,234.50", 1234.50},
		{"₹45,999", 45999},
		{"₹ 999", 999},
		{"Rs. 999", 999},
		{"Rs 1,499", 1499},
		{"rs.249.99", 249.99},
		{"₹2.5 L", 250000},
		{"2.5L", 250000},
		{"₹1.2 Lakh", 120000},
		{"₹3 Cr", 30000000},
		{"1.5 crore", 15000000},
		{"12k", 12000},
		{"₹45K", 45000},
		{"$129.99", 129.99},
		{"€89", 89},
		{"1,23,456", 123456},
		{"MRP: ₹2,999", 2999},
		{"1599", 1599},
		{"999.00", 999},
	}

	for _, tt := range tests {
		got, ok := n.Normalize(tt.text)
		assert.True(t, ok, "Normalize(%q) should match", tt.text)
		assert.Equal(t, tt.want, got, "Normalize(%q)", tt.text)
	}
}

func TestNormalizeRejects(t *testing.T) {
	n := NewNormalizer()

	tests := []string{
		"",
		"   ",
		"Out of stock",
		"Free delivery",
		"₹",
		"Rs.",
	}

	for _, text := range tests {
		_, ok := n.Normalize(text)
		assert.False(t, ok, "Normalize(%q) should not match", text)
	}
}

func TestNormalizeZeroIsAbsent(t *testing.T) {
	n := NewNormalizer()

	_, ok := n.Normalize("₹0")
	assert.False(t, ok, "a zero amount must be reported as absent, not zero")
}

func TestNormalizeCurrencyBeatsBareDecimal(t *testing.T) {
	n := NewNormalizer()

	// The bare "4.2" rating must not win over the symbol-qualified price.
	got, ok := n.Normalize("4.2 stars ₹1,999")
	assert.True(t, ok)
	assert.Equal(t, 1999.0, got)
}

func TestNormalizeIdempotent(t *testing.T) {
	n := NewNormalizer()

	first, ok := n.Normalize("₹2.5 L")
	assert.True(t, ok)

	// Re-normalizing the formatted output round-trips to the same value.
	second, ok := n.Normalize("₹250000")
	assert.True(t, ok)
	assert.Equal(t, first, second)
}
