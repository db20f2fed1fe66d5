package pricing

import "math"

// Discount derives the discount percentage and amount from a selling price
// and an optional list (MRP) price. A nil list price, or one at or below
// the selling price, means no discount is claimed: both returns are nil.
func Discount(sellingPrice float64, listPrice *float64) (percentage, amount *float64) {
	if listPrice == nil || *listPrice <= sellingPrice {
		return nil, nil
	}

	amt := *listPrice - sellingPrice
	pct := math.Round(amt / *listPrice * 100)
	return &pct, &amt
}
