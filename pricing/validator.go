package pricing

import (
	"fmt"
	"log"
)

// Validation is the outcome of a plausibility check. When Valid is false,
// Suggestion carries a corrected price clamped into the typical band for
// the inferred category.
type Validation struct {
	Valid      bool
	Reason     string
	Suggestion *float64
}

// Validator decides whether an extracted price is plausible for the
// product's inferred category.
type Validator struct {
	classifier Classifier
}

// NewValidator creates a validator over the given classifier.
func NewValidator(classifier Classifier) *Validator {
	return &Validator{classifier: classifier}
}

// Validate checks price against the absolute floor/ceiling and, when a
// category matches the product name, against that category's bounds.
// Prices inside the hard category bounds but outside the typical band are
// accepted — real-world variance beats the typical heuristic.
func (v *Validator) Validate(price float64, productName, platform string) Validation {
	category, matched := v.classifier.Classify(productName)

	band := DefaultRange
	if matched {
		band = category.Range
	}

	if price < AbsoluteMinPrice || price > AbsoluteMaxPrice {
		suggestion := clamp(price, band.TypicalMin, band.TypicalMax)
		return Validation{
			Valid:      false,
			Reason:     fmt.Sprintf("price ₹%.2f outside absolute bounds [₹%d, ₹%d]", price, AbsoluteMinPrice, AbsoluteMaxPrice),
			Suggestion: &suggestion,
		}
	}

	if !matched {
		return Validation{Valid: true}
	}

	if !category.Range.Contains(price) {
		suggestion := clamp(price, category.Range.TypicalMin, category.Range.TypicalMax)
		return Validation{
			Valid:      false,
			Reason:     fmt.Sprintf("price ₹%.2f implausible for %s [₹%.0f, ₹%.0f]", price, category.Name, category.Range.Min, category.Range.Max),
			Suggestion: &suggestion,
		}
	}

	if price < category.Range.TypicalMin || price > category.Range.TypicalMax {
		log.Printf("Atypical %s price ₹%.2f on %s for %q (typical ₹%.0f-₹%.0f)",
			category.Name, price, platform, productName, category.Range.TypicalMin, category.Range.TypicalMax)
	}

	return Validation{Valid: true}
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
