// Package pricing computes customer-facing totals for priced services.
package pricing

// Breakdown holds the price components of a service offering.
type Breakdown struct {
	BasePrice float64 `json:"base_price"`
	VATRate   float64 `json:"vat_rate"`
	Discount  float64 `json:"discount"`
	Total     float64 `json:"total_price"`
}

// Total computes the final price: base plus VAT, minus the flat discount.
// The result is not clamped; a discount larger than the gross price yields
// a negative total, which the caller surfaces as-is.
func Total(basePrice, vatRate, discount float64) float64 {
	return basePrice + basePrice*vatRate/100 - discount
}

// Compute returns the full breakdown for the given components.
func Compute(basePrice, vatRate, discount float64) Breakdown {
	return Breakdown{
		BasePrice: basePrice,
		VATRate:   vatRate,
		Discount:  discount,
		Total:     Total(basePrice, vatRate, discount),
	}
}
