package usecase

import (
	"math"

	"movie-booking/internal/data/entity"
)

const (
	TaxRate    = 0.18
	PerSeatFee = 25.0
)

// PriceBreakdown is the itemised total of a seat list
type PriceBreakdown struct {
	Subtotal float64
	Tax      float64
	Fee      float64
	Total    float64
}

// ComputeTotal prices a seat list: 18% tax on the subtotal plus a flat fee
// per seat, rounded half away from zero to a whole currency unit.
func ComputeTotal(seats []entity.Seat) PriceBreakdown {
	var subtotal float64
	for _, seat := range seats {
		subtotal += seat.Price
	}

	tax := subtotal * TaxRate
	fee := PerSeatFee * float64(len(seats))

	// Trim binary noise first so 260.5 stays 260.5 and not 260.49999.
	raw := math.Round((subtotal+tax+fee)*100) / 100

	return PriceBreakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Fee:      fee,
		Total:    math.Round(raw),
	}
}
