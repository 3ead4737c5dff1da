package tickets

import (
	"errors"
	"fmt"

	"stagepass/internal/seats"
)

// ErrPricingStrategyRequired is returned when a purchase is attempted
// without a pricing strategy.
var ErrPricingStrategyRequired = errors.New("pricing strategy is required")

// PricingStrategy yields the fixed price for one venue section.
// Strategies hold no state and perform no validation.
type PricingStrategy interface {
	CalculatePrice() float64
	Description() string
}

const (
	hallPrice    = 300
	balconyPrice = 250
)

// HallPricing prices seats in the hall section
type HallPricing struct{}

func (HallPricing) CalculatePrice() float64 {
	return hallPrice
}

func (HallPricing) Description() string {
	return fmt.Sprintf("%s: %d", seats.LocationHall, hallPrice)
}

// BalconyPricing prices seats in the balcony section
type BalconyPricing struct{}

func (BalconyPricing) CalculatePrice() float64 {
	return balconyPrice
}

func (BalconyPricing) Description() string {
	return fmt.Sprintf("%s: %d", seats.LocationBalcony, balconyPrice)
}

// PricingForLocation selects the strategy for a venue section
func PricingForLocation(location string) (PricingStrategy, error) {
	switch location {
	case seats.LocationHall:
		return HallPricing{}, nil
	case seats.LocationBalcony:
		return BalconyPricing{}, nil
	default:
		return nil, seats.ErrInvalidLocation
	}
}
