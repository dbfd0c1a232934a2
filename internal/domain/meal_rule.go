package domain

import "time"

// MealPricingRule derives meal-plan surcharges from a computed nightly rate.
// Breakfast applies on the nightly rate; the dinner component compounds on
// top of the breakfast price, not on the base rate.
type MealPricingRule struct {
	HotelID string

	BreakfastMode  AdjustMode
	BreakfastValue float64 // minor units for FIXED, fraction for PERCENTAGE

	DinnerMode  AdjustMode
	DinnerValue float64

	UpdatedAt time.Time
}

type MealRuleRepository interface {
	Upsert(rule *MealPricingRule) error
	GetByHotelID(hotelID string) (*MealPricingRule, error)
}
