package usecase

import (
	"log/slog"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Fallback multipliers applied when a hotel has no meal rule record.
const (
	fallbackBreakfastFactor = 1.15
	fallbackHalfBoardFactor = 1.35
)

// Meal prices are rounded to the nearest whole currency unit.
const minorUnitsPerUnit = 100

type MealUsecase interface {
	UpsertRule(rule *domain.MealPricingRule) error
	GetRule(hotelID string) (*domain.MealPricingRule, error)

	// BreakfastPrice derives the bed-and-breakfast nightly price from a
	// computed nightly rate, in minor units.
	BreakfastPrice(hotelID string, nightlyRate int64) int64

	// HalfBoardPrice compounds the dinner component on top of the
	// breakfast price, not on the base rate.
	HalfBoardPrice(hotelID string, nightlyRate int64) int64
}

type DefaultMealUsecase struct {
	MealRepo domain.MealRuleRepository
}

func NewDefaultMealUsecase(mealRepo domain.MealRuleRepository) *DefaultMealUsecase {
	return &DefaultMealUsecase{MealRepo: mealRepo}
}

func (uc *DefaultMealUsecase) UpsertRule(rule *domain.MealPricingRule) error {
	return uc.MealRepo.Upsert(rule)
}

func (uc *DefaultMealUsecase) GetRule(hotelID string) (*domain.MealPricingRule, error) {
	return uc.MealRepo.GetByHotelID(hotelID)
}

func (uc *DefaultMealUsecase) BreakfastPrice(hotelID string, nightlyRate int64) int64 {
	rule := uc.ruleOrNil(hotelID)
	if rule == nil {
		return roundToUnit(mulFactor(nightlyRate, fallbackBreakfastFactor))
	}
	return roundToUnit(applyMealAdjustment(nightlyRate, rule.BreakfastMode, rule.BreakfastValue))
}

func (uc *DefaultMealUsecase) HalfBoardPrice(hotelID string, nightlyRate int64) int64 {
	rule := uc.ruleOrNil(hotelID)
	if rule == nil {
		return roundToUnit(mulFactor(nightlyRate, fallbackHalfBoardFactor))
	}
	breakfast := applyMealAdjustment(nightlyRate, rule.BreakfastMode, rule.BreakfastValue)
	return roundToUnit(applyMealAdjustment(breakfast, rule.DinnerMode, rule.DinnerValue))
}

func (uc *DefaultMealUsecase) ruleOrNil(hotelID string) *domain.MealPricingRule {
	rule, err := uc.MealRepo.GetByHotelID(hotelID)
	if err != nil {
		if err != domain.ErrNotFound {
			slog.Warn("meal rule lookup failed, using fallback multipliers",
				"hotel_id", hotelID, "error", err.Error())
		}
		return nil
	}
	return rule
}

func applyMealAdjustment(rate int64, mode domain.AdjustMode, value float64) int64 {
	if mode == domain.AdjustFixed {
		return rate + int64(value)
	}
	return mulFactor(rate, 1+value)
}

func mulFactor(rate int64, factor float64) int64 {
	return decimal.NewFromInt(rate).Mul(decimal.NewFromFloat(factor)).Round(0).IntPart()
}

func roundToUnit(rate int64) int64 {
	return decimal.NewFromInt(rate).
		Div(decimal.NewFromInt(minorUnitsPerUnit)).
		Round(0).
		Mul(decimal.NewFromInt(minorUnitsPerUnit)).
		IntPart()
}
