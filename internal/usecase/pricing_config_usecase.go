package usecase

import (
	"fmt"

	"github.com/camino-stays/pricing-service/internal/domain"
)

type PricingConfigUsecase interface {
	UpsertConfig(cfg *domain.PricingConfig) error
	GetConfig(hotelID string) (*domain.PricingConfig, error)
}

type DefaultPricingConfigUsecase struct {
	ConfigRepo domain.PricingConfigRepository
}

func NewDefaultPricingConfigUsecase(configRepo domain.PricingConfigRepository) *DefaultPricingConfigUsecase {
	return &DefaultPricingConfigUsecase{ConfigRepo: configRepo}
}

func (uc *DefaultPricingConfigUsecase) UpsertConfig(cfg *domain.PricingConfig) error {
	if cfg.HotelID == "" {
		return fmt.Errorf("pricing config requires a hotel id")
	}
	if cfg.RoundingMultiple == 0 {
		cfg.RoundingMultiple = 1
	}
	if !domain.RoundingMultiples[cfg.RoundingMultiple] {
		return fmt.Errorf("rounding multiple %d is not one of 1, 10, 100, 500, 1000", cfg.RoundingMultiple)
	}
	switch cfg.RoundingMode {
	case "":
		cfg.RoundingMode = domain.RoundNearest
	case domain.RoundCeil, domain.RoundFloor, domain.RoundNearest:
	default:
		return fmt.Errorf("unknown rounding mode %q", cfg.RoundingMode)
	}

	switch cfg.Strategy {
	case "":
		cfg.Strategy = domain.StrategyPerFactor
	case domain.StrategyPerFactor, domain.StrategyWeightedScore:
	default:
		return fmt.Errorf("unknown pricing strategy %q", cfg.Strategy)
	}

	switch cfg.AnticipationMode {
	case "":
		cfg.AnticipationMode = domain.AnticipationContinuous
	case domain.AnticipationContinuous, domain.AnticipationStepped:
	default:
		return fmt.Errorf("unknown anticipation mode %q", cfg.AnticipationMode)
	}

	weightSum := cfg.AnticipationWeight + cfg.OccupancyWeight + cfg.WeekendWeight +
		cfg.HolidayWeight + cfg.WeatherWeight + cfg.EventWeight
	if weightSum > 1 {
		return fmt.Errorf("factor weights sum to %.2f, expected <= 1", weightSum)
	}

	return uc.ConfigRepo.Upsert(cfg)
}

func (uc *DefaultPricingConfigUsecase) GetConfig(hotelID string) (*domain.PricingConfig, error) {
	return uc.ConfigRepo.GetByHotelID(hotelID)
}
