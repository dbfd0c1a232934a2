package pricing

import (
	"context"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/kafka"
	"github.com/camino-stays/pricing-service/internal/infrastructure/metrics"
	"github.com/camino-stays/pricing-service/internal/usecase"
	ratesdto "github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
)

// RateEngine orchestrates the pricing pipeline: seasonal base price,
// occupancy/anticipation/weekend/holiday adjustments, rounding, and the
// per-night extras (meal surcharges, gap promotions) on quotes.
type RateEngine interface {
	GenerateRates(ctx context.Context, input *ratesdto.GenerateRatesInput) (*ratesdto.GenerateRatesOutput, error)

	// GetRatesForDateRange returns rows for [checkIn, checkOut-1]: the
	// checkout day itself is never billed.
	GetRatesForDateRange(hotelID, roomTypeID string, checkIn, checkOut domain.Day) ([]*domain.DailyRoomRate, error)

	QuoteStay(ctx context.Context, input *ratesdto.QuoteStayInput) (*ratesdto.StayQuote, error)
}

type DefaultRateEngine struct {
	ConfigRepo    domain.PricingConfigRepository
	DailyRateRepo domain.DailyRateRepository
	OpenDayRepo   domain.OpenDayRepository
	RoomTypeRepo  domain.RoomTypeRepository

	Seasons    usecase.SeasonUsecase
	Occupancy  usecase.OccupancyUsecase
	Holidays   usecase.HolidayUsecase
	Meals      usecase.MealUsecase
	Promotions usecase.GapPromotionUsecase

	Publisher *kafka.RatePublisher
	Metrics   *metrics.PricingMetrics
}

func NewDefaultRateEngine(
	configRepo domain.PricingConfigRepository,
	dailyRateRepo domain.DailyRateRepository,
	openDayRepo domain.OpenDayRepository,
	roomTypeRepo domain.RoomTypeRepository,
	seasons usecase.SeasonUsecase,
	occupancy usecase.OccupancyUsecase,
	holidays usecase.HolidayUsecase,
	meals usecase.MealUsecase,
	promotions usecase.GapPromotionUsecase,
	ratePublisher *kafka.RatePublisher,
	pricingMetrics *metrics.PricingMetrics) *DefaultRateEngine {

	return &DefaultRateEngine{
		ConfigRepo:    configRepo,
		DailyRateRepo: dailyRateRepo,
		OpenDayRepo:   openDayRepo,
		RoomTypeRepo:  roomTypeRepo,
		Seasons:       seasons,
		Occupancy:     occupancy,
		Holidays:      holidays,
		Meals:         meals,
		Promotions:    promotions,
		Publisher:     ratePublisher,
		Metrics:       pricingMetrics,
	}
}
