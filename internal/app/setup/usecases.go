package setup

import (
	"github.com/camino-stays/pricing-service/internal/usecase"
	"github.com/camino-stays/pricing-service/internal/usecase/booking"
	"github.com/camino-stays/pricing-service/internal/usecase/pricing"
)

type UseCases struct {
	ConfigUsecase      usecase.PricingConfigUsecase
	SeasonUsecase      usecase.SeasonUsecase
	OccupancyUsecase   usecase.OccupancyUsecase
	HolidayUsecase     usecase.HolidayUsecase
	CalendarUsecase    usecase.CalendarUsecase
	MealUsecase        usecase.MealUsecase
	PromotionUsecase   usecase.GapPromotionUsecase
	RateEngine         pricing.RateEngine
	ReservationUsecase booking.ReservationUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories

	configUsecase := usecase.NewDefaultPricingConfigUsecase(repos.ConfigRepo)
	seasonUsecase := usecase.NewDefaultSeasonUsecase(repos.SeasonRepo)
	occupancyUsecase := usecase.NewDefaultOccupancyUsecase(repos.ReservationRepo, repos.RoomRepo)
	holidayUsecase := usecase.NewDefaultHolidayUsecase(repos.OpenDayRepo)
	calendarUsecase := usecase.NewDefaultCalendarUsecase(repos.OpenDayRepo)
	mealUsecase := usecase.NewDefaultMealUsecase(repos.MealRuleRepo)
	promotionUsecase := usecase.NewDefaultGapPromotionUsecase(repos.PromotionRepo)

	rateEngine := pricing.NewDefaultRateEngine(
		repos.ConfigRepo,
		repos.DailyRateRepo,
		repos.OpenDayRepo,
		repos.RoomTypeRepo,
		seasonUsecase,
		occupancyUsecase,
		holidayUsecase,
		mealUsecase,
		promotionUsecase,
		deps.RatePublisher,
		deps.Metrics,
	)

	reservationUsecase := booking.NewDefaultReservationUsecase(
		repos.ReservationRepo,
		repos.RoomRepo,
		rateEngine,
	)

	return &UseCases{
		ConfigUsecase:      configUsecase,
		SeasonUsecase:      seasonUsecase,
		OccupancyUsecase:   occupancyUsecase,
		HolidayUsecase:     holidayUsecase,
		CalendarUsecase:    calendarUsecase,
		MealUsecase:        mealUsecase,
		PromotionUsecase:   promotionUsecase,
		RateEngine:         rateEngine,
		ReservationUsecase: reservationUsecase,
	}
}
