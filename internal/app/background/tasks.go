package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/camino-stays/pricing-service/internal/config"
	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/usecase"
	"github.com/camino-stays/pricing-service/internal/usecase/dto/rates"
	"github.com/camino-stays/pricing-service/internal/usecase/pricing"
)

type BackgroundTasks struct {
	Engine       pricing.RateEngine
	ConfigRepo   domain.PricingConfigRepository
	RoomTypeRepo domain.RoomTypeRepository
	Promotions   usecase.GapPromotionUsecase

	HorizonDays           int
	RegenerateEvery       time.Duration
	PromotionCleanupEvery time.Duration
}

func NewBackgroundTasks(
	engine pricing.RateEngine,
	configRepo domain.PricingConfigRepository,
	roomTypeRepo domain.RoomTypeRepository,
	promotions usecase.GapPromotionUsecase,
	engineCfg config.Engine) *BackgroundTasks {

	return &BackgroundTasks{
		Engine:                engine,
		ConfigRepo:            configRepo,
		RoomTypeRepo:          roomTypeRepo,
		Promotions:            promotions,
		HorizonDays:           engineCfg.HorizonDays,
		RegenerateEvery:       engineCfg.RegenerateEvery,
		PromotionCleanupEvery: engineCfg.PromotionCleanupEvery,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startRateRegeneration(ctx)
	go bt.startPromotionCleanup(ctx)
}

// startRateRegeneration keeps the rolling pricing horizon warm: every tick it
// regenerates rates for each configured hotel and room type from today
// through today+horizon.
func (bt *BackgroundTasks) startRateRegeneration(ctx context.Context) {
	ticker := time.NewTicker(bt.RegenerateEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.regenerateAll(ctx)
		}
	}
}

func (bt *BackgroundTasks) regenerateAll(ctx context.Context) {
	hotelIDs, err := bt.ConfigRepo.ListHotelIDs()
	if err != nil {
		slog.Error("rate regeneration: failed to list hotels", "error", err)
		return
	}

	startDay := domain.Today()
	endDay := startDay.AddDays(bt.HorizonDays - 1)

	for _, hotelID := range hotelIDs {
		roomTypes, err := bt.RoomTypeRepo.ListByHotel(hotelID)
		if err != nil {
			slog.Error("rate regeneration: failed to list room types",
				"hotel_id", hotelID, "error", err)
			continue
		}
		for _, roomType := range roomTypes {
			output, err := bt.Engine.GenerateRates(ctx, &rates.GenerateRatesInput{
				HotelID:    hotelID,
				RoomTypeID: roomType.ID,
				StartDay:   startDay,
				EndDay:     endDay,
			})
			if err != nil {
				slog.Error("rate regeneration failed",
					"hotel_id", hotelID, "room_type_id", roomType.ID, "error", err)
				continue
			}
			slog.Info("rates regenerated",
				"hotel_id", hotelID,
				"room_type_id", roomType.ID,
				"generated", len(output.Rates),
				"skipped", len(output.Skipped),
				"failed", len(output.Failed))
		}
	}
}

func (bt *BackgroundTasks) startPromotionCleanup(ctx context.Context) {
	ticker := time.NewTicker(bt.PromotionCleanupEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := bt.Promotions.CleanupExpired(domain.Today())
			if err != nil {
				slog.Error("promotion cleanup failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("expired promotions removed", "count", removed)
			}
		}
	}
}
