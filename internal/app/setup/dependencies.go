package setup

import (
	"fmt"

	"github.com/camino-stays/pricing-service/internal/config"
	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/kafka"
	"github.com/camino-stays/pricing-service/internal/infrastructure/metrics"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/repository"
	"gorm.io/gorm"
)

type Dependencies struct {
	Config        *config.PricingConfig
	DB            *gorm.DB
	RatePublisher *kafka.RatePublisher
	Metrics       *metrics.PricingMetrics
	Repositories  *Repositories
}

type Repositories struct {
	ConfigRepo      domain.PricingConfigRepository
	SeasonRepo      domain.SeasonBlockRepository
	DailyRateRepo   domain.DailyRateRepository
	OpenDayRepo     domain.OpenDayRepository
	PromotionRepo   domain.GapPromotionRepository
	MealRuleRepo    domain.MealRuleRepository
	RoomTypeRepo    domain.RoomTypeRepository
	RoomRepo        domain.RoomRepository
	ReservationRepo domain.ReservationRepository
}

func InitializeDependencies(cfg *config.PricingConfig) (*Dependencies, error) {
	db := postgres.MustInitDB(cfg)

	var ratePublisher *kafka.RatePublisher
	if cfg.KafkaService.Host != "" {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
		ratePublisher = kafka.NewRatePublisher(brokers, cfg.KafkaService.Topic)
	}

	repos := &Repositories{
		ConfigRepo:      repository.NewDefaultPricingConfigRepository(db),
		SeasonRepo:      repository.NewDefaultSeasonBlockRepository(db),
		DailyRateRepo:   repository.NewDefaultDailyRateRepository(db),
		OpenDayRepo:     repository.NewDefaultOpenDayRepository(db),
		PromotionRepo:   repository.NewDefaultGapPromotionRepository(db),
		MealRuleRepo:    repository.NewDefaultMealRuleRepository(db),
		RoomTypeRepo:    repository.NewDefaultRoomTypeRepository(db),
		RoomRepo:        repository.NewDefaultRoomRepository(db),
		ReservationRepo: repository.NewDefaultReservationRepository(db),
	}

	return &Dependencies{
		Config:        cfg,
		DB:            db,
		RatePublisher: ratePublisher,
		Metrics:       metrics.NewPricingMetrics(),
		Repositories:  repos,
	}, nil
}
