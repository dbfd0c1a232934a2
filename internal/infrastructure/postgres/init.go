package postgres

import (
	"log"

	"github.com/camino-stays/pricing-service/internal/config"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.PricingConfig) *gorm.DB {
	dsn := cfg.PricingDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.PricingConfigModel{},
		&models.SeasonBlockModel{},
		&models.SeasonRoomPriceModel{},
		&models.SeasonServiceAdjustmentModel{},
		&models.DailyRoomRateModel{},
		&models.OpenDayModel{},
		&models.RoomGapPromotionModel{},
		&models.MealRuleModel{},
		&models.RoomTypeModel{},
		&models.RoomModel{},
		&models.ReservationModel{},
		&models.ReservationNightRateModel{},
	)

	return db
}
