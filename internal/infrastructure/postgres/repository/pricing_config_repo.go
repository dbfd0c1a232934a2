package repository

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultPricingConfigRepository struct {
	DB *gorm.DB
}

func NewDefaultPricingConfigRepository(db *gorm.DB) *DefaultPricingConfigRepository {
	return &DefaultPricingConfigRepository{DB: db}
}

func (r *DefaultPricingConfigRepository) Upsert(cfg *domain.PricingConfig) error {
	model, err := toPricingConfigModel(cfg)
	if err != nil {
		return err
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}},
		UpdateAll: true,
	}).Create(model).Error
}

func (r *DefaultPricingConfigRepository) GetByHotelID(hotelID string) (*domain.PricingConfig, error) {
	var model models.PricingConfigModel
	if err := r.DB.Where("hotel_id = ?", hotelID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toPricingConfigDomain(&model)
}

func (r *DefaultPricingConfigRepository) ListHotelIDs() ([]string, error) {
	var hotelIDs []string
	err := r.DB.Model(&models.PricingConfigModel{}).Pluck("hotel_id", &hotelIDs).Error
	return hotelIDs, err
}

func toPricingConfigModel(cfg *domain.PricingConfig) (*models.PricingConfigModel, error) {
	steps, err := json.Marshal(cfg.AnticipationSteps)
	if err != nil {
		return nil, err
	}
	weekendDays := make([]int, 0, len(cfg.WeekendDays))
	for _, wd := range cfg.WeekendDays {
		weekendDays = append(weekendDays, int(wd))
	}
	weekend, err := json.Marshal(weekendDays)
	if err != nil {
		return nil, err
	}

	return &models.PricingConfigModel{
		HotelID:                      cfg.HotelID,
		Enabled:                      cfg.Enabled,
		Strategy:                     string(cfg.Strategy),
		AnticipationMode:             string(cfg.AnticipationMode),
		AnticipationMaxDays:          cfg.AnticipationMaxDays,
		AnticipationSteps:            string(steps),
		AnticipationWeight:           cfg.AnticipationWeight,
		OccupancyWeight:              cfg.OccupancyWeight,
		WeekendWeight:                cfg.WeekendWeight,
		HolidayWeight:                cfg.HolidayWeight,
		WeatherWeight:                cfg.WeatherWeight,
		EventWeight:                  cfg.EventWeight,
		OccupancyMaxAdjustmentPct:    cfg.OccupancyMaxAdjustmentPct,
		AnticipationMaxAdjustmentPct: cfg.AnticipationMaxAdjustmentPct,
		WeekendMaxAdjustmentPct:      cfg.WeekendMaxAdjustmentPct,
		HolidayMaxAdjustmentPct:      cfg.HolidayMaxAdjustmentPct,
		IdealOccupancyPct:            cfg.IdealOccupancyPct,
		WeekendDays:                  string(weekend),
		MaxAdjustmentPct:             cfg.MaxAdjustmentPct,
		RoundingMultiple:             cfg.RoundingMultiple,
		RoundingMode:                 string(cfg.RoundingMode),
		RespectManualOverrides:       cfg.RespectManualOverrides,
		UpdatedAt:                    time.Now().UTC(),
	}, nil
}

func toPricingConfigDomain(model *models.PricingConfigModel) (*domain.PricingConfig, error) {
	var steps []domain.AnticipationStep
	if model.AnticipationSteps != "" {
		if err := json.Unmarshal([]byte(model.AnticipationSteps), &steps); err != nil {
			return nil, err
		}
	}
	var weekendInts []int
	if model.WeekendDays != "" {
		if err := json.Unmarshal([]byte(model.WeekendDays), &weekendInts); err != nil {
			return nil, err
		}
	}
	weekendDays := make([]time.Weekday, 0, len(weekendInts))
	for _, wd := range weekendInts {
		weekendDays = append(weekendDays, time.Weekday(wd))
	}

	return &domain.PricingConfig{
		HotelID:                      model.HotelID,
		Enabled:                      model.Enabled,
		Strategy:                     domain.PricingStrategyKind(model.Strategy),
		AnticipationMode:             domain.AnticipationMode(model.AnticipationMode),
		AnticipationMaxDays:          model.AnticipationMaxDays,
		AnticipationSteps:            steps,
		AnticipationWeight:           model.AnticipationWeight,
		OccupancyWeight:              model.OccupancyWeight,
		WeekendWeight:                model.WeekendWeight,
		HolidayWeight:                model.HolidayWeight,
		WeatherWeight:                model.WeatherWeight,
		EventWeight:                  model.EventWeight,
		OccupancyMaxAdjustmentPct:    model.OccupancyMaxAdjustmentPct,
		AnticipationMaxAdjustmentPct: model.AnticipationMaxAdjustmentPct,
		WeekendMaxAdjustmentPct:      model.WeekendMaxAdjustmentPct,
		HolidayMaxAdjustmentPct:      model.HolidayMaxAdjustmentPct,
		IdealOccupancyPct:            model.IdealOccupancyPct,
		WeekendDays:                  weekendDays,
		MaxAdjustmentPct:             model.MaxAdjustmentPct,
		RoundingMultiple:             model.RoundingMultiple,
		RoundingMode:                 domain.RoundingMode(model.RoundingMode),
		RespectManualOverrides:       model.RespectManualOverrides,
		UpdatedAt:                    model.UpdatedAt,
	}, nil
}
