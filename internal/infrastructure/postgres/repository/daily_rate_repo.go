package repository

import (
	"errors"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultDailyRateRepository struct {
	DB *gorm.DB
}

func NewDefaultDailyRateRepository(db *gorm.DB) *DefaultDailyRateRepository {
	return &DefaultDailyRateRepository{DB: db}
}

func (r *DefaultDailyRateRepository) Upsert(rate *domain.DailyRoomRate) error {
	model := models.DailyRoomRateModel{
		HotelID:     rate.HotelID,
		RoomTypeID:  rate.RoomTypeID,
		Day:         rate.Day.Time(),
		BaseRate:    rate.BaseRate,
		DynamicRate: rate.DynamicRate,
	}

	// The override flag is deliberately absent from the update set: an
	// engine upsert must never flip a manual row back to automatic.
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "room_type_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"base_rate", "dynamic_rate", "updated_at"}),
	}).Create(&model).Error
}

func (r *DefaultDailyRateRepository) Get(hotelID, roomTypeID string, day domain.Day) (*domain.DailyRoomRate, error) {
	var model models.DailyRoomRateModel
	err := r.DB.Where("hotel_id = ? AND room_type_id = ? AND day = ?", hotelID, roomTypeID, day.Time()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDailyRateDomain(&model), nil
}

func (r *DefaultDailyRateRepository) GetRange(hotelID, roomTypeID string, from, to domain.Day) ([]*domain.DailyRoomRate, error) {
	var rateModels []models.DailyRoomRateModel
	err := r.DB.Where("hotel_id = ? AND room_type_id = ? AND day >= ? AND day <= ?",
		hotelID, roomTypeID, from.Time(), to.Time()).
		Order("day ASC").
		Find(&rateModels).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DailyRoomRate, len(rateModels))
	for i := range rateModels {
		result[i] = toDailyRateDomain(&rateModels[i])
	}
	return result, nil
}

func (r *DefaultDailyRateRepository) SetManualRate(hotelID, roomTypeID string, day domain.Day, rate int64) error {
	result := r.DB.Model(&models.DailyRoomRateModel{}).
		Where("hotel_id = ? AND room_type_id = ? AND day = ?", hotelID, roomTypeID, day.Time()).
		Updates(map[string]interface{}{
			"dynamic_rate":    rate,
			"manual_override": true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// No generated row yet: a manual rate still needs a home.
		model := models.DailyRoomRateModel{
			HotelID:        hotelID,
			RoomTypeID:     roomTypeID,
			Day:            day.Time(),
			BaseRate:       rate,
			DynamicRate:    rate,
			ManualOverride: true,
		}
		return r.DB.Create(&model).Error
	}
	return nil
}

func (r *DefaultDailyRateRepository) ClearManualOverride(hotelID, roomTypeID string, day domain.Day) error {
	result := r.DB.Model(&models.DailyRoomRateModel{}).
		Where("hotel_id = ? AND room_type_id = ? AND day = ?", hotelID, roomTypeID, day.Time()).
		Update("manual_override", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toDailyRateDomain(model *models.DailyRoomRateModel) *domain.DailyRoomRate {
	return &domain.DailyRoomRate{
		HotelID:        model.HotelID,
		RoomTypeID:     model.RoomTypeID,
		Day:            domain.NewDay(model.Day),
		BaseRate:       model.BaseRate,
		DynamicRate:    model.DynamicRate,
		ManualOverride: model.ManualOverride,
		UpdatedAt:      model.UpdatedAt,
	}
}
