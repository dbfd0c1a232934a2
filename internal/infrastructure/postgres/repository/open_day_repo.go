package repository

import (
	"errors"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOpenDayRepository struct {
	DB *gorm.DB
}

func NewDefaultOpenDayRepository(db *gorm.DB) *DefaultOpenDayRepository {
	return &DefaultOpenDayRepository{DB: db}
}

func (r *DefaultOpenDayRepository) Upsert(openDay *domain.OpenDay) error {
	model := models.OpenDayModel{
		HotelID:    openDay.HotelID,
		Day:        openDay.Day.Time(),
		IsClosed:   openDay.IsClosed,
		IsHoliday:  openDay.IsHoliday,
		FixedPrice: openDay.FixedPrice,
		Notes:      openDay.Notes,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_closed", "is_holiday", "fixed_price", "notes", "updated_at"}),
	}).Create(&model).Error
}

func (r *DefaultOpenDayRepository) Get(hotelID string, day domain.Day) (*domain.OpenDay, error) {
	var model models.OpenDayModel
	err := r.DB.Where("hotel_id = ? AND day = ?", hotelID, day.Time()).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toOpenDayDomain(&model), nil
}

func (r *DefaultOpenDayRepository) GetRange(hotelID string, from, to domain.Day) ([]*domain.OpenDay, error) {
	var dayModels []models.OpenDayModel
	err := r.DB.Where("hotel_id = ? AND day >= ? AND day <= ?", hotelID, from.Time(), to.Time()).
		Order("day ASC").
		Find(&dayModels).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.OpenDay, len(dayModels))
	for i := range dayModels {
		result[i] = toOpenDayDomain(&dayModels[i])
	}
	return result, nil
}

func toOpenDayDomain(model *models.OpenDayModel) *domain.OpenDay {
	return &domain.OpenDay{
		HotelID:    model.HotelID,
		Day:        domain.NewDay(model.Day),
		IsClosed:   model.IsClosed,
		IsHoliday:  model.IsHoliday,
		FixedPrice: model.FixedPrice,
		Notes:      model.Notes,
		UpdatedAt:  model.UpdatedAt,
	}
}
