package repository

import (
	"errors"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultReservationRepository struct {
	DB *gorm.DB
}

func NewDefaultReservationRepository(db *gorm.DB) *DefaultReservationRepository {
	return &DefaultReservationRepository{DB: db}
}

func (r *DefaultReservationRepository) Create(res *domain.Reservation, nights []*domain.ReservationNightRate) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(toReservationModel(res)).Error; err != nil {
			return err
		}
		for _, night := range nights {
			if err := tx.Create(toNightRateModel(night)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultReservationRepository) GetByID(reservationID string) (*domain.Reservation, error) {
	var model models.ReservationModel
	if err := r.DB.Where("id = ?", reservationID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toReservationDomain(&model), nil
}

func (r *DefaultReservationRepository) GetByCode(code string) (*domain.Reservation, error) {
	var model models.ReservationModel
	if err := r.DB.Where("code = ?", code).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toReservationDomain(&model), nil
}

func (r *DefaultReservationRepository) GetNightRates(reservationID string) ([]*domain.ReservationNightRate, error) {
	var nightModels []models.ReservationNightRateModel
	err := r.DB.Where("reservation_id = ?", reservationID).Order("day ASC").Find(&nightModels).Error
	if err != nil {
		return nil, err
	}

	nights := make([]*domain.ReservationNightRate, len(nightModels))
	for i := range nightModels {
		nights[i] = toNightRateDomain(&nightModels[i])
	}
	return nights, nil
}

func (r *DefaultReservationRepository) Cancel(reservationID string) error {
	result := r.DB.Model(&models.ReservationModel{}).
		Where("id = ?", reservationID).
		Update("status", string(domain.ReservationCancelled))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultReservationRepository) CountActiveOverlapping(hotelID string, day domain.Day) (int64, error) {
	var count int64
	err := r.DB.Model(&models.ReservationModel{}).
		Where("hotel_id = ? AND status = ? AND check_in <= ? AND check_out > ?",
			hotelID, string(domain.ReservationActive), day.Time(), day.Time()).
		Count(&count).Error
	return count, err
}

func toReservationModel(res *domain.Reservation) *models.ReservationModel {
	return &models.ReservationModel{
		ID:         res.ID,
		Code:       res.Code,
		HotelID:    res.HotelID,
		RoomID:     res.RoomID,
		RoomTypeID: res.RoomTypeID,
		GuestName:  res.GuestName,
		CheckIn:    res.CheckIn.Time(),
		CheckOut:   res.CheckOut.Time(),
		MealPlan:   string(res.MealPlan),
		Status:     string(res.Status),
		TotalRate:  res.TotalRate,
		CreatedAt:  res.CreatedAt,
	}
}

func toReservationDomain(model *models.ReservationModel) *domain.Reservation {
	return &domain.Reservation{
		ID:         model.ID,
		Code:       model.Code,
		HotelID:    model.HotelID,
		RoomID:     model.RoomID,
		RoomTypeID: model.RoomTypeID,
		GuestName:  model.GuestName,
		CheckIn:    domain.NewDay(model.CheckIn),
		CheckOut:   domain.NewDay(model.CheckOut),
		MealPlan:   domain.MealPlan(model.MealPlan),
		Status:     domain.ReservationStatus(model.Status),
		TotalRate:  model.TotalRate,
		CreatedAt:  model.CreatedAt,
	}
}

func toNightRateModel(night *domain.ReservationNightRate) *models.ReservationNightRateModel {
	return &models.ReservationNightRateModel{
		ID:                     night.ID,
		ReservationID:          night.ReservationID,
		Day:                    night.Day.Time(),
		BaseRate:               night.BaseRate,
		DynamicRate:            night.DynamicRate,
		FinalRate:              night.FinalRate,
		OccupancyAdjustment:    night.OccupancyAdjustment,
		AnticipationAdjustment: night.AnticipationAdjustment,
		WeekendAdjustment:      night.WeekendAdjustment,
		HolidayAdjustment:      night.HolidayAdjustment,
		ServiceSurcharge:       night.ServiceSurcharge,
		GapPromotionAmount:     night.GapPromotionAmount,
		IsWeekend:              night.IsWeekend,
		IsHoliday:              night.IsHoliday,
	}
}

func toNightRateDomain(model *models.ReservationNightRateModel) *domain.ReservationNightRate {
	return &domain.ReservationNightRate{
		ID:                     model.ID,
		ReservationID:          model.ReservationID,
		Day:                    domain.NewDay(model.Day),
		BaseRate:               model.BaseRate,
		DynamicRate:            model.DynamicRate,
		FinalRate:              model.FinalRate,
		OccupancyAdjustment:    model.OccupancyAdjustment,
		AnticipationAdjustment: model.AnticipationAdjustment,
		WeekendAdjustment:      model.WeekendAdjustment,
		HolidayAdjustment:      model.HolidayAdjustment,
		ServiceSurcharge:       model.ServiceSurcharge,
		GapPromotionAmount:     model.GapPromotionAmount,
		IsWeekend:              model.IsWeekend,
		IsHoliday:              model.IsHoliday,
	}
}
