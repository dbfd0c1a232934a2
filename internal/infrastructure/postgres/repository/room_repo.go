package repository

import (
	"errors"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRoomRepository struct {
	DB *gorm.DB
}

func NewDefaultRoomRepository(db *gorm.DB) *DefaultRoomRepository {
	return &DefaultRoomRepository{DB: db}
}

func (r *DefaultRoomRepository) GetByID(roomID string) (*domain.Room, error) {
	var model models.RoomModel
	if err := r.DB.Where("id = ?", roomID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.Room{
		ID:         model.ID,
		HotelID:    model.HotelID,
		RoomTypeID: model.RoomTypeID,
		Number:     model.Number,
	}, nil
}

func (r *DefaultRoomRepository) CountByHotel(hotelID string) (int64, error) {
	var count int64
	err := r.DB.Model(&models.RoomModel{}).Where("hotel_id = ?", hotelID).Count(&count).Error
	return count, err
}

type DefaultRoomTypeRepository struct {
	DB *gorm.DB
}

func NewDefaultRoomTypeRepository(db *gorm.DB) *DefaultRoomTypeRepository {
	return &DefaultRoomTypeRepository{DB: db}
}

func (r *DefaultRoomTypeRepository) GetByID(roomTypeID string) (*domain.RoomType, error) {
	var model models.RoomTypeModel
	if err := r.DB.Where("id = ?", roomTypeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &domain.RoomType{
		ID:         model.ID,
		HotelID:    model.HotelID,
		Name:       model.Name,
		Multiplier: model.Multiplier,
	}, nil
}

func (r *DefaultRoomTypeRepository) ListByHotel(hotelID string) ([]*domain.RoomType, error) {
	var typeModels []models.RoomTypeModel
	err := r.DB.Where("hotel_id = ?", hotelID).Order("name ASC").Find(&typeModels).Error
	if err != nil {
		return nil, err
	}

	result := make([]*domain.RoomType, len(typeModels))
	for i, model := range typeModels {
		result[i] = &domain.RoomType{
			ID:         model.ID,
			HotelID:    model.HotelID,
			Name:       model.Name,
			Multiplier: model.Multiplier,
		}
	}
	return result, nil
}
