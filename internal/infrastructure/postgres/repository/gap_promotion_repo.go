package repository

import (
	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultGapPromotionRepository struct {
	DB *gorm.DB
}

func NewDefaultGapPromotionRepository(db *gorm.DB) *DefaultGapPromotionRepository {
	return &DefaultGapPromotionRepository{DB: db}
}

func (r *DefaultGapPromotionRepository) Create(promo *domain.RoomGapPromotion) error {
	model := models.RoomGapPromotionModel{
		ID:           promo.ID,
		RoomID:       promo.RoomID,
		Day:          promo.Day.Time(),
		DiscountRate: promo.DiscountRate,
		CreatedAt:    promo.CreatedAt,
	}
	return r.DB.Create(&model).Error
}

func (r *DefaultGapPromotionRepository) Delete(promoID string) error {
	result := r.DB.Delete(&models.RoomGapPromotionModel{ID: promoID})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *DefaultGapPromotionRepository) FindByRoomDay(roomID string, day domain.Day) ([]*domain.RoomGapPromotion, error) {
	var promoModels []models.RoomGapPromotionModel
	err := r.DB.Where("room_id = ? AND day = ?", roomID, day.Time()).
		Order("created_at DESC").
		Find(&promoModels).Error
	if err != nil {
		return nil, err
	}
	return toPromotionDomainList(promoModels), nil
}

func (r *DefaultGapPromotionRepository) ListByRoom(roomID string, from, to domain.Day) ([]*domain.RoomGapPromotion, error) {
	var promoModels []models.RoomGapPromotionModel
	err := r.DB.Where("room_id = ? AND day >= ? AND day <= ?", roomID, from.Time(), to.Time()).
		Order("day ASC").
		Find(&promoModels).Error
	if err != nil {
		return nil, err
	}
	return toPromotionDomainList(promoModels), nil
}

func (r *DefaultGapPromotionRepository) DeleteExpired(before domain.Day) (int64, error) {
	result := r.DB.Where("day < ?", before.Time()).Delete(&models.RoomGapPromotionModel{})
	return result.RowsAffected, result.Error
}

func toPromotionDomainList(promoModels []models.RoomGapPromotionModel) []*domain.RoomGapPromotion {
	result := make([]*domain.RoomGapPromotion, len(promoModels))
	for i, model := range promoModels {
		result[i] = &domain.RoomGapPromotion{
			ID:           model.ID,
			RoomID:       model.RoomID,
			Day:          domain.NewDay(model.Day),
			DiscountRate: model.DiscountRate,
			CreatedAt:    model.CreatedAt,
		}
	}
	return result
}
