package repository

import (
	"errors"
	"time"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultSeasonBlockRepository struct {
	DB *gorm.DB
}

func NewDefaultSeasonBlockRepository(db *gorm.DB) *DefaultSeasonBlockRepository {
	return &DefaultSeasonBlockRepository{DB: db}
}

func (r *DefaultSeasonBlockRepository) Create(block *domain.SeasonBlock) error {
	return r.DB.Create(toSeasonBlockModel(block)).Error
}

func (r *DefaultSeasonBlockRepository) Update(block *domain.SeasonBlock) error {
	model := toSeasonBlockModel(block)

	// Child rows are replaced wholesale so removed prices actually go away.
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("block_id = ?", block.ID).Delete(&models.SeasonRoomPriceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("block_id = ?", block.ID).Delete(&models.SeasonServiceAdjustmentModel{}).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"name":      model.Name,
			"start_day": model.StartDay,
			"end_day":   model.EndDay,
			"status":    model.Status,
		}
		if err := tx.Model(&models.SeasonBlockModel{}).Where("id = ?", block.ID).Updates(updates).Error; err != nil {
			return err
		}
		for i := range model.RoomPrices {
			model.RoomPrices[i].BlockID = block.ID
			if err := tx.Create(&model.RoomPrices[i]).Error; err != nil {
				return err
			}
		}
		for i := range model.ServiceAdjustments {
			model.ServiceAdjustments[i].BlockID = block.ID
			if err := tx.Create(&model.ServiceAdjustments[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DefaultSeasonBlockRepository) Delete(blockID string) error {
	return r.DB.Delete(&models.SeasonBlockModel{ID: blockID}).Error
}

func (r *DefaultSeasonBlockRepository) GetByID(blockID string) (*domain.SeasonBlock, error) {
	var model models.SeasonBlockModel
	err := r.DB.Preload("RoomPrices", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("ServiceAdjustments").
		Where("id = ?", blockID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toSeasonBlockDomain(&model), nil
}

func (r *DefaultSeasonBlockRepository) ListByHotel(hotelID string) ([]*domain.SeasonBlock, error) {
	var blockModels []models.SeasonBlockModel
	err := r.DB.Preload("RoomPrices", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("ServiceAdjustments").
		Where("hotel_id = ?", hotelID).
		Order("start_day ASC").
		Find(&blockModels).Error
	if err != nil {
		return nil, err
	}

	blocks := make([]*domain.SeasonBlock, len(blockModels))
	for i := range blockModels {
		blocks[i] = toSeasonBlockDomain(&blockModels[i])
	}
	return blocks, nil
}

func (r *DefaultSeasonBlockRepository) FindActiveForDay(hotelID string, day domain.Day) (*domain.SeasonBlock, error) {
	var model models.SeasonBlockModel
	err := r.DB.Preload("RoomPrices", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("ServiceAdjustments").
		Where("hotel_id = ? AND status = ? AND start_day <= ? AND end_day >= ?",
			hotelID, string(domain.SeasonActive), day.Time(), day.Time()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toSeasonBlockDomain(&model), nil
}

// Confirm flips a block to ACTIVE. The overlap check and the state flip run
// in one transaction so concurrent activations of overlapping blocks cannot
// both succeed.
func (r *DefaultSeasonBlockRepository) Confirm(blockID string, savedAt time.Time) (*domain.SeasonBlock, error) {
	var confirmed *domain.SeasonBlock

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var model models.SeasonBlockModel
		if err := tx.Clauses(lockForUpdate()).Where("id = ?", blockID).First(&model).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}

		var overlapping int64
		err := tx.Model(&models.SeasonBlockModel{}).
			Where("hotel_id = ? AND status = ? AND id <> ? AND start_day <= ? AND end_day >= ?",
				model.HotelID, string(domain.SeasonActive), blockID, model.EndDay, model.StartDay).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return domain.ErrSeasonOverlap
		}

		updates := map[string]interface{}{
			"status":        string(domain.SeasonActive),
			"last_saved_at": savedAt,
		}
		if err := tx.Model(&models.SeasonBlockModel{}).Where("id = ?", blockID).Updates(updates).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	confirmed, err = r.GetByID(blockID)
	if err != nil {
		return nil, err
	}
	return confirmed, nil
}

func (r *DefaultSeasonBlockRepository) Demote(blockID string) error {
	result := r.DB.Model(&models.SeasonBlockModel{}).
		Where("id = ?", blockID).
		Update("status", string(domain.SeasonDraft))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toSeasonBlockModel(block *domain.SeasonBlock) *models.SeasonBlockModel {
	model := &models.SeasonBlockModel{
		ID:          block.ID,
		HotelID:     block.HotelID,
		Name:        block.Name,
		StartDay:    block.StartDay.Time(),
		EndDay:      block.EndDay.Time(),
		Status:      string(block.Status),
		LastSavedAt: block.LastSavedAt,
	}
	for i, price := range block.RoomPrices {
		model.RoomPrices = append(model.RoomPrices, models.SeasonRoomPriceModel{
			BlockID:    block.ID,
			RoomTypeID: price.RoomTypeID,
			BaseRate:   price.BaseRate,
			Position:   i,
		})
	}
	for _, adj := range block.ServiceAdjustments {
		model.ServiceAdjustments = append(model.ServiceAdjustments, models.SeasonServiceAdjustmentModel{
			BlockID:       block.ID,
			ServiceTypeID: adj.ServiceTypeID,
			Mode:          string(adj.Mode),
			Value:         adj.Value,
			Enabled:       adj.Enabled,
		})
	}
	return model
}

func toSeasonBlockDomain(model *models.SeasonBlockModel) *domain.SeasonBlock {
	block := &domain.SeasonBlock{
		ID:          model.ID,
		HotelID:     model.HotelID,
		Name:        model.Name,
		StartDay:    domain.NewDay(model.StartDay),
		EndDay:      domain.NewDay(model.EndDay),
		Status:      domain.SeasonStatus(model.Status),
		LastSavedAt: model.LastSavedAt,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
	for _, price := range model.RoomPrices {
		block.RoomPrices = append(block.RoomPrices, domain.SeasonRoomPrice{
			RoomTypeID: price.RoomTypeID,
			BaseRate:   price.BaseRate,
		})
	}
	for _, adj := range model.ServiceAdjustments {
		block.ServiceAdjustments = append(block.ServiceAdjustments, domain.SeasonServiceAdjustment{
			ServiceTypeID: adj.ServiceTypeID,
			Mode:          domain.AdjustMode(adj.Mode),
			Value:         adj.Value,
			Enabled:       adj.Enabled,
		})
	}
	return block
}
