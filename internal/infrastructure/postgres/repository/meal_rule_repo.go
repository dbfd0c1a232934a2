package repository

import (
	"errors"

	"github.com/camino-stays/pricing-service/internal/domain"
	"github.com/camino-stays/pricing-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultMealRuleRepository struct {
	DB *gorm.DB
}

func NewDefaultMealRuleRepository(db *gorm.DB) *DefaultMealRuleRepository {
	return &DefaultMealRuleRepository{DB: db}
}

func (r *DefaultMealRuleRepository) Upsert(rule *domain.MealPricingRule) error {
	model := models.MealRuleModel{
		HotelID:        rule.HotelID,
		BreakfastMode:  string(rule.BreakfastMode),
		BreakfastValue: rule.BreakfastValue,
		DinnerMode:     string(rule.DinnerMode),
		DinnerValue:    rule.DinnerValue,
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hotel_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"breakfast_mode", "breakfast_value", "dinner_mode", "dinner_value", "updated_at"}),
	}).Create(&model).Error
}

func (r *DefaultMealRuleRepository) GetByHotelID(hotelID string) (*domain.MealPricingRule, error) {
	var model models.MealRuleModel
	if err := r.DB.Where("hotel_id = ?", hotelID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &domain.MealPricingRule{
		HotelID:        model.HotelID,
		BreakfastMode:  domain.AdjustMode(model.BreakfastMode),
		BreakfastValue: model.BreakfastValue,
		DinnerMode:     domain.AdjustMode(model.DinnerMode),
		DinnerValue:    model.DinnerValue,
		UpdatedAt:      model.UpdatedAt,
	}, nil
}
