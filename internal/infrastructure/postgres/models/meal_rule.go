package models

import "time"

type MealRuleModel struct {
	HotelID string `gorm:"primaryKey"`

	BreakfastMode  string
	BreakfastValue float64
	DinnerMode     string
	DinnerValue    float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MealRuleModel) TableName() string {
	return "meal_rules"
}
