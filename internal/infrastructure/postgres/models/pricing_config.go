package models

import "time"

type PricingConfigModel struct {
	HotelID string `gorm:"primaryKey"`
	Enabled bool   `gorm:"default:true"`

	Strategy string

	AnticipationMode    string
	AnticipationMaxDays int
	// JSON array of {days, weight} steps.
	AnticipationSteps string `gorm:"type:jsonb;default:'[]'"`

	AnticipationWeight float64
	OccupancyWeight    float64
	WeekendWeight      float64
	HolidayWeight      float64
	WeatherWeight      float64
	EventWeight        float64

	OccupancyMaxAdjustmentPct    float64
	AnticipationMaxAdjustmentPct float64
	WeekendMaxAdjustmentPct      float64
	HolidayMaxAdjustmentPct      float64

	IdealOccupancyPct float64
	// JSON array of time.Weekday ints.
	WeekendDays      string `gorm:"type:jsonb;default:'[]'"`
	MaxAdjustmentPct float64

	RoundingMultiple int64 `gorm:"default:1"`
	RoundingMode     string

	RespectManualOverrides bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PricingConfigModel) TableName() string {
	return "pricing_configs"
}
