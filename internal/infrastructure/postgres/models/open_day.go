package models

import "time"

type OpenDayModel struct {
	HotelID string    `gorm:"primaryKey"`
	Day     time.Time `gorm:"primaryKey;type:date"`

	IsClosed   bool `gorm:"default:false"`
	IsHoliday  bool `gorm:"default:false"`
	FixedPrice *int64
	Notes      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OpenDayModel) TableName() string {
	return "open_days"
}
