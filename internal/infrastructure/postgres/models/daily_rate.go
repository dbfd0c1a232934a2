package models

import "time"

type DailyRoomRateModel struct {
	HotelID    string    `gorm:"primaryKey"`
	RoomTypeID string    `gorm:"primaryKey"`
	Day        time.Time `gorm:"primaryKey;type:date"`

	BaseRate    int64
	DynamicRate int64

	ManualOverride bool `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (DailyRoomRateModel) TableName() string {
	return "daily_room_rates"
}
