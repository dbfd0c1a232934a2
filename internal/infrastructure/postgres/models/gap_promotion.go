package models

import "time"

type RoomGapPromotionModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	RoomID       string    `gorm:"index:idx_promo_room_day"`
	Day          time.Time `gorm:"type:date;index:idx_promo_room_day"`
	DiscountRate float64

	CreatedAt time.Time
}

func (RoomGapPromotionModel) TableName() string {
	return "room_gap_promotions"
}
