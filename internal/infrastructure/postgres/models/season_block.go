package models

import "time"

type SeasonBlockModel struct {
	ID       string    `gorm:"primaryKey;type:uuid"`
	HotelID  string    `gorm:"index:idx_season_hotel"`
	Name     string
	StartDay time.Time `gorm:"type:date;index:idx_season_range"`
	EndDay   time.Time `gorm:"type:date;index:idx_season_range"`
	Status   string    `gorm:"default:'DRAFT'"`

	RoomPrices         []SeasonRoomPriceModel         `gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE"`
	ServiceAdjustments []SeasonServiceAdjustmentModel `gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE"`

	LastSavedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (SeasonBlockModel) TableName() string {
	return "season_blocks"
}

type SeasonRoomPriceModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	BlockID    string `gorm:"type:uuid;index"`
	RoomTypeID string
	BaseRate   int64
	Position   int // preserves listing order for the fallback price
}

func (SeasonRoomPriceModel) TableName() string {
	return "season_room_prices"
}

type SeasonServiceAdjustmentModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	BlockID       string `gorm:"type:uuid;index"`
	ServiceTypeID string
	Mode          string
	Value         float64
	Enabled       bool `gorm:"default:true"`
}

func (SeasonServiceAdjustmentModel) TableName() string {
	return "season_service_adjustments"
}
