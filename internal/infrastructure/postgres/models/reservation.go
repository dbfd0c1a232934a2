package models

import "time"

type RoomTypeModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	HotelID    string `gorm:"index"`
	Name       string
	Multiplier float64 `gorm:"default:1"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoomTypeModel) TableName() string {
	return "room_types"
}

type RoomModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	HotelID    string `gorm:"index"`
	RoomTypeID string `gorm:"type:uuid;index"`
	Number     string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RoomModel) TableName() string {
	return "rooms"
}

type ReservationModel struct {
	ID         string `gorm:"primaryKey;type:uuid"`
	Code       string `gorm:"uniqueIndex"`
	HotelID    string `gorm:"index:idx_reservation_hotel_dates"`
	RoomID     string `gorm:"type:uuid;index"`
	RoomTypeID string `gorm:"type:uuid"`
	GuestName  string

	CheckIn  time.Time `gorm:"type:date;index:idx_reservation_hotel_dates"`
	CheckOut time.Time `gorm:"type:date;index:idx_reservation_hotel_dates"`

	MealPlan  string
	Status    string `gorm:"default:'ACTIVE'"`
	TotalRate int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ReservationModel) TableName() string {
	return "reservations"
}

type ReservationNightRateModel struct {
	ID            string    `gorm:"primaryKey;type:uuid"`
	ReservationID string    `gorm:"type:uuid;index"`
	Day           time.Time `gorm:"type:date"`

	BaseRate    int64
	DynamicRate int64
	FinalRate   int64

	OccupancyAdjustment    int64
	AnticipationAdjustment int64
	WeekendAdjustment      int64
	HolidayAdjustment      int64

	ServiceSurcharge   int64
	GapPromotionAmount int64

	IsWeekend bool
	IsHoliday bool

	CreatedAt time.Time
}

func (ReservationNightRateModel) TableName() string {
	return "reservation_night_rates"
}
