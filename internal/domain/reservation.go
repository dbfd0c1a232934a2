package domain

import "time"

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "ACTIVE"
	ReservationCancelled ReservationStatus = "CANCELLED"
)

type MealPlan string

const (
	MealNone      MealPlan = "NONE"
	MealBreakfast MealPlan = "BREAKFAST"
	MealHalfBoard MealPlan = "HALF_BOARD"
)

type RoomType struct {
	ID      string
	HotelID string
	Name    string
	// Multiplier scales the seasonal base price before any dynamic
	// adjustment.
	Multiplier float64
}

type Room struct {
	ID         string
	HotelID    string
	RoomTypeID string
	Number     string
}

type Reservation struct {
	ID         string
	Code       string // short public code
	HotelID    string
	RoomID     string
	RoomTypeID string
	GuestName  string
	CheckIn    Day
	CheckOut   Day
	MealPlan   MealPlan
	Status     ReservationStatus
	TotalRate  int64
	CreatedAt  time.Time
}

// ReservationNightRate is the immutable per-night breakdown snapshotted when
// a reservation's rates are computed. Adjustment fields are minor-unit
// amounts, not fractions.
type ReservationNightRate struct {
	ID            string
	ReservationID string
	Day           Day

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
}

type RoomTypeRepository interface {
	GetByID(roomTypeID string) (*RoomType, error)
	ListByHotel(hotelID string) ([]*RoomType, error)
}

type RoomRepository interface {
	GetByID(roomID string) (*Room, error)
	CountByHotel(hotelID string) (int64, error)
}

type ReservationRepository interface {
	// Create persists the reservation and its night-rate snapshot in one
	// transaction.
	Create(res *Reservation, nights []*ReservationNightRate) error

	GetByID(reservationID string) (*Reservation, error)
	GetByCode(code string) (*Reservation, error)
	GetNightRates(reservationID string) ([]*ReservationNightRate, error)
	Cancel(reservationID string) error

	// CountActiveOverlapping counts active reservations whose stay covers
	// day (check-in <= day < check-out).
	CountActiveOverlapping(hotelID string, day Day) (int64, error)
}
